package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"propgen/internal/analyze"
	"propgen/internal/plan"
)

// FileSuffix is appended to the type identity to form artifact file names.
const FileSuffix = ".g.cs"

// GeneratedFile represents a companion source file for one type.
type GeneratedFile struct {
	TypeID   analyze.TypeID
	Filename string
	Content  []byte
}

// scope is one re-opened partial declaration.
type scope struct {
	Indent      string
	Declaration string
}

type artifactData struct {
	Namespace string
	Scopes    []scope
	Lines     []string
	Closers   []string
}

var artifactTemplate = template.Must(template.New("artifact").Parse(`// <auto-generated/>
#nullable enable
{{- if .Namespace}}

namespace {{.Namespace}};
{{- end}}
{{range .Scopes}}
{{.Indent}}{{.Declaration}}
{{.Indent}}{
{{- end}}
{{- range .Lines}}
{{.}}
{{- end}}
{{- range .Closers}}
{{.}}
{{- end}}
`))

// Artifact wraps accessor lines into the companion declaration of decl.
// Every containing type and the type itself are re-opened as partial
// declarations; lines are indented one level per nesting depth.
func Artifact(decl *analyze.TypeDeclaration, lines []string) (GeneratedFile, error) {
	data := buildArtifactData(decl, lines)

	var buf bytes.Buffer
	if err := artifactTemplate.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("executing artifact template for %s: %w", decl.ID, err)
	}

	return GeneratedFile{
		TypeID:   decl.ID,
		Filename: Filename(decl.ID),
		Content:  buf.Bytes(),
	}, nil
}

// Filename returns the artifact file name for a type.
// Example: Game.Box`2 -> "Game.Box`2.g.cs"
func Filename(id analyze.TypeID) string {
	return id.String() + FileSuffix
}

func buildArtifactData(decl *analyze.TypeDeclaration, lines []string) artifactData {
	scopes := make([]scope, 0, len(decl.Containers)+1)
	for i, c := range decl.Containers {
		scopes = append(scopes, scope{
			Indent:      strings.Repeat(indentUnit, i),
			Declaration: partialDeclaration(c.Kind, c.Name, c.TypeParameters),
		})
	}

	scopes = append(scopes, scope{
		Indent:      strings.Repeat(indentUnit, len(decl.Containers)),
		Declaration: partialDeclaration(decl.Kind, decl.ID.Name, decl.TypeParameters),
	})

	bodyIndent := strings.Repeat(indentUnit, len(scopes))

	body := make([]string, len(lines))
	for i, line := range lines {
		if line != "" {
			body[i] = bodyIndent + line
		}
	}

	closers := make([]string, len(scopes))
	for i := range scopes {
		closers[i] = scopes[len(scopes)-1-i].Indent + "}"
	}

	return artifactData{
		Namespace: decl.ID.Namespace,
		Scopes:    scopes,
		Lines:     body,
		Closers:   closers,
	}
}

func partialDeclaration(kind analyze.TypeKind, name string, params []string) string {
	return "partial " + kind.Keyword() + " " + analyze.GenericName(EscapeIdentifier(name), params)
}

// File renders every resolved property of result into its companion file.
// It returns false when no accessor block was rendered.
func File(result plan.TypeResult) (GeneratedFile, bool, error) {
	blocks := make([][]string, 0, len(result.Properties))
	for i := range result.Properties {
		blocks = append(blocks, Render(&result.Properties[i]))
	}

	lines := JoinBlocks(blocks)
	if len(lines) == 0 {
		return GeneratedFile{}, false, nil
	}

	file, err := Artifact(result.Decl, lines)
	if err != nil {
		return GeneratedFile{}, false, err
	}

	return file, true, nil
}
