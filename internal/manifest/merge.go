package manifest

import (
	"propgen/internal/analyze"
)

// Merge combines fragments that share a TypeID into one declaration, in
// first-seen order. Fields are concatenated in fragment order. A type is
// eligible when any fragment carries the marker; the first type-level
// configuration and the first known location win.
// The input declarations are not modified.
func Merge(decls []*analyze.TypeDeclaration) []*analyze.TypeDeclaration {
	index := make(map[analyze.TypeID]int, len(decls))
	out := make([]*analyze.TypeDeclaration, 0, len(decls))

	for _, d := range decls {
		if d == nil {
			continue
		}

		i, seen := index[d.ID]
		if !seen {
			merged := *d
			merged.Fields = append([]analyze.FieldDeclaration(nil), d.Fields...)
			index[d.ID] = len(out)
			out = append(out, &merged)

			continue
		}

		mergeInto(out[i], d)
	}

	return out
}

func mergeInto(dst, src *analyze.TypeDeclaration) {
	dst.Fields = append(dst.Fields, src.Fields...)
	dst.Eligible = dst.Eligible || src.Eligible

	if dst.Config == nil && src.Eligible {
		dst.Config = src.Config
	}

	if dst.Location.IsZero() {
		dst.Location = src.Location
	}

	if len(dst.TypeParameters) == 0 {
		dst.TypeParameters = src.TypeParameters
	}

	if len(dst.Containers) == 0 {
		dst.Containers = src.Containers
	}
}
