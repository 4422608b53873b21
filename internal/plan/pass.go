package plan

import (
	"errors"
	"sync"

	"propgen/internal/analyze"
	"propgen/internal/config"
	"propgen/internal/diagnostic"
)

// Pass processes the types of one generation pass. It is safe for
// concurrent use across distinct types.
type Pass struct {
	resolver *config.Resolver

	mu      sync.Mutex
	visited map[analyze.TypeID]struct{}
}

// NewPass starts a pass with an empty visited set. A nil resolver gets a
// fresh one.
func NewPass(resolver *config.Resolver) *Pass {
	if resolver == nil {
		resolver = config.NewResolver()
	}

	return &Pass{
		resolver: resolver,
		visited:  make(map[analyze.TypeID]struct{}),
	}
}

// Process resolves decl. It returns false, and does nothing, when a type with
// the same identity was already processed in this pass.
func (p *Pass) Process(decl *analyze.TypeDeclaration) (TypeResult, bool) {
	if !p.visit(decl.ID) {
		return TypeResult{}, false
	}

	return p.process(decl), true
}

// Visited returns the number of distinct types processed so far.
func (p *Pass) Visited() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.visited)
}

func (p *Pass) visit(id analyze.TypeID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.visited[id]; ok {
		return false
	}

	p.visited[id] = struct{}{}

	return true
}

func (p *Pass) process(decl *analyze.TypeDeclaration) TypeResult {
	result := TypeResult{Decl: decl}

	typeEff, err := p.resolver.ResolveType(decl.Config)
	if err != nil {
		reportPattern(&result.Diagnostics, err, decl.Location, decl.ID.String())
		return result
	}

	// property name -> field that produced it
	produced := make(map[string]string)

	for i := range decl.Fields {
		field := &decl.Fields[i]
		if !field.IsCandidate() {
			continue
		}

		subject := analyze.FieldPath(decl, field.Name)

		eff, err := p.resolver.ResolveField(field.Config, typeEff)
		if err != nil {
			reportPattern(&result.Diagnostics, err, field.Location, subject)
			continue
		}

		prop, diags := Classify(decl.ID, field, eff)
		result.Diagnostics.Add(diags...)

		if prop == nil {
			continue
		}

		if earlier, ok := produced[prop.PropertyName]; ok {
			result.Diagnostics.Report(diagnostic.DuplicatePropertyName, field.Location, subject,
				prop.PropertyName, field.Name, earlier)
			continue
		}

		if prop.PropertyName == decl.ID.Name || decl.HasField(prop.PropertyName) {
			result.Diagnostics.Report(diagnostic.PropertyNameConflictsWithMember, field.Location, subject,
				prop.PropertyName, field.Name)
			continue
		}

		produced[prop.PropertyName] = field.Name
		result.Properties = append(result.Properties, *prop)
	}

	return result
}

func reportPattern(diags *diagnostic.Diagnostics, err error, loc analyze.Location, subject string) {
	var pe *config.PatternError
	if errors.As(err, &pe) {
		diags.Report(diagnostic.InvalidPrefixPattern, loc, subject, pe.Text, pe.Reason())
		return
	}

	diags.Report(diagnostic.InvalidPrefixPattern, loc, subject, "", err.Error())
}
