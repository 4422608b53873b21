package driver

import (
	"context"
	"fmt"
	"runtime"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"propgen/internal/analyze"
	"propgen/internal/config"
	"propgen/internal/diagnostic"
	"propgen/internal/gen"
	"propgen/internal/plan"
)

var log = commonlog.GetLogger("propgen.driver")

// Options configures a Driver.
type Options struct {
	// Jobs bounds the number of types processed concurrently.
	// Zero or less means runtime.GOMAXPROCS(0).
	Jobs int
	// Resolver is shared by every pass so compiled prefixes are reused.
	// Nil gets a fresh resolver.
	Resolver *config.Resolver
}

// Driver orchestrates generation passes.
type Driver struct {
	jobs     int
	resolver *config.Resolver
}

// New creates a Driver.
func New(opts Options) *Driver {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = config.NewResolver()
	}

	return &Driver{jobs: jobs, resolver: resolver}
}

// Jobs returns the concurrency limit.
func (d *Driver) Jobs() int {
	return d.jobs
}

// group holds the fragments reported for one type identity.
type group struct {
	fragments []*analyze.TypeDeclaration
	result    plan.TypeResult
	file      gen.GeneratedFile
	hasFile   bool
}

// Run executes one pass. Types are processed concurrently, but the report
// lists results, files and diagnostics in first-seen declaration order, so
// two runs over the same input produce identical reports.
//
// Only the first fragment of a type is processed; later fragments with the
// same identity are skipped.
func (d *Driver) Run(ctx context.Context, decls []*analyze.TypeDeclaration) (*Report, error) {
	groups, skipped := groupEligible(decls)
	log.Infof("processing %d eligible type(s), %d ineligible skipped", len(groups), skipped)

	pass := plan.NewPass(d.resolver)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.jobs)

	for _, grp := range groups {
		g.Go(func() error {
			return d.runGroup(ctx, pass, grp)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Skipped: skipped}
	for _, grp := range groups {
		report.add(grp)
	}

	log.Infof("generated %d file(s), %d diagnostic(s)", len(report.Files), report.Diagnostics.Len())

	return report, nil
}

func (d *Driver) runGroup(ctx context.Context, pass *plan.Pass, grp *group) error {
	for _, decl := range grp.fragments {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, ok := pass.Process(decl)
		if !ok {
			log.Debugf("%s: duplicate fragment skipped", decl.ID)
			continue
		}

		grp.result = result

		file, hasFile, err := gen.File(result)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", decl.ID, err)
		}

		grp.file, grp.hasFile = file, hasFile

		for _, diag := range result.Diagnostics.Items {
			log.Debugf("%s", diag)
		}
	}

	return nil
}

// groupEligible groups eligible declarations by identity in first-seen order
// and counts the ineligible ones.
func groupEligible(decls []*analyze.TypeDeclaration) ([]*group, int) {
	index := make(map[analyze.TypeID]*group)

	var (
		groups  []*group
		skipped int
	)

	for _, decl := range decls {
		if decl == nil || !decl.Eligible {
			skipped++
			continue
		}

		grp, ok := index[decl.ID]
		if !ok {
			grp = &group{}
			index[decl.ID] = grp
			groups = append(groups, grp)
		}

		grp.fragments = append(grp.fragments, decl)
	}

	return groups, skipped
}

// Report is the outcome of one pass.
type Report struct {
	// Results holds one entry per processed type, in declaration order.
	Results []plan.TypeResult
	// Files holds the companion files of types that produced accessors.
	Files []gen.GeneratedFile
	// Diagnostics holds every diagnostic of the pass, in declaration order.
	Diagnostics diagnostic.Diagnostics
	// Skipped counts declarations without the generation marker.
	Skipped int
}

func (r *Report) add(grp *group) {
	if grp.result.Decl == nil {
		return
	}

	r.Results = append(r.Results, grp.result)
	r.Diagnostics.Merge(grp.result.Diagnostics)

	if grp.hasFile {
		r.Files = append(r.Files, grp.file)
	}
}

// HasErrors reports whether any Error diagnostic was produced.
func (r *Report) HasErrors() bool {
	return r.Diagnostics.HasErrors()
}

// HasWarnings reports whether any Warning diagnostic was produced.
func (r *Report) HasWarnings() bool {
	return r.Diagnostics.HasWarnings()
}

// Properties returns the number of resolved properties across all types.
func (r *Report) Properties() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Properties)
	}

	return n
}
