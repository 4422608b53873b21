package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"

	"propgen/internal/config"
	"propgen/internal/driver"
	"propgen/internal/gen"
	"propgen/internal/manifest"
	"propgen/internal/report"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1 // errors reported or artifacts stale
	ExitUsage   = 2 // bad arguments, configuration or I/O
)

var log = commonlog.GetLogger("propgen.cli")

// Runner executes the propgen command.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the working directory; relative paths resolve against it.
	Dir     string
	Version string
}

// NewRunner creates a Runner writing to the given streams.
func NewRunner(stdout, stderr io.Writer, dir, version string) *Runner {
	return &Runner{Stdout: stdout, Stderr: stderr, Dir: dir, Version: version}
}

// Run executes one invocation and returns the process exit code.
func (r *Runner) Run(ctx context.Context, args []string) int {
	flags, err := ParseArgs(args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(r.Stdout, Usage())
		return ExitOK
	}

	if err != nil {
		return r.fail(ExitUsage, err)
	}

	switch {
	case flags.ShowHelp:
		fmt.Fprint(r.Stdout, Usage())
		return ExitOK
	case flags.ShowVersion:
		fmt.Fprintln(r.Stdout, r.Version)
		return ExitOK
	}

	settings, err := r.settings(flags)
	if err != nil {
		return r.fail(ExitUsage, err)
	}

	configureLogging(settings.Verbosity)

	code, err := r.run(ctx, settings)
	if err != nil {
		return r.fail(ExitUsage, err)
	}

	return code
}

func (r *Runner) settings(flags *Config) (Settings, error) {
	env, err := LoadEnv(filepath.Join(r.Dir, ".env"))
	if err != nil {
		return Settings{}, err
	}

	var project *Project
	if flags.ConfigPath != "" {
		project, err = LoadProject(under(r.Dir, flags.ConfigPath))
	} else {
		project, err = FindAndLoad(r.Dir)
	}

	if err != nil {
		return Settings{}, err
	}

	return Resolve(flags, env, project, r.Dir)
}

func (r *Runner) run(ctx context.Context, s Settings) (int, error) {
	resolver, err := config.NewResolverWith(s.Defaults)
	if err != nil {
		return ExitUsage, fmt.Errorf("project defaults: %w", err)
	}

	decls, err := manifest.Load(s.Manifests...)
	if err != nil {
		return ExitUsage, err
	}

	rep, err := driver.New(driver.Options{Jobs: s.Jobs, Resolver: resolver}).Run(ctx, decls)
	if err != nil {
		return ExitUsage, err
	}

	printer := report.NewPrinter(r.Stdout, s.UseColor)
	printer.Diagnostics(rep.Diagnostics)

	summary := report.Summary{
		Types:      len(rep.Results),
		Properties: rep.Properties(),
		Files:      len(rep.Files),
		Errors:     len(rep.Diagnostics.Errors()),
		Warnings:   len(rep.Diagnostics.Warnings()),
		Check:      s.Check,
	}

	code := ExitOK

	if s.Check {
		stale, err := gen.Check(rep.Files, s.OutDir)
		if err != nil {
			return ExitUsage, err
		}

		printer.Stale(stale)
		summary.Stale = len(stale)

		if len(stale) > 0 {
			code = ExitFailure
		}
	} else {
		written, err := gen.WriteFiles(rep.Files, s.OutDir)
		if err != nil {
			return ExitUsage, err
		}

		log.Infof("wrote %d of %d file(s) to %s", written, len(rep.Files), s.OutDir)
		summary.Written = written
	}

	printer.Summary(summary)

	if rep.HasErrors() || (s.FailOnWarning && rep.HasWarnings()) {
		code = ExitFailure
	}

	return code, nil
}

func (r *Runner) fail(code int, err error) int {
	fmt.Fprintf(r.Stderr, "propgen: %v\n", err)
	return code
}

// configureLogging installs an unbuffered simple backend so log lines are
// not lost when the process exits.
func configureLogging(verbosity int) {
	backend := simple.NewBackend()
	backend.Buffered = false
	commonlog.SetBackend(backend)
	commonlog.Configure(verbosity, nil)
}
