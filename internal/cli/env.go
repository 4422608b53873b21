package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by propgen.
const (
	EnvOut     = "PROPGEN_OUT"
	EnvJobs    = "PROPGEN_JOBS"
	EnvNoColor = "NO_COLOR"
)

// Env holds the settings taken from the environment.
type Env struct {
	Out     string
	Jobs    int
	NoColor bool
}

// LoadEnv reads the process environment, falling back to the variables of
// the given .env file. A missing file is not an error; process variables
// win over file variables.
func LoadEnv(path string) (Env, error) {
	fileVars, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("reading %s: %w", path, err)
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}

		return strings.TrimSpace(fileVars[key])
	}

	env := Env{
		Out:     lookup(EnvOut),
		NoColor: lookup(EnvNoColor) != "",
	}

	if raw := lookup(EnvJobs); raw != "" {
		jobs, err := strconv.Atoi(raw)
		if err != nil || jobs < 0 {
			return Env{}, fmt.Errorf("%s: want a non-negative integer, got %q", EnvJobs, raw)
		}

		env.Jobs = jobs
	}

	return env, nil
}
