package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present and no files are configured.
const DefaultEnvFile = ".env"

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// Option configures Load.
type Option func(*options)

// WithPrefix prepends prefix to every variable name, e.g. "FORMCHECK_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles reads .env files in order. Earlier files take precedence and
// the process environment takes precedence over all of them.
// Every listed file must exist.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// WithEnvironment replaces the process environment as the variable source.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

// Load parses environment variables into the struct v points to.
//
//	type Config struct {
//		Addr     string `env:"ADDR" envDefault:":8080"`
//		MaxDepth int    `env:"MAX_DEPTH"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("FORMCHECK_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars, err := o.variables()
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: vars,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func (o *options) variables() (map[string]string, error) {
	vars := o.environment
	if vars == nil {
		vars = env.ToMap(os.Environ())
	}

	files := o.files
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return vars, nil
		}
		files = []string{DefaultEnvFile}
	}

	merged := make(map[string]string, len(vars))
	for k, val := range vars {
		merged[k] = val
	}
	for _, file := range files {
		fileVars, err := godotenv.Read(file)
		if err != nil {
			return nil, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		for k, val := range fileVars {
			if _, set := merged[k]; !set {
				merged[k] = val
			}
		}
	}
	return merged, nil
}
