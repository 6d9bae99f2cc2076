package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/schemafile"
)

var (
	errInvalidData     = errors.New("invalid data")
	errMissingSchemas  = errors.New("no schema file: set --schemas or FORMCHECK_SCHEMA_FILE")
	errInvalidLogLevel = errors.New("invalid log level")
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	cfg Config
	log *slog.Logger
}

// newRootCmd builds the command tree. Config options are passed to
// config.Load, so tests can supply their own environment.
func newRootCmd(opts ...config.Option) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "formcheck",
		Short:         "Validate documents against form schemas",
		Long:          `formcheck loads form schemas from a YAML file and validates JSON or YAML documents against them, locally or as an HTTP service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, opts...)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("schemas", "", "YAML file with schema definitions")
	flags.String("messages", "", "YAML file with translated messages")
	flags.String("lang", "", "language of error messages")
	flags.Int("max-depth", 0, "maximum form nesting depth, 0 for unlimited (default 64)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")

	rootCmd.AddCommand(
		newValidateCmd(a),
		newSchemasCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

// setup loads the config, applies changed flags on top, and builds the logger.
func (a *app) setup(cmd *cobra.Command, opts ...config.Option) error {
	if err := config.Load(&a.cfg, append([]config.Option{config.WithPrefix(envPrefix)}, opts...)...); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("schemas") {
		a.cfg.SchemaFile, _ = flags.GetString("schemas")
	}
	if flags.Changed("messages") {
		a.cfg.MessagesFile, _ = flags.GetString("messages")
	}
	if flags.Changed("lang") {
		a.cfg.Lang, _ = flags.GetString("lang")
	}
	if flags.Changed("max-depth") {
		a.cfg.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		a.cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("addr") {
		a.cfg.HTTP.Addr, _ = flags.GetString("addr")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.LogLevel)); err != nil {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, a.cfg.LogLevel)
	}
	format := logger.Format(a.cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return fmt.Errorf("invalid log format %q: must be %q or %q", a.cfg.LogFormat, logger.FormatJSON, logger.FormatText)
	}

	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("formcheck")),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			i18n.LoggerExtractor(),
		),
	)
	return nil
}

// registry builds the schema registry from the configured schema file.
func (a *app) registry() (*form.Registry, error) {
	if a.cfg.SchemaFile == "" {
		return nil, errMissingSchemas
	}
	reg, err := schemafile.LoadRegistry(a.cfg.SchemaFile,
		form.WithLogger(a.log),
		form.WithMaxDepth(a.cfg.MaxDepth),
	)
	if err != nil {
		return nil, fmt.Errorf("load schemas from %s: %w", a.cfg.SchemaFile, err)
	}
	a.log.Debug("schemas loaded", slog.String("file", a.cfg.SchemaFile), logger.Count("schemas", len(reg.Names())))
	return reg, nil
}

// translator loads the built-in messages and the configured messages file.
func (a *app) translator(cmd *cobra.Command) (*i18n.Translator, error) {
	var adapters []i18n.TranslationAdapter
	if a.cfg.MessagesFile != "" {
		adapters = append(adapters, i18n.NewFileAdapter(i18n.NewParserForFile(a.cfg.MessagesFile), a.cfg.MessagesFile))
	}
	return i18n.NewValidationTranslator(cmd.Context(), adapters,
		i18n.WithDefaultLanguage(a.cfg.Lang),
		i18n.WithLogger(a.log),
	)
}
