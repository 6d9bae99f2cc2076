package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve schema validation over HTTP",
		Long: `Starts an HTTP server validating request bodies against the loaded schemas:
POST /schemas/{name}/validate answers 200 with the pruned data or 422 with the error tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			tr, err := a.translator(cmd)
			if err != nil {
				return err
			}

			api := handler.NewAPI(reg,
				handler.WithLogger(a.log),
				handler.WithTranslator(tr),
				handler.WithTrustedIPHeaders(a.cfg.TrustedIPHeaders...),
			)
			srv := httpserver.NewFromConfig(a.cfg.HTTP,
				httpserver.WithLogger(a.log),
				httpserver.OnStart(func(addr string, log *slog.Logger) {
					log.Info("serving schemas", slog.String("addr", addr), slog.Any("schemas", reg.Names()), slog.Any("languages", tr.SupportedLanguages()))
				}),
			)
			return srv.Run(cmd.Context(), api.Router())
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from FORMCHECK_HTTP_ADDR or :8080)")
	return cmd
}
