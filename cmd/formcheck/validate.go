package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate DATA",
		Short: "Validate a document against a schema",
		Long: `Validates a JSON or YAML document against the named schema.
DATA is a .json, .yaml, or .yml file, or - to read JSON from stdin.
Valid documents are printed pruned to the schema's fields. Invalid documents
print one line per failing value path and exit with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("form")
			return a.runValidate(cmd, name, args[0])
		},
	}
	cmd.Flags().StringP("form", "f", "", "schema name to validate against")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, name, source string) error {
	reg, err := a.registry()
	if err != nil {
		return err
	}
	tr, err := a.translator(cmd)
	if err != nil {
		return err
	}

	var doc map[string]any
	if source == "-" {
		doc, err = binder.DecodeReader(cmd.InOrStdin(), 0)
	} else {
		doc, err = binder.DecodeFile(source)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}

	data, err := reg.Validate(name, doc)
	if err == nil {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	tree := validator.ExtractTree(err)
	if tree == nil {
		return err
	}

	lang := tr.Match(a.cfg.Lang)
	a.log.Debug("validation failed", logger.Schema(name), logger.Lang(lang), logger.Count("fields", len(tree)))
	for _, pe := range tr.Localize(tree, lang).Flatten() {
		for _, msg := range pe.Messages {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", pe.Path, msg)
		}
	}
	return errInvalidData
}
