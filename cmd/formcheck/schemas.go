package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSchemasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List schemas and their fields",
		Long:  `Loads the schema file, checks every schema reference, and prints each schema with its fields in declaration order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			for _, s := range reg.Schemas() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.Name(), strings.Join(s.FieldNames(), ", "))
			}
			return nil
		},
	}
}
