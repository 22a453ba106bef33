package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spandigital/notion2bases"
	"github.com/spandigital/notion2bases/schema"
)

var (
	schemaPath string
	fallback   string
)

var translateCmd = &cobra.Command{
	Use:   "translate <formula>",
	Short: "Translate one source formula expression",
	Long: `Translate rewrites a source formula expression into the Bases formula
language. With --schema, block-property placeholder tokens are resolved to
property references first.

When a formula cannot be converted, --fallback selects the caller strategy:
fail (exit non-zero), original (emit the source expression verbatim), or
omit (emit nothing and exit zero).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formula := args[0]
		var props schema.Schema
		if schemaPath != "" {
			f, err := os.Open(schemaPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if props, err = schema.Parse(f); err != nil {
				return err
			}
		}
		out, err := notion2bases.TranslateWithSchema(formula, props)
		if err != nil {
			logger.Warn("formula not translated", "formula", formula, "reason", err)
			switch fallback {
			case "original":
				fmt.Println(formula)
				return nil
			case "omit":
				return nil
			default:
				return err
			}
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	translateCmd.Flags().StringVar(&schemaPath, "schema", "", "database descriptor JSON for placeholder resolution")
	translateCmd.Flags().StringVar(&fallback, "fallback", "fail", "strategy on failure: fail, original, or omit")
	rootCmd.AddCommand(translateCmd)
}
