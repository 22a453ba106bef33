package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spandigital/notion2bases"
	"github.com/spandigital/notion2bases/bases"
)

var (
	rollupFunction string
	rollupRelation string
	rollupTarget   string
	rollupName     string
)

var rollupCmd = &cobra.Command{
	Use:   "rollup",
	Short: "Compile a rollup configuration into an aggregate formula",
	RunE: func(cmd *cobra.Command, args []string) error {
		formula, err := notion2bases.CompileRollup(rollupFunction, rollupRelation, rollupTarget)
		if err != nil {
			return err
		}
		if rollupName != "" {
			entry := bases.NewEntry(rollupName, formula)
			fmt.Printf("%s: %s\n", entry.Key, entry.Formula)
			return nil
		}
		fmt.Println(formula)
		return nil
	},
}

func init() {
	rollupCmd.Flags().StringVar(&rollupFunction, "function", "count", "aggregation function id")
	rollupCmd.Flags().StringVar(&rollupRelation, "relation", "", "relation property name")
	rollupCmd.Flags().StringVar(&rollupTarget, "target", "", "target property name in the related database")
	rollupCmd.Flags().StringVar(&rollupName, "name", "", "emit a descriptor entry keyed by this property name")
	_ = rollupCmd.MarkFlagRequired("relation")
	rootCmd.AddCommand(rollupCmd)
}
