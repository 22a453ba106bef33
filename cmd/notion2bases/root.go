package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/spandigital/notion2bases"
)

var (
	verbose bool
	logger  *log.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notion2bases",
	Short: "Translate note-database formulas into the Bases formula language",
	Long: `notion2bases rewrites computed-property formula expressions from a
note-database export into the equivalent Bases formula syntax, and compiles
rollup property configurations into aggregate formulas.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.WarnLevel
		if verbose {
			level = log.DebugLevel
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  level,
			Prefix: "notion2bases",
		})
		notion2bases.SetLogger(logger)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal("notion2bases", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
