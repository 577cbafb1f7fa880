// Command lilx parses small XML snippets and runs queries over the
// resulting tree.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	flagSingleQuotes bool
	flagMaxToken     int
	flagMaxDepth     int
	flagVerbose      bool
)

var log = commonlog.GetLogger("lilx")

func main() {
	rootCmd := &cobra.Command{
		Use:   "lilx",
		Short: "A tiny DOM-style parser for XML snippets",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := 0
			if flagVerbose {
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil)
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagSingleQuotes, "single-quotes", false, "expect single-quoted attribute values")
	pf.IntVar(&flagMaxToken, "max-token", 0, "maximum token length (0 = default)")
	pf.IntVar(&flagMaxDepth, "max-depth", 0, "maximum combined element/attribute depth (0 = default)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log automaton transitions")

	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newAttrCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
