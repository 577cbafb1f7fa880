package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print [file]",
		Short: "Parse a snippet and print an indented rendering of the tree",
		Long: `Parse an XML snippet and print the resulting tree, one element per
line, indented by depth, with attributes as (name=value) pairs.

If no file is provided, reads from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseArgs(args)
			if err != nil {
				return err
			}
			return root.Fprint(os.Stdout)
		},
	}
}
