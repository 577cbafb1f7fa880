package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pauldmccarthy/lilx"
)

func newGetCmd() *cobra.Command {
	var name string
	var limit int

	cmd := &cobra.Command{
		Use:   "get [file]",
		Short: "Print elements with a given name in document order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseArgs(args)
			if err != nil {
				return err
			}

			dst := make([]*lilx.Element, limit)
			n := root.CollectByName(name, dst)
			for _, elem := range dst[:n] {
				if err := elem.Fprint(os.Stdout); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "element name to collect")
	cmd.Flags().IntVar(&limit, "limit", 32, "maximum number of elements to print")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
