package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count elements with a given name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseArgs(args)
			if err != nil {
				return err
			}
			fmt.Println(root.CountByName(name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "element name to count")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
