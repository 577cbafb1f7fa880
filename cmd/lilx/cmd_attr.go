package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pauldmccarthy/lilx"
)

func newAttrCmd() *cobra.Command {
	var element string
	var name string

	cmd := &cobra.Command{
		Use:   "attr [file]",
		Short: "Print an attribute value from the first matching element",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseArgs(args)
			if err != nil {
				return err
			}

			dst := make([]*lilx.Element, 1)
			if root.CollectByName(element, dst) == 0 {
				return fmt.Errorf("no element named %q", element)
			}
			attr := dst[0].AttributeByName(name)
			if attr == nil {
				return fmt.Errorf("element %q has no attribute %q", element, name)
			}
			fmt.Println(attr.Value())
			return nil
		},
	}

	cmd.Flags().StringVar(&element, "element", "", "element name to search for")
	cmd.Flags().StringVar(&name, "name", "", "attribute name to look up")
	_ = cmd.MarkFlagRequired("element")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
