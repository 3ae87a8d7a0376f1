package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/kit/pkg/enum"
	"github.com/dmitrymomot/kit/pkg/logger"
)

func newEnumCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enum",
		Short: "Inspect registered enumerations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list [TABLE]",
			Short: "List enumerations, or the entries of one",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				if len(args) == 0 {
					for _, name := range enum.Registered() {
						d, err := enum.Lookup(name)
						if err != nil {
							return err
						}
						fmt.Fprintf(out, "%s\t%d\n", name, d.Len())
					}
					return nil
				}

				d, err := enum.Lookup(args[0])
				if err != nil {
					return err
				}
				for _, e := range d.Describe() {
					fmt.Fprintf(out, "%s\t%s\n", e.Name, e.Value)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "lookup TABLE NAME",
			Short: "Print the value of one entry",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := enum.Lookup(args[0])
				if err != nil {
					return err
				}
				v, err := d.Lookup(args[1])
				if err != nil {
					a.log.Debug("enum lookup failed", logger.Enumeration(args[0]), logger.Error(err))
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
	)
	return cmd
}
