package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "adminctl",
		Short:        "Operator tools for the admin panel",
		SilenceUsage: true,
	}

	root.AddCommand(newOrderIDCmd())
	root.AddCommand(newPasswdCmd())
	root.AddCommand(newUIConfigCmd())

	return root
}
