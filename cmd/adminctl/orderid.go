package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adminpanel/internal/orderid"
)

func newOrderIDCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "order-id",
		Short: "Print freshly generated order IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			gen := orderid.New()
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), gen.Next())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "how many IDs to print")

	return cmd
}
