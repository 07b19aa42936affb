package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"adminpanel/internal/passwd"
)

func newPasswdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Password hash utilities",
	}
	cmd.AddCommand(newPasswdCheckCmd(), newPasswdHashCmd())
	return cmd
}

func newPasswdCheckCmd() *cobra.Command {
	var password, hash string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare a plaintext password against a bcrypt hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ok, err := passwd.Compare([]byte(hash), password)
			if err != nil {
				slog.Error("password comparison failed", "error", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "match=%t\n", ok)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "plaintext password")
	cmd.Flags().StringVar(&hash, "hash", "", "bcrypt hash")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("hash")

	return cmd
}

func newPasswdHashCmd() *cobra.Command {
	var (
		password string
		cost     int
	)

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print a bcrypt hash of a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := passwd.Hash(password, cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(h))
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "plaintext password")
	cmd.Flags().IntVar(&cost, "cost", 0, "bcrypt cost (0 = default)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
