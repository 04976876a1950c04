package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rosa/internal/config"
)

const helloSource = `fun main() -> i32 =
	return 0
`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold a rosa.toml and a starter source file in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Write("rosa.toml", config.Default()); err != nil {
				return err
			}
			if _, err := os.Stat("main.rosa"); os.IsNotExist(err) {
				if err := os.WriteFile("main.rosa", []byte(helloSource), 0o644); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote rosa.toml and main.rosa")
			return nil
		},
	}
}
