package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rivercross version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rivercross v%s\n", rivercross.Version)
		},
	}
}
