package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aleister1102/recapurl/internal/sharetoken"
)

func newDecodeTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-token <token>",
		Short: `Print the URL encoded in a "u!" sharing token`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded, err := sharetoken.Decode(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), decoded)
			return err
		},
	}
}
