package main

import (
	"github.com/spf13/cobra"

	"github.com/smallyu/go-s256-ecdsa/pkg/ecdsa"
)

func pubkeyCmd() *cobra.Command {
	var secretHex string

	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key of a secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := parseHex("secret", secretHex)
			if err != nil {
				return err
			}
			key, err := ecdsa.NewPrivateKey(secret)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printField(out, "x", hex64(key.PubKey().X()))
			printField(out, "y", hex64(key.PubKey().Y()))
			return nil
		},
	}
	cmd.Flags().StringVar(&secretHex, "secret", "", "secret scalar in hex")
	return cmd
}
