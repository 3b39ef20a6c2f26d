package main

import (
	"github.com/spf13/cobra"

	"github.com/smallyu/go-s256-ecdsa/pkg/ecdsa"
)

func verifyCmd(s *settings) *cobra.Command {
	var (
		xHex, yHex string
		rHex, sHex string
		message    string
		digestHex  string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature; exits 1 if it is not valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseHex("pubkey-x", xHex)
			if err != nil {
				return err
			}
			y, err := parseHex("pubkey-y", yHex)
			if err != nil {
				return err
			}
			pub, err := ecdsa.NewPublicKey(x, y)
			if err != nil {
				return err
			}

			r, err := parseHex("r", rHex)
			if err != nil {
				return err
			}
			sv, err := parseHex("s", sHex)
			if err != nil {
				return err
			}
			sig, err := ecdsa.NewSignature(r, sv)
			if err != nil {
				return err
			}

			var messages []string
			if cmd.Flags().Changed("message") {
				messages = []string{message}
			}
			digests, err := digestInput(s.cfg.Algorithm(), messages, digestHex)
			if err != nil {
				return err
			}

			valid := pub.Verify(digests[0], sig)
			printField(cmd.OutOrStdout(), "valid", valid)
			if !valid {
				return errInvalidSignature
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&xHex, "pubkey-x", "", "public key x coordinate in hex")
	flags.StringVar(&yHex, "pubkey-y", "", "public key y coordinate in hex")
	flags.StringVar(&rHex, "r", "", "signature r in hex")
	flags.StringVar(&sHex, "s", "", "signature s in hex")
	flags.StringVar(&message, "message", "", "message to hash and verify")
	flags.StringVar(&digestHex, "digest", "", "digest in hex")
	return cmd
}
