package main

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/digest"
	"github.com/smallyu/go-s256-ecdsa/pkg/ecdsa"
)

// digestInput resolves the --message / --digest pair shared by sign and
// verify.
func digestInput(alg digest.Algorithm, messages []string, digestHex string) ([]*big.Int, error) {
	switch {
	case len(messages) > 0 && digestHex != "":
		return nil, errors.New("--message and --digest are mutually exclusive")
	case digestHex != "":
		z, err := parseHex("digest", digestHex)
		if err != nil {
			return nil, err
		}
		return []*big.Int{z}, nil
	case len(messages) > 0:
		digests := make([]*big.Int, len(messages))
		for i, m := range messages {
			z, err := digest.Int(alg, []byte(m))
			if err != nil {
				return nil, err
			}
			digests[i] = z
		}
		return digests, nil
	default:
		return nil, errors.New("one of --message or --digest is required")
	}
}

func signCmd(s *settings) *cobra.Command {
	var (
		secretHex string
		messages  []string
		digestHex string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign messages or a digest",
		Long: "Sign one digest, or one or more messages hashed with --hash. " +
			"Several messages are signed concurrently.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := parseHex("secret", secretHex)
			if err != nil {
				return err
			}
			key, err := ecdsa.NewPrivateKey(secret)
			if err != nil {
				return err
			}
			digests, err := digestInput(s.cfg.Algorithm(), messages, digestHex)
			if err != nil {
				return err
			}

			sigs, err := ecdsa.BatchSign(cmd.Context(), key, digests, s.cfg.Workers)
			if err != nil {
				return err
			}
			logger.Infof("signed %d digest(s)", len(sigs))

			out := cmd.OutOrStdout()
			for i, sig := range sigs {
				if i > 0 {
					out.Write([]byte("\n"))
				}
				printField(out, "digest", hex64(digests[i]))
				printField(out, "r", hex64(sig.R()))
				printField(out, "s", hex64(sig.S()))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&secretHex, "secret", "", "secret scalar in hex")
	flags.StringArrayVar(&messages, "message", nil, "message to hash and sign (repeatable)")
	flags.StringVar(&digestHex, "digest", "", "digest to sign, in hex")
	return cmd
}
