package main

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-s256-ecdsa/internal/crypto/digest"
	"github.com/smallyu/go-s256-ecdsa/pkg/ecdsa"
)

// demoMessage is signed as its raw UTF-8 bytes.
const demoMessage = "안녕하세요"

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through key generation, signing and verification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), rand.Reader)
		},
	}
}

func runDemo(out io.Writer, r io.Reader) error {
	params := curves.Secp256k1()

	nG, err := params.G().ScalarMult(params.N())
	if err != nil {
		return err
	}
	printField(out, "n*G", nG)

	key, err := ecdsa.GeneratePrivateKey(r)
	if err != nil {
		return err
	}
	printField(out, "public key", key.PubKey())

	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return errors.Wrap(err, "reading random digest")
	}
	z := new(big.Int).SetBytes(buf[:])
	sig, err := key.Sign(z)
	if err != nil {
		return err
	}
	printField(out, "random digest", hex64(z))
	printField(out, "signature", sig)
	printField(out, "verify random integer", key.PubKey().Verify(z, sig))

	m, err := digest.Int(digest.Raw, []byte(demoMessage))
	if err != nil {
		return err
	}
	msig, err := key.Sign(m)
	if err != nil {
		return err
	}
	printField(out, "message", demoMessage)
	printField(out, "signature", msig)
	printField(out, "verify message", key.PubKey().Verify(m, msig))
	return nil
}
