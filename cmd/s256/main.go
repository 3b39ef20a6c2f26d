// Command s256 derives public keys and signs and verifies digests with
// secp256k1 ECDSA.
package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smallyu/go-s256-ecdsa/internal/config"
	"github.com/smallyu/go-s256-ecdsa/internal/crypto/digest"
	"github.com/smallyu/go-s256-ecdsa/internal/logging"
)

var logger = logging.MustGetLogger("s256")

// errInvalidSignature makes verify exit non-zero without printing usage.
var errInvalidSignature = errors.New("signature is not valid")

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if err != errInvalidSignature {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// settings is shared by all subcommands once the root command has loaded the
// configuration.
type settings struct {
	v   *viper.Viper
	cfg *config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	s := &settings{v: config.New()}
	var configFile string

	root := &cobra.Command{
		Use:           "s256",
		Short:         "secp256k1 ECDSA keys and signatures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlags(s.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(s.v, configFile)
			if err != nil {
				return err
			}
			if err := logging.Init(cfg.Logging(cmd.ErrOrStderr())); err != nil {
				return err
			}
			s.cfg = cfg
			logger.Debugw("configuration loaded", "hash", cfg.Hash, "workers", cfg.Workers)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	d := config.Defaults()
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.String("hash", d.Hash, "message digest algorithm ("+algorithmNames()+")")
	flags.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", d.LogFormat, "log format (console, json, logfmt)")
	flags.Int("workers", d.Workers, "concurrent signers for multi-message requests")

	root.AddCommand(
		pubkeyCmd(),
		signCmd(s),
		verifyCmd(s),
		demoCmd(),
	)
	return root
}

// parseHex parses a hexadecimal integer with an optional 0x prefix.
func parseHex(name, s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if s == "" {
		return nil, errors.Errorf("--%s is required", name)
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, errors.Errorf("--%s: invalid hex value %q", name, s)
	}
	return v, nil
}

func algorithmNames() string {
	var names []string
	for _, alg := range digest.Algorithms() {
		names = append(names, string(alg))
	}
	return strings.Join(names, ", ")
}

func printField(w io.Writer, key string, value interface{}) {
	fmt.Fprintf(w, "%s: %v\n", key, value)
}

func hex64(v *big.Int) string {
	return fmt.Sprintf("%064x", v)
}
