// Package config loads the settings shared by the command line tools.
//
// Values are resolved in viper's usual order: explicit flags, S256_*
// environment variables, an optional YAML file, then defaults.
package config

import (
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/digest"
	"github.com/smallyu/go-s256-ecdsa/internal/logging"
)

// Prefix is the environment variable prefix, e.g. S256_HASH.
const Prefix = "S256"

// Keys understood by Load.
const (
	KeyHash      = "hash"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyWorkers   = "workers"
)

// Config holds the tool settings.
type Config struct {
	Hash      string `mapstructure:"hash"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Workers   int    `mapstructure:"workers"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Config {
	return Config{
		Hash:      string(digest.SHA256),
		LogLevel:  "info",
		LogFormat: "console",
		Workers:   runtime.NumCPU(),
	}
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault(KeyHash, d.Hash)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyWorkers, d.Workers)

	v.SetEnvPrefix(Prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return v
}

// BindFlags binds every flag in fs whose name matches a key, with dashes
// standing in for underscores (--log-level for log_level).
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyHash, KeyLogLevel, KeyLogFormat, KeyWorkers} {
		f := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "binding flag %s", f.Name)
		}
	}
	return nil
}

// Load reads file (if not empty) into v and returns the validated settings.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", file)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	alg, err := digest.Parse(c.Hash)
	if err != nil {
		return err
	}
	c.Hash = string(alg)

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	if _, err := logging.ParseEncoding(c.LogFormat); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// Algorithm returns the configured digest algorithm.
func (c *Config) Algorithm() digest.Algorithm {
	return digest.Algorithm(c.Hash)
}

// Logging returns the logging configuration writing to w.
func (c *Config) Logging(w io.Writer) logging.Config {
	return logging.Config{
		Format: c.LogFormat,
		Level:  c.LogLevel,
		Writer: w,
	}
}
