package cli

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cogmap/pkg/errors"
)

// fileConfig is the optional TOML file given with --config:
//
//	scale  = 5.0
//	format = "csv"
//	output = "out/"
//
// Flags set explicitly on the command line take precedence.
type fileConfig struct {
	Scale  *float64 `toml:"scale"`
	Format string   `toml:"format"`
	Output string   `toml:"output"`
}

// loadConfig decodes the TOML file at path. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if err := errors.ValidatePath(path); err != nil {
		return cfg, err
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// applyConfig copies config values into opts for every flag the user did
// not set explicitly.
func (o *convertOpts) applyConfig(cmd *cobra.Command, cfg fileConfig) {
	flags := cmd.Flags()
	if cfg.Scale != nil && !flags.Changed("scale") {
		o.scale = *cfg.Scale
	}
	if cfg.Format != "" && !flags.Changed("format") {
		o.format = cfg.Format
	}
	if cfg.Output != "" && !flags.Changed("output") {
		o.output = cfg.Output
	}
}
