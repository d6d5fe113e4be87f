// Package config carries the tool's settings: word-list locations, solver
// knobs, and debug switches. Settings come from defaults, WINNOW_* env
// vars, and command-line flags, in rising precedence.
package config

import (
	"flag"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

func DefaultConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("winnow")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data-path", "./data")
	v.SetDefault("guess-list", "")
	v.SetDefault("frequency-list", "")
	v.SetDefault("solutions-list", "")
	v.SetDefault("common", 5000)
	v.SetDefault("solutions", false)
	v.SetDefault("hard", false)
	v.SetDefault("threads", max(1, runtime.NumCPU()-1))
	v.SetDefault("debug", false)
	v.SetDefault("cpu-profile", "")
	v.SetDefault("mem-profile", "")
	v.SetDefault("autoplay-log", "")

	return Config{v: v}
}

// Load parses command-line flags into the config. Only flags present on the
// command line override env vars and defaults.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("winnow", flag.ContinueOnError)
	fs.Bool("debug", false, "debug logging on")
	fs.String("data-path", "./data", "directory holding word-list files")
	fs.String("guess-list", "", "admissible-guess list, one word per line")
	fs.String("frequency-list", "", "word,count frequency list")
	fs.String("solutions-list", "", "known-solutions list, one word per line")
	fs.Int("common", 5000, "use only the N most common words as candidate targets")
	fs.Bool("solutions", false, "draw candidate targets from the solutions list instead of the frequency list")
	fs.Bool("hard", false, "hard mode: each guess must fit all earlier feedback, so the guess list is culled too")
	fs.Int("threads", 0, "worker count for evaluation (0 = all cores but one)")
	fs.String("cpu-profile", "", "path to write a CPU profile")
	fs.String("mem-profile", "", "path to write a memory profile")
	fs.String("autoplay-log", "", "path to append autoplay game records (YAML)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		c.v.Set(f.Name, f.Value.String())
	})
	return nil
}

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }

// AllSettings returns every setting, for logging at startup.
func (c *Config) AllSettings() map[string]any { return c.v.AllSettings() }

// AdjustRelativePaths anchors a relative data-path at the executable's
// directory, so the binary finds its data no matter where it is run from.
func (c *Config) AdjustRelativePaths(exPath string) {
	dp := c.v.GetString("data-path")
	if dp != "" && !filepath.IsAbs(dp) {
		c.v.Set("data-path", filepath.Join(exPath, dp))
	}
}

// WordPath resolves a word-list path against data-path unless it is already
// absolute. Empty stays empty: the caller falls back to the built-in list.
func (c *Config) WordPath(key string) string {
	p := c.v.GetString(key)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.v.GetString("data-path"), p)
}
