// Package config holds the benchmark settings, loaded from flags with
// environment-variable fallback.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

// Load parses args and environment into the config. A bare positional
// argument is taken as the iteration count. Non-positive iteration
// counts are coerced to 1.
func (c *Config) Load(args []string) error {
	c.v = viper.New()
	c.v.SetEnvPrefix("ttsolve")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	c.v.SetDefault("iterations", 1)
	c.v.SetDefault("log-level", "info")
	c.v.SetDefault("ab-prune", true)
	c.v.SetDefault("win-lose-prune", true)
	c.v.SetDefault("single-threaded", false)
	c.v.SetDefault("chart-file", "")
	c.v.SetDefault("debug-selfcheck", false)
	c.v.SetDefault("profile-path", "")

	fs := flag.NewFlagSet("ttsolve", flag.ContinueOnError)
	fs.Int("iterations", 1, "times to solve each opening per phase")
	fs.String("log-level", "info", "debug, info or disabled")
	fs.Bool("ab-prune", true, "enable alpha-beta pruning")
	fs.Bool("win-lose-prune", true, "enable win/lose cutoff pruning")
	fs.Bool("single-threaded", false, "skip the parallel phase")
	fs.String("chart-file", "", "write an HTML chart of the results to this file")
	fs.Bool("debug-selfcheck", false, "verify the reference call count and exit")
	fs.String("profile-path", "", "write a CPU profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		c.v.Set(f.Name, f.Value.String())
	})
	if fs.NArg() > 0 {
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("bad iteration count %q: %w", fs.Arg(0), err)
		}
		c.v.Set("iterations", n)
	}

	// Single-hart emulator environments identify themselves through the
	// OS variable; they get no parallel phase.
	if osv := os.Getenv("OS"); osv == "RVOS" || osv == "ARMOS" {
		c.v.Set("single-threaded", true)
	}

	if c.v.GetInt("iterations") < 1 {
		c.v.Set("iterations", 1)
	}
	return nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
