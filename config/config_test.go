package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetInt("iterations"), 1)
	is.Equal(c.GetString("log-level"), "info")
	is.True(c.GetBool("ab-prune"))
	is.True(c.GetBool("win-lose-prune"))
	is.True(!c.GetBool("single-threaded"))
	is.Equal(c.GetString("chart-file"), "")
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{
		"-iterations", "50", "-ab-prune=false", "-log-level", "debug",
	}))
	is.Equal(c.GetInt("iterations"), 50)
	is.True(!c.GetBool("ab-prune"))
	is.True(c.GetBool("win-lose-prune"))
	is.Equal(c.GetString("log-level"), "debug")
}

func TestPositionalIterations(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"10000"}))
	is.Equal(c.GetInt("iterations"), 10000)

	err := (&Config{}).Load([]string{"ten"})
	is.True(err != nil)
}

func TestNonPositiveIterationsCoerced(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"-iterations", "-3"}))
	is.Equal(c.GetInt("iterations"), 1)

	c = &Config{}
	is.NoErr(c.Load([]string{"0"}))
	is.Equal(c.GetInt("iterations"), 1)
}

func TestEmulatorEnvForcesSingleThreaded(t *testing.T) {
	is := is.New(t)
	t.Setenv("OS", "RVOS")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.True(c.GetBool("single-threaded"))

	t.Setenv("OS", "Windows_NT")
	c = &Config{}
	is.NoErr(c.Load(nil))
	is.True(!c.GetBool("single-threaded"))
}
