// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv removes every GMAT_ setting for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GMAT_ELEMENT", "GMAT_OUTPUT", "GMAT_PRECISION", "GMAT_VERBOSE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// newFlags mirrors the root command's persistent flags.
func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringP("element", "e", DefaultElement, "")
	fs.StringP("output", "o", DefaultOutput, "")
	fs.Int("precision", DefaultPrecision, "")
	fs.BoolP("verbose", "v", false, "")

	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gmat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "float table", mutate: func(c *Config) { c.Element, c.Output = ElementFloat, OutputTable }},
		{name: "precision zero", mutate: func(c *Config) { c.Precision = 0 }},
		{name: "unknown element", mutate: func(c *Config) { c.Element = "complex" }, wantErr: true},
		{name: "empty element", mutate: func(c *Config) { c.Element = "" }, wantErr: true},
		{name: "unknown output", mutate: func(c *Config) { c.Output = "json" }, wantErr: true},
		{name: "precision below -1", mutate: func(c *Config) { c.Precision = -2 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "element: float\noutput: table\nprecision: 3\nverbose: true\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{Element: ElementFloat, Output: OutputTable, Precision: 3, Verbose: true}, cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "output: json\n")
	_, err := Load(path, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "element: float\noutput: table\nprecision: 3\n")

	// Env beats file.
	t.Setenv("GMAT_OUTPUT", "text")
	t.Setenv("GMAT_PRECISION", "5")
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ElementFloat, cfg.Element)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, 5, cfg.Precision)

	// Explicit flags beat env; untouched flags keep their defaults out.
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--precision", "1", "-v"}))
	cfg, err = Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, ElementFloat, cfg.Element)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, 1, cfg.Precision)
	assert.True(t, cfg.Verbose)
}

func TestLoad_ConfigFlagIgnored(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "element: float\n")
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--config", path}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
