package main

import (
	"flag"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/kardiachain/fracsh/configs"
)

func TestDumpConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fracsh.toml")

	set := flag.NewFlagSet("dumpconfig", flag.ContinueOnError)
	for _, f := range dumpConfigCommand.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse([]string{"--engine", "cel", "--nobanner", path}))

	require.NoError(t, dumpConfig(cli.NewContext(app, set, nil)))

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `Engine = "cel"`)
	assert.Contains(t, string(data), "Banner = false")

	cfg, err := configs.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, configs.EngineCEL, cfg.Engine)
	assert.False(t, cfg.Banner)
}

func TestFracsh_RejectsArguments(t *testing.T) {
	set := flag.NewFlagSet("fracsh", flag.ContinueOnError)
	require.NoError(t, set.Parse([]string{"extra"}))

	err := fracsh(cli.NewContext(app, set, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid command: "extra"`)
}
