package utils

import (
	"errors"
	"flag"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/kardiachain/fracsh/configs"
	"github.com/kardiachain/fracsh/internal/eval"
	"github.com/kardiachain/fracsh/lib/log"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range []cli.Flag{ConfigFileFlag, EngineFlag, PromptFlag, ExecFlag, NoBannerFlag, CacheFlag, VerbosityFlag} {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestMakeConfig_Defaults(t *testing.T) {
	cfg, err := MakeConfig(newContext(t))
	require.NoError(t, err)
	assert.Equal(t, configs.Default(), cfg)
}

func TestMakeConfig_Flags(t *testing.T) {
	cfg, err := MakeConfig(newContext(t, "--engine", "cel", "--prompt", "$ ", "--verbosity", "debug", "--cache", "4", "--nobanner"))
	require.NoError(t, err)
	assert.Equal(t, configs.EngineCEL, cfg.Engine)
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.CacheSize)
	assert.False(t, cfg.Banner)

	_, err = MakeConfig(newContext(t, "--engine", "lua"))
	assert.True(t, errors.Is(err, configs.ErrUnknownEngine))
}

func TestMakeConfig_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fracsh.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("Engine: cel\nPrompt: \"f> \"\n"), 0600))

	cfg, err := MakeConfig(newContext(t, "--config", path, "--prompt", ">> "))
	require.NoError(t, err)
	assert.Equal(t, configs.EngineCEL, cfg.Engine)
	assert.Equal(t, ">> ", cfg.Prompt)
}

func TestMakeEngine(t *testing.T) {
	cfg := configs.Default()
	for _, name := range []string{configs.EngineJS, configs.EngineCEL} {
		cfg.Engine = name
		engine, err := MakeEngine(cfg, log.NewNopLogger())
		require.NoError(t, err, name)
		assert.Equal(t, name, engine.Name())

		res, err := engine.Eval("plus(frac(1, 2), frac(1, 3))")
		require.NoError(t, err, name)
		assert.Equal(t, eval.ResultCustom, res.Kind, name)
	}

	cfg.Engine = "lua"
	_, err := MakeEngine(cfg, log.NewNopLogger())
	assert.True(t, errors.Is(err, configs.ErrUnknownEngine))
}
