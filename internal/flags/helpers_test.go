package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func TestMerge(t *testing.T) {
	a := &cli.StringFlag{Name: "a"}
	b := &cli.BoolFlag{Name: "b"}
	c := &cli.IntFlag{Name: "c"}

	merged := Merge([]cli.Flag{a}, nil, []cli.Flag{b, c})
	assert.Equal(t, []cli.Flag{a, b, c}, merged)
	assert.Nil(t, Merge())
}

func TestNewApp(t *testing.T) {
	app := NewApp("usage text")
	assert.Equal(t, "usage text", app.Usage)
	assert.NotEmpty(t, app.Name)
	assert.True(t, app.EnableBashCompletion)
}
