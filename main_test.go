package main

import (
	"bytes"
	"path/filepath"
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/magic53/go-chainparams/chaincfg"
	"github.com/magic53/go-chainparams/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFailure(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		var buf bytes.Buffer
		err := loadFailure(&buf, &flags.Error{Type: flags.ErrHelp, Message: "usage"})
		assert.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := config.Load([]string{"--nosuchflag"})
		require.Error(t, err)

		var buf bytes.Buffer
		assert.Equal(t, err, loadFailure(&buf, err))
		assert.Empty(t, buf.String())
	})

	t.Run("bad level", func(t *testing.T) {
		dir := t.TempDir()
		_, _, err := config.Load([]string{"-b", dir, "--logdir", filepath.Join(dir, "logs"), "-d", "loud"})
		require.Error(t, err)

		var buf bytes.Buffer
		assert.Equal(t, err, loadFailure(&buf, err))
		assert.Equal(t, err.Error()+"\n", buf.String())
	})
}

func TestRunHelp(t *testing.T) {
	assert.NoError(t, run([]string{"--help"}))
}

func TestMarshalSummary(t *testing.T) {
	sel, err := chaincfg.NewSelector(chaincfg.DefaultPrimitives())
	require.NoError(t, err)
	p, err := sel.Params(chaincfg.RegTest)
	require.NoError(t, err)

	out, err := marshalSummary(p.Summarize(), "json")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"name": "regtest"`)

	out, err = marshalSummary(p.Summarize(), "yaml")
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: regtest")
}
