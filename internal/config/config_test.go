package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjl/countonme/internal/calc"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hujson"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, calc.DefaultFractionDigits, cfg.Digits())
}

func TestLoadFile(t *testing.T) {
	path := DefaultPath(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	data := `{
		// more precision
		"fractionDigits": 3,
		"logLevel": "debug", // trailing comma below
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Digits())
}

func TestParseZeroDigits(t *testing.T) {
	cfg, err := Parse([]byte(`{"fractionDigits": 0}`))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Digits())
}

func TestParseErrors(t *testing.T) {
	for _, data := range []string{
		`{"fractionDigits": 7}`,
		`{"fractionDigits": -1}`,
		`{"logLevel": "loud"}`,
		`{"fractionDigits": "two"}`,
		`{`,
	} {
		_, err := Parse([]byte(data))
		assert.Error(t, err, data)
	}
}

func TestLogger(t *testing.T) {
	cfg := Default()
	var buf bytes.Buffer
	log := cfg.Logger(&buf)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestAccumulatorOptions(t *testing.T) {
	cfg, err := Parse([]byte(`{"fractionDigits": 1}`))
	require.NoError(t, err)
	a := calc.New(cfg.AccumulatorOptions(zerolog.Nop())...)
	for _, k := range []string{"2", "÷", "3", "="} {
		a.Press(k)
	}
	assert.Equal(t, "2 ÷ 3 = 0.7", a.Text())
}
