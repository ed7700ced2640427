package obslog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevelRecognizesAllNames(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range cases {
		got, err := GetLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestGetLevelRejectsUnknown(t *testing.T) {
	_, err := GetLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestGetFormatRejectsUnknown(t *testing.T) {
	_, err := GetFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestConfigRegisterFlagsAndBuildHandler(t *testing.T) {
	c := NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(fs)

	require.NoError(t, fs.Parse([]string{"--log-level=debug", "--log-format=json"}))

	var buf bytes.Buffer
	h, err := c.NewHandler(&buf)
	require.NoError(t, err)

	slog.New(h).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
