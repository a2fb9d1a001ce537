package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, Duration(5*time.Second), c.Eval.Timeout)
	assert.Equal(t, 1000, c.Eval.MaxSamples)
	assert.Equal(t, 1.0, c.Eval.Precision)
	assert.Equal(t, 10.0, c.Render.Extent)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "console", c.Log.Encoding)
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"lineal.yaml", FormatYAML, false},
		{"conf/LINEAL.YML", FormatYAML, false},
		{"lineal.ini", FormatINI, false},
		{"lineal.gcfg", FormatINI, false},
		{"/etc/lineal.conf", FormatINI, false},
		{"lineal.toml", "", true},
		{"lineal", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYAML(t *testing.T) {
	c, err := Parse(FormatYAML, []byte(`
eval:
  timeout: 250ms
  max_samples: 50
render:
  extent: 2.5
log:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, Duration(250*time.Millisecond), c.Eval.Timeout)
	assert.Equal(t, 50, c.Eval.MaxSamples)
	assert.Equal(t, 1.0, c.Eval.Precision, "unset keys keep their defaults")
	assert.Equal(t, 2.5, c.Render.Extent)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "console", c.Log.Encoding)
}

func TestParseINI(t *testing.T) {
	c, err := Parse(FormatINI, []byte(`
; lineal settings
[eval]
timeout = 2s
max-samples = 20
precision = 0.25

[log]
encoding = json
`))
	require.NoError(t, err)
	assert.Equal(t, Duration(2*time.Second), c.Eval.Timeout)
	assert.Equal(t, 20, c.Eval.MaxSamples)
	assert.Equal(t, 0.25, c.Eval.Precision)
	assert.Equal(t, 10.0, c.Render.Extent)
	assert.Equal(t, "json", c.Log.Encoding)
}

func TestParseEmptyYAML(t *testing.T) {
	c, err := Parse(FormatYAML, nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"unknown yaml key", FormatYAML, "eval:\n  speed: 3\n"},
		{"bad yaml duration", FormatYAML, "eval:\n  timeout: soon\n"},
		{"unknown ini section", FormatINI, "[render]\nextent = 1\n[colors]\nbg = red\n"},
		{"bad ini duration", FormatINI, "[eval]\ntimeout = 5 parsecs\n"},
		{"unknown format", Format("toml"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.format, []byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero timeout", func(c *Config) { c.Eval.Timeout = 0 }},
		{"negative max samples", func(c *Config) { c.Eval.MaxSamples = -1 }},
		{"zero precision", func(c *Config) { c.Eval.Precision = 0 }},
		{"negative extent", func(c *Config) { c.Render.Extent = -3 }},
		{"unknown level", func(c *Config) { c.Log.Level = "chatty" }},
		{"unknown encoding", func(c *Config) { c.Log.Encoding = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "lineal.yml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  extent: 4\n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, c.Render.Extent)

	bad := filepath.Join(dir, "lineal.ini")
	require.NoError(t, os.WriteFile(bad, []byte("[eval]\nprecision = -1\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDurationText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte(" 1m30s ")))
	assert.Equal(t, Duration(90*time.Second), d)
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))
	assert.Error(t, d.UnmarshalText([]byte("ninety")))
}
