package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/optset/pkg/display"
	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListing() *display.Listing {
	return &display.Listing{
		File: "/tmp/settings.json",
		Settings: []display.Setting{
			{
				Name: "size", Value: "S", Stored: "small", Default: "large", Modified: true,
				Options: []display.Option{
					{Index: 0, Key: "large", Value: "L"},
					{Index: 1, Key: "small", Value: "S", Current: true},
				},
			},
			{Name: "volume", Value: 5, Stored: 5, Default: 5},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	_, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleListing()))
	assert.Equal(t, "size = S (modified)\n    [0] large => L\n  * [1] small => S\nvolume = 5\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.Value{Name: "size", Value: "small", Literal: true}))
	assert.Equal(t, "small\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.OptionList{Name: "size", Literal: true, Options: sampleListing().Settings[0].Options}))
	assert.Equal(t, "  [0] large\n* [1] small\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrUnknownSetting, "no setting named x")))
	assert.Equal(t, "Error: [UNKNOWN_SETTING] no setting named x\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(display.NewDescription(sampleListing())))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/tmp/settings.json", decoded["file"])
	settings, ok := decoded["settings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, settings, 2)

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrInvalidValue, "bad").WithDetail(errors.DetailSetting, "volume")))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "INVALID_VALUE", decoded["code"])
	assert.Equal(t, map[string]interface{}{"setting": "volume"}, decoded["details"])
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleListing()))
	out := buf.String()
	assert.Contains(t, out, "Setting")
	assert.Contains(t, out, "size")
	assert.Contains(t, out, "small")

	buf.Reset()
	require.NoError(t, r.RenderResult(display.NewDescription(sampleListing())))
	assert.Contains(t, buf.String(), "volume")

	buf.Reset()
	require.NoError(t, r.RenderMessage("Settings reset"))
	assert.Contains(t, buf.String(), "Settings reset")
}
