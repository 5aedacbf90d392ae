package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/uvw/pkg/types"
	"github.com/arthur-debert/uvw/pkg/ui"
)

var sampleEnvs = []types.Environment{
	{Name: "alpha", Link: "/home/u/.virtualenvs/alpha", Path: "/src/alpha/.venv"},
	{Name: "beta", Link: "/home/u/.virtualenvs/beta", Path: "/src/beta/venv"},
}

func TestRenderEnvironmentsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderEnvironments(&buf, ui.FormatText, sampleEnvs))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "alpha"+strings.Repeat(" ", 20)+"  /src/alpha/.venv", lines[0])
	assert.Equal(t, "beta"+strings.Repeat(" ", 21)+"  /src/beta/venv", lines[1])
}

func TestRenderEnvironmentsAutoOnBuffer(t *testing.T) {
	var auto, text bytes.Buffer
	require.NoError(t, ui.RenderEnvironments(&auto, ui.FormatAuto, sampleEnvs))
	require.NoError(t, ui.RenderEnvironments(&text, ui.FormatText, sampleEnvs))
	assert.Equal(t, text.String(), auto.String())
}

func TestRenderEnvironmentsTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderEnvironments(&buf, ui.FormatTerminal, sampleEnvs))
	assert.Contains(t, buf.String(), "alpha")
	assert.Contains(t, buf.String(), "/src/beta/venv")
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestRenderEnvironmentsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderEnvironments(&buf, ui.FormatJSON, sampleEnvs))

	var got []types.Environment
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleEnvs, got)
}

func TestRenderEnvironmentsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderEnvironments(&buf, ui.FormatYAML, sampleEnvs))
	assert.Contains(t, buf.String(), "- name: alpha\n")

	var got []types.Environment
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleEnvs, got)
}

func TestRenderEnvironmentsEmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderEnvironments(&buf, ui.FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestAutoConfirm(t *testing.T) {
	ok, err := ui.AutoConfirm{Answer: true}.Confirm("replace?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ui.AutoConfirm{}.Confirm("replace?")
	require.NoError(t, err)
	assert.False(t, ok)
}
