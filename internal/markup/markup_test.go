package markup

import (
	"errors"
	"strings"
	"testing"

	"colorpick/internal/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML_PrefillsSurfaces(t *testing.T) {
	doc, err := HTML("#6366f1", Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, `<title>Color Picker</title>`)
	assert.Contains(t, doc, `id="hex-input" type="text" value="#6366f1"`)
	assert.Contains(t, doc, `id="r-input" type="number" min="0" max="255" value="99"`)
	assert.Contains(t, doc, `id="g-input" type="number" min="0" max="255" value="102"`)
	assert.Contains(t, doc, `id="b-input" type="number" min="0" max="255" value="241"`)
	assert.Contains(t, doc, `background-color: #6366f1`)
	assert.Contains(t, doc, `linear-gradient(to right, #fff, hsl(`)
}

func TestHTML_EmbedsScriptAndState(t *testing.T) {
	doc, err := HTML("#ff0000", Options{AppName: "Picker Test", Version: "9.9.9"})
	require.NoError(t, err)

	assert.Contains(t, doc, `"name":"Picker Test"`)
	assert.Contains(t, doc, `"version":"9.9.9"`)
	assert.Contains(t, doc, `let hsv = {"h":0,"s":1,"v":1};`)
	assert.Contains(t, doc, `ui/update-model-context`)
	assert.Contains(t, doc, `setPointerCapture`)
	assert.NotContains(t, doc, "ZgotmplZ")
}

func TestHTML_CursorPosition(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Render(&b, color.HSV{H: 120, S: 0.25, V: 0.5}, Options{Title: "t"}))

	assert.Contains(t, b.String(), `left: 25%; top: 50%`)
	assert.Contains(t, b.String(), `value="120" aria-label="Hue"`)
}

func TestHTML_RejectsInvalidColor(t *testing.T) {
	_, err := HTML("red", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, color.ErrInvalidFormat))
}
