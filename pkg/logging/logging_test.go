package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{" INFO ", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitForCLI_WritesSubsystemAndError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Error("Bridge", errors.New("boom"), "send failed for %s", "ui/update-model-context")

	out := buf.String()
	assert.Contains(t, out, "send failed for ui/update-model-context")
	assert.Contains(t, out, "subsystem=Bridge")
	assert.Contains(t, out, "error=boom")
}

func TestInitForCLI_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Info("Picker", "not shown")
	assert.Empty(t, buf.String())
}

func TestInitForTUI_SendsEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("Picker", "filtered")
	Warn("Picker", "hue %d", 120)

	require.Len(t, ch, 1)
	entry := <-ch
	assert.Equal(t, LevelWarn, entry.Level)
	assert.Equal(t, "Picker", entry.Subsystem)
	assert.Equal(t, "hue 120", entry.Message)
	assert.Equal(t, "WARN [Picker] hue 120", entry.String())
}

func TestInitForTUI_DropsWhenFull(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	for i := 0; i < tuiChannelBufferSize+10; i++ {
		Info("Flood", "entry %d", i)
	}
	assert.Len(t, ch, tuiChannelBufferSize)
}
