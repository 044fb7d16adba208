package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConvert(t *testing.T) {
	original := convertOutputFormat
	defer func() { convertOutputFormat = original }()

	tests := []struct {
		name    string
		format  string
		args    []string
		want    []string
		wantErr string
	}{
		{
			name:   "hex and rgb inputs",
			format: "json",
			args:   []string{"#6366f1", "255,0,0"},
			want:   []string{"#6366f1", "#ff0000"},
		},
		{
			name:   "missing hash",
			format: "json",
			args:   []string{"00ff00"},
			want:   []string{"#00ff00"},
		},
		{
			name:    "invalid color",
			format:  "json",
			args:    []string{"purple"},
			wantErr: `invalid color "purple"`,
		},
		{
			name:    "unknown format",
			format:  "xml",
			args:    []string{"#000000"},
			wantErr: "xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			convertOutputFormat = tt.format
			var buf bytes.Buffer
			convertCmd.SetOut(&buf)

			err := runConvert(convertCmd, tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			var reports []struct {
				Hex string `json:"hex"`
			}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &reports))
			got := make([]string, 0, len(reports))
			for _, r := range reports {
				got = append(got, r.Hex)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
