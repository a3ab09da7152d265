package abi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	parsed, err := LoadFile(filepath.Join("testdata", "Token.json"))
	require.NoError(t, err)

	assert.Contains(t, parsed.Methods, "transfer")
	assert.Contains(t, parsed.Methods, "balanceOf")
	assert.Contains(t, parsed.Events, "Transfer")
	assert.True(t, IsReadOnly(parsed.Methods["balanceOf"]))
	assert.False(t, IsReadOnly(parsed.Methods["transfer"]))

	_, err = LoadFile(filepath.Join("testdata", "Missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read ABI file")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		methods int
		wantErr string
	}{
		{
			name:    "raw array",
			data:    `[{"type":"function","name":"ping","inputs":[],"outputs":[],"stateMutability":"view"}]`,
			methods: 1,
		},
		{
			name:    "artifact with leading whitespace",
			data:    "\n  {\"abi\": [{\"type\":\"function\",\"name\":\"ping\",\"inputs\":[],\"outputs\":[]}]}",
			methods: 1,
		},
		{
			name:    "artifact without abi",
			data:    `{"bytecode": "0x"}`,
			wantErr: "artifact has no abi field",
		},
		{
			name:    "malformed artifact",
			data:    `{"abi": [`,
			wantErr: "failed to parse artifact",
		},
		{
			name:    "malformed array",
			data:    `[{"type":`,
			wantErr: "unexpected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse([]byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, parsed.Methods, tt.methods)
		})
	}
}
