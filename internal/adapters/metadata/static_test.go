package metadata

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func connectedKitties(t *testing.T) *StaticClient {
	t.Helper()
	project := config.NewProjectConfig()
	project.Metadata.File = "testdata/kitties.yaml"

	client := NewStaticClient(&config.RuntimeConfig{ProjectRoot: ".", Project: project}, testLogger())
	require.NoError(t, client.Connect(context.Background()))
	return client
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
		modules int
	}{
		{
			name:    "valid",
			doc:     "modules:\n  m:\n    calls:\n      - name: a\n      - name: b\n",
			modules: 1,
		},
		{
			name:    "empty document",
			doc:     "",
			modules: 0,
		},
		{
			name:    "duplicate call",
			doc:     "modules:\n  m:\n    calls:\n      - name: a\n      - name: a\n",
			wantErr: "module m: duplicate callable a",
		},
		{
			name:    "duplicate query",
			doc:     "modules:\n  m:\n    queries:\n      - name: q\n      - name: q\n",
			wantErr: "module m: duplicate callable q",
		},
		{
			name:    "same name in calls and queries",
			doc:     "modules:\n  m:\n    calls:\n      - name: a\n    queries:\n      - name: a\n",
			modules: 1,
		},
		{
			name:    "unnamed callable",
			doc:     "modules:\n  m:\n    calls:\n      - args: []\n",
			wantErr: "module m: callable without a name",
		},
		{
			name:    "malformed",
			doc:     "modules: [",
			wantErr: "failed to parse metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.doc))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, f.Modules, tt.modules)
		})
	}
}

func TestStaticClient(t *testing.T) {
	t.Run("reads before connect are empty", func(t *testing.T) {
		project := config.NewProjectConfig()
		project.Metadata.File = "testdata/kitties.yaml"
		client := NewStaticClient(&config.RuntimeConfig{ProjectRoot: ".", Project: project}, testLogger())

		assert.False(t, client.Connected())
		assert.Empty(t, client.Modules())
		assert.Empty(t, client.Callables(domain.InteractionExtrinsic, "substratekitties"))
		assert.Nil(t, client.CallableArgs(domain.InteractionExtrinsic, "substratekitties", "transfer"))
	})

	t.Run("modules are sorted", func(t *testing.T) {
		client := connectedKitties(t)
		assert.True(t, client.Connected())
		assert.Equal(t, []string{"balances", "substratekitties"}, client.Modules())
	})

	t.Run("callables by kind keep declaration order", func(t *testing.T) {
		client := connectedKitties(t)
		assert.Equal(t, []string{"transfer", "mint", "breed"}, client.Callables(domain.InteractionExtrinsic, "substratekitties"))
		assert.Equal(t, []string{"kittyOwner"}, client.Callables(domain.InteractionQuery, "substratekitties"))
		assert.Equal(t, []string{"kittyOwner"}, client.Callables(domain.InteractionRPC, "substratekitties"))
		assert.Empty(t, client.Callables(domain.InteractionQuery, "balances"))
		assert.Empty(t, client.Callables(domain.InteractionExtrinsic, "staking"))
	})

	t.Run("callable args", func(t *testing.T) {
		client := connectedKitties(t)
		assert.Equal(t, []domain.ArgMetadata{
			{Name: "to", Type: "AccountId"},
			{Name: "amount", Type: "Option<u64>"},
		}, client.CallableArgs(domain.InteractionExtrinsic, "substratekitties", "transfer"))
		assert.Empty(t, client.CallableArgs(domain.InteractionExtrinsic, "substratekitties", "mint"))
		assert.Nil(t, client.CallableArgs(domain.InteractionExtrinsic, "substratekitties", "burn"))
		assert.Nil(t, client.CallableArgs(domain.InteractionQuery, "substratekitties", "transfer"))
	})

	t.Run("no metadata file configured", func(t *testing.T) {
		client := NewStaticClient(&config.RuntimeConfig{}, testLogger())
		err := client.Connect(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotConnected)
	})

	t.Run("missing file", func(t *testing.T) {
		project := config.NewProjectConfig()
		project.Metadata.File = "testdata/missing.yaml"
		client := NewStaticClient(&config.RuntimeConfig{ProjectRoot: ".", Project: project}, testLogger())

		err := client.Connect(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read metadata file")
		assert.False(t, client.Connected())
	})

	t.Run("preloaded file", func(t *testing.T) {
		client := NewStaticClientFromFile(&File{Modules: map[string]ModuleSpec{"m": {}}}, testLogger())
		assert.True(t, client.Connected())
		require.NoError(t, client.Connect(context.Background()))
		assert.Equal(t, []string{"m"}, client.Modules())
	})
}
