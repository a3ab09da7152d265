package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

func init() {
	color.NoColor = true
}

func TestKindTitle(t *testing.T) {
	assert.Equal(t, "Extrinsic", kindTitle(domain.InteractionExtrinsic))
	assert.Equal(t, "Query", kindTitle(domain.InteractionQuery))
	assert.Equal(t, "RPC", kindTitle(domain.InteractionRPC))
}

func TestModulesRenderer(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewModulesRenderer(&buf).Render(&usecase.ListModulesResult{}))
		assert.Equal(t, "No modules available\n", buf.String())
	})

	t.Run("rows", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewModulesRenderer(&buf).Render(&usecase.ListModulesResult{Modules: []usecase.ModuleSummary{
			{Name: "balances", Extrinsics: 2, Queries: 1},
			{Name: "kitties", Extrinsics: 3, Queries: 0},
		}})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "MODULE")
		assert.Contains(t, out, "balances")
		assert.Contains(t, out, "kitties")
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("balances")), bytes.Index(buf.Bytes(), []byte("kitties")))
	})
}

func TestCallablesRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewCallablesRenderer(&buf).Render(&usecase.DescribeCallablesResult{
		Module:       "balances",
		Kind:         domain.InteractionExtrinsic,
		OptionalHint: domain.OptionalHint(domain.InteractionExtrinsic),
		Callables: []usecase.CallableInfo{
			{Name: "mint"},
			{Name: "transfer", Fields: []domain.ParamField{
				{Name: "to", Type: "AccountId"},
				{Name: "amount", Type: "Option<u64>", Optional: true},
			}},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "balances Extrinsics")
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "Option<u64>")
	assert.Contains(t, out, "Leaving this field as blank will submit a NONE value")
	assert.Contains(t, out, "1 callable(s) take optional parameters")
}

func TestNetworksRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewNetworksRenderer(&buf).Render(&usecase.ListNetworksResult{
		Current: "local",
		Networks: []usecase.NetworkStatus{
			{Name: "local", RPCURL: "http://127.0.0.1:8545", ChainID: 31337},
			{Name: "broken", RPCURL: "http://bad", Error: errors.New("connection refused")},
			{Name: "sepolia", RPCURL: "https://sepolia.example"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "* ✅ local - Chain ID: 31337")
	assert.Contains(t, out, "❌ broken - Error: connection refused")
	assert.Contains(t, out, "✅ sepolia - https://sepolia.example")
}

func TestConfigRenderer(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewConfigRenderer(&buf).Render(&usecase.ShowConfigResult{}))
		assert.Contains(t, buf.String(), "No interact.toml file found")
	})

	t.Run("resolved", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewConfigRenderer(&buf).Render(&usecase.ShowConfigResult{
			ConfigPath: "/tmp/project/interact.toml",
			Exists:     true,
			Module:     "token",
			Kind:       domain.InteractionQuery,
			Network:    &config.Network{Name: "local", RPCURL: "http://127.0.0.1:8545"},
			Modules:    []string{"nft", "token"},
			Senders:    []string{"alice"},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "Module:   token")
		assert.Contains(t, out, "Kind:     QUERY")
		assert.Contains(t, out, "Sender:   (not set)")
		assert.Contains(t, out, "Network:  local (http://127.0.0.1:8545)")
		assert.Contains(t, out, "Modules: nft, token")
	})
}

func callResult(final string) *usecase.InvokeCallableResult {
	return &usecase.InvokeCallableResult{
		Submission: domain.Submission{
			Kind:     domain.InteractionExtrinsic,
			Module:   "balances",
			Callable: "transfer",
			ParamFields: []domain.ParamField{
				{Name: "to", Type: "AccountId"},
				{Name: "amount", Type: "Option<u64>", Optional: true},
			},
			InputParams: []domain.InputParam{
				{Type: "AccountId", Value: "alice"},
				{Type: "Option<u64>"},
			},
		},
		Account:  domain.Account{Name: "bob", Address: "0x01"},
		Statuses: []string{domain.StatusSending, final},
		Final:    final,
	}
}

func TestCallRenderer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewCallRenderer(&buf, false).Render(callResult("Finalized. Block number: 7")))

		out := buf.String()
		assert.Contains(t, out, "Extrinsic balances.transfer")
		assert.Contains(t, out, "to AccountId = alice")
		assert.Contains(t, out, "amount Option<u64> = (blank)")
		assert.Contains(t, out, "sender: bob")
		assert.Contains(t, out, "✅ Finalized. Block number: 7")
	})

	t.Run("failure", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewCallRenderer(&buf, false).Render(callResult("Transaction Failed: nonce too low")))
		assert.Contains(t, buf.String(), "❌ Nonce too low")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewCallRenderer(&buf, true).Render(callResult("Transaction reverted in block 9")))

		var got callJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "transfer", got.Callable)
		assert.Equal(t, map[string]string{"to": "alice", "amount": ""}, got.Params)
		assert.Equal(t, "bob", got.Sender)
		assert.True(t, got.Failed)
		assert.Len(t, got.Statuses, 2)
	})
}
