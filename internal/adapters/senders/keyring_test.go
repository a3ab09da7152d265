package senders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
)

// First default anvil account
const (
	anvilKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	anvilAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func runtimeWith(senders map[string]config.SenderConfig) *config.RuntimeConfig {
	project := config.NewProjectConfig()
	project.Senders = senders
	return &config.RuntimeConfig{Project: project}
}

func TestNewKeyring(t *testing.T) {
	tests := []struct {
		name    string
		senders map[string]config.SenderConfig
		wantErr string
	}{
		{
			name: "private key",
			senders: map[string]config.SenderConfig{
				"deployer": {Type: config.SenderTypePrivateKey, PrivateKey: anvilKey},
			},
		},
		{
			name: "private key without prefix and matching address",
			senders: map[string]config.SenderConfig{
				"deployer": {Type: config.SenderTypePrivateKey, PrivateKey: anvilKey[2:], Address: "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"},
			},
		},
		{
			name: "address mismatch",
			senders: map[string]config.SenderConfig{
				"deployer": {Type: config.SenderTypePrivateKey, PrivateKey: anvilKey, Address: "0x00000000000000000000000000000000000000a1"},
			},
			wantErr: "does not match private key",
		},
		{
			name: "bad key",
			senders: map[string]config.SenderConfig{
				"deployer": {Type: config.SenderTypePrivateKey, PrivateKey: "0x1234"},
			},
			wantErr: "failed to load sender deployer: invalid private key",
		},
		{
			name: "watch address",
			senders: map[string]config.SenderConfig{
				"treasury": {Type: config.SenderTypeAddress, Address: "0x00000000000000000000000000000000000000a1"},
			},
		},
		{
			name: "bad address",
			senders: map[string]config.SenderConfig{
				"treasury": {Type: config.SenderTypeAddress, Address: "treasury.eth"},
			},
			wantErr: "invalid address",
		},
		{
			name: "unsupported type",
			senders: map[string]config.SenderConfig{
				"hw": {Type: "ledger"},
			},
			wantErr: "unsupported sender type: ledger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeyring(runtimeWith(tt.senders))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestKeyring(t *testing.T) {
	keyring, err := NewKeyring(runtimeWith(map[string]config.SenderConfig{
		"deployer": {Type: config.SenderTypePrivateKey, PrivateKey: anvilKey},
		"treasury": {Type: config.SenderTypeAddress, Address: "0x00000000000000000000000000000000000000a1"},
	}))
	require.NoError(t, err)

	t.Run("accounts are sorted", func(t *testing.T) {
		accounts := keyring.Accounts()
		require.Len(t, accounts, 2)
		assert.Equal(t, domain.Account{Name: "deployer", Address: anvilAddress}, accounts[0])
		assert.Equal(t, "treasury", accounts[1].Name)
	})

	t.Run("resolve", func(t *testing.T) {
		account, err := keyring.Resolve("deployer")
		require.NoError(t, err)
		assert.Equal(t, anvilAddress, account.Address)

		_, err = keyring.Resolve("nobody")
		assert.ErrorIs(t, err, domain.ErrSenderNotFound)
	})

	t.Run("keys", func(t *testing.T) {
		key, err := keyring.Key("deployer")
		require.NoError(t, err)
		assert.NotNil(t, key)

		_, err = keyring.Key("treasury")
		assert.EqualError(t, err, "sender treasury has no signing key")

		_, err = keyring.Key("nobody")
		assert.ErrorIs(t, err, domain.ErrSenderNotFound)
	})

	t.Run("no project", func(t *testing.T) {
		empty, err := NewKeyring(&config.RuntimeConfig{})
		require.NoError(t, err)
		assert.Empty(t, empty.Accounts())
	})
}
