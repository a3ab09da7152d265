package senders

import (
	"crypto/ecdsa"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

type sender struct {
	account domain.Account
	key     *ecdsa.PrivateKey
}

// Keyring resolves configured senders to accounts and signing keys
type Keyring struct {
	senders map[string]sender
}

// NewKeyring parses the senders of the runtime configuration
func NewKeyring(cfg *config.RuntimeConfig) (*Keyring, error) {
	k := &Keyring{senders: make(map[string]sender)}
	if cfg.Project == nil {
		return k, nil
	}

	for name, sc := range cfg.Project.Senders {
		s, err := parseSender(name, sc)
		if err != nil {
			return nil, fmt.Errorf("failed to load sender %s: %w", name, err)
		}
		k.senders[name] = s
	}
	return k, nil
}

func parseSender(name string, sc config.SenderConfig) (sender, error) {
	switch sc.Type {
	case config.SenderTypePrivateKey:
		key, err := crypto.HexToECDSA(strings.TrimPrefix(sc.PrivateKey, "0x"))
		if err != nil {
			return sender{}, fmt.Errorf("invalid private key: %w", err)
		}
		address := crypto.PubkeyToAddress(key.PublicKey)
		if sc.Address != "" && !strings.EqualFold(common.HexToAddress(sc.Address).Hex(), address.Hex()) {
			return sender{}, fmt.Errorf("address %s does not match private key (%s)", sc.Address, address.Hex())
		}
		return sender{account: domain.Account{Name: name, Address: address.Hex()}, key: key}, nil

	case config.SenderTypeAddress:
		if !common.IsHexAddress(sc.Address) {
			return sender{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, sc.Address)
		}
		return sender{account: domain.Account{Name: name, Address: common.HexToAddress(sc.Address).Hex()}}, nil

	default:
		return sender{}, fmt.Errorf("unsupported sender type: %s", sc.Type)
	}
}

// Accounts lists configured accounts sorted by name
func (k *Keyring) Accounts() []domain.Account {
	accounts := make([]domain.Account, 0, len(k.senders))
	for _, s := range k.senders {
		accounts = append(accounts, s.account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
	return accounts
}

// Resolve returns the account registered under name
func (k *Keyring) Resolve(name string) (domain.Account, error) {
	s, ok := k.senders[name]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: %s", domain.ErrSenderNotFound, name)
	}
	return s.account, nil
}

// Key returns the signing key of a sender
func (k *Keyring) Key(name string) (*ecdsa.PrivateKey, error) {
	s, ok := k.senders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSenderNotFound, name)
	}
	if s.key == nil {
		return nil, fmt.Errorf("sender %s has no signing key", name)
	}
	return s.key, nil
}

// Ensure the adapter implements the interface
var _ usecase.AccountResolver = (*Keyring)(nil)
