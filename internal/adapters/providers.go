package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/trebuchet-org/treb-interact/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-interact/internal/adapters/httpapi"
	"github.com/trebuchet-org/treb-interact/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-interact/internal/adapters/metadata"
	"github.com/trebuchet-org/treb-interact/internal/adapters/senders"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// ProvideChainClient picks the RPC-backed client when a network is configured,
// and the static metadata client otherwise
func ProvideChainClient(cfg *config.RuntimeConfig, log *slog.Logger) (usecase.ChainClient, error) {
	if cfg.UsesStaticMetadata() {
		return metadata.NewStaticClient(cfg, log), nil
	}
	return blockchain.NewEVMClient(cfg, log)
}

// ProvideSubmitter pairs the submitter with the chain client in use
func ProvideSubmitter(client usecase.ChainClient, keys blockchain.KeyProvider, log *slog.Logger) usecase.Submitter {
	if evm, ok := client.(*blockchain.EVMClient); ok {
		return blockchain.NewSubmitterAdapter(evm, keys, log)
	}
	return metadata.NewDryRunSubmitter(log)
}

// ChainSet provides the chain client and its submitter
var ChainSet = wire.NewSet(
	ProvideChainClient,
	ProvideSubmitter,
)

// SendersSet provides the sender keyring
var SendersSet = wire.NewSet(
	senders.NewKeyring,
	wire.Bind(new(usecase.AccountResolver), new(*senders.Keyring)),
	wire.Bind(new(blockchain.KeyProvider), new(*senders.Keyring)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.CallableSelector), new(*interactive.SelectorAdapter)),

	interactive.NewGuidedPrompter,
	wire.Bind(new(usecase.ParamPrompter), new(*interactive.GuidedPrompter)),

	interactive.NewFormRunner,
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewProberAdapter,
	wire.Bind(new(usecase.NetworkProber), new(*blockchain.ProberAdapter)),
)

// HTTPSet provides the browser form server
var HTTPSet = wire.NewSet(
	httpapi.NewServer,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ChainSet,
	SendersSet,
	InteractiveSet,
	BlockchainSet,
	HTTPSet,
)
