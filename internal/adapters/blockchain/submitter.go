package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	abiadapter "github.com/trebuchet-org/treb-interact/internal/adapters/abi"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// KeyProvider returns signing keys for configured senders
type KeyProvider interface {
	Key(name string) (*ecdsa.PrivateKey, error)
}

// SubmitterAdapter signs and sends calls built from form submissions
type SubmitterAdapter struct {
	client       *EVMClient
	keys         KeyProvider
	log          *slog.Logger
	pollInterval time.Duration
	timeout      time.Duration
}

// NewSubmitterAdapter creates a new EVM submitter
func NewSubmitterAdapter(client *EVMClient, keys KeyProvider, log *slog.Logger) *SubmitterAdapter {
	return &SubmitterAdapter{
		client:       client,
		keys:         keys,
		log:          log,
		pollInterval: time.Second,
		timeout:      5 * time.Minute,
	}
}

// WithPolling overrides how often and how long receipts are polled for
func (s *SubmitterAdapter) WithPolling(interval, timeout time.Duration) *SubmitterAdapter {
	s.pollInterval = interval
	s.timeout = timeout
	return s
}

// Submit dispatches the submission on a new goroutine
func (s *SubmitterAdapter) Submit(ctx context.Context, submission domain.Submission, account domain.Account, status usecase.StatusFunc) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		var err error
		if submission.Kind.ReadOnly() {
			err = s.query(ctx, submission, account, status)
		} else {
			err = s.send(ctx, submission, account, status)
		}
		if err != nil {
			s.log.Debug("submission failed", "module", submission.Module, "callable", submission.Callable, "error", err)
			status(fmt.Sprintf("Transaction Failed: %v", err))
		}
	}()
	return done
}

func (s *SubmitterAdapter) calldata(submission domain.Submission) (*Module, []byte, *abi.Method, error) {
	method, module, err := s.client.Method(submission.Module, submission.Callable)
	if err != nil {
		return nil, nil, nil, err
	}

	values, err := abiadapter.EncodeArgs(method.Inputs, submission.InputParams)
	if err != nil {
		return nil, nil, nil, err
	}

	packed, err := method.Inputs.Pack(values...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode %s: %w", method.Sig, err)
	}

	data := append(append([]byte{}, method.ID...), packed...)
	return module, data, method, nil
}

func (s *SubmitterAdapter) query(ctx context.Context, submission domain.Submission, account domain.Account, status usecase.StatusFunc) error {
	backend, _, err := s.client.Backend()
	if err != nil {
		return err
	}
	module, data, method, err := s.calldata(submission)
	if err != nil {
		return err
	}

	status(domain.StatusQuerying)

	msg := ethereum.CallMsg{To: &module.Address, Data: data}
	if common.IsHexAddress(account.Address) {
		msg.From = common.HexToAddress(account.Address)
	}

	out, err := backend.CallContract(ctx, msg, nil)
	if err != nil {
		return fmt.Errorf("call %s: %w", method.Sig, err)
	}

	results, err := method.Outputs.Unpack(out)
	if err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method.Sig, err)
	}

	status("Result: " + abiadapter.FormatValues(method.Outputs, results))
	return nil
}

func (s *SubmitterAdapter) send(ctx context.Context, submission domain.Submission, account domain.Account, status usecase.StatusFunc) error {
	backend, chainID, err := s.client.Backend()
	if err != nil {
		return err
	}
	key, err := s.keys.Key(account.Name)
	if err != nil {
		return err
	}
	module, data, method, err := s.calldata(submission)
	if err != nil {
		return err
	}

	status(domain.StatusSending)

	from := crypto.PubkeyToAddress(key.PublicKey)
	nonce, err := backend.PendingNonceAt(ctx, from)
	if err != nil {
		return fmt.Errorf("failed to get nonce: %w", err)
	}

	tipCap, err := backend.SuggestGasTipCap(ctx)
	if err != nil {
		return fmt.Errorf("failed to suggest gas tip: %w", err)
	}
	head, err := backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to get latest header: %w", err)
	}
	feeCap := new(big.Int).Set(tipCap)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	gas, err := backend.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        &module.Address,
		GasFeeCap: feeCap,
		GasTipCap: tipCap,
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("failed to estimate gas for %s: %w", method.Sig, err)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &module.Address,
		Data:      data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := backend.SendTransaction(ctx, signed); err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}
	status(fmt.Sprintf("Current transaction status: Submitted %s", signed.Hash().Hex()))

	receipt, err := s.waitMined(ctx, backend, signed.Hash())
	if err != nil {
		return err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		status(fmt.Sprintf("Transaction reverted in block %s", receipt.BlockNumber))
		return nil
	}
	for _, event := range abiadapter.DecodeLogs(module.ABI, receipt.Logs) {
		status("Event " + event.String())
	}
	status(fmt.Sprintf("Finalized. Block number: %s", receipt.BlockNumber))
	return nil
}

func (s *SubmitterAdapter) waitMined(ctx context.Context, backend Backend, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := backend.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// Ensure the adapter implements the interface
var _ usecase.Submitter = (*SubmitterAdapter)(nil)
