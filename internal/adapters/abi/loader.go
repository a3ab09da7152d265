package abi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// artifact is the subset of a Foundry build artifact that carries the ABI
type artifact struct {
	ABI json.RawMessage `json:"abi"`
}

// LoadFile reads an ABI from a file holding either a raw ABI array or a Foundry artifact
func LoadFile(path string) (*abi.ABI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ABI file: %w", err)
	}
	parsed, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI %s: %w", path, err)
	}
	return parsed, nil
}

// Parse decodes ABI JSON, unwrapping a Foundry artifact if necessary
func Parse(data []byte) (*abi.ABI, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var a artifact
		if err := json.Unmarshal(trimmed, &a); err != nil {
			return nil, fmt.Errorf("failed to parse artifact: %w", err)
		}
		if len(a.ABI) == 0 {
			return nil, fmt.Errorf("artifact has no abi field")
		}
		trimmed = a.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(trimmed))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// IsReadOnly reports whether a method can be called without a transaction
func IsReadOnly(method abi.Method) bool {
	return method.IsConstant()
}
