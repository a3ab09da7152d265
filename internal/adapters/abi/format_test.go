package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "<nil>"},
		{name: "address", value: common.HexToAddress("0xa1"), want: common.HexToAddress("0xa1").Hex()},
		{name: "hash", value: common.Hash{0x01}, want: "0x0100000000000000000000000000000000000000000000000000000000000000"},
		{name: "big int", value: big.NewInt(-7), want: "-7"},
		{name: "nil big int", value: (*big.Int)(nil), want: "0"},
		{name: "bytes", value: []byte{0xca, 0xfe}, want: "0xcafe"},
		{name: "fixed bytes", value: [2]byte{0xab, 0xcd}, want: "0xabcd"},
		{name: "string", value: "hi", want: `"hi"`},
		{name: "bool", value: true, want: "true"},
		{name: "uint8", value: uint8(9), want: "9"},
		{name: "list", value: []*big.Int{big.NewInt(1), big.NewInt(2)}, want: "[1, 2]"},
		{name: "array", value: [2]bool{true, false}, want: "[true, false]"},
		{name: "struct", value: struct {
			Owner  common.Address
			Amount *big.Int
		}{common.Address{}, big.NewInt(3)}, want: "{Owner: 0x0000000000000000000000000000000000000000, Amount: 3}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
		})
	}
}

func TestFormatValues(t *testing.T) {
	args := abi.Arguments{{Name: "balance"}, {Name: ""}}
	assert.Equal(t, "balance=5, true", FormatValues(args, []any{big.NewInt(5), true}))
	assert.Equal(t, `"extra"`, FormatValues(nil, []any{"extra"}))
	assert.Equal(t, "", FormatValues(args, nil))
}
