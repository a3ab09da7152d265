package abi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
)

// DecodedEvent is a receipt log matched against a module ABI
type DecodedEvent struct {
	Name   string
	Fields map[string]any
	Order  []string
}

// String renders the event as Name(field=value, ...)
func (e DecodedEvent) String() string {
	parts := make([]string, 0, len(e.Order))
	for _, name := range e.Order {
		parts = append(parts, name+"="+FormatValue(e.Fields[name]))
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(parts, ", "))
}

// DecodeLogs decodes the logs emitted by a module. Logs with unknown signatures are skipped.
func DecodeLogs(contract *abi.ABI, logs []*types.Log) []DecodedEvent {
	var events []DecodedEvent
	for _, log := range logs {
		event, err := DecodeLog(contract, log)
		if err != nil {
			continue
		}
		events = append(events, *event)
	}
	return events
}

// DecodeLog decodes a single log entry
func DecodeLog(contract *abi.ABI, log *types.Log) (*DecodedEvent, error) {
	if log == nil || len(log.Topics) == 0 {
		return nil, fmt.Errorf("log has no topics")
	}

	event, err := contract.EventByID(log.Topics[0])
	if err != nil {
		return nil, fmt.Errorf("unknown event signature %s", log.Topics[0].Hex())
	}

	fields := make(map[string]any)
	if len(log.Data) > 0 {
		if err := event.Inputs.NonIndexed().UnpackIntoMap(fields, log.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack %s data: %w", event.Name, err)
		}
	}

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(indexed) > 0 && len(log.Topics) > 1 {
		if err := abi.ParseTopicsIntoMap(fields, indexed, log.Topics[1:]); err != nil {
			return nil, fmt.Errorf("failed to parse %s topics: %w", event.Name, err)
		}
	}

	order := make([]string, 0, len(event.Inputs))
	for _, input := range event.Inputs {
		if _, ok := fields[input.Name]; ok {
			order = append(order, input.Name)
		}
	}
	if len(order) < len(fields) {
		order = order[:0]
		for name := range fields {
			order = append(order, name)
		}
		sort.Strings(order)
	}

	return &DecodedEvent{Name: event.Name, Fields: fields, Order: order}, nil
}
