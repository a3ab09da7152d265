package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotConnected is returned when a chain client has no live connection
	ErrNotConnected = errors.New("not connected to chain")

	// ErrModuleNotFound is returned when a module is not exposed by the chain client
	ErrModuleNotFound = errors.New("module not found")

	// ErrCallableNotFound is returned when a callable is not exposed by a module
	ErrCallableNotFound = errors.New("callable not found")

	// ErrSenderNotFound is returned when a configured sender can't be resolved
	ErrSenderNotFound = errors.New("sender not found")

	// ErrInvalidArgument is returned when an input value can't be encoded for its declared type
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")
)

// ArgumentError reports which parameter failed to encode
type ArgumentError struct {
	Index int
	Name  string
	Type  string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %d (%s %s): %v", e.Index, e.Name, e.Type, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// UnknownCallableErr is returned when a callable name doesn't match any operation of a module
type UnknownCallableErr struct {
	Module    string
	Callable  string
	Available []string
}

func (e UnknownCallableErr) Error() string {
	available := make([]string, len(e.Available))
	copy(available, e.Available)
	sort.Strings(available)

	if len(available) == 0 {
		return fmt.Sprintf("callable %q not found in module %q (module exposes no callables)", e.Callable, e.Module)
	}
	return fmt.Sprintf("callable %q not found in module %q, available:\n  - %s",
		e.Callable, e.Module, strings.Join(available, "\n  - "))
}

func (e UnknownCallableErr) Unwrap() error {
	return ErrCallableNotFound
}
