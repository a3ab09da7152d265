package abi

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/treb-interact/internal/domain"
)

// EncodeArgs converts form values into Go values accepted by abi.Arguments.Pack.
// Blank values encode as the zero value of their type.
func EncodeArgs(args abi.Arguments, params []domain.InputParam) ([]any, error) {
	if len(params) > len(args) {
		return nil, fmt.Errorf("%w: got %d values for %d arguments", domain.ErrInvalidArgument, len(params), len(args))
	}

	values := make([]any, len(args))
	for i, arg := range args {
		var input string
		if i < len(params) {
			input = params[i].Value
		}
		v, err := ParseValue(arg.Type, input)
		if err != nil {
			return nil, &domain.ArgumentError{Index: i, Name: arg.Name, Type: arg.Type.String(), Err: err}
		}
		values[i] = v
	}
	return values, nil
}

// ParseValue parses one textual value for an ABI type.
// Arrays and tuples are given as JSON; tuples accept positional arrays or objects keyed by component name.
func ParseValue(t abi.Type, input string) (any, error) {
	if strings.TrimSpace(input) == "" {
		return zeroValue(t).Interface(), nil
	}

	var raw any = strings.TrimSpace(input)
	switch t.T {
	case abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		dec := json.NewDecoder(strings.NewReader(input))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: expected JSON for %s: %v", domain.ErrInvalidArgument, t.String(), err)
		}
	}

	v, err := convert(t, raw)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func convert(t abi.Type, raw any) (reflect.Value, error) {
	switch t.T {
	case abi.AddressTy:
		s, err := scalarString(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		if !common.IsHexAddress(s) {
			return reflect.Value{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
		}
		return reflect.ValueOf(common.HexToAddress(s)), nil

	case abi.UintTy, abi.IntTy:
		s, err := scalarString(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		n, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidArgument, s)
		}
		return integerValue(t, n)

	case abi.BoolTy:
		if b, ok := raw.(bool); ok {
			return reflect.ValueOf(b), nil
		}
		s, err := scalarString(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %q is not a bool", domain.ErrInvalidArgument, s)
		}
		return reflect.ValueOf(b), nil

	case abi.StringTy:
		s, err := scalarString(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(s), nil

	case abi.BytesTy:
		b, err := hexBytes(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(b), nil

	case abi.FixedBytesTy:
		b, err := hexBytes(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		if len(b) > t.Size {
			return reflect.Value{}, fmt.Errorf("%w: %d bytes do not fit bytes%d", domain.ErrInvalidArgument, len(b), t.Size)
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr, nil

	case abi.SliceTy:
		items, ok := raw.([]any)
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: expected array for %s", domain.ErrInvalidArgument, t.String())
		}
		out := reflect.MakeSlice(t.GetType(), 0, len(items))
		for i, item := range items {
			v, err := convert(*t.Elem, item)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			out = reflect.Append(out, v)
		}
		return out, nil

	case abi.ArrayTy:
		items, ok := raw.([]any)
		if !ok || len(items) != t.Size {
			return reflect.Value{}, fmt.Errorf("%w: expected %d elements for %s", domain.ErrInvalidArgument, t.Size, t.String())
		}
		arr := reflect.New(t.GetType()).Elem()
		for i, item := range items {
			v, err := convert(*t.Elem, item)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			arr.Index(i).Set(v)
		}
		return arr, nil

	case abi.TupleTy:
		return convertTuple(t, raw)
	}

	return reflect.Value{}, fmt.Errorf("%w: unsupported type %s", domain.ErrInvalidArgument, t.String())
}

func convertTuple(t abi.Type, raw any) (reflect.Value, error) {
	out := reflect.New(t.GetType()).Elem()

	component := func(i int) (any, bool) {
		switch r := raw.(type) {
		case []any:
			if i < len(r) {
				return r[i], true
			}
		case map[string]any:
			v, ok := r[t.TupleRawNames[i]]
			return v, ok
		}
		return nil, false
	}

	switch r := raw.(type) {
	case []any:
		if len(r) != len(t.TupleElems) {
			return reflect.Value{}, fmt.Errorf("%w: expected %d components for %s", domain.ErrInvalidArgument, len(t.TupleElems), t.String())
		}
	case map[string]any:
	default:
		return reflect.Value{}, fmt.Errorf("%w: expected array or object for %s", domain.ErrInvalidArgument, t.String())
	}

	for i, elem := range t.TupleElems {
		item, ok := component(i)
		if !ok {
			out.Field(i).Set(zeroValue(*elem))
			continue
		}
		v, err := convert(*elem, item)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("component %s: %w", t.TupleRawNames[i], err)
		}
		out.Field(i).Set(v)
	}
	return out, nil
}

// zeroValue is the packable zero of a type; big integers must be non-nil to pack
func zeroValue(t abi.Type) reflect.Value {
	switch t.T {
	case abi.UintTy, abi.IntTy:
		if t.GetType().Kind() == reflect.Ptr {
			return reflect.ValueOf(new(big.Int))
		}
	case abi.ArrayTy:
		arr := reflect.New(t.GetType()).Elem()
		for i := 0; i < t.Size; i++ {
			arr.Index(i).Set(zeroValue(*t.Elem))
		}
		return arr
	case abi.TupleTy:
		out := reflect.New(t.GetType()).Elem()
		for i, elem := range t.TupleElems {
			out.Field(i).Set(zeroValue(*elem))
		}
		return out
	}
	return reflect.Zero(t.GetType())
}

func integerValue(t abi.Type, n *big.Int) (reflect.Value, error) {
	if t.T == abi.UintTy {
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return reflect.Value{}, fmt.Errorf("%w: %s overflows uint%d", domain.ErrInvalidArgument, n, t.Size)
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		minimum := new(big.Int).Neg(limit)
		if n.Cmp(minimum) < 0 || n.Cmp(limit) >= 0 {
			return reflect.Value{}, fmt.Errorf("%w: %s overflows int%d", domain.ErrInvalidArgument, n, t.Size)
		}
	}

	rt := t.GetType()
	switch rt.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := reflect.New(rt).Elem()
		v.SetUint(n.Uint64())
		return v, nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := reflect.New(rt).Elem()
		v.SetInt(n.Int64())
		return v, nil
	default:
		return reflect.ValueOf(n), nil
	}
}

func scalarString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	}
	return "", fmt.Errorf("%w: unexpected value %v", domain.ErrInvalidArgument, raw)
}

func hexBytes(raw any) ([]byte, error) {
	s, err := scalarString(raw)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not hex: %v", domain.ErrInvalidArgument, s, err)
	}
	return b, nil
}
