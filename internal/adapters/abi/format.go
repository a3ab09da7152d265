package abi

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FormatValues renders unpacked values as name=value pairs in argument order
func FormatValues(args abi.Arguments, values []any) string {
	parts := make([]string, 0, len(values))
	for i, v := range values {
		formatted := FormatValue(v)
		if i < len(args) && args[i].Name != "" {
			formatted = args[i].Name + "=" + formatted
		}
		parts = append(parts, formatted)
	}
	return strings.Join(parts, ", ")
}

// FormatValue renders one unpacked value the way users type it into a form
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case common.Address:
		return val.Hex()
	case common.Hash:
		return val.Hex()
	case *big.Int:
		if val == nil {
			return "0"
		}
		return val.String()
	case []byte:
		return hexutil.Encode(val)
	case string:
		return fmt.Sprintf("%q", val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return hexutil.Encode(b)
		}
		return formatList(rv)
	case reflect.Slice:
		return formatList(rv)
	case reflect.Struct:
		fields := make([]string, 0, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			fields = append(fields, rv.Type().Field(i).Name+": "+FormatValue(rv.Field(i).Interface()))
		}
		return "{" + strings.Join(fields, ", ") + "}"
	}
	return fmt.Sprintf("%v", v)
}

func formatList(rv reflect.Value) string {
	items := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		items[i] = FormatValue(rv.Index(i).Interface())
	}
	return "[" + strings.Join(items, ", ") + "]"
}
