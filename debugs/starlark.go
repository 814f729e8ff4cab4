package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"github.com/vandior/vlex/tokens"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts a Go value for use as a REPL global.
// Tokens become dicts keyed by lower case field names, with the type as its long name.
func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case []byte:
		return starlark.Bytes(v)

	case tokens.Type:
		return starlark.String(v.String())

	case tokens.Location:
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("file"), starlark.String(v.FileName))
		d.SetKey(starlark.String("line"), starlark.MakeInt(v.Line))
		d.SetKey(starlark.String("column"), starlark.MakeInt(v.Column))
		return d

	case tokens.Token:
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("type"), starlark.String(v.Type.String()))
		d.SetKey(starlark.String("lexeme"), starlark.String(v.Lexeme))
		d.SetKey(starlark.String("location"), toStarlarkValue(v.Location))
		return d

	case *tokens.Buffer:
		if v == nil {
			return starlark.None
		}
		elems := make([]starlark.Value, 0, v.Len())
		for _, token := range v.All() {
			elems = append(elems, toStarlarkValue(token))
		}
		return starlark.NewList(elems)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return starlark.MakeInt(int(value.Int()))
	case reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return starlark.MakeUint(uint(value.Uint()))
	case reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
