package form

import (
	"encoding"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Unmarshal fills target from url.Values using `form` struct tags.
// Nested structs are addressed with dotted keys, e.g. "contact.title".
func Unmarshal(input url.Values, target any) error {
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return &InvalidUnmarshalError{Type: reflect.TypeOf(target)}
	}
	return unmarshalStruct(input, val.Elem())
}

func unmarshalStruct(input url.Values, v reflect.Value) error {
	ttype := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := ttype.Field(i)
		fieldName := field.Tag.Get("form")
		if fieldName == "" || fieldName == "-" {
			continue
		}
		fieldVal := v.Field(i)

		if u, ok := textUnmarshaler(fieldVal); ok {
			value, exists := input[fieldName]
			if !exists || len(value) == 0 || value[0] == "" {
				continue
			}
			if err := u.UnmarshalText([]byte(value[0])); err != nil {
				return err
			}
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			sub := subValues(input, fieldName+".")
			if len(sub) > 0 {
				if err := unmarshalStruct(sub, fieldVal); err != nil {
					return err
				}
			}
			continue
		}

		value, exists := input[fieldName]
		if !exists || len(value) == 0 {
			continue
		}
		if err := setField(fieldVal, field.Type, value); err != nil {
			return err
		}
	}
	return nil
}

func setField(fieldVal reflect.Value, ftype reflect.Type, value []string) error {
	// NOTE: Take only the first value for scalar fields.
	raw := value[0]
	switch ftype.Kind() {
	case reflect.String:
		fieldVal.SetString(raw)
	case reflect.Bool:
		fieldVal.SetBool(strings.ToLower(raw) == "true")
	case reflect.Int, reflect.Int64:
		if raw == "" {
			return nil
		}
		intValue, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		fieldVal.SetInt(int64(intValue))
	case reflect.Float64:
		if raw == "" {
			return nil
		}
		floatValue, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		fieldVal.SetFloat(floatValue)
	case reflect.Slice:
		if ftype.Elem().Kind() != reflect.String {
			return nil
		}
		slice := reflect.MakeSlice(ftype, len(value), len(value))
		for i, vv := range value {
			slice.Index(i).SetString(vv)
		}
		fieldVal.Set(slice)
	}
	return nil
}

func textUnmarshaler(fieldVal reflect.Value) (encoding.TextUnmarshaler, bool) {
	if !fieldVal.CanAddr() {
		return nil, false
	}
	u, ok := fieldVal.Addr().Interface().(encoding.TextUnmarshaler)
	return u, ok
}

func subValues(input url.Values, prefix string) url.Values {
	sub := make(url.Values)
	for k, v := range input {
		if strings.HasPrefix(k, prefix) {
			sub[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return sub
}

type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "form: Unmarshal(nil)"
	}

	if e.Type.Kind() != reflect.Pointer {
		return "form: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "form: Unmarshal(nil " + e.Type.String() + ")"
}
