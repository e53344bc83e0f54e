package configurator

import (
	"strconv"
	"strings"
)

// NormalizeValues приводит значения формы к объявленным типам полей.
// Исходная карта не изменяется; ключи, для которых нет поля, копируются как есть.
func NormalizeValues(fields []Field, values Values) Values {
	out := make(Values, len(values))
	for k, v := range values {
		out[k] = v
	}

	for _, f := range fields {
		v, ok := out[f.FieldID]
		if !ok || v == nil {
			continue
		}
		out[f.FieldID] = normalize(f.Type, v)
	}
	return out
}

func normalize(t FieldType, v any) any {
	switch t {
	case TypeCheckbox:
		if s, ok := v.(string); ok {
			s = strings.TrimSpace(strings.ToLower(s))
			if s == "on" {
				return true
			}
			if b, err := strconv.ParseBool(s); err == nil {
				return b
			}
		}
	case TypeNumber:
		if s, ok := v.(string); ok {
			if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				return n
			}
			return v
		}
		if n, ok := toFloat(v); ok {
			return n
		}
	case TypeText, TypeDropdown, TypeRadio, TypeColor:
		switch x := v.(type) {
		case bool:
			return strconv.FormatBool(x)
		case string:
			return x
		}
		if n, ok := toFloat(v); ok {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	}
	return v
}
