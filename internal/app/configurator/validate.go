package configurator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FieldError - ошибка проверки одного поля
type FieldError struct {
	FieldID string `json:"field_id"`
	Message string `json:"message"`
}

// ValidateVisible проверяет только видимые поля: скрытое поле никогда не блокирует отправку формы
func ValidateVisible(fields []Field, values Values, tier Tier) []FieldError {
	errs := make([]FieldError, 0)
	for _, f := range FilterVisible(fields, values, tier) {
		if msg := validateField(f, values[f.FieldID]); msg != "" {
			errs = append(errs, FieldError{FieldID: f.FieldID, Message: msg})
		}
	}
	return errs
}

func label(f Field) string {
	if f.Label != "" {
		return f.Label
	}
	return f.FieldID
}

func isEmpty(f Field, v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case bool:
		return f.Type == TypeCheckbox && !x
	}
	return false
}

func validateField(f Field, v any) string {
	rules := f.Validation
	if rules == nil {
		rules = &Validation{}
	}

	if isEmpty(f, v) {
		if rules.Mandatory {
			return fmt.Sprintf("%s is required", label(f))
		}
		return ""
	}

	switch f.Type {
	case TypeNumber:
		n, ok := toFloat(v)
		if !ok {
			return fmt.Sprintf("%s must be a number", label(f))
		}
		if rules.Min != nil && n < *rules.Min {
			return fmt.Sprintf("Minimum value is %s", formatNumber(*rules.Min))
		}
		if rules.Max != nil && n > *rules.Max {
			return fmt.Sprintf("Maximum value is %s", formatNumber(*rules.Max))
		}
	case TypeDropdown, TypeRadio:
		s, _ := v.(string)
		if len(f.Options) > 0 && !contains(f.Options, s) {
			return fmt.Sprintf("Invalid %s", label(f))
		}
	}

	if rules.Regex != "" {
		s, ok := v.(string)
		if !ok {
			return fmt.Sprintf("Invalid %s", label(f))
		}
		re := rules.Pattern()
		if re == nil {
			// поле собрано не загрузчиком справочника
			var err error
			if re, err = regexp.Compile(rules.Regex); err != nil {
				return fmt.Sprintf("Invalid %s", label(f))
			}
		}
		if !re.MatchString(s) {
			return fmt.Sprintf("Invalid %s", label(f))
		}
	}
	return ""
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
