package configurator

// IsVisible решает, показывать ли поле при текущих значениях формы и ценовом уровне.
// Функция чистая и никогда не паникует: отсутствующее значение зависимости считается несовпадением.
// Условие без value не совпадает ни с чем, в том числе с null из формы.
func IsVisible(field Field, values Values, tier Tier) bool {
	if field.TierDependent && !field.visibleFor(tier) {
		return false
	}

	if c := field.Conditional; c != nil && c.DependsOn != "" {
		current, ok := values[c.DependsOn]
		if !ok || c.Value == nil {
			return false
		}
		// строгое сравнение: "true" и true не равны
		if !ValuesEqual(current, c.Value) {
			return false
		}
	}

	return true
}

// FilterVisible оставляет видимые поля, сохраняя исходный порядок
func FilterVisible(fields []Field, values Values, tier Tier) []Field {
	visible := make([]Field, 0, len(fields))
	for _, f := range fields {
		if IsVisible(f, values, tier) {
			visible = append(visible, f)
		}
	}
	return visible
}

func (f Field) visibleFor(tier Tier) bool {
	for _, t := range f.VisibleForTiers {
		if t == tier {
			return true
		}
	}
	return false
}

// ValuesEqual - единая функция сравнения значений формы.
// Совпадают только значения одного рода: строки со строками, bool с bool, числа с числами
// (int и float64 сравниваются численно). Составные значения никогда не равны.
func ValuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if x, ok := toFloat(a); ok {
		y, ok := toFloat(b)
		return ok && x == y
	}

	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
