package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shoeFields() []Field {
	return []Field{
		{FieldID: "shoe_type", Type: TypeDropdown, Label: "Shoe Type", Options: []string{"Oxford", "Loafer"}},
		{FieldID: "stitching_type", Type: TypeDropdown, Label: "Stitching Type", TierDependent: true, VisibleForTiers: []Tier{TierPremium}},
		{FieldID: "weave_type", Type: TypeDropdown, Label: "Weave Type", Conditional: &Conditional{DependsOn: "industry", Value: "Carpets"}},
		{FieldID: "monogram", Type: TypeText, Label: "Monogram", Conditional: &Conditional{DependsOn: "personalised", Value: true}},
		{FieldID: "personalised", Type: TypeCheckbox, Label: "Personalised"},
	}
}

func TestIsVisible_TierDependentHiddenForOtherTier(t *testing.T) {
	field := Field{FieldID: "stitching_type", TierDependent: true, VisibleForTiers: []Tier{TierPremium}}

	assert.False(t, IsVisible(field, Values{}, TierStandard))
	assert.True(t, IsVisible(field, Values{}, TierPremium))
}

func TestIsVisible_TierRuleIgnoresFormValues(t *testing.T) {
	field := Field{
		FieldID:         "lining",
		TierDependent:   true,
		VisibleForTiers: []Tier{TierPremium},
		Conditional:     &Conditional{DependsOn: "industry", Value: "Leather"},
	}

	for _, values := range []Values{nil, {}, {"industry": "Leather"}, {"industry": "Carpets", "x": 1}} {
		assert.False(t, IsVisible(field, values, TierStandard))
	}
}

func TestIsVisible_TierDependentWithoutTiersIsHidden(t *testing.T) {
	field := Field{FieldID: "embossing", TierDependent: true}

	assert.False(t, IsVisible(field, Values{}, TierPremium))
	assert.False(t, IsVisible(field, Values{}, TierStandard))
}

func TestIsVisible_Conditional(t *testing.T) {
	field := Field{FieldID: "weave_type", Conditional: &Conditional{DependsOn: "industry", Value: "Carpets"}}

	assert.False(t, IsVisible(field, Values{"industry": "Leather"}, TierStandard))
	assert.True(t, IsVisible(field, Values{"industry": "Carpets"}, TierStandard))
}

func TestIsVisible_MissingDependencyIsHidden(t *testing.T) {
	field := Field{FieldID: "weave_type", Conditional: &Conditional{DependsOn: "does_not_exist", Value: nil}}

	assert.False(t, IsVisible(field, nil, TierPremium))
	assert.False(t, IsVisible(field, Values{"industry": "Carpets"}, TierPremium))
}

func TestIsVisible_ConditionWithoutValueNeverMatches(t *testing.T) {
	field := Field{FieldID: "engraving", Conditional: &Conditional{DependsOn: "finish"}}

	// null из формы не совпадает с отсутствующим value условия
	assert.False(t, IsVisible(field, Values{"finish": nil}, TierStandard))
	assert.False(t, IsVisible(field, Values{"finish": ""}, TierStandard))
}

func TestIsVisible_StringBoolMismatchIsHidden(t *testing.T) {
	field := Field{FieldID: "monogram", Conditional: &Conditional{DependsOn: "personalised", Value: true}}

	assert.False(t, IsVisible(field, Values{"personalised": "true"}, TierStandard))
	assert.True(t, IsVisible(field, Values{"personalised": true}, TierStandard))
}

func TestIsVisible_EmptyDependsOnIgnored(t *testing.T) {
	field := Field{FieldID: "notes", Conditional: &Conditional{Value: "x"}}

	assert.True(t, IsVisible(field, Values{}, TierStandard))
}

func TestIsVisible_UnrelatedKeysDoNotMatter(t *testing.T) {
	field := Field{FieldID: "weave_type", Conditional: &Conditional{DependsOn: "industry", Value: "Carpets"}}
	base := Values{"industry": "Carpets"}
	noisy := Values{"industry": "Carpets", "shoe_type": "Oxford", "quantity": 12.0, "flag": false}

	assert.Equal(t, IsVisible(field, base, TierStandard), IsVisible(field, noisy, TierStandard))

	base["industry"] = "Leather"
	noisy["industry"] = "Leather"
	assert.Equal(t, IsVisible(field, base, TierStandard), IsVisible(field, noisy, TierStandard))
}

func TestFilterVisible_PreservesOrderAndIsIdempotent(t *testing.T) {
	fields := shoeFields()
	values := Values{"industry": "Leather", "personalised": true}

	first := FilterVisible(fields, values, TierPremium)
	second := FilterVisible(fields, values, TierPremium)

	require.Equal(t, first, second)
	ids := make([]string, 0, len(first))
	for _, f := range first {
		ids = append(ids, f.FieldID)
	}
	assert.Equal(t, []string{"shoe_type", "stitching_type", "monogram", "personalised"}, ids)
}

func TestFilterVisible_StandardTier(t *testing.T) {
	visible := FilterVisible(shoeFields(), Values{"industry": "Carpets"}, TierStandard)

	ids := make([]string, 0, len(visible))
	for _, f := range visible {
		ids = append(ids, f.FieldID)
	}
	assert.Equal(t, []string{"shoe_type", "weave_type", "personalised"}, ids)
}

func TestFilterVisible_DoesNotMutateInput(t *testing.T) {
	fields := shoeFields()
	values := Values{"industry": "Carpets"}

	_ = FilterVisible(fields, values, TierStandard)

	assert.Len(t, fields, 5)
	assert.Equal(t, Values{"industry": "Carpets"}, values)
}

func TestValuesEqual(t *testing.T) {
	assert.True(t, ValuesEqual(nil, nil))
	assert.False(t, ValuesEqual(nil, ""))
	assert.True(t, ValuesEqual("a", "a"))
	assert.False(t, ValuesEqual("true", true))
	assert.False(t, ValuesEqual("1", 1.0))
	assert.True(t, ValuesEqual(1, 1.0))
	assert.True(t, ValuesEqual(false, false))
	assert.False(t, ValuesEqual([]string{"a"}, []string{"a"}))
}
