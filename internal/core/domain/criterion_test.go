package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriterionFamily_Properties(t *testing.T) {
	tests := []struct {
		family    CriterionFamily
		name      string
		label     bool
		exclusion bool
		noun      string
	}{
		{FamilyLabelExclude, "label-exclude", true, true, "label(s)"},
		{FamilyLabelInclude, "label-include", true, false, "label(s)"},
		{FamilyWordExclude, "word-exclude", false, true, "word(s)"},
		{FamilyWordInclude, "word-include", false, false, "word(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.family.String())
			assert.Equal(t, tt.label, tt.family.IsLabel())
			assert.Equal(t, tt.exclusion, tt.family.IsExclusion())
			assert.Equal(t, tt.noun, tt.family.Noun())
		})
	}

	assert.Equal(t, "unknown", CriterionFamily(42).String())
}

func TestFamilies_Order(t *testing.T) {
	assert.Equal(t, []CriterionFamily{
		FamilyLabelExclude, FamilyLabelInclude, FamilyWordExclude, FamilyWordInclude,
	}, Families())
}

func TestCriteriaInput_Raw(t *testing.T) {
	in := CriteriaInput{
		LabelExclude: []string{"wontfix"},
		LabelInclude: []string{"feature"},
		WordExclude:  []string{"typo"},
		WordInclude:  []string{"docs"},
	}

	assert.Equal(t, []string{"wontfix"}, in.Raw(FamilyLabelExclude))
	assert.Equal(t, []string{"feature"}, in.Raw(FamilyLabelInclude))
	assert.Equal(t, []string{"typo"}, in.Raw(FamilyWordExclude))
	assert.Equal(t, []string{"docs"}, in.Raw(FamilyWordInclude))
	assert.True(t, in.HasExclusions())
	assert.False(t, CriteriaInput{LabelInclude: []string{"x"}}.HasExclusions())
}

func TestCriteria_Groups(t *testing.T) {
	c := Criteria{
		WordInclude: []CriterionGroup{{DisplayKey: "docs", Tokens: []string{"docs"}}},
	}

	assert.False(t, c.IsEmpty())
	assert.Len(t, c.Groups(FamilyWordInclude), 1)
	assert.Empty(t, c.Groups(FamilyLabelExclude))
	assert.True(t, Criteria{}.IsEmpty())
}
