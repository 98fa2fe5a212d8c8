package domain

// CriterionFamily is one of the four ordered rule families.
type CriterionFamily int

// Families in evaluation order. Label families are always evaluated
// before word families.
const (
	FamilyLabelExclude CriterionFamily = iota
	FamilyLabelInclude
	FamilyWordExclude
	FamilyWordInclude
)

// Families returns all families in evaluation order.
func Families() []CriterionFamily {
	return []CriterionFamily{FamilyLabelExclude, FamilyLabelInclude, FamilyWordExclude, FamilyWordInclude}
}

// IsLabel reports whether the family matches against pull request labels.
func (f CriterionFamily) IsLabel() bool {
	return f == FamilyLabelExclude || f == FamilyLabelInclude
}

// IsExclusion reports whether matching pull requests leave the release note.
func (f CriterionFamily) IsExclusion() bool {
	return f == FamilyLabelExclude || f == FamilyWordExclude
}

// String returns the string representation.
func (f CriterionFamily) String() string {
	switch f {
	case FamilyLabelExclude:
		return "label-exclude"
	case FamilyLabelInclude:
		return "label-include"
	case FamilyWordExclude:
		return "word-exclude"
	case FamilyWordInclude:
		return "word-include"
	default:
		return "unknown"
	}
}

// Noun returns the word used in reports for the family's tokens.
func (f CriterionFamily) Noun() string {
	if f.IsLabel() {
		return "label(s)"
	}
	return "word(s)"
}

// CriterionGroup routes matching pull requests into a dedicated bucket.
// A group built from a comma-joined compound fires when any one of its
// tokens matches.
type CriterionGroup struct {
	// DisplayKey is the operator text, used verbatim for headings and
	// document names.
	DisplayKey string `json:"display_key"`

	// Tokens are the distinct tokens of the group in operator order.
	Tokens []string `json:"tokens"`
}

// CriteriaInput holds the raw operator lists, one per family.
// Each entry is a bare token or a comma-joined compound.
type CriteriaInput struct {
	LabelExclude []string `json:"label_exclude,omitempty"`
	LabelInclude []string `json:"label_include,omitempty"`
	WordExclude  []string `json:"word_exclude,omitempty"`
	WordInclude  []string `json:"word_include,omitempty"`
}

// Raw returns the raw entries for a family.
func (c CriteriaInput) Raw(f CriterionFamily) []string {
	switch f {
	case FamilyLabelExclude:
		return c.LabelExclude
	case FamilyLabelInclude:
		return c.LabelInclude
	case FamilyWordExclude:
		return c.WordExclude
	case FamilyWordInclude:
		return c.WordInclude
	default:
		return nil
	}
}

// HasExclusions reports whether any exclusion rule was supplied.
func (c CriteriaInput) HasExclusions() bool {
	return len(c.LabelExclude) > 0 || len(c.WordExclude) > 0
}

// Criteria holds the parsed groups of every family.
type Criteria struct {
	LabelExclude []CriterionGroup
	LabelInclude []CriterionGroup
	WordExclude  []CriterionGroup
	WordInclude  []CriterionGroup
}

// Groups returns the groups of a family in operator order.
func (c Criteria) Groups(f CriterionFamily) []CriterionGroup {
	switch f {
	case FamilyLabelExclude:
		return c.LabelExclude
	case FamilyLabelInclude:
		return c.LabelInclude
	case FamilyWordExclude:
		return c.WordExclude
	case FamilyWordInclude:
		return c.WordInclude
	default:
		return nil
	}
}

// IsEmpty reports whether no family has any group.
func (c Criteria) IsEmpty() bool {
	return len(c.LabelExclude)+len(c.LabelInclude)+len(c.WordExclude)+len(c.WordInclude) == 0
}
