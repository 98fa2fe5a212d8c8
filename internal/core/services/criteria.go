package services

import (
	"strings"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// compoundSeparator joins tokens that act as one group.
const compoundSeparator = ","

// ParseCriteria turns the raw entries of one family into criterion groups.
//
// A bare entry yields a single-token group. A comma-joined entry yields one
// group whose tokens are the comma-split parts and whose display key is the
// entry itself. Word entries are lower-cased since title matching ignores
// case; label entries are kept verbatim. Empty parts are dropped, entries
// without any token are skipped, and repeated entries collapse onto the
// first occurrence.
func ParseCriteria(family domain.CriterionFamily, raw []string) []domain.CriterionGroup {
	if len(raw) == 0 {
		return nil
	}

	groups := make([]domain.CriterionGroup, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, entry := range raw {
		if !family.IsLabel() {
			entry = strings.ToLower(entry)
		}
		if seen[entry] {
			continue
		}

		tokens := splitTokens(entry)
		if len(tokens) == 0 {
			continue
		}

		seen[entry] = true
		groups = append(groups, domain.CriterionGroup{
			DisplayKey: entry,
			Tokens:     tokens,
		})
	}

	return groups
}

// ParseAllCriteria parses every family of the operator input.
func ParseAllCriteria(in domain.CriteriaInput) domain.Criteria {
	return domain.Criteria{
		LabelExclude: ParseCriteria(domain.FamilyLabelExclude, in.LabelExclude),
		LabelInclude: ParseCriteria(domain.FamilyLabelInclude, in.LabelInclude),
		WordExclude:  ParseCriteria(domain.FamilyWordExclude, in.WordExclude),
		WordInclude:  ParseCriteria(domain.FamilyWordInclude, in.WordInclude),
	}
}

// splitTokens returns the distinct non-empty parts of an entry in order.
func splitTokens(entry string) []string {
	parts := strings.Split(entry, compoundSeparator)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || contains(tokens, part) {
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
