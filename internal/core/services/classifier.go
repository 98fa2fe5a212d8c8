package services

import (
	"strings"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// matchFunc reports whether a group fires for a pull request.
// lowerTitle is the lower-cased pull request title.
type matchFunc func(group domain.CriterionGroup, pr *domain.PullRequestRecord, lowerTitle string) bool

// matchLabel fires when the pull request carries any of the group's labels.
func matchLabel(group domain.CriterionGroup, pr *domain.PullRequestRecord, _ string) bool {
	for _, token := range group.Tokens {
		if pr.HasLabel(token) {
			return true
		}
	}
	return false
}

// matchWord fires when any of the group's words occurs in the title.
func matchWord(group domain.CriterionGroup, _ *domain.PullRequestRecord, lowerTitle string) bool {
	for _, token := range group.Tokens {
		if strings.Contains(lowerTitle, token) {
			return true
		}
	}
	return false
}

// Classify routes every merged pull request of the dataset into the
// buckets of the matching criterion groups, or into the default bucket.
//
// Label families take precedence over word families: once any label group
// fires, word groups are not evaluated for that pull request. Within a
// family every group is evaluated, so a pull request may land in several
// buckets. Unmerged pull requests are only counted.
//
// Classify is deterministic: the same dataset and criteria always produce
// the same partition and counters.
func Classify(dataset *domain.MilestoneDataset, criteria domain.Criteria) (*domain.Partition, *domain.Counters) {
	c := newClassifier(dataset.Title, criteria)
	for i := range dataset.PullRequests {
		c.add(&dataset.PullRequests[i])
	}
	return c.partition, c.counters()
}

// classifier holds the state of one classification pass.
type classifier struct {
	partition *domain.Partition

	// families maps each family to the indexes of its buckets.
	families map[domain.CriterionFamily][]int
	authors  map[string]bool

	total    int
	regular  int
	unmerged int
}

func newClassifier(milestone string, criteria domain.Criteria) *classifier {
	c := &classifier{
		partition: &domain.Partition{Milestone: milestone},
		families:  make(map[domain.CriterionFamily][]int),
		authors:   make(map[string]bool),
	}

	for _, family := range domain.Families() {
		for _, group := range criteria.Groups(family) {
			c.families[family] = append(c.families[family], len(c.partition.Buckets))
			c.partition.Buckets = append(c.partition.Buckets, domain.Bucket{
				Family: family,
				Group:  group,
			})
		}
	}

	return c
}

func (c *classifier) add(pr *domain.PullRequestRecord) {
	if !pr.IsMerged() {
		c.unmerged++
		return
	}

	c.total++
	if !c.authors[pr.Author] {
		c.authors[pr.Author] = true
		c.partition.Authors = append(c.partition.Authors, pr.Author)
	}

	lowerTitle := strings.ToLower(pr.Title)

	routes := c.evaluate(domain.FamilyLabelExclude, pr, lowerTitle)
	routes = append(routes, c.evaluate(domain.FamilyLabelInclude, pr, lowerTitle)...)
	if len(routes) == 0 {
		routes = c.evaluate(domain.FamilyWordExclude, pr, lowerTitle)
		routes = append(routes, c.evaluate(domain.FamilyWordInclude, pr, lowerTitle)...)
	}

	outcome := domain.Outcome{Number: pr.Number, Routes: routes}
	if len(routes) == 0 {
		outcome.Default = true
		c.partition.Default = append(c.partition.Default, *pr)
		c.regular++
	}
	for _, r := range routes {
		if !r.Family.IsExclusion() {
			c.regular++
		}
	}

	c.partition.Outcomes = append(c.partition.Outcomes, outcome)
}

// evaluate appends the pull request to every bucket of the family whose
// group fires, and returns the routes taken.
func (c *classifier) evaluate(family domain.CriterionFamily, pr *domain.PullRequestRecord, lowerTitle string) []domain.Route {
	var match matchFunc = matchWord
	if family.IsLabel() {
		match = matchLabel
	}

	var routes []domain.Route
	for _, idx := range c.families[family] {
		bucket := &c.partition.Buckets[idx]
		if !match(bucket.Group, pr, lowerTitle) {
			continue
		}
		bucket.PullRequests = append(bucket.PullRequests, *pr)
		routes = append(routes, domain.Route{Family: family, DisplayKey: bucket.Group.DisplayKey})
	}
	return routes
}

func (c *classifier) counters() *domain.Counters {
	counters := &domain.Counters{
		Total:    c.total,
		Regular:  c.regular,
		Unmerged: c.unmerged,
		Authors:  len(c.partition.Authors),
		Groups:   make([]domain.GroupCount, 0, len(c.partition.Buckets)),
	}
	for _, b := range c.partition.Buckets {
		counters.Groups = append(counters.Groups, domain.GroupCount{
			Family:     b.Family,
			DisplayKey: b.Group.DisplayKey,
			Count:      len(b.PullRequests),
		})
	}
	return counters
}
