package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

func classify(ds *domain.MilestoneDataset, in domain.CriteriaInput) (*domain.Partition, *domain.Counters) {
	return Classify(ds, ParseAllCriteria(in))
}

func numbers(prs []domain.PullRequestRecord) []int {
	out := make([]int, 0, len(prs))
	for _, pr := range prs {
		out = append(out, pr.Number)
	}
	return out
}

func TestClassify_NoCriteria(t *testing.T) {
	ds := dataset(
		mergedPR(1, "Add widget", "alice"),
		mergedPR(2, "Fix widget", "bob", "bug"),
	)

	p, c := classify(ds, domain.CriteriaInput{})

	assert.Equal(t, []int{1, 2}, numbers(p.Default))
	assert.Empty(t, p.Buckets)
	assert.Equal(t, 2, c.Total)
	assert.Equal(t, 2, c.Regular)
	assert.Empty(t, c.Groups)
}

func TestClassify_WontfixScenario(t *testing.T) {
	ds := dataset(
		mergedPR(1, "Add export", "alice"),
		mergedPR(2, "Add import", "bob"),
		mergedPR(3, "Try new layout", "bob", "wontfix"),
		mergedPR(4, "Refactor parser", "carol"),
		mergedPR(5, "Bump version", "dave"),
		closedPR(6, "Abandoned rewrite", "erin"),
	)

	p, c := classify(ds, domain.CriteriaInput{LabelExclude: []string{"wontfix"}})

	assert.Equal(t, []int{1, 2, 4, 5}, numbers(p.Default))
	bucket, ok := p.Bucket(domain.FamilyLabelExclude, "wontfix")
	require.True(t, ok)
	assert.Equal(t, []int{3}, numbers(bucket.PullRequests))

	assert.Equal(t, 1, c.Unmerged)
	assert.Equal(t, 5, c.Total)
	assert.Equal(t, 6, c.Parsed())
	assert.Equal(t, 4, c.Regular)
	assert.Equal(t, 1, c.Count(domain.FamilyLabelExclude, "wontfix"))
	assert.Equal(t, 1, c.Excluded())
	assert.Equal(t, 4, c.Authors, "unmerged authors are not counted")

	docs := RenderExclusions(p, domain.RenderOptions{})
	require.Len(t, docs, 1)
	assert.Equal(t, "v2.3.0-wontfix", docs[0].Name)
}

func TestClassify_DocsWordInclude(t *testing.T) {
	ds := dataset(
		mergedPR(1, "Update docs for install", "alice"),
		mergedPR(2, "Add Documentation for the API", "bob"),
		mergedPR(3, "Fix crash on start", "carol"),
		mergedPR(4, "DOCS and documentation cleanup", "alice"),
	)

	p, c := classify(ds, domain.CriteriaInput{WordInclude: []string{"docs,documentation"}})

	bucket, ok := p.Bucket(domain.FamilyWordInclude, "docs,documentation")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 4}, numbers(bucket.PullRequests), "compound matches once per pull request")
	assert.Equal(t, []int{3}, numbers(p.Default))

	assert.Equal(t, 3, c.Count(domain.FamilyWordInclude, "docs,documentation"))
	assert.Equal(t, 4, c.Regular)
}

func TestClassify_MultiMembership(t *testing.T) {
	ds := dataset(mergedPR(1, "Broken release", "alice", "bug", "regression"))

	p, c := classify(ds, domain.CriteriaInput{LabelExclude: []string{"bug", "regression"}})

	for _, key := range []string{"bug", "regression"} {
		bucket, ok := p.Bucket(domain.FamilyLabelExclude, key)
		require.True(t, ok)
		assert.Equal(t, []int{1}, numbers(bucket.PullRequests), key)
	}
	assert.Empty(t, p.Default)
	assert.Equal(t, 2, c.Excluded())
	assert.Equal(t, 1, c.Total)
	assert.Equal(t, 0, c.Regular)

	require.Len(t, p.Outcomes, 1)
	assert.False(t, p.Outcomes[0].Default)
	assert.Equal(t, []domain.Route{
		{Family: domain.FamilyLabelExclude, DisplayKey: "bug"},
		{Family: domain.FamilyLabelExclude, DisplayKey: "regression"},
	}, p.Outcomes[0].Routes)
}

func TestClassify_CompoundMatchesOnce(t *testing.T) {
	ds := dataset(mergedPR(1, "Fix", "alice", "bug", "blocked"))

	_, c := classify(ds, domain.CriteriaInput{LabelInclude: []string{"bug,blocked"}})

	assert.Equal(t, 1, c.Count(domain.FamilyLabelInclude, "bug,blocked"))
	assert.Equal(t, 1, c.Regular)
}

func TestClassify_LabelsBeatWords(t *testing.T) {
	ds := dataset(
		mergedPR(1, "Fix docs typo", "alice", "bug"),
		mergedPR(2, "Update docs", "bob"),
	)

	p, c := classify(ds, domain.CriteriaInput{
		LabelInclude: []string{"bug"},
		WordExclude:  []string{"docs"},
	})

	bug, _ := p.Bucket(domain.FamilyLabelInclude, "bug")
	docs, _ := p.Bucket(domain.FamilyWordExclude, "docs")
	assert.Equal(t, []int{1}, numbers(bug.PullRequests))
	assert.Equal(t, []int{2}, numbers(docs.PullRequests))
	assert.Empty(t, p.Default)
	assert.Equal(t, 1, c.Regular)
}

func TestClassify_ExcludeAndIncludeSameFamilyKind(t *testing.T) {
	ds := dataset(mergedPR(1, "Fix", "alice", "bug", "wontfix"))

	p, c := classify(ds, domain.CriteriaInput{
		LabelExclude: []string{"wontfix"},
		LabelInclude: []string{"bug"},
	})

	assert.Len(t, p.Outcomes[0].Routes, 2)
	assert.Equal(t, 1, c.Count(domain.FamilyLabelExclude, "wontfix"))
	assert.Equal(t, 1, c.Count(domain.FamilyLabelInclude, "bug"))
	assert.Equal(t, 1, c.Regular)
}

func TestClassify_LabelMatchIsExact(t *testing.T) {
	ds := dataset(
		mergedPR(1, "A", "alice", "bug-report"),
		mergedPR(2, "B", "bob", "Bug"),
	)

	p, c := classify(ds, domain.CriteriaInput{LabelExclude: []string{"bug"}})

	assert.Equal(t, []int{1, 2}, numbers(p.Default))
	assert.Zero(t, c.Count(domain.FamilyLabelExclude, "bug"))
}

func TestClassify_EmptyBucketsKeepOrder(t *testing.T) {
	ds := dataset(mergedPR(1, "A", "alice"))

	p, c := classify(ds, domain.CriteriaInput{
		LabelExclude: []string{"z", "a"},
		WordInclude:  []string{"nothing"},
	})

	require.Len(t, p.Buckets, 3)
	assert.Equal(t, "z", p.Buckets[0].Group.DisplayKey)
	assert.Equal(t, "a", p.Buckets[1].Group.DisplayKey)
	assert.Equal(t, domain.FamilyWordInclude, p.Buckets[2].Family)
	assert.Len(t, c.Groups, 3)
	for _, g := range c.Groups {
		assert.Zero(t, g.Count)
	}
}

func TestClassify_UnmergedAreCountedOnly(t *testing.T) {
	ds := dataset(
		mergedPR(1, "Merged", "alice"),
		closedPR(2, "Closed", "bob"),
		closedPR(3, "Closed too", "carol"),
	)

	p, c := classify(ds, domain.CriteriaInput{})

	assert.Equal(t, []int{1}, numbers(p.Default))
	assert.Len(t, p.Outcomes, 1)
	assert.Equal(t, []string{"alice"}, p.Authors)
	assert.Equal(t, 1, c.Total)
	assert.Equal(t, 2, c.Unmerged)
	assert.Equal(t, 3, c.Parsed())
	assert.Equal(t, 1, c.Authors)
}

func TestClassify_AuthorsFirstSeen(t *testing.T) {
	ds := dataset(
		mergedPR(1, "A", "carol"),
		mergedPR(2, "B", "alice"),
		mergedPR(3, "C", "carol"),
		mergedPR(4, "D", "bob"),
	)

	p, c := classify(ds, domain.CriteriaInput{})

	assert.Equal(t, []string{"carol", "alice", "bob"}, p.Authors)
	assert.Equal(t, 3, c.Authors)
}

func TestClassify_PartitionIsComplete(t *testing.T) {
	ds := dataset(
		mergedPR(1, "Update docs", "alice"),
		mergedPR(2, "Fix crash", "bob", "bug"),
		mergedPR(3, "WIP layout", "carol", "wontfix"),
		mergedPR(4, "Bump deps", "dave"),
	)

	p, c := classify(ds, domain.CriteriaInput{
		LabelExclude: []string{"wontfix"},
		LabelInclude: []string{"bug"},
		WordInclude:  []string{"docs"},
	})

	require.Len(t, p.Outcomes, c.Total)
	for _, o := range p.Outcomes {
		assert.Equal(t, o.Default, len(o.Routes) == 0, "pull request %d", o.Number)
	}
	assert.Equal(t, len(p.Default)+c.Count(domain.FamilyLabelInclude, "bug")+c.Count(domain.FamilyWordInclude, "docs"),
		c.Regular)
}

func TestClassify_Idempotent(t *testing.T) {
	ds := dataset(
		mergedPR(1, "Update docs", "alice", "bug"),
		mergedPR(2, "Fix crash", "bob"),
		closedPR(3, "Nope", "carol"),
	)
	in := domain.CriteriaInput{LabelInclude: []string{"bug"}, WordExclude: []string{"crash"}}

	p1, c1 := classify(ds, in)
	p2, c2 := classify(ds, in)

	assert.Equal(t, p1, p2)
	assert.Equal(t, c1, c2)
}
