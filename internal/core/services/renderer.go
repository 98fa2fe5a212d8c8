package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/logger"
)

// unsafeNameChars are stripped from display keys used in document names.
var unsafeNameChars = strings.NewReplacer(":", "", "/", "", "?", "")

// Render turns a partition into the release note, the optional authors
// document and one document per exclusion group, in that order.
func Render(p *domain.Partition, opts domain.RenderOptions) []domain.Document {
	docs := []domain.Document{RenderReleaseNote(p, opts)}

	if opts.IncludeAuthors && len(p.Authors) > 0 {
		docs = append(docs, RenderAuthors(p.Milestone, p.Authors))
	}

	return append(docs, RenderExclusions(p, opts)...)
}

// RenderReleaseNote renders the main release note: the default bucket
// followed by one subsection per include group, label groups first.
func RenderReleaseNote(p *domain.Partition, opts domain.RenderOptions) domain.Document {
	var b strings.Builder

	b.WriteString("# Release note\n\n")
	fmt.Fprintf(&b, "## %s\n\n", p.Milestone)
	writeEntries(&b, p.Default, opts)

	for _, family := range []domain.CriterionFamily{domain.FamilyLabelInclude, domain.FamilyWordInclude} {
		for _, bucket := range p.Family(family) {
			fmt.Fprintf(&b, "\n### %s\n\n", bucket.Group.DisplayKey)
			writeEntries(&b, bucket.PullRequests, opts)
		}
	}

	return domain.Document{
		Name:    p.Milestone + "-release-note",
		Kind:    domain.DocumentReleaseNote,
		Content: b.String(),
	}
}

// RenderAuthors renders the contributors list sorted case-insensitively.
func RenderAuthors(milestone string, authors []string) domain.Document {
	sorted := slices.Clone(authors)
	slices.SortFunc(sorted, compareFold)

	var b strings.Builder
	b.WriteString("## Contributors\n")
	for _, author := range sorted {
		fmt.Fprintf(&b, "- %s\n", author)
	}

	return domain.Document{
		Name:    milestone + "-authors",
		Kind:    domain.DocumentAuthors,
		Content: b.String(),
	}
}

// RenderExclusions renders one document per exclusion group, label groups
// first. Groups that matched nothing still get a document. Names are unique
// across the returned documents and never reuse the release note, authors or
// contributors names; a colliding group gets its family appended.
func RenderExclusions(p *domain.Partition, opts domain.RenderOptions) []domain.Document {
	taken := map[string]bool{
		p.Milestone + "-release-note": true,
		p.Milestone + "-authors":      true,
		p.Milestone + "-contributors": true,
	}

	var docs []domain.Document
	for _, family := range []domain.CriterionFamily{domain.FamilyLabelExclude, domain.FamilyWordExclude} {
		for _, bucket := range p.Family(family) {
			var b strings.Builder
			fmt.Fprintf(&b, "### %s\n\n", bucket.Group.DisplayKey)
			writeEntries(&b, bucket.PullRequests, opts)

			docs = append(docs, domain.Document{
				Name:    uniqueName(taken, p.Milestone+"-"+SanitizeName(bucket.Group.DisplayKey), family),
				Kind:    domain.DocumentExclusion,
				Content: b.String(),
			})
		}
	}
	return docs
}

// RenderContributorProfiles renders the contributors list with the public
// profile details of each author.
func RenderContributorProfiles(milestone string, profiles []domain.AuthorProfile) domain.Document {
	sorted := slices.Clone(profiles)
	slices.SortFunc(sorted, func(a, b domain.AuthorProfile) int {
		return compareFold(a.Login, b.Login)
	})

	var b strings.Builder
	b.WriteString("## Contributors\n\n")
	for _, p := range sorted {
		if !p.Found {
			fmt.Fprintf(&b, "- @%s\n", p.Login)
			continue
		}

		line := fmt.Sprintf("- %s ([@%s](%s))", p.DisplayName(), p.Login, p.URL)
		for _, detail := range []string{p.Company, p.Location, p.Blog} {
			if detail != "" {
				line += ", " + detail
			}
		}
		b.WriteString(line + "\n")
	}

	return domain.Document{
		Name:    milestone + "-contributors",
		Kind:    domain.DocumentContributors,
		Content: b.String(),
	}
}

// uniqueName reserves name in taken, suffixing it with the family and then
// a counter until it is free.
func uniqueName(taken map[string]bool, name string, family domain.CriterionFamily) string {
	candidate := name
	if taken[candidate] {
		candidate = name + "-" + family.String()
		for i := 2; taken[candidate]; i++ {
			candidate = fmt.Sprintf("%s-%s-%d", name, family, i)
		}
		logger.Warn("exclusion document %q already exists, writing %q instead", name, candidate)
	}
	taken[candidate] = true
	return candidate
}

// SanitizeName strips characters that are unsafe in file names.
func SanitizeName(s string) string {
	return unsafeNameChars.Replace(s)
}

// writeEntries writes one bullet per pull request:
// "- <title> [PR #<n>](<url>)" or "- <title> [PR](<url>)".
func writeEntries(b *strings.Builder, prs []domain.PullRequestRecord, opts domain.RenderOptions) {
	for i := range prs {
		number := ""
		if opts.ShowPRNumber {
			number = fmt.Sprintf(" #%d", prs[i].Number)
		}
		fmt.Fprintf(b, "- %s [PR%s](%s)\n", prs[i].Title, number, prs[i].URL)
	}
}

// compareFold orders strings case-insensitively, then byte-wise so the
// order is total.
func compareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
