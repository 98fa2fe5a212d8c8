package domain

// Bucket collects the pull requests routed into one criterion group.
type Bucket struct {
	Family       CriterionFamily
	Group        CriterionGroup
	PullRequests []PullRequestRecord
}

// Route names one group a pull request was routed into.
type Route struct {
	Family     CriterionFamily `json:"family"`
	DisplayKey string          `json:"display_key"`
}

// Outcome is the classification of one merged pull request.
// Default is true exactly when Routes is empty.
type Outcome struct {
	Number  int     `json:"number"`
	Routes  []Route `json:"routes,omitempty"`
	Default bool    `json:"default"`
}

// Partition is the result of one classification pass.
type Partition struct {
	// Milestone is the dataset title.
	Milestone string

	// Default lists pull requests that matched no group, in dataset order.
	Default []PullRequestRecord

	// Buckets holds one bucket per group, ordered by family then by
	// operator order.
	Buckets []Bucket

	// Outcomes has one entry per merged pull request, in dataset order.
	Outcomes []Outcome

	// Authors are the distinct authors of merged pull requests in
	// first-seen order.
	Authors []string
}

// Family returns the buckets of one family in operator order.
func (p *Partition) Family(f CriterionFamily) []Bucket {
	var buckets []Bucket
	for i := range p.Buckets {
		if p.Buckets[i].Family == f {
			buckets = append(buckets, p.Buckets[i])
		}
	}
	return buckets
}

// Bucket returns the bucket for a family and display key.
func (p *Partition) Bucket(f CriterionFamily, displayKey string) (Bucket, bool) {
	for i := range p.Buckets {
		if p.Buckets[i].Family == f && p.Buckets[i].Group.DisplayKey == displayKey {
			return p.Buckets[i], true
		}
	}
	return Bucket{}, false
}

// GroupCount is the number of pull requests routed into one group.
type GroupCount struct {
	Family     CriterionFamily `json:"family"`
	DisplayKey string          `json:"display_key"`
	Count      int             `json:"count"`
}

// Counters tallies a classification pass. It is read-only once returned.
type Counters struct {
	// Total is the number of merged pull requests.
	Total int `json:"total"`

	// Regular is the number of entries in the main release note: the
	// default bucket plus every include-group membership.
	Regular int `json:"regular"`

	// Unmerged is the number of closed but unmerged pull requests.
	Unmerged int `json:"unmerged"`

	// Authors is the number of distinct authors of merged pull requests.
	Authors int `json:"authors"`

	// Groups holds per-group counts ordered by family then operator order.
	Groups []GroupCount `json:"groups,omitempty"`
}

// Parsed returns the number of records read, merged or not.
func (c *Counters) Parsed() int {
	return c.Total + c.Unmerged
}

// Count returns the count for a family and display key.
func (c *Counters) Count(f CriterionFamily, displayKey string) int {
	for _, g := range c.Groups {
		if g.Family == f && g.DisplayKey == displayKey {
			return g.Count
		}
	}
	return 0
}

// Family returns the group counts of one family in operator order.
func (c *Counters) Family(f CriterionFamily) []GroupCount {
	var counts []GroupCount
	for _, g := range c.Groups {
		if g.Family == f {
			counts = append(counts, g)
		}
	}
	return counts
}

// Excluded returns the sum of all exclusion group counts. A pull request
// routed into two exclusion groups counts twice.
func (c *Counters) Excluded() int {
	n := 0
	for _, g := range c.Groups {
		if g.Family.IsExclusion() {
			n += g.Count
		}
	}
	return n
}
