// Package aggregate counts how many agencies investigate each company.
//
// Counting is order-independent: relation lists are walked in whatever order
// the map yields, and each occurrence adds one to the named company. Every
// declared company starts at zero, so companies no agency names still appear
// in the result.
//
//	counts := aggregate.Count(ds)
//	ranked := aggregate.Rank(ds.CompanyNames(), counts)
package aggregate

import (
	"slices"
	"strconv"

	"github.com/matzehuels/probemap/pkg/dataset"
)

// Counts maps a company name to the number of relations that reference it.
type Counts map[string]int

// Of returns the count for a company, zero if unknown.
func (c Counts) Of(company string) int { return c[company] }

// Total returns the sum of all counts.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Count tallies inbound relations per company. Duplicate entries inside one
// agency's list count once each.
func Count(ds *dataset.Dataset) Counts {
	counts := make(Counts, len(ds.Companies))
	for _, c := range ds.Companies {
		counts[c.Name] = 0
	}
	for _, companies := range ds.Relations {
		for _, c := range companies {
			counts[c]++
		}
	}
	return counts
}

// Pairs returns the total number of (agency, company) entries across all
// relation lists.
func Pairs(ds *dataset.Dataset) int {
	n := 0
	for _, companies := range ds.Relations {
		n += len(companies)
	}
	return n
}

// Rank orders companies by descending count. Ties keep the input order.
func Rank(companies []string, counts Counts) []string {
	ranked := slices.Clone(companies)
	slices.SortStableFunc(ranked, func(a, b string) int {
		return counts[b] - counts[a]
	})
	return ranked
}

// Investigators returns the agencies whose relation list names company, in
// agency declaration order.
func Investigators(ds *dataset.Dataset, company string) []string {
	var out []string
	for _, a := range ds.Agencies {
		if ds.Investigates(a.Name, company) {
			out = append(out, a.Name)
		}
	}
	return out
}

// Caption renders a count the way it appears under a company logo.
func Caption(n int) string {
	if n == 1 {
		return "1 agency"
	}
	return strconv.Itoa(n) + " agencies"
}
