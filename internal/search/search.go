// Package search ranks catalog products against a free-text query.
// Matching is plain term containment: every whitespace-delimited term
// must appear in the product's name or description.
package search

import (
	"sort"
	"strings"

	"github.com/amit-00/shop-kit/internal/model"
)

const (
	nameMatchScore        = 2
	descriptionMatchScore = 1
)

// Search returns the products matching every term of query, ordered by
// descending relevance score. Ties keep their input order. An empty or
// whitespace-only query returns the input slice unchanged. The input is
// never mutated.
func Search(products []model.Product, query string) []model.Product {
	terms := splitTerms(query)
	if len(terms) == 0 {
		return products
	}

	type scored struct {
		product model.Product
		score   int
	}

	matches := make([]scored, 0, len(products))
	for _, p := range products {
		if score := scoreProduct(p, terms); score > 0 {
			matches = append(matches, scored{product: p, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]model.Product, len(matches))
	for i, m := range matches {
		out[i] = m.product
	}
	return out
}

// scoreProduct computes the relevance of a product against the query
// terms. Name matches count double. A single term matching neither name
// nor description disqualifies the product entirely.
func scoreProduct(p model.Product, terms []string) int {
	name := strings.ToLower(p.Name)
	description := strings.ToLower(p.Description)

	score := 0
	for _, term := range terms {
		nameMatch := strings.Contains(name, term)
		descriptionMatch := strings.Contains(description, term)
		if !nameMatch && !descriptionMatch {
			return 0
		}
		if nameMatch {
			score += nameMatchScore
		}
		if descriptionMatch {
			score += descriptionMatchScore
		}
	}
	return score
}

// SearchText returns the lowercased "name description" string for a
// product. Callers may precompute and attach it as a cache field; Search
// itself works directly off name and description.
func SearchText(p model.Product) string {
	name := strings.ToLower(p.Name)
	description := strings.ToLower(p.Description)
	return strings.TrimSpace(name + " " + description)
}

func splitTerms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}
