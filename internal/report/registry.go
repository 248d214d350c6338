package report

import (
	"strings"

	"github.com/OP3690/finance-tracker/internal/domain"
)

// Registry is a read-only lookup from category name to its registered
// descriptions, built from the stored categories. Lookup is case-insensitive.
// Aggregation never validates against it: grouping is by the literal string
// found on the transaction, so unknown categories still aggregate.
type Registry struct {
	byName map[string]*domain.Category
}

// NewRegistry indexes the given categories by lowercased name.
func NewRegistry(categories []*domain.Category) *Registry {
	byName := make(map[string]*domain.Category, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Name)] = c
	}
	return &Registry{byName: byName}
}

// DescriptionsFor returns the registered descriptions for a category, or an
// empty sequence for an unknown name.
func (r *Registry) DescriptionsFor(name string) []string {
	c, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil
	}
	return c.Descriptions
}

// Known reports whether the category name is registered.
func (r *Registry) Known(name string) bool {
	_, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
