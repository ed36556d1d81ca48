// Package menu contains the catalog item model the engine scores against.
// Items are owned and edited by the venue's catalog tooling; from the
// engine's perspective they are read-only and fetched fresh per request.
package menu

import (
	"github.com/google/uuid"
)

// Kind distinguishes food from drink items
type Kind string

const (
	KindFood  Kind = "food"
	KindDrink Kind = "drink"
)

// Item represents one entry of a venue's menu catalog
type Item struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Category    string
	Kind        Kind
	Tags        []string
	Popularity  float64
	Push        bool
	Unavailable bool
	OutOfStock  bool

	// Position is the item's catalog insertion order. It is the stable
	// secondary tie-break key so identical inputs rank identically.
	Position int
}

// Available reports whether the item may be scored at all. Items failing
// this check must never be scored or returned.
func (i *Item) Available() bool {
	return !i.Unavailable && !i.OutOfStock
}

// HasTag reports whether the item carries the given tag
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FirstTagIn returns the first of the item's tags present in set, in the
// item's tag order. Used for "first match per axis" bonus semantics.
func (i *Item) FirstTagIn(set map[string]struct{}) (string, bool) {
	for _, t := range i.Tags {
		if _, ok := set[t]; ok {
			return t, true
		}
	}
	return "", false
}

// Validate checks the structural invariants of a catalog item
func (i *Item) Validate() error {
	if i.Name == "" {
		return ErrEmptyName
	}
	if i.Price < 0 {
		return ErrNegativePrice
	}
	if i.Popularity < 0 {
		return ErrNegativePopularity
	}
	if i.Kind != KindFood && i.Kind != KindDrink {
		return ErrInvalidKind
	}
	return nil
}
