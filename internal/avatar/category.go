// Package avatar implements the avatar composition core: which wearable
// items can be equipped together, where they attach on the base body, and
// how the catalog is partitioned for browsing.
//
// Everything in this package is pure computation over in-memory values.
// Persistence and rendering are the caller's problem.
package avatar

import "fmt"

// Category is the closed set of wearable item categories.
type Category string

const (
	CategoryAvatars     Category = "Avatars"
	CategoryHats        Category = "Hats"
	CategoryShirts      Category = "Shirts"
	CategoryPants       Category = "Pants"
	CategoryAccessories Category = "Accessories"
)

// Categories returns every valid category.
func Categories() []Category {
	return []Category{
		CategoryAvatars,
		CategoryHats,
		CategoryShirts,
		CategoryPants,
		CategoryAccessories,
	}
}

// ParseCategory converts a string (e.g. from a request payload) into a
// Category, rejecting anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case CategoryAvatars, CategoryHats, CategoryShirts, CategoryPants, CategoryAccessories:
		return c, nil
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// SingleSlot reports whether at most one item of this category may be
// equipped at a time. Hats and Accessories are multi-slot: any number may
// be worn together.
func (c Category) SingleSlot() bool {
	switch c {
	case CategoryAvatars, CategoryShirts, CategoryPants:
		return true
	case CategoryHats, CategoryAccessories:
		return false
	}
	return false
}
