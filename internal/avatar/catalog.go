package avatar

// Browsing groups the five item categories under the top-level tabs the
// client shows. "My Items" is special-cased (user items across categories)
// and "Body" is a placeholder tab with nothing under it yet.
const (
	TopAvatars     = "Avatars"
	TopMyItems     = "My Items"
	TopBody        = "Body"
	TopClothing    = "Clothing"
	TopAccessories = "Accessories"
)

var browseStructure = map[string][]Category{
	TopAvatars:     {CategoryAvatars},
	TopBody:        {},
	TopClothing:    {CategoryShirts, CategoryPants},
	TopAccessories: {CategoryHats, CategoryAccessories},
}

// TopLevelCategories returns the browse tabs in display order.
func TopLevelCategories() []string {
	return []string{TopAvatars, TopMyItems, TopBody, TopClothing, TopAccessories}
}

// SubCategories returns the item categories under a top-level tab, or nil
// for unknown tabs and for "My Items".
func SubCategories(topLevel string) []Category {
	return browseStructure[topLevel]
}

// DefaultAvatars returns the system-provided base avatars. Recomputed from
// the catalog on every call.
func DefaultAvatars(catalog []Item) []Item {
	return filter(catalog, func(it Item) bool {
		return it.Category == CategoryAvatars && !it.UserOwned
	})
}

// UserAvatars returns the user's own base avatars.
func UserAvatars(catalog []Item) []Item {
	return filter(catalog, func(it Item) bool {
		return it.Category == CategoryAvatars && it.UserOwned
	})
}

// MyItems returns every user-owned item except base avatars, which browse
// under the Avatars tab instead.
func MyItems(catalog []Item) []Item {
	return filter(catalog, func(it Item) bool {
		return it.UserOwned && it.Category != CategoryAvatars
	})
}

// Browse returns the default-catalog items under a top-level tab,
// optionally restricted to one sub-category (sub == "" means all). Unknown
// tabs and tabs with no matching items yield an empty slice, not an error.
func Browse(catalog []Item, topLevel string, sub Category) []Item {
	targets, ok := browseStructure[topLevel]
	if !ok {
		return []Item{}
	}
	return filter(catalog, func(it Item) bool {
		if it.UserOwned {
			return false
		}
		if sub != "" && it.Category != sub {
			return false
		}
		for _, c := range targets {
			if it.Category == c {
				return true
			}
		}
		return false
	})
}

func filter(items []Item, keep func(Item) bool) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
