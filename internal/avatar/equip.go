package avatar

import "fmt"

// DefaultAvatarID is the base avatar every new or reset session starts with.
const DefaultAvatarID = "avatar_male"

// EquippedSet is the unordered collection of items currently worn. The
// invariant maintained by Toggle (and checked by Validate): at most one
// item each of the single-slot categories (Avatars, Shirts, Pants);
// Hats and Accessories are unbounded.
type EquippedSet []Item

// Contains reports whether an item with the given ID is in the set.
func (s EquippedSet) Contains(itemID string) bool {
	for _, it := range s {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// Avatar returns the equipped base avatar, if any.
func (s EquippedSet) Avatar() (Item, bool) {
	for _, it := range s {
		if it.Category == CategoryAvatars {
			return it, true
		}
	}
	return Item{}, false
}

// Accessories returns every equipped item except the base avatar.
func (s EquippedSet) Accessories() []Item {
	out := make([]Item, 0, len(s))
	for _, it := range s {
		if it.Category != CategoryAvatars {
			out = append(out, it)
		}
	}
	return out
}

// Toggle equips or unequips item and returns the resulting set. The input
// set is never mutated. The operation is total: every (current, item) pair
// has exactly one result and no error condition.
//
// Rules:
//   - An equipped base avatar cannot be removed, only replaced by another
//     Avatars item.
//   - Toggling any other equipped item removes it.
//   - Equipping a single-slot item (Avatars, Shirts, Pants) evicts the
//     current holder of that category, if any.
//   - Equipping a multi-slot item (Hats, Accessories) just adds it.
func Toggle(current EquippedSet, item Item) EquippedSet {
	if current.Contains(item.ID) {
		if item.Category == CategoryAvatars {
			return clone(current)
		}
		return without(current, func(it Item) bool { return it.ID == item.ID })
	}

	next := clone(current)
	if item.Category.SingleSlot() {
		next = without(next, func(it Item) bool { return it.Category == item.Category })
	}
	return append(next, item)
}

// Reset returns the starting set: just the default base avatar. If the
// catalog has no item with DefaultAvatarID the result is empty.
func Reset(catalog []Item) EquippedSet {
	for _, it := range catalog {
		if it.ID == DefaultAvatarID {
			return EquippedSet{it}
		}
	}
	return EquippedSet{}
}

// Validate checks the slot invariant. Sets produced by Toggle always pass;
// this guards sets arriving from outside (e.g. a client save payload).
func Validate(s EquippedSet) error {
	counts := make(map[Category]int, len(s))
	seen := make(map[string]bool, len(s))
	for _, it := range s {
		if !it.Category.Valid() {
			return fmt.Errorf("item %q has unknown category %q", it.ID, it.Category)
		}
		if seen[it.ID] {
			return fmt.Errorf("item %q equipped twice", it.ID)
		}
		seen[it.ID] = true
		counts[it.Category]++
		if it.Category.SingleSlot() && counts[it.Category] > 1 {
			return fmt.Errorf("more than one %s item equipped", it.Category)
		}
	}
	return nil
}

func clone(s EquippedSet) EquippedSet {
	out := make(EquippedSet, len(s))
	copy(out, s)
	return out
}

func without(s EquippedSet, drop func(Item) bool) EquippedSet {
	out := make(EquippedSet, 0, len(s))
	for _, it := range s {
		if !drop(it) {
			out = append(out, it)
		}
	}
	return out
}
