package avatar

import (
	"sort"
	"testing"
)

func item(id string, c Category) Item {
	return Item{ID: id, Name: id, ModelURL: "/models/" + id + ".glb", Category: c}
}

// ids returns the sorted item IDs of a set, for order-insensitive comparison.
func ids(s EquippedSet) []string {
	out := make([]string, 0, len(s))
	for _, it := range s {
		out = append(out, it.ID)
	}
	sort.Strings(out)
	return out
}

func sameSet(a, b EquippedSet) bool {
	x, y := ids(a), ids(b)
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func TestToggle(t *testing.T) {
	a1 := item("a1", CategoryAvatars)
	a2 := item("a2", CategoryAvatars)
	h1 := item("h1", CategoryHats)
	h2 := item("h2", CategoryHats)
	s1 := item("s1", CategoryShirts)
	s2 := item("s2", CategoryShirts)
	p1 := item("p1", CategoryPants)
	g1 := item("g1", CategoryAccessories)

	tests := []struct {
		name    string
		current EquippedSet
		toggle  Item
		want    EquippedSet
	}{
		{
			name:    "equip avatar on empty set",
			current: EquippedSet{},
			toggle:  a1,
			want:    EquippedSet{a1},
		},
		{
			name:    "equipped avatar cannot be removed",
			current: EquippedSet{a1, h1},
			toggle:  a1,
			want:    EquippedSet{a1, h1},
		},
		{
			name:    "second avatar replaces the first",
			current: EquippedSet{a1, h1, h2},
			toggle:  a2,
			want:    EquippedSet{a2, h1, h2},
		},
		{
			name:    "hats accumulate",
			current: EquippedSet{a1, h1},
			toggle:  h2,
			want:    EquippedSet{a1, h1, h2},
		},
		{
			name:    "equipped hat toggles off",
			current: EquippedSet{a1, h1, h2},
			toggle:  h1,
			want:    EquippedSet{a1, h2},
		},
		{
			name:    "second shirt evicts the first",
			current: EquippedSet{a1, s1},
			toggle:  s2,
			want:    EquippedSet{a1, s2},
		},
		{
			name:    "equipped shirt toggles off",
			current: EquippedSet{a1, s1},
			toggle:  s1,
			want:    EquippedSet{a1},
		},
		{
			name:    "pants and shirts occupy separate slots",
			current: EquippedSet{a1, s1},
			toggle:  p1,
			want:    EquippedSet{a1, s1, p1},
		},
		{
			name:    "accessories accumulate alongside hats",
			current: EquippedSet{a1, h1},
			toggle:  g1,
			want:    EquippedSet{a1, h1, g1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Toggle(tt.current, tt.toggle)
			if !sameSet(got, tt.want) {
				t.Errorf("Toggle() = %v, want %v", ids(got), ids(tt.want))
			}
			if err := Validate(got); err != nil {
				t.Errorf("Toggle() produced invalid set: %v", err)
			}
		})
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	a1 := item("a1", CategoryAvatars)
	h1 := item("h1", CategoryHats)

	current := EquippedSet{a1, h1}
	_ = Toggle(current, item("a2", CategoryAvatars))
	_ = Toggle(current, h1)

	if !sameSet(current, EquippedSet{a1, h1}) {
		t.Errorf("input set mutated: %v", ids(current))
	}
}

func TestToggleRoundTrip(t *testing.T) {
	// Toggling the same multi-slot or non-avatar single-slot item twice
	// returns to the starting set.
	a1 := item("a1", CategoryAvatars)
	base := EquippedSet{a1, item("h1", CategoryHats)}

	for _, c := range []Category{CategoryHats, CategoryAccessories, CategoryShirts, CategoryPants} {
		it := item("x_"+string(c), c)
		got := Toggle(Toggle(base, it), it)
		if !sameSet(got, base) {
			t.Errorf("%s: toggle twice = %v, want %v", c, ids(got), ids(base))
		}
	}

	// For avatars the second toggle is a no-op: the base avatar stays.
	got := Toggle(Toggle(base, item("a2", CategoryAvatars)), item("a2", CategoryAvatars))
	if !got.Contains("a2") {
		t.Error("expected a2 to remain equipped after double toggle")
	}
}

func TestToggleAvatarInvariant(t *testing.T) {
	// After equipping any avatar, the set holds exactly one Avatars item.
	sets := []EquippedSet{
		{},
		{item("a1", CategoryAvatars)},
		{item("a1", CategoryAvatars), item("h1", CategoryHats), item("s1", CategoryShirts)},
	}
	a9 := item("a9", CategoryAvatars)

	for _, s := range sets {
		got := Toggle(s, a9)
		var avatars []string
		for _, it := range got {
			if it.Category == CategoryAvatars {
				avatars = append(avatars, it.ID)
			}
		}
		if len(avatars) != 1 || avatars[0] != "a9" {
			t.Errorf("avatars after toggle = %v, want [a9]", avatars)
		}
	}
}

func TestToggleScenario(t *testing.T) {
	// The full dressing-room walk-through: avatar, two hats, avatar swap.
	a1 := item("a1", CategoryAvatars)
	a2 := item("a2", CategoryAvatars)
	h1 := item("h1", CategoryHats)
	h2 := item("h2", CategoryHats)

	s := EquippedSet{}
	s = Toggle(s, a1)
	if !sameSet(s, EquippedSet{a1}) {
		t.Fatalf("after equip a1: %v", ids(s))
	}
	s = Toggle(s, h1)
	s = Toggle(s, h2)
	if !sameSet(s, EquippedSet{a1, h1, h2}) {
		t.Fatalf("after equip hats: %v", ids(s))
	}
	s = Toggle(s, a2)
	if !sameSet(s, EquippedSet{a2, h1, h2}) {
		t.Fatalf("after avatar swap: %v, want hats retained and a1 replaced", ids(s))
	}
}

func TestReset(t *testing.T) {
	def := item(DefaultAvatarID, CategoryAvatars)
	catalog := []Item{item("h1", CategoryHats), def, item("a2", CategoryAvatars)}

	got := Reset(catalog)
	if len(got) != 1 || got[0].ID != DefaultAvatarID {
		t.Errorf("Reset() = %v, want singleton %s", ids(got), DefaultAvatarID)
	}

	// Catalog without the default avatar resets to nothing.
	got = Reset([]Item{item("a2", CategoryAvatars)})
	if len(got) != 0 {
		t.Errorf("Reset() without default avatar = %v, want empty", ids(got))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     EquippedSet
		wantErr bool
	}{
		{"empty set", EquippedSet{}, false},
		{"avatar with accessories", EquippedSet{item("a1", CategoryAvatars), item("h1", CategoryHats), item("h2", CategoryHats)}, false},
		{"two avatars", EquippedSet{item("a1", CategoryAvatars), item("a2", CategoryAvatars)}, true},
		{"two shirts", EquippedSet{item("s1", CategoryShirts), item("s2", CategoryShirts)}, true},
		{"two pants", EquippedSet{item("p1", CategoryPants), item("p2", CategoryPants)}, true},
		{"duplicate item", EquippedSet{item("h1", CategoryHats), item("h1", CategoryHats)}, true},
		{"unknown category", EquippedSet{item("x", Category("Shoes"))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.set)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
