package avatar

import "testing"

func userItem(id string, c Category) Item {
	it := item(id, c)
	it.UserOwned = true
	return it
}

func testCatalog() []Item {
	return []Item{
		item("avatar_male", CategoryAvatars),
		item("avatar_female", CategoryAvatars),
		userItem("my_avatar", CategoryAvatars),
		item("hat_cap", CategoryHats),
		item("shirt_tee", CategoryShirts),
		item("shirt_hoodie", CategoryShirts),
		item("pants_jeans", CategoryPants),
		item("acc_glasses", CategoryAccessories),
		userItem("my_hat", CategoryHats),
		userItem("my_shirt", CategoryShirts),
	}
}

func assertIDs(t *testing.T, got []Item, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items %v, want %d %v", len(got), itemIDs(got), len(want), want)
	}
	found := make(map[string]bool, len(got))
	for _, it := range got {
		found[it.ID] = true
	}
	for _, id := range want {
		if !found[id] {
			t.Errorf("missing %s in %v", id, itemIDs(got))
		}
	}
}

func itemIDs(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestCatalogPartitions(t *testing.T) {
	catalog := testCatalog()

	t.Run("default avatars", func(t *testing.T) {
		assertIDs(t, DefaultAvatars(catalog), "avatar_male", "avatar_female")
	})

	t.Run("user avatars", func(t *testing.T) {
		assertIDs(t, UserAvatars(catalog), "my_avatar")
	})

	t.Run("my items excludes avatars", func(t *testing.T) {
		assertIDs(t, MyItems(catalog), "my_hat", "my_shirt")
	})
}

func TestBrowse(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name     string
		topLevel string
		sub      Category
		want     []string
	}{
		{
			// Clothing/All: every default shirt and pant, no hats,
			// accessories, avatars, or user items.
			name:     "clothing all",
			topLevel: TopClothing,
			want:     []string{"shirt_tee", "shirt_hoodie", "pants_jeans"},
		},
		{
			name:     "clothing filtered to pants",
			topLevel: TopClothing,
			sub:      CategoryPants,
			want:     []string{"pants_jeans"},
		},
		{
			name:     "accessories tab spans hats and accessories",
			topLevel: TopAccessories,
			want:     []string{"hat_cap", "acc_glasses"},
		},
		{
			name:     "body tab is empty",
			topLevel: TopBody,
			want:     nil,
		},
		{
			name:     "unknown tab yields empty, not error",
			topLevel: "Pets",
			want:     nil,
		},
		{
			name:     "avatars tab excludes user avatars",
			topLevel: TopAvatars,
			want:     []string{"avatar_male", "avatar_female"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Browse(catalog, tt.topLevel, tt.sub)
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestSubCategories(t *testing.T) {
	if got := SubCategories(TopClothing); len(got) != 2 {
		t.Errorf("Clothing sub-categories = %v, want [Shirts Pants]", got)
	}
	if got := SubCategories(TopMyItems); got != nil {
		t.Errorf("My Items sub-categories = %v, want nil", got)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c, got, err)
		}
	}
	if _, err := ParseCategory("Shoes"); err == nil {
		t.Error("expected error for unknown category")
	}
}
