package avatar

import "testing"

func TestPlacementFor(t *testing.T) {
	tests := []struct {
		category Category
		position Vec3
		scale    Vec3
	}{
		{CategoryHats, Vec3{0, 1.75, 0.05}, Vec3{1, 1, 1}},
		{CategoryShirts, Vec3{0, 1.0, 0}, Vec3{1, 1, 1}},
		{CategoryPants, Vec3{0, 0.5, 0}, Vec3{1, 1, 1}},
		{CategoryAccessories, Vec3{0, 1.55, 0.25}, Vec3{0.25, 0.25, 0.25}},
		{Category("Shoes"), Vec3{0, 0, 0}, Vec3{0.25, 0.25, 0.25}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := PlacementFor(tt.category)
			if got.Position != tt.position {
				t.Errorf("position = %v, want %v", got.Position, tt.position)
			}
			if got.Scale != tt.scale {
				t.Errorf("scale = %v, want %v", got.Scale, tt.scale)
			}
		})
	}
}

func TestComposeScene(t *testing.T) {
	a1 := item("a1", CategoryAvatars)
	h1 := item("h1", CategoryHats)
	g1 := item("g1", CategoryAccessories)

	t.Run("with base avatar", func(t *testing.T) {
		scene := ComposeScene(EquippedSet{a1, h1, g1})
		if scene.BaseModelURL == nil || *scene.BaseModelURL != a1.ModelURL {
			t.Fatalf("base model = %v, want %s", scene.BaseModelURL, a1.ModelURL)
		}
		if len(scene.Props) != 2 {
			t.Fatalf("props = %d, want 2", len(scene.Props))
		}
		for _, p := range scene.Props {
			var want Placement
			switch p.ItemID {
			case "h1":
				want = PlacementFor(CategoryHats)
			case "g1":
				want = PlacementFor(CategoryAccessories)
			default:
				t.Fatalf("unexpected prop %s", p.ItemID)
			}
			if p.Placement != want {
				t.Errorf("%s placement = %v, want %v", p.ItemID, p.Placement, want)
			}
		}
	})

	t.Run("without base avatar props sit at the origin", func(t *testing.T) {
		scene := ComposeScene(EquippedSet{h1})
		if scene.BaseModelURL != nil {
			t.Errorf("base model = %v, want absent", *scene.BaseModelURL)
		}
		if len(scene.Props) != 1 {
			t.Fatalf("props = %d, want 1", len(scene.Props))
		}
		p := scene.Props[0]
		if (p.Position != Vec3{}) {
			t.Errorf("position = %v, want origin", p.Position)
		}
		// Category scale still applies; only the attachment offset is lost.
		if p.Scale != PlacementFor(CategoryHats).Scale {
			t.Errorf("scale = %v, want %v", p.Scale, PlacementFor(CategoryHats).Scale)
		}
	})

	t.Run("empty set", func(t *testing.T) {
		scene := ComposeScene(EquippedSet{})
		if scene.BaseModelURL != nil || len(scene.Props) != 0 {
			t.Errorf("scene = %+v, want empty", scene)
		}
	})
}
