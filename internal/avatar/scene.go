package avatar

// Prop is one accessory model placed in the preview scene.
type Prop struct {
	ItemID   string `json:"item_id"`
	ModelURL string `json:"model_url"`
	Placement
}

// Scene is everything the render surface needs to draw an equipped set:
// the base avatar model (absent when none is equipped) and the placed
// accessory models.
type Scene struct {
	// BaseModelURL is the equipped base avatar's model. Nil means no avatar
	// is equipped and the renderer shows its placeholder body.
	BaseModelURL *string `json:"base_model_url,omitempty"`

	Props []Prop `json:"props"`
}

// ComposeScene turns an equipped set into a renderable scene. Accessories
// attach at their category's placement when a base avatar is present;
// without one they sit at the origin (there is no rig to attach to),
// keeping the category scale. Accessories sharing an attachment point
// simply overlap.
func ComposeScene(s EquippedSet) Scene {
	scene := Scene{Props: []Prop{}}

	base, hasBase := s.Avatar()
	if hasBase {
		url := base.ModelURL
		scene.BaseModelURL = &url
	}

	for _, it := range s.Accessories() {
		p := PlacementFor(it.Category)
		if !hasBase {
			p.Position = Vec3{}
		}
		scene.Props = append(scene.Props, Prop{
			ItemID:    it.ID,
			ModelURL:  it.ModelURL,
			Placement: p,
		})
	}
	return scene
}
