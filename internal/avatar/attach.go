package avatar

// Vec3 is a position or scale in the preview scene's coordinate space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Placement is where an accessory attaches relative to the base body.
type Placement struct {
	Position Vec3 `json:"position"`
	Scale    Vec3 `json:"scale"`
}

// PlacementFor returns the attachment placement for a category. The offsets
// approximate attachment points on a humanoid rig without true bone
// binding; the render surface does the actual rigging.
func PlacementFor(c Category) Placement {
	switch c {
	case CategoryHats:
		return Placement{
			Position: Vec3{X: 0, Y: 1.75, Z: 0.05}, // on the head
			Scale:    Vec3{X: 1, Y: 1, Z: 1},
		}
	case CategoryShirts:
		return Placement{
			Position: Vec3{X: 0, Y: 1.0, Z: 0}, // centered on the torso
			Scale:    Vec3{X: 1, Y: 1, Z: 1},
		}
	case CategoryPants:
		return Placement{
			Position: Vec3{X: 0, Y: 0.5, Z: 0}, // centered on the legs
			Scale:    Vec3{X: 1, Y: 1, Z: 1},
		}
	case CategoryAccessories:
		return Placement{
			Position: Vec3{X: 0, Y: 1.55, Z: 0.25}, // e.g. glasses, on the face
			Scale:    Vec3{X: 0.25, Y: 0.25, Z: 0.25},
		}
	}
	// Unmapped categories render as small placeholders at the origin.
	return Placement{Scale: Vec3{X: 0.25, Y: 0.25, Z: 0.25}}
}
