package avatar

// Item is a single wearable catalog entry.
type Item struct {
	// ID is the unique identifier for the item. Default catalog items use
	// well-known IDs (e.g. "avatar_male"); user items use UUIDs.
	ID string `json:"id"`

	// Name is the display name of the item.
	Name string `json:"name"`

	// ModelURL points at the item's 3D model (.glb/.gltf).
	ModelURL string `json:"model_url"`

	// ThumbnailURL is the optional preview image. Nil when the item has no
	// thumbnail and the client renders a placeholder instead.
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`

	// Category decides slot behavior and attachment placement.
	Category Category `json:"category"`

	// UserOwned marks user-uploaded or user-created items, as opposed to
	// the default catalog.
	UserOwned bool `json:"user_owned"`
}
