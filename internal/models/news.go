package models

// NewsArticle is a platform news entry shown on the home page.
type NewsArticle struct {
	// ID is the unique identifier for the article (UUID format).
	ID string `json:"id"`

	// Title is the headline.
	Title string `json:"title"`

	// Category is a free-form section label (e.g. "Updates", "Events").
	Category string `json:"category"`

	// Summary is the teaser text under the headline.
	Summary string `json:"summary"`

	// ImageURL is the article's header image.
	ImageURL string `json:"image_url"`
}
