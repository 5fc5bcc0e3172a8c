package models

// ExperienceGenre is the closed set of experience genres.
type ExperienceGenre string

const (
	GenreAdventure  ExperienceGenre = "Adventure"
	GenreRoleplay   ExperienceGenre = "Roleplay"
	GenreCombat     ExperienceGenre = "Combat"
	GenreSimulation ExperienceGenre = "Simulation"
	GenreObby       ExperienceGenre = "Obby"
	GenreRacing     ExperienceGenre = "Racing"
)

// Experience is a playable virtual experience in the catalog.
type Experience struct {
	// ID is the unique identifier for the experience (UUID format).
	ID string `json:"id"`

	// Title is the experience's display name.
	Title string `json:"title"`

	// Creator is the display name of the experience's author.
	Creator string `json:"creator"`

	// CreatorAvatarURL is the author's profile picture.
	CreatorAvatarURL string `json:"creator_avatar_url"`

	// ThumbnailURL is the card image shown in the grid.
	ThumbnailURL string `json:"thumbnail_url"`

	// PlayerCount is the current number of active players.
	PlayerCount int64 `json:"player_count"`

	// Genre buckets the experience for browsing.
	Genre ExperienceGenre `json:"genre"`

	// Description is the long-form text on the detail page.
	Description string `json:"description"`
}
