package models

// Review is a user's rating and comment on an experience.
type Review struct {
	// ID is the unique identifier for the review (UUID format).
	ID string `json:"id"`

	// ExperienceID is the reviewed experience.
	ExperienceID string `json:"experience_id"`

	// UserID is the reviewing user.
	UserID string `json:"-"`

	// Author is the reviewer's username, joined from the profile at read
	// time so the client never sees a bare user ID.
	Author string `json:"author"`

	// AuthorAvatarURL is the reviewer's profile picture, if set.
	AuthorAvatarURL *string `json:"author_avatar_url,omitempty"`

	// Rating is 1 to 5 stars. Required.
	Rating int `json:"rating"`

	// Comment is the review text. Required.
	Comment string `json:"comment"`

	// CreatedAt is the Unix timestamp when the review was posted.
	CreatedAt int64 `json:"created_at"`
}
