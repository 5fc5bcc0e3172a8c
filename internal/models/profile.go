package models

// Profile is the public side of a user: what other players and the client
// UI see. One profile per user, created at registration.
type Profile struct {
	// ID matches the owning User's ID.
	ID string `json:"id"`

	// Username is the display name, editable by the user.
	Username string `json:"username"`

	// AvatarURL is the profile picture. Nil until the user uploads one or
	// saves an avatar with a thumbnail.
	AvatarURL *string `json:"avatar_url,omitempty"`

	// Currency is the user's platform currency balance. The transactions
	// ledger records how it got here.
	Currency int64 `json:"currency"`
}

// ProfileUpdate carries the editable profile fields. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	Username  *string `json:"username,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
