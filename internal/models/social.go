package models

// FriendStatus is a friend's presence state.
type FriendStatus string

const (
	FriendOnline  FriendStatus = "online"
	FriendOffline FriendStatus = "offline"
)

// Friend is one entry in a user's friends list.
type Friend struct {
	// Name is the friend's display name.
	Name string `json:"name"`

	// AvatarURL is the friend's profile picture.
	AvatarURL string `json:"avatar_url"`

	// Status is the friend's presence state.
	Status FriendStatus `json:"status"`

	// CurrentExperienceID is the experience the friend is playing right
	// now. Nil when offline or idle.
	CurrentExperienceID *string `json:"current_experience_id,omitempty"`
}

// FriendActivity pairs an online friend with the experience they are in,
// for the "friends are playing" rail on the home page.
type FriendActivity struct {
	FriendName      string     `json:"friend_name"`
	FriendAvatarURL string     `json:"friend_avatar_url"`
	Experience      Experience `json:"experience"`
}
