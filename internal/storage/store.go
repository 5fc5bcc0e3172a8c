// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/atlax/atlax/internal/avatar"
	"github.com/atlax/atlax/internal/models"
)

// ItemDraft is the user-supplied part of a new wearable item. The store
// assigns the ID and marks the item user-owned.
type ItemDraft struct {
	Name         string
	ModelURL     string
	ThumbnailURL *string
	Category     avatar.Category
}

// Store defines the persistence gateway for the ATLAX backend. The
// abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the handlers.
type Store interface {
	// --- Auth accounts ---

	// CreateUser persists a new account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves an account by email.
	// Returns (nil, nil) when no such account exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves an account by ID.
	// Returns (nil, nil) when no such account exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// --- Profiles ---

	// CreateProfile persists a new profile. Called once at registration.
	CreateProfile(ctx context.Context, profile *models.Profile) error

	// GetProfile retrieves a profile by user ID.
	// Returns (nil, nil) when no such profile exists.
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)

	// UpdateProfile applies the non-nil fields of update and returns the
	// resulting profile.
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error)

	// --- Wearable items ---

	// ListCatalogItems returns the default (system-provided) catalog.
	ListCatalogItems(ctx context.Context) ([]avatar.Item, error)

	// ListUserItems returns the items owned by a user.
	ListUserItems(ctx context.Context, userID string) ([]avatar.Item, error)

	// AddUserItem persists a user-contributed item and returns it with its
	// assigned ID.
	AddUserItem(ctx context.Context, userID string, draft ItemDraft) (*avatar.Item, error)

	// --- Equipped sets ---

	// GetEquippedSet returns the user's saved equipped set. The bool is
	// false when the user has never saved one (callers fall back to the
	// reset default).
	GetEquippedSet(ctx context.Context, userID string) (avatar.EquippedSet, bool, error)

	// SaveEquippedSet replaces the user's saved set with the given one.
	// Last write wins: there is no version check, so a stale save can
	// overwrite a newer one. Only one session edits a given user's avatar,
	// so no conflict handling exists.
	SaveEquippedSet(ctx context.Context, userID string, set avatar.EquippedSet) error

	// --- Experiences and reviews ---

	// ListExperiences returns the experience catalog.
	ListExperiences(ctx context.Context) ([]models.Experience, error)

	// GetExperience retrieves an experience by ID.
	// Returns (nil, nil) when no such experience exists.
	GetExperience(ctx context.Context, id string) (*models.Experience, error)

	// ListReviews returns an experience's reviews, newest first, with
	// author profile fields joined in.
	ListReviews(ctx context.Context, experienceID string) ([]models.Review, error)

	// AddReview persists a review and returns it with author fields set.
	AddReview(ctx context.Context, review *models.Review) (*models.Review, error)

	// --- Social ---

	// ListFriends returns a user's friends list.
	ListFriends(ctx context.Context, userID string) ([]models.Friend, error)

	// ListFriendActivity returns what the user's online friends are
	// currently playing.
	ListFriendActivity(ctx context.Context, userID string) ([]models.FriendActivity, error)

	// --- News ---

	// ListNews returns the platform news feed.
	ListNews(ctx context.Context) ([]models.NewsArticle, error)

	// --- Billing ---

	// ListTransactions returns a user's currency ledger, newest first.
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)

	// AddTransaction appends a ledger entry and adjusts the profile's
	// currency balance by the entry's amount, atomically.
	AddTransaction(ctx context.Context, tx *models.Transaction) error

	// Close releases any resources held by the store.
	Close() error
}
