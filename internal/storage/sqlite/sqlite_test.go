package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/atlax/atlax/internal/avatar"
	"github.com/atlax/atlax/internal/models"
	"github.com/atlax/atlax/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "atlax-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, email, username string) *models.User {
	t.Helper()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	user := models.NewUser(email, string(hash))
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := store.CreateProfile(ctx, &models.Profile{ID: user.ID, Username: username}); err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	return user
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("seeds default catalog", func(t *testing.T) {
		items, err := store.ListCatalogItems(ctx)
		if err != nil {
			t.Fatalf("ListCatalogItems failed: %v", err)
		}
		if len(items) == 0 {
			t.Fatal("expected seeded catalog items")
		}
		found := false
		for _, it := range items {
			if it.UserOwned {
				t.Errorf("catalog item %s marked user-owned", it.ID)
			}
			if it.ID == avatar.DefaultAvatarID {
				found = true
			}
		}
		if !found {
			t.Errorf("default avatar %s missing from seeded catalog", avatar.DefaultAvatarID)
		}
	})

	t.Run("user and profile round-trip", func(t *testing.T) {
		user := createTestUser(t, store, "alice@example.com", "alice")

		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != user.ID {
			t.Fatalf("GetUserByEmail = %+v, want ID %s", got, user.ID)
		}

		missing, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if missing != nil {
			t.Errorf("expected nil for unknown email, got %+v", missing)
		}

		profile, err := store.GetProfile(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetProfile failed: %v", err)
		}
		if profile.Username != "alice" {
			t.Errorf("username = %s, want alice", profile.Username)
		}
		if profile.AvatarURL != nil {
			t.Errorf("expected nil avatar URL, got %v", *profile.AvatarURL)
		}
	})

	t.Run("profile partial update", func(t *testing.T) {
		user := createTestUser(t, store, "bob@example.com", "bob")

		url := "/avatars/bob.png"
		updated, err := store.UpdateProfile(ctx, user.ID, models.ProfileUpdate{AvatarURL: &url})
		if err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		if updated.Username != "bob" {
			t.Errorf("username changed unexpectedly: %s", updated.Username)
		}
		if updated.AvatarURL == nil || *updated.AvatarURL != url {
			t.Errorf("avatar URL = %v, want %s", updated.AvatarURL, url)
		}
	})

	t.Run("user items", func(t *testing.T) {
		user := createTestUser(t, store, "carol@example.com", "carol")

		item, err := store.AddUserItem(ctx, user.ID, storage.ItemDraft{
			Name:     "Wizard Hat",
			ModelURL: "/uploads/wizard.glb",
			Category: avatar.CategoryHats,
		})
		if err != nil {
			t.Fatalf("AddUserItem failed: %v", err)
		}
		if item.ID == "" {
			t.Error("expected item ID to be generated")
		}
		if !item.UserOwned {
			t.Error("expected item to be user-owned")
		}

		items, err := store.ListUserItems(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListUserItems failed: %v", err)
		}
		if len(items) != 1 || items[0].ID != item.ID {
			t.Errorf("ListUserItems = %+v, want the uploaded hat", items)
		}

		// User items never leak into the default catalog.
		catalog, err := store.ListCatalogItems(ctx)
		if err != nil {
			t.Fatalf("ListCatalogItems failed: %v", err)
		}
		for _, it := range catalog {
			if it.ID == item.ID {
				t.Error("user item appeared in default catalog")
			}
		}
	})

	t.Run("equipped set lifecycle", func(t *testing.T) {
		user := createTestUser(t, store, "dave@example.com", "dave")

		_, found, err := store.GetEquippedSet(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetEquippedSet failed: %v", err)
		}
		if found {
			t.Fatal("expected no saved set for a fresh user")
		}

		catalog, err := store.ListCatalogItems(ctx)
		if err != nil {
			t.Fatalf("ListCatalogItems failed: %v", err)
		}
		set := avatar.Reset(catalog)
		for _, it := range catalog {
			if it.Category == avatar.CategoryHats {
				set = avatar.Toggle(set, it)
				break
			}
		}
		if len(set) != 2 {
			t.Fatalf("test setup: set = %d items, want avatar plus hat", len(set))
		}

		if err := store.SaveEquippedSet(ctx, user.ID, set); err != nil {
			t.Fatalf("SaveEquippedSet failed: %v", err)
		}

		got, found, err := store.GetEquippedSet(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetEquippedSet failed: %v", err)
		}
		if !found {
			t.Fatal("expected saved set")
		}
		if len(got) != len(set) {
			t.Fatalf("saved set size = %d, want %d", len(got), len(set))
		}
		for _, it := range set {
			if !got.Contains(it.ID) {
				t.Errorf("saved set missing %s", it.ID)
			}
		}

		// A second save replaces, not appends.
		replacement := avatar.Reset(catalog)
		if err := store.SaveEquippedSet(ctx, user.ID, replacement); err != nil {
			t.Fatalf("SaveEquippedSet failed: %v", err)
		}
		got, _, err = store.GetEquippedSet(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetEquippedSet failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != avatar.DefaultAvatarID {
			t.Errorf("after replace: %+v, want just the default avatar", got)
		}
	})

	t.Run("reviews join author profile", func(t *testing.T) {
		user := createTestUser(t, store, "erin@example.com", "erin")

		review, err := store.AddReview(ctx, &models.Review{
			ExperienceID: "exp_skyward",
			UserID:       user.ID,
			Rating:       5,
			Comment:      "Lost a whole weekend to this.",
		})
		if err != nil {
			t.Fatalf("AddReview failed: %v", err)
		}
		if review.Author != "erin" {
			t.Errorf("author = %s, want erin", review.Author)
		}

		reviews, err := store.ListReviews(ctx, "exp_skyward")
		if err != nil {
			t.Fatalf("ListReviews failed: %v", err)
		}
		if len(reviews) != 1 || reviews[0].Comment != "Lost a whole weekend to this." {
			t.Errorf("ListReviews = %+v", reviews)
		}
	})

	t.Run("transactions adjust balance", func(t *testing.T) {
		user := createTestUser(t, store, "frank@example.com", "frank")

		if err := store.AddTransaction(ctx, &models.Transaction{
			UserID:      user.ID,
			Description: "Welcome bonus",
			Amount:      500,
		}); err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}
		if err := store.AddTransaction(ctx, &models.Transaction{
			UserID:      user.ID,
			Description: "Bought Top Hat",
			Amount:      -150,
		}); err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}

		profile, err := store.GetProfile(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetProfile failed: %v", err)
		}
		if profile.Currency != 350 {
			t.Errorf("balance = %d, want 350", profile.Currency)
		}

		txs, err := store.ListTransactions(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(txs) != 2 {
			t.Errorf("transactions = %d, want 2", len(txs))
		}
	})

	t.Run("seeded experiences and social data", func(t *testing.T) {
		experiences, err := store.ListExperiences(ctx)
		if err != nil {
			t.Fatalf("ListExperiences failed: %v", err)
		}
		if len(experiences) == 0 {
			t.Fatal("expected seeded experiences")
		}

		exp, err := store.GetExperience(ctx, experiences[0].ID)
		if err != nil {
			t.Fatalf("GetExperience failed: %v", err)
		}
		if exp == nil || exp.ID != experiences[0].ID {
			t.Errorf("GetExperience = %+v", exp)
		}

		missing, err := store.GetExperience(ctx, "exp_nope")
		if err != nil {
			t.Fatalf("GetExperience failed: %v", err)
		}
		if missing != nil {
			t.Errorf("expected nil for unknown experience, got %+v", missing)
		}

		user := createTestUser(t, store, "gail@example.com", "gail")
		friends, err := store.ListFriends(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListFriends failed: %v", err)
		}
		if len(friends) == 0 {
			t.Error("expected demo friends")
		}

		activity, err := store.ListFriendActivity(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListFriendActivity failed: %v", err)
		}
		for _, a := range activity {
			if a.Experience.ID == "" {
				t.Errorf("activity for %s missing experience", a.FriendName)
			}
		}

		news, err := store.ListNews(ctx)
		if err != nil {
			t.Fatalf("ListNews failed: %v", err)
		}
		if len(news) == 0 {
			t.Error("expected seeded news")
		}
	})
}
