package services

import (
	"testing"

	"github.com/skillshare-platform/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStampsOwnerAndTimestamps(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")

	view, err := f.progressSvc.Create(alice.Email, models.CreateProgressRequest{
		Title: "Learn generics",
		Topic: "go",
		Tags:  []string{"golang"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", view.UserName)
	assert.Equal(t, models.VisibilityPublic, view.Visibility)
	assert.False(t, view.CreatedAt.IsZero())
	assert.Equal(t, view.CreatedAt, view.UpdatedAt)

	stored, err := f.progress.GetUpdateByID(view.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, stored.UserID)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")

	_, err := f.progressSvc.Create(alice.Email, models.CreateProgressRequest{Title: "  ", Topic: "go"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.progressSvc.Create(alice.Email, models.CreateProgressRequest{Title: "x", Topic: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.progressSvc.Create("ghost@example.com", models.CreateProgressRequest{Title: "x", Topic: "go"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOwnershipGate(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")
	bob := f.seedUser(t, "Bob", "bob@example.com")

	view, err := f.progressSvc.Create(alice.Email, models.CreateProgressRequest{Title: "orig", Topic: "go"})
	require.NoError(t, err)

	_, err = f.progressSvc.Update(view.ID, bob.Email, models.UpdateProgressRequest{Title: "hacked", Topic: "go"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	// the item is unchanged
	stored, err := f.progress.GetUpdateByID(view.ID)
	require.NoError(t, err)
	assert.Equal(t, "orig", stored.Title)
	assert.Equal(t, alice.ID, stored.UserID)

	_, err = f.progressSvc.Update(999, alice.Email, models.UpdateProgressRequest{Title: "x", Topic: "go"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAppliesPatch(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")

	view, err := f.progressSvc.Create(alice.Email, models.CreateProgressRequest{
		Title: "orig", Topic: "go", Visibility: "PRIVATE",
	})
	require.NoError(t, err)

	updated, err := f.progressSvc.Update(view.ID, alice.Email, models.UpdateProgressRequest{
		Title:      "revised",
		Topic:      "go",
		Status:     "COMPLETED",
		Visibility: "FRIENDS",
		Tags:       []string{"done"},
	})
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Title)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, models.VisibilityFriends, updated.Visibility)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestDeleteOwnershipGate(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")
	bob := f.seedUser(t, "Bob", "bob@example.com")

	view, err := f.progressSvc.Create(alice.Email, models.CreateProgressRequest{Title: "x", Topic: "go"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.progressSvc.Delete(view.ID, bob.Email), ErrUnauthorized)
	assert.NoError(t, f.progressSvc.Delete(view.ID, alice.Email))
	assert.ErrorIs(t, f.progressSvc.Delete(view.ID, alice.Email), ErrNotFound)
}

func TestListProjectsOwnerName(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")
	_, err := f.progressSvc.Create(alice.Email, models.CreateProgressRequest{Title: "x", Topic: "go"})
	require.NoError(t, err)

	views, err := f.progressSvc.List("")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Alice", views[0].UserName)

	_, err = f.progressSvc.List("ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateNotifiesFollowers(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")
	bob := f.seedUser(t, "Bob", "bob@example.com")
	require.NoError(t, f.followSvc.Follow(bob.ID, alice.ID))

	// one follow notification for alice so far, none for bob
	_, err := f.progressSvc.Create(alice.Email, models.CreateProgressRequest{Title: "shared", Topic: "go"})
	require.NoError(t, err)

	notifications, err := f.notifications.GetByUserID(bob.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Alice shared a progress update: shared", notifications[0].Message)

	// private updates notify nobody
	_, err = f.progressSvc.Create(alice.Email, models.CreateProgressRequest{
		Title: "secret", Topic: "go", Visibility: "PRIVATE",
	})
	require.NoError(t, err)
	notifications, err = f.notifications.GetByUserID(bob.ID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

// Full scenario: a FRIENDS update appears and disappears from another user's
// feed as the mutual follow is formed and broken.
func TestFriendsVisibilityEndToEnd(t *testing.T) {
	f := newFixture(t)

	a, err := f.userSvc.Register("A", "a@x.com", "password-a1")
	require.NoError(t, err)
	b, err := f.userSvc.Register("B", "b@x.com", "password-b1")
	require.NoError(t, err)

	_, err = f.progressSvc.Create(a.Email, models.CreateProgressRequest{
		Title: "friends only", Topic: "go", Visibility: "FRIENDS",
	})
	require.NoError(t, err)

	views, err := f.progressSvc.List(b.Email)
	require.NoError(t, err)
	assert.Empty(t, views, "B should not see A's friends-only update yet")

	require.NoError(t, f.followSvc.Follow(a.ID, b.ID))
	require.NoError(t, f.followSvc.Follow(b.ID, a.ID))

	views, err = f.progressSvc.List(b.Email)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "friends only", views[0].Title)

	require.NoError(t, f.followSvc.Unfollow(b.ID, a.ID))

	views, err = f.progressSvc.List(b.Email)
	require.NoError(t, err)
	assert.Empty(t, views, "breaking the mutual follow hides the update again")
}
