package services

import (
	"testing"

	"github.com/skillshare-platform/backend/internal/auth"
	"github.com/skillshare-platform/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertOwner(t *testing.T) {
	assert.NoError(t, AssertOwner(1, 1))
	assert.ErrorIs(t, AssertOwner(1, 2), ErrUnauthorized)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	f := newFixture(t)

	user, err := f.userSvc.Register("Alice", "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, models.ProviderLocal, user.Provider)
	assert.True(t, user.Active)
	assert.NotEqual(t, "hunter2hunter2", user.Password, "password must be stored hashed")

	_, err = f.userSvc.Register("Alice2", "alice@example.com", "whatever123")
	assert.ErrorIs(t, err, ErrEmailTaken)

	authed, err := f.userSvc.Authenticate("alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = f.userSvc.Authenticate("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email fails identically to a wrong password
	_, err = f.userSvc.Authenticate("ghost@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionResolvesBothPrincipals(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")

	user, err := f.userSvc.Session(auth.SessionPrincipal{Username: alice.Email})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	user, err = f.userSvc.Session(auth.ProviderPrincipal{
		Attributes: map[string]interface{}{"email": alice.Email},
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	_, err = f.userSvc.Session(nil)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestEnsureProviderAccount(t *testing.T) {
	f := newFixture(t)

	user, err := f.userSvc.EnsureProviderAccount("v@example.com", "V", models.ProviderFirebase)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderFirebase, user.Provider)
	assert.Empty(t, user.Password)

	again, err := f.userSvc.EnsureProviderAccount("v@example.com", "V", models.ProviderFirebase)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestUpdateProfileOwnershipGate(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")
	bob := f.seedUser(t, "Bob", "bob@example.com")

	bio := "learning Go"
	_, err := f.userSvc.UpdateProfile(alice.ID, bob.Email, models.UpdateProfileRequest{Bio: &bio}, nil, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	updated, err := f.userSvc.UpdateProfile(alice.ID, alice.Email, models.UpdateProfileRequest{
		Name: "Alice L",
		Bio:  &bio,
	}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Alice L", updated.Name)
	assert.Equal(t, "learning Go", updated.Bio)

	// blank name does not overwrite the existing one
	updated, err = f.userSvc.UpdateProfile(alice.ID, alice.Email, models.UpdateProfileRequest{Name: "  "}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Alice L", updated.Name)
}

func TestGetProfileIncludesGraphEnds(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")
	bob := f.seedUser(t, "Bob", "bob@example.com")
	require.NoError(t, f.followSvc.Follow(bob.ID, alice.ID))

	profile, err := f.userSvc.GetProfile(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob.ID}, profile.Followers)
	assert.Empty(t, profile.Following)

	_, err = f.userSvc.GetProfile(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
