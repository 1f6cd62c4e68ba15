package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLifecycle(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")
	bob := f.seedUser(t, "Bob", "bob@example.com")

	notifier := NewStoreNotifier(f.notifications, zapNop())
	notifier.Notify(alice.ID, "first")
	notifier.Notify(alice.ID, "second")

	list, err := f.notificationSvc.ListForUser(alice.Email)
	require.NoError(t, err)
	require.Len(t, list, 2)

	count, err := f.notificationSvc.UnreadCount(alice.Email)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// only the target may mark a notification read
	err = f.notificationSvc.MarkRead(list[0].ID, bob.Email)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, f.notificationSvc.MarkRead(list[0].ID, alice.Email))
	count, err = f.notificationSvc.UnreadCount(alice.Email)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, f.notificationSvc.MarkAllRead(alice.Email))
	count, err = f.notificationSvc.UnreadCount(alice.Email)
	require.NoError(t, err)
	assert.Zero(t, count)

	// only the target may delete
	err = f.notificationSvc.Delete(list[1].ID, bob.Email)
	assert.ErrorIs(t, err, ErrUnauthorized)
	require.NoError(t, f.notificationSvc.Delete(list[1].ID, alice.Email))

	list, err = f.notificationSvc.ListForUser(alice.Email)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNotificationMissingTargets(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "Alice", "alice@example.com")

	_, err := f.notificationSvc.ListForUser("ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.notificationSvc.MarkRead(999, alice.Email)
	assert.ErrorIs(t, err, ErrNotFound)
}
