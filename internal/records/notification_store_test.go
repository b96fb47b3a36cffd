package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLifecycle(t *testing.T) {
	kv := newFakeKV()
	store := NewNotificationStore(kv)

	n := store.Create("goal_achieved", "You kept a promise to yourself", "You achieved: piano", "goal-1")
	require.NotNil(t, n)
	assert.False(t, n.Read)

	unread := store.Unread()
	require.Len(t, unread, 1)
	assert.Equal(t, n.ID, unread[0].ID)

	assert.False(t, store.Dismiss("missing"))
	assert.True(t, store.Dismiss(n.ID))
	assert.Empty(t, store.Unread())

	// Dismissal survives a reload.
	reloaded := NewNotificationStore(kv)
	assert.Empty(t, reloaded.Unread())
}
