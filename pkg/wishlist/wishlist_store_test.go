package wishlist

import (
	"testing"
	"time"

	"github.com/PinjaMari/earn-to-own/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}

func TestStore_AddAndList(t *testing.T) {
	store := NewStore(clock)

	// when
	item, ok := store.Add("Phone", 499.99, 20.0)

	// then
	require.True(t, ok)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Phone", item.Name)
	assert.Equal(t, 499.99, item.Price)
	assert.Equal(t, 20.0, item.HoursNeeded)
	assert.Equal(t, clock.FixedNow, item.CreatedAt)

	items := store.List()
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	store := NewStore(clock)

	first, _ := store.Add("Coffee", 4.50, 0.18)
	second, _ := store.Add("Shirt", 49.99, 2.0)
	third, _ := store.Add("Phone", 499.99, 20.0)

	items := store.List()
	require.Len(t, items, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestStore_AddRejectsEmptyName(t *testing.T) {
	store := NewStore(clock)

	_, ok := store.Add("", 10, 1)
	assert.False(t, ok)

	_, ok = store.Add("   ", 10, 1)
	assert.False(t, ok)

	assert.Empty(t, store.List())
}

func TestStore_AddRejectsNegativeValues(t *testing.T) {
	store := NewStore(clock)

	_, ok := store.Add("Phone", -1, 20)
	assert.False(t, ok)

	_, ok = store.Add("Phone", 499.99, -1)
	assert.False(t, ok)

	assert.Empty(t, store.List())
}

func TestStore_AddThenRemoveIsRoundTripNeutral(t *testing.T) {
	store := NewStore(clock)
	store.Add("Coffee", 4.50, 0.18)
	store.Add("Shirt", 49.99, 2.0)
	before := store.List()

	// when
	item, ok := store.Add("Phone", 499.99, 20.0)
	require.True(t, ok)
	removed := store.Remove(item.ID)

	// then
	assert.True(t, removed)
	assert.Equal(t, before, store.List())
}

func TestStore_RemoveMissingIdIsANoOp(t *testing.T) {
	store := NewStore(clock)
	store.Add("Coffee", 4.50, 0.18)

	removed := store.Remove("no-such-id")

	assert.False(t, removed)
	assert.Len(t, store.List(), 1)
}

func TestStore_Get(t *testing.T) {
	store := NewStore(clock)
	item, _ := store.Add("Phone", 499.99, 20.0)

	found, ok := store.Get(item.ID)
	require.True(t, ok)
	assert.Equal(t, item, found)

	_, ok = store.Get("no-such-id")
	assert.False(t, ok)

	// lookup does not mutate the store
	assert.Len(t, store.List(), 1)
}

func TestStore_IdsAreUnique(t *testing.T) {
	store := NewStore(clock)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		item, ok := store.Add("Coffee", 4.50, 0.18)
		require.True(t, ok)
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
	}
}
