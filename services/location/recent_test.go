package location

import (
	"fmt"
	"testing"

	"washly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(label string) models.RecentLocation {
	return models.RecentLocation{ID: "id-" + label, Label: label}
}

func TestPushRecentCapsAtLimit(t *testing.T) {
	var list []models.RecentLocation
	for i := 1; i <= 6; i++ {
		list = PushRecent(list, loc(fmt.Sprintf("Place %d", i)), RecentLimit)
	}

	require.Len(t, list, RecentLimit)
	// Most-recent-first: the oldest insert fell off.
	assert.Equal(t, "Place 6", list[0].Label)
	assert.Equal(t, "Place 2", list[4].Label)
}

func TestPushRecentDeduplicatesByLabel(t *testing.T) {
	var list []models.RecentLocation
	list = PushRecent(list, loc("Hydra"), RecentLimit)
	list = PushRecent(list, loc("Alger Centre"), RecentLimit)
	list = PushRecent(list, loc("Bab Ezzouar"), RecentLimit)
	// Non-consecutive re-insert moves the entry back to the front.
	list = PushRecent(list, loc("Hydra"), RecentLimit)

	require.Len(t, list, 3)
	assert.Equal(t, "Hydra", list[0].Label)
	assert.Equal(t, "Bab Ezzouar", list[1].Label)
	assert.Equal(t, "Alger Centre", list[2].Label)
}
