package collision

import (
	"testing"

	"github.com/arloliu/geowire/errs"
	"github.com/stretchr/testify/require"
)

func TestTracker_TrackName(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackName("parcel/1", 0x0001))
	require.NoError(t, tracker.TrackName("parcel/2", 0x0002))
	require.False(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())

	t.Run("Empty name", func(t *testing.T) {
		require.ErrorIs(t, tracker.TrackName("", 0x0003), errs.ErrInvalidFeatureName)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		require.ErrorIs(t, tracker.TrackName("parcel/1", 0x0001), errs.ErrFeatureExists)
	})

	require.Equal(t, 2, tracker.Count())
}

func TestTracker_TrackName_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackName("road/a", 0xABCD))
	require.NoError(t, tracker.TrackName("road/b", 0xABCD))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())

	// the first name stays known after the collision
	require.ErrorIs(t, tracker.TrackName("road/a", 0xABCD), errs.ErrFeatureExists)
	require.ErrorIs(t, tracker.TrackName("road/b", 0xABCD), errs.ErrFeatureExists)
}

func TestTracker_TrackID(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackID(0x1111111111111111))
	require.NoError(t, tracker.TrackID(0x2222222222222222))
	require.Equal(t, 2, tracker.Count())
	require.Empty(t, tracker.Names())

	err := tracker.TrackID(0x1111111111111111)
	require.ErrorIs(t, err, errs.ErrHashCollision)
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Names_PreservesOrder(t *testing.T) {
	tracker := NewTracker()

	names := []string{"zone/c", "zone/a", "zone/d", "zone/b"}
	for i, name := range names {
		require.NoError(t, tracker.TrackName(name, uint64(i)))
	}

	require.Equal(t, names, tracker.Names())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackName("a", 1))
	require.NoError(t, tracker.TrackName("b", 1))
	require.True(t, tracker.HasCollision())

	tracker.Reset()

	require.Zero(t, tracker.Count())
	require.Empty(t, tracker.Names())
	require.False(t, tracker.HasCollision())
	require.NoError(t, tracker.TrackName("a", 1))
	require.False(t, tracker.HasCollision())
}
