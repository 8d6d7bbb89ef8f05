package coords

import (
	"math"
	"testing"

	"github.com/arloliu/geowire/bbox"
	"github.com/arloliu/geowire/errs"
	"github.com/stretchr/testify/require"
)

func TestTupleAccessors(t *testing.T) {
	xy := XY{1.5, -2}
	xyz := XYZ{1, 2, 3}

	require.InDelta(t, 1.5, X(xy), 0)
	require.InDelta(t, -2.0, Y(xy), 0)
	require.InDelta(t, 0.0, Z(xy), 0)
	require.InDelta(t, 3.0, Z(xyz), 0)
	require.Equal(t, 2, Arity[XY]())
	require.Equal(t, 3, Arity[XYZ]())

	mbr, err := TupleMBR(xyz)
	require.NoError(t, err)
	require.Equal(t, bbox.MBR{MinX: 1, MinY: 2, MaxX: 1, MaxY: 2}, mbr)
}

func TestPointSeq_Closed(t *testing.T) {
	t.Run("Open ring gets closed", func(t *testing.T) {
		ring := PointSeq[XY]{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

		closed := ring.Closed()
		require.Len(t, closed, 5)
		require.Equal(t, XY{0, 0}, closed[4])
		require.True(t, closed.IsClosed())
		require.Len(t, ring, 4, "input must not be modified")
	})

	t.Run("Idempotent", func(t *testing.T) {
		ring := PointSeq[XY]{{0, 0}, {0, 1}, {1, 1}, {1, 0}}.Closed()
		again := ring.Closed()

		require.Equal(t, ring, again)
		require.Len(t, again, 5)
	})

	t.Run("Idempotent with NaN endpoint", func(t *testing.T) {
		ring := PointSeq[XY]{{math.NaN(), 0}, {1, 1}, {2, 0}}

		once := ring.Closed()
		require.Len(t, once, 4)
		require.True(t, once.IsClosed())
		require.Len(t, once.Closed(), 4)

		z := PointSeq[XYZ]{{0, 0, math.NaN()}, {1, 1, 1}, {0, 0, math.NaN()}}
		require.True(t, z.IsClosed())
		require.Len(t, z.Closed(), 3)
	})

	t.Run("Signed zero endpoints match", func(t *testing.T) {
		ring := PointSeq[XY]{{0, 0}, {1, 1}, {math.Copysign(0, -1), 0}}
		require.True(t, ring.IsClosed())
		require.Len(t, ring.Closed(), 3)
	})

	t.Run("Empty", func(t *testing.T) {
		var ring PointSeq[XYZ]
		require.False(t, ring.IsClosed())
		require.Empty(t, ring.Closed())
	})

	t.Run("Does not alias spare capacity", func(t *testing.T) {
		backing := make(PointSeq[XY], 3, 10)
		backing[0], backing[1], backing[2] = XY{0, 0}, XY{1, 0}, XY{1, 1}

		closed := backing.Closed()
		closed[3] = XY{9, 9}

		require.Equal(t, XY{0, 0}, backing[:4][3], "spare capacity must stay untouched")
	})
}

func TestRingSeq_Closed(t *testing.T) {
	rings := RingSeq[XYZ]{
		{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		{{0, 0, 1}, {0, 1, 1}, {0, 0, 1}},
	}

	closed := rings.Closed()
	require.Len(t, closed[0], 4)
	require.Len(t, closed[1], 3)
	require.True(t, closed.Equal(closed.Closed()))
	require.Nil(t, RingSeq[XY](nil).Closed())
}

func TestPointSeq_MinMax(t *testing.T) {
	seq := PointSeq[XY]{{1, 5}, {3, 2}, {-1, 9}}

	minX, err := seq.MinX()
	require.NoError(t, err)
	require.InDelta(t, -1.0, minX, 0)

	maxX, err := seq.MaxX()
	require.NoError(t, err)
	require.InDelta(t, 3.0, maxX, 0)

	minY, err := seq.MinY()
	require.NoError(t, err)
	require.InDelta(t, 2.0, minY, 0)

	maxY, err := seq.MaxY()
	require.NoError(t, err)
	require.InDelta(t, 9.0, maxY, 0)
}

func TestMBR_Recursive(t *testing.T) {
	set := RingSeqSet[XY]{
		{
			{{0, 0}, {2, 0}, {2, 2}, {0, 0}},
		},
		{
			{{10, -5}, {11, -5}, {11, -4}, {10, -5}},
			{{10.2, -4.8}, {10.5, -4.8}, {10.5, -4.5}, {10.2, -4.8}},
		},
	}

	mbr, err := set.MBR()
	require.NoError(t, err)
	require.Equal(t, bbox.MBR{MinX: 0, MinY: -5, MaxX: 11, MaxY: 2}, mbr)
	require.Equal(t, 12, set.NumPoints())

	ringMBR, err := set[1].MBR()
	require.NoError(t, err)
	require.Equal(t, bbox.MBR{MinX: 10, MinY: -5, MaxX: 11, MaxY: -4}, ringMBR)

	maxY, err := set.MaxY()
	require.NoError(t, err)
	require.InDelta(t, 2.0, maxY, 0)
}

func TestMBR_Errors(t *testing.T) {
	t.Run("Empty point sequence", func(t *testing.T) {
		_, err := PointSeq[XY]{}.MBR()
		require.ErrorIs(t, err, errs.ErrEmptyCoordinates)

		_, err = PointSeq[XY]{}.MinX()
		require.ErrorIs(t, err, errs.ErrEmptyCoordinates)
	})

	t.Run("Ring sequence of empty rings", func(t *testing.T) {
		_, err := RingSeq[XY]{{}, {}}.MBR()
		require.ErrorIs(t, err, errs.ErrEmptyCoordinates)
	})

	t.Run("Empty inner ring is skipped", func(t *testing.T) {
		mbr, err := RingSeq[XY]{{}, {{1, 1}}}.MBR()
		require.NoError(t, err)
		require.Equal(t, bbox.MBR{MinX: 1, MinY: 1, MaxX: 1, MaxY: 1}, mbr)
	})

	t.Run("NaN", func(t *testing.T) {
		seq := PointSeq[XYZ]{{1, 1, 1}, {math.NaN(), 0, 0}}

		_, err := seq.MinX()
		require.ErrorIs(t, err, errs.ErrNaNCoordinate)

		_, err = RingSeqSet[XYZ]{{seq}}.MaxY()
		require.ErrorIs(t, err, errs.ErrNaNCoordinate)
	})

	t.Run("NaN in third scalar is ignored", func(t *testing.T) {
		seq := PointSeq[XYZ]{{1, 1, math.NaN()}}

		_, err := seq.MBR()
		require.NoError(t, err)
	})
}

func TestIteration(t *testing.T) {
	rings := RingSeq[XY]{{{0, 0}}, {{1, 1}, {2, 2}}}

	var lengths []int
	for i, ring := range rings.All() {
		require.Equal(t, rings[i], ring)
		lengths = append(lengths, ring.Len())
	}
	require.Equal(t, []int{1, 2}, lengths)
	require.Equal(t, 2, rings.Len())

	count := 0
	for _, v := range rings[1].All() {
		require.Equal(t, X(v), Y(v))
		count++
	}
	require.Equal(t, 2, count)

	set := RingSeqSet[XY]{rings}
	for _, r := range set.All() {
		require.True(t, r.Equal(rings))
	}
}

func TestClone(t *testing.T) {
	set := RingSeqSet[XY]{{{{0, 0}, {1, 1}}}}
	clone := set.Clone()
	require.True(t, set.Equal(clone))

	clone[0][0][0] = XY{5, 5}
	require.Equal(t, XY{0, 0}, set[0][0][0])
	require.False(t, set.Equal(clone))
}
