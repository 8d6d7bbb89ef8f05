package blob

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/arloliu/geowire/bbox"
	"github.com/arloliu/geowire/coords"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/ewkb"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/internal/fixture"
	"github.com/arloliu/geowire/internal/hash"
	"github.com/arloliu/geowire/section"
	"github.com/arloliu/geowire/spatialite"
	"github.com/stretchr/testify/require"
)

func featureName(i int) string {
	return fmt.Sprintf("feature/%02d", i)
}

func encodeFixtures(t *testing.T, opts ...FeatureEncoderOption) (FeatureBlob, []geometry.Geometry) {
	t.Helper()

	enc, err := NewFeatureEncoder(opts...)
	require.NoError(t, err)

	geoms := fixture.Geometries(4326)
	for i, g := range geoms {
		require.NoError(t, enc.AddByName(featureName(i), g))
	}
	require.Equal(t, len(geoms), enc.Len())

	fb, err := enc.Finish()
	require.NoError(t, err)

	return fb, geoms
}

func TestFeatureBlob_RoundTrip(t *testing.T) {
	wires := []format.WireFormat{format.WireEWKB, format.WireSpatiaLite}
	compressions := []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	}
	orders := map[string]FeatureEncoderOption{
		"LittleEndian": WithLittleEndian(),
		"BigEndian":    WithBigEndian(),
	}

	for _, wire := range wires {
		for _, c := range compressions {
			for orderName, order := range orders {
				t.Run(fmt.Sprintf("%s/%s/%s", wire, c, orderName), func(t *testing.T) {
					fb, geoms := encodeFixtures(t, WithWireFormat(wire), WithCompression(c), order)
					require.Equal(t, wire, fb.Wire())
					require.Equal(t, c, fb.Compression())
					require.Equal(t, orderName == "BigEndian", fb.IsBigEndian())

					decoded, err := DecodeFeatureBlob(fb.Bytes())
					require.NoError(t, err)
					require.Equal(t, len(geoms), decoded.Len())
					require.Equal(t, fb.IDs(), decoded.IDs())
					require.NoError(t, decoded.Validate())

					for i, want := range geoms {
						got, err := decoded.GetByName(featureName(i))
						require.NoError(t, err)
						require.Equal(t, want, got)

						got, err = decoded.Get(hash.ID(featureName(i)))
						require.NoError(t, err)
						require.Equal(t, want, got)

						fromEncoder, err := fb.GetByName(featureName(i))
						require.NoError(t, err)
						require.Equal(t, want, fromEncoder)
					}
				})
			}
		}
	}
}

func TestFeatureBlob_Layout(t *testing.T) {
	p1 := geometry.New(geometry.NewPoint(coords.XY{10, 20}))
	p2 := geometry.NewWithSRID(geometry.NewLineString(coords.PointSeq[coords.XY]{{0, 0}, {1, 1}}), 3857)

	enc, err := NewFeatureEncoder(WithCompression(format.CompressionNone))
	require.NoError(t, err)
	require.NoError(t, enc.AddByID(7, p1))
	require.NoError(t, enc.AddByID(9, p2))

	fb, err := enc.Finish()
	require.NoError(t, err)
	data := fb.Bytes()

	want1, err := ewkb.Marshal(p1, ewkb.WithLittleEndian())
	require.NoError(t, err)
	want2, err := ewkb.Marshal(p2, ewkb.WithLittleEndian())
	require.NoError(t, err)

	payloadOffset := section.FeatureHeaderSize + 2*section.FeatureIndexEntrySize

	require.Equal(t, []byte{0x10, 0x6E, 0x01, 0x01}, data[0:4], "magic, little-endian, EWKB, no compression")
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[4:8]))
	require.Equal(t, uint32(payloadOffset), binary.LittleEndian.Uint32(data[8:12]))
	require.Equal(t, uint32(len(want1)+len(want2)), binary.LittleEndian.Uint32(data[12:16]))

	require.Equal(t, uint64(7), binary.LittleEndian.Uint64(data[16:24]))
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(data[24:28]))
	require.Equal(t, uint32(len(want1)), binary.LittleEndian.Uint32(data[28:32]))
	require.Equal(t, uint64(9), binary.LittleEndian.Uint64(data[32:40]))
	require.Equal(t, uint32(len(want1)), binary.LittleEndian.Uint32(data[40:44]))

	require.Equal(t, append(want1, want2...), data[payloadOffset:])

	raw, ok := fb.Raw(9)
	require.True(t, ok)
	require.Equal(t, want2, raw)

	_, ok = fb.Raw(8)
	require.False(t, ok)
}

func TestFeatureBlob_BigEndianHeader(t *testing.T) {
	enc, err := NewFeatureEncoder(WithBigEndian(), WithWireFormat(format.WireSpatiaLite), WithFeatureNames(true))
	require.NoError(t, err)
	require.NoError(t, enc.AddByName("a", geometry.New(geometry.NewPoint(coords.XY{1, 2}))))

	fb, err := enc.Finish()
	require.NoError(t, err)
	data := fb.Bytes()

	require.Equal(t, []byte{0x16, 0x6E, 0x02, 0x02}, data[0:4], "big-endian and names bits, SpatiaLite, Zstd")
	require.Equal(t, uint32(1), binary.BigEndian.Uint32(data[4:8]))
	require.Equal(t, []byte{0x00, 0x01, 0x00, 0x01, 'a'}, data[16:21], "names payload")

	g, err := fb.GetByName("a")
	require.NoError(t, err)
	require.Equal(t, geometry.DefaultSRID, g.SRIDOr(0))
}

func TestFeatureEncoder_IDMode(t *testing.T) {
	enc, err := NewFeatureEncoder()
	require.NoError(t, err)

	g := geometry.New(geometry.NewPoint(coords.XY{1, 2}))
	require.NoError(t, enc.AddByID(42, g))

	t.Run("Duplicate ID", func(t *testing.T) {
		require.ErrorIs(t, enc.AddByID(42, g), errs.ErrHashCollision)
	})

	t.Run("Mixed mode", func(t *testing.T) {
		require.ErrorIs(t, enc.AddByName("x", g), errs.ErrMixedIdentifierMode)
	})

	require.Equal(t, 1, enc.Len())

	fb, err := enc.Finish()
	require.NoError(t, err)
	require.Nil(t, fb.Names())
	require.True(t, fb.Has(42))
	require.False(t, fb.Has(43))
	require.Equal(t, []uint64{42}, fb.IDs())

	_, err = fb.Get(43)
	require.ErrorIs(t, err, errs.ErrFeatureNotFound)
}

func TestFeatureEncoder_NameMode(t *testing.T) {
	g := geometry.New(geometry.NewPoint(coords.XY{1, 2}))

	t.Run("Errors", func(t *testing.T) {
		enc, err := NewFeatureEncoder()
		require.NoError(t, err)
		require.NoError(t, enc.AddByName("a", g))

		require.ErrorIs(t, enc.AddByName("a", g), errs.ErrFeatureExists)
		require.ErrorIs(t, enc.AddByName("", g), errs.ErrInvalidFeatureName)
		require.ErrorIs(t, enc.AddByID(1, g), errs.ErrMixedIdentifierMode)
		require.Equal(t, 1, enc.Len())
	})

	t.Run("Names stored on request", func(t *testing.T) {
		fb, _ := encodeFixtures(t, WithFeatureNames(true))

		names := make([]string, 12)
		for i := range names {
			names[i] = featureName(i)
		}
		require.Equal(t, names, fb.Names())

		decoded, err := DecodeFeatureBlob(fb.Bytes())
		require.NoError(t, err)
		require.Equal(t, names, decoded.Names())
		require.True(t, decoded.HasName("feature/03"))
		require.False(t, decoded.HasName("feature/99"))
	})

	t.Run("Names resolved by hash", func(t *testing.T) {
		fb, _ := encodeFixtures(t)
		require.Nil(t, fb.Names())
		require.True(t, fb.HasName("feature/03"))

		_, err := fb.GetByName("feature/99")
		require.ErrorIs(t, err, errs.ErrFeatureNotFound)
	})
}

func TestFeatureEncoder_RollsBackFailedAdd(t *testing.T) {
	enc, err := NewFeatureEncoder(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	require.ErrorIs(t, enc.AddByName("empty", geometry.Geometry{}), errs.ErrNilGeometry)
	require.Zero(t, enc.Len())

	// the name of a failed add stays available
	g := geometry.New(geometry.NewPoint(coords.XY{1, 2}))
	require.NoError(t, enc.AddByName("empty", g))

	fb, err := enc.Finish()
	require.NoError(t, err)

	want, err := ewkb.Marshal(g, ewkb.WithLittleEndian())
	require.NoError(t, err)

	raw, ok := fb.Raw(hash.ID("empty"))
	require.True(t, ok)
	require.Equal(t, want, raw)
}

func TestFeatureEncoder_Lifecycle(t *testing.T) {
	g := geometry.New(geometry.NewPoint(coords.XY{1, 2}))

	t.Run("Empty encoder", func(t *testing.T) {
		enc, err := NewFeatureEncoder()
		require.NoError(t, err)

		_, err = enc.Finish()
		require.ErrorIs(t, err, errs.ErrNoFeaturesAdded)
	})

	t.Run("Finished encoder", func(t *testing.T) {
		enc, err := NewFeatureEncoder()
		require.NoError(t, err)
		require.NoError(t, enc.AddByID(1, g))

		_, err = enc.Finish()
		require.NoError(t, err)

		_, err = enc.Finish()
		require.ErrorIs(t, err, errs.ErrEncoderFinished)
		require.ErrorIs(t, enc.AddByID(2, g), errs.ErrEncoderFinished)
	})

	t.Run("Invalid options", func(t *testing.T) {
		_, err := NewFeatureEncoder(WithWireFormat(format.WireFormat(9)))
		require.ErrorIs(t, err, errs.ErrInvalidWireFormat)

		_, err = NewFeatureEncoder(WithCompression(format.CompressionType(0)))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

func TestFeatureDecoder_Errors(t *testing.T) {
	enc, err := NewFeatureEncoder(WithCompression(format.CompressionNone), WithFeatureNames(true))
	require.NoError(t, err)
	require.NoError(t, enc.AddByName("parcel/1", geometry.New(geometry.NewPoint(coords.XY{1, 2}))))
	require.NoError(t, enc.AddByName("parcel/2", geometry.New(geometry.NewPoint(coords.XY{3, 4}))))

	fb, err := enc.Finish()
	require.NoError(t, err)
	valid := fb.Bytes()

	// names payload: 2 + 2*(2+8) bytes, then the index
	indexOffset := section.FeatureHeaderSize + 22

	corrupt := func(fn func(data []byte) []byte) []byte {
		return fn(bytes.Clone(valid))
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"Short header", valid[:10], errs.ErrInvalidHeaderSize},
		{"Magic", corrupt(func(d []byte) []byte { d[1] = 0x00; return d }), errs.ErrInvalidMagicNumber},
		{"Wire format", corrupt(func(d []byte) []byte { d[2] = 0x09; return d }), errs.ErrInvalidHeaderFlags},
		{"Tampered name", corrupt(func(d []byte) []byte { d[section.FeatureHeaderSize+4] ^= 0x01; return d }), errs.ErrHashMismatch},
		{"Truncated names", valid[:section.FeatureHeaderSize+5], errs.ErrInvalidIndexOffsets},
		{
			"Entry beyond payload",
			corrupt(func(d []byte) []byte {
				binary.LittleEndian.PutUint32(d[indexOffset+12:], 0xFFFFFFFF)
				return d
			}),
			errs.ErrInvalidIndexOffsets,
		},
		{"Truncated payload", valid[:len(valid)-1], errs.ErrPayloadSizeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFeatureBlob(tt.data)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, errs.ErrMalformed)
		})
	}

	t.Run("Corrupt compressed payload", func(t *testing.T) {
		enc, err := NewFeatureEncoder(WithCompression(format.CompressionZstd))
		require.NoError(t, err)
		require.NoError(t, enc.AddByID(1, fixture.City(4)))

		fb, err := enc.Finish()
		require.NoError(t, err)

		data := bytes.Clone(fb.Bytes())
		for i := section.FeatureHeaderSize + section.FeatureIndexEntrySize; i < len(data); i++ {
			data[i] = 0xFF
		}

		_, err = DecodeFeatureBlob(data)
		require.Error(t, err)
	})
}

func TestFeatureBlob_MBR(t *testing.T) {
	want := bbox.MBR{MinX: -1, MinY: 0, MaxX: 10, MaxY: 20}

	for _, wire := range []format.WireFormat{format.WireEWKB, format.WireSpatiaLite} {
		t.Run(wire.String(), func(t *testing.T) {
			fb, _ := encodeFixtures(t, WithWireFormat(wire))

			mbr, err := fb.MBR()
			require.NoError(t, err)
			require.Equal(t, want, mbr)
		})
	}

	t.Run("Ignores stored SpatiaLite rectangle", func(t *testing.T) {
		enc, err := NewFeatureEncoder(WithWireFormat(format.WireSpatiaLite), WithCompression(format.CompressionNone))
		require.NoError(t, err)
		require.NoError(t, enc.AddByID(1, geometry.New(geometry.NewPoint(coords.XY{1, 2}))))
		fb, err := enc.Finish()
		require.NoError(t, err)

		// MaxX sits after start, marker, SRID, MinX and MinY in the geometry header.
		data := bytes.Clone(fb.Bytes())
		maxX := section.FeatureHeaderSize + section.FeatureIndexEntrySize + 1 + 1 + 4 + 8 + 8
		binary.LittleEndian.PutUint64(data[maxX:], math.Float64bits(1e9))

		forged, err := DecodeFeatureBlob(data)
		require.NoError(t, err)
		require.NoError(t, forged.Validate())

		mbr, err := forged.MBR()
		require.NoError(t, err)
		require.Equal(t, bbox.MBR{MinX: 1, MinY: 2, MaxX: 1, MaxY: 2}, mbr)
	})
}

func TestFeatureBlob_All(t *testing.T) {
	fb, geoms := encodeFixtures(t, WithWireFormat(format.WireSpatiaLite))

	i := 0
	for id, g := range fb.All() {
		require.Equal(t, hash.ID(featureName(i)), id)
		require.Equal(t, geoms[i], g)
		i++
	}
	require.Equal(t, len(geoms), i)

	n := 0
	for range fb.All() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestFeatureBlob_Validate(t *testing.T) {
	enc, err := NewFeatureEncoder(WithCompression(format.CompressionNone))
	require.NoError(t, err)
	require.NoError(t, enc.AddByID(1, geometry.New(geometry.NewPoint(coords.XY{1, 2}))))

	fb, err := enc.Finish()
	require.NoError(t, err)

	data := bytes.Clone(fb.Bytes())
	payloadOffset := section.FeatureHeaderSize + section.FeatureIndexEntrySize
	data[payloadOffset] = 0x07 // invalid byte order marker

	broken, err := DecodeFeatureBlob(data)
	require.NoError(t, err, "geometries are decoded lazily")
	require.ErrorIs(t, broken.Validate(), errs.ErrInvalidByteOrder)

	_, err = broken.Get(1)
	require.ErrorIs(t, err, errs.ErrInvalidByteOrder)

	for range broken.All() {
		t.Fatal("All must stop at an undecodable feature")
	}
}

func TestFeatureIndex_Collision(t *testing.T) {
	entries := []section.FeatureIndexEntry{
		{ID: 0xABCD, Offset: 0, Length: 21},
		{ID: 0xABCD, Offset: 21, Length: 21},
		{ID: 0x0001, Offset: 42, Length: 21},
	}
	idx := newFeatureIndex(entries, []string{"road/a", "road/b", "road/c"})

	e, ok := idx.ByName("road/b")
	require.True(t, ok)
	require.Equal(t, uint32(21), e.Offset)

	e, ok = idx.ByID(0xABCD)
	require.True(t, ok)
	require.Equal(t, uint32(0), e.Offset, "first entry wins for a shared ID")

	_, ok = idx.ByName("road/z")
	require.False(t, ok)
	require.Equal(t, 3, idx.Len())
}

func TestSpatiaLiteFeature_MatchesCodec(t *testing.T) {
	g := geometry.New(geometry.NewPoint(coords.XYZ{1, 2, 3}))

	enc, err := NewFeatureEncoder(WithWireFormat(format.WireSpatiaLite), WithDefaultSRID(3857))
	require.NoError(t, err)
	require.NoError(t, enc.AddByID(5, g))

	fb, err := enc.Finish()
	require.NoError(t, err)

	want, err := spatialite.Marshal(g, spatialite.WithLittleEndian(), spatialite.WithDefaultSRID(3857))
	require.NoError(t, err)

	raw, ok := fb.Raw(5)
	require.True(t, ok)
	require.Equal(t, want, raw)
}
