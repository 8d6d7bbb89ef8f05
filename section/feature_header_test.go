package section

import (
	"testing"

	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
	"github.com/stretchr/testify/require"
)

func TestFeatureFlag(t *testing.T) {
	flag := NewFeatureFlag()

	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.HasFeatureNames())
	require.Equal(t, format.WireEWKB, flag.Wire())
	require.Equal(t, format.CompressionZstd, flag.Compression())
	require.Equal(t, uint16(MagicFeatureV1Opt), flag.GetMagicNumber())
	require.NoError(t, flag.Validate())

	flag.WithBigEndian()
	flag.SetHasFeatureNames(true)
	flag.SetWire(format.WireSpatiaLite)
	flag.SetCompression(format.CompressionLZ4)

	require.True(t, flag.IsBigEndian())
	require.True(t, flag.HasFeatureNames())
	require.Equal(t, endian.GetBigEndianEngine(), flag.GetEndianEngine())
	require.NoError(t, flag.Validate())

	flag.SetHasFeatureNames(false)
	flag.WithLittleEndian()
	require.Equal(t, uint16(MagicFeatureV1Opt), flag.Options)
}

func TestFeatureFlag_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *FeatureFlag)
		want   error
	}{
		{"Magic", func(f *FeatureFlag) { f.Options = 0xEA10 }, errs.ErrInvalidMagicNumber},
		{"Reserved bit 0", func(f *FeatureFlag) { f.Options |= 0x0001 }, errs.ErrInvalidHeaderFlags},
		{"Reserved bit 3", func(f *FeatureFlag) { f.Options |= 0x0008 }, errs.ErrInvalidHeaderFlags},
		{"Wire format", func(f *FeatureFlag) { f.WireFormat = 9 }, errs.ErrInvalidHeaderFlags},
		{"Compression", func(f *FeatureFlag) { f.CompressionType = 0 }, errs.ErrInvalidHeaderFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := NewFeatureFlag()
			tt.mutate(&flag)

			err := flag.Validate()
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, errs.ErrMalformed)
		})
	}
}

func TestFeatureHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		h := NewFeatureHeader()
		if bigEndian {
			h.Flag.WithBigEndian()
		}
		h.Flag.SetHasFeatureNames(true)
		h.Flag.SetWire(format.WireSpatiaLite)
		h.Count = 3
		h.PayloadOffset = 100
		h.PayloadSize = 4096

		b := h.Bytes()
		require.Len(t, b, FeatureHeaderSize)

		parsed, err := ParseFeatureHeader(b)
		require.NoError(t, err)
		require.Equal(t, *h, parsed)
	}
}

func TestFeatureHeader_OptionsAlwaysLittleEndian(t *testing.T) {
	h := NewFeatureHeader()
	h.Flag.WithBigEndian()
	h.Count = 1

	b := h.Bytes()
	require.Equal(t, byte(0x12), b[0])
	require.Equal(t, byte(0x6E), b[1])
	require.Equal(t, []byte{0, 0, 0, 1}, b[4:8])
}

func TestFeatureHeader_Errors(t *testing.T) {
	_, err := ParseFeatureHeader(make([]byte, 8))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	var h FeatureHeader
	require.ErrorIs(t, h.Parse(make([]byte, 17)), errs.ErrInvalidHeaderSize)

	_, err = ParseFeatureHeader(make([]byte, FeatureHeaderSize))
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)

	big := NewFeatureHeader()
	big.Count = FeatureMaxCount + 1
	_, err = ParseFeatureHeader(big.Bytes())
	require.ErrorIs(t, err, errs.ErrFeatureCountExceeded)
}

func TestFeatureIndexEntry(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		e := FeatureIndexEntry{ID: 0xDEADBEEFCAFEBABE, Offset: 21, Length: 93}

		b := e.Append(nil, engine)
		require.Len(t, b, FeatureIndexEntrySize)

		parsed, err := ParseFeatureIndexEntry(b, engine)
		require.NoError(t, err)
		require.Equal(t, e, parsed)
		require.Equal(t, uint64(114), parsed.End())
	}

	_, err := ParseFeatureIndexEntry(make([]byte, 15), endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
}
