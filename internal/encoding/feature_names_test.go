package encoding

import (
	"strings"
	"testing"

	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/internal/hash"
	"github.com/stretchr/testify/require"
)

func TestFeatureNames_RoundTrip(t *testing.T) {
	names := []string{"parcel/17", "road/A1", "", "river/Vltava"}

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		encoded, err := AppendFeatureNames(nil, names, engine)
		require.NoError(t, err)
		require.Len(t, encoded, FeatureNamesSize(names))

		decoded, n, err := DecodeFeatureNames(encoded, engine)
		require.NoError(t, err)
		require.Equal(t, len(encoded), n)
		require.Equal(t, names, decoded)
	}
}

func TestAppendFeatureNames_Layout(t *testing.T) {
	encoded, err := AppendFeatureNames([]byte{0xAA}, []string{"ab", "c"}, endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0x00, 0x02, 0x00, 0x02, 'a', 'b', 0x00, 0x01, 'c'}, encoded)
}

func TestAppendFeatureNames_Empty(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoded, err := AppendFeatureNames(nil, nil, engine)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0}, encoded)

	decoded, n, err := DecodeFeatureNames(encoded, engine)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Empty(t, decoded)
}

func TestAppendFeatureNames_Limits(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("Too many names", func(t *testing.T) {
		_, err := AppendFeatureNames(nil, make([]string, 65536), engine)
		require.ErrorIs(t, err, errs.ErrFeatureCountExceeded)
	})

	t.Run("Name too long", func(t *testing.T) {
		_, err := AppendFeatureNames(nil, []string{strings.Repeat("a", 65536)}, engine)
		require.ErrorIs(t, err, errs.ErrInvalidFeatureName)
	})
}

func TestDecodeFeatureNames_Truncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoded, err := AppendFeatureNames(nil, []string{"parcel/17", "road/A1"}, engine)
	require.NoError(t, err)

	for n := range len(encoded) {
		_, _, err := DecodeFeatureNames(encoded[:n], engine)
		require.ErrorIs(t, err, errs.ErrInvalidNamesPayload, "n=%d", n)
		require.ErrorIs(t, err, errs.ErrMalformed)
	}
}

func TestVerifyFeatureNames(t *testing.T) {
	names := []string{"parcel/17", "road/A1"}
	ids := hash.IDs(names)

	require.NoError(t, VerifyFeatureNames(names, ids, hash.ID))

	err := VerifyFeatureNames(names, ids[:1], hash.ID)
	require.ErrorIs(t, err, errs.ErrInvalidNamesPayload)

	ids[1]++
	err = VerifyFeatureNames(names, ids, hash.ID)
	require.ErrorIs(t, err, errs.ErrHashMismatch)
	require.Contains(t, err.Error(), `"road/A1" at index 1`)
}
