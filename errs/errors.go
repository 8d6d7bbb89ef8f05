// Package errs defines the sentinel errors returned by geowire packages.
//
// Errors are wrapped at the call site with fmt.Errorf("%w: ...") so callers can
// match them with errors.Is while still getting a detailed message.
//
// Every error describing an undecodable byte stream wraps ErrMalformed, so a
// driver binding that only cares whether a value is corrupt can test for that
// single sentinel.
package errs

import (
	"errors"
	"fmt"
)

// ErrMalformed is the root of all malformed-format errors.
var ErrMalformed = errors.New("malformed geometry stream")

// Malformed-format errors.
var (
	ErrInvalidByteOrder     = fmt.Errorf("%w: invalid byte order marker", ErrMalformed)
	ErrUnknownKind          = fmt.Errorf("%w: unknown geometry kind code", ErrMalformed)
	ErrInvalidStartMarker   = fmt.Errorf("%w: invalid start marker", ErrMalformed)
	ErrInvalidMBRTerminator = fmt.Errorf("%w: invalid MBR terminator", ErrMalformed)
	ErrInvalidEndMarker     = fmt.Errorf("%w: invalid end marker", ErrMalformed)
	ErrTrailingData         = fmt.Errorf("%w: trailing data after geometry", ErrMalformed)

	ErrInvalidHeaderSize     = fmt.Errorf("%w: invalid header size", ErrMalformed)
	ErrInvalidMagicNumber    = fmt.Errorf("%w: invalid magic number", ErrMalformed)
	ErrInvalidHeaderFlags    = fmt.Errorf("%w: invalid header flags", ErrMalformed)
	ErrInvalidIndexEntrySize = fmt.Errorf("%w: invalid index entry size", ErrMalformed)
	ErrInvalidIndexOffsets   = fmt.Errorf("%w: invalid index offsets", ErrMalformed)
	ErrInvalidNamesPayload   = fmt.Errorf("%w: invalid feature names payload", ErrMalformed)
	ErrPayloadSizeMismatch   = fmt.Errorf("%w: payload size mismatch", ErrMalformed)
	ErrHashMismatch          = fmt.Errorf("%w: feature name hash mismatch", ErrMalformed)
)

// Geometry model errors.
var (
	ErrKindMismatch      = errors.New("kind mismatch")
	ErrUnsupportedKind   = errors.New("unsupported geometry kind")
	ErrEmptyCoordinates  = errors.New("empty coordinate sequence")
	ErrNaNCoordinate     = errors.New("NaN coordinate")
	ErrTooManyElements   = errors.New("too many elements")
	ErrNilGeometry       = errors.New("geometry has no shape")
	ErrUnsupportedSource = errors.New("unsupported scan source")
	ErrInvalidSRID       = errors.New("invalid SRID")
)

// Feature blob errors.
var (
	ErrInvalidFeatureName   = errors.New("invalid feature name")
	ErrFeatureExists        = errors.New("feature already added")
	ErrFeatureNotFound      = errors.New("feature not found")
	ErrHashCollision        = errors.New("feature ID hash collision")
	ErrMixedIdentifierMode  = errors.New("cannot mix feature names and IDs")
	ErrNoFeaturesAdded      = errors.New("no features added")
	ErrFeatureCountExceeded = errors.New("feature count exceeded")
	ErrInvalidWireFormat    = errors.New("invalid wire format")
	ErrInvalidCompression   = errors.New("invalid compression type")
	ErrEncoderFinished      = errors.New("encoder already finished")
	ErrPayloadTooLarge      = errors.New("payload exceeds 4 GiB")
)
