package blob

import (
	"bytes"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/geowire/encoding"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/ewkb"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/internal/collision"
	ienc "github.com/arloliu/geowire/internal/encoding"
	"github.com/arloliu/geowire/internal/hash"
	"github.com/arloliu/geowire/internal/options"
	"github.com/arloliu/geowire/internal/pool"
	"github.com/arloliu/geowire/section"
	"github.com/arloliu/geowire/spatialite"
)

// FeatureEncoder builds a feature blob from keyed geometries.
//
// Every geometry is encoded in the configured wire format and byte order and
// appended to a single payload, which is compressed as one unit by Finish.
//
// Note: The FeatureEncoder is NOT thread-safe. Each encoder instance should be used by a single goroutine at a time.
//
// Note: The FeatureEncoder is NOT reusable. After calling Finish, a new encoder must be created.
type FeatureEncoder struct {
	*FeatureEncoderConfig

	payload *encoding.Writer
	entries []section.FeatureIndexEntry

	// tracker detects duplicate IDs in both modes and name collisions in name mode
	tracker        *collision.Tracker
	identifierMode identifierMode
}

// NewFeatureEncoder creates a new FeatureEncoder.
//
// Returns an error if an option is invalid.
func NewFeatureEncoder(opts ...FeatureEncoderOption) (*FeatureEncoder, error) {
	config := NewFeatureEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	if err := config.setCodec(); err != nil {
		return nil, err
	}

	return &FeatureEncoder{
		FeatureEncoderConfig: config,
		payload:              encoding.NewPayloadWriter(config.engine),
		entries:              pool.GetIndexEntries(initialIndexCapacity),
		tracker:              collision.NewTracker(),
		identifierMode:       modeUndefined,
	}, nil
}

// Len returns the number of features added so far.
func (e *FeatureEncoder) Len() int {
	return len(e.entries)
}

// AddByID adds g under a caller-provided feature ID.
//
// This method is exclusive with AddByName: once used, all subsequent features
// must also be added by ID.
//
// Returns:
//   - errs.ErrMixedIdentifierMode after AddByName
//   - errs.ErrHashCollision if id was already added
//   - errs.ErrFeatureCountExceeded past MaxFeatureCount
//   - any error from encoding g
func (e *FeatureEncoder) AddByID(id uint64, g geometry.Geometry) error {
	if err := e.checkAdd(modeUserID); err != nil {
		return err
	}

	return e.addFeature(modeUserID, id, g, func() error {
		return e.tracker.TrackID(id)
	})
}

// AddByName adds g under a feature name. The feature ID is the xxHash64 of name.
//
// Distinct names with the same hash are accepted; the blob then stores its
// names payload so each feature stays addressable by name.
//
// Returns:
//   - errs.ErrMixedIdentifierMode after AddByID
//   - errs.ErrInvalidFeatureName for an empty name
//   - errs.ErrFeatureExists if name was already added
//   - errs.ErrFeatureCountExceeded past MaxFeatureCount
//   - any error from encoding g
func (e *FeatureEncoder) AddByName(name string, g geometry.Geometry) error {
	if err := e.checkAdd(modeNameManaged); err != nil {
		return err
	}

	id := hash.ID(name)

	return e.addFeature(modeNameManaged, id, g, func() error {
		return e.tracker.TrackName(name, id)
	})
}

func (e *FeatureEncoder) checkAdd(mode identifierMode) error {
	if e.payload == nil {
		return errs.ErrEncoderFinished
	}

	if e.identifierMode != modeUndefined && e.identifierMode != mode {
		if mode == modeUserID {
			return fmt.Errorf("%w: cannot use AddByID after AddByName", errs.ErrMixedIdentifierMode)
		}

		return fmt.Errorf("%w: cannot use AddByName after AddByID", errs.ErrMixedIdentifierMode)
	}

	if len(e.entries) >= MaxFeatureCount {
		return fmt.Errorf("%w: max %d", errs.ErrFeatureCountExceeded, MaxFeatureCount)
	}

	return nil
}

// addFeature encodes g, then records the key with track. Either failure leaves
// the encoder as it was before the call.
func (e *FeatureEncoder) addFeature(mode identifierMode, id uint64, g geometry.Geometry, track func() error) error {
	start := e.payload.Len()

	if err := e.writeGeometry(g); err != nil {
		e.payload.Truncate(start)
		return err
	}

	end := e.payload.Len()
	if uint64(end) > math.MaxUint32 {
		e.payload.Truncate(start)
		return fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, end)
	}

	if err := track(); err != nil {
		e.payload.Truncate(start)
		return err
	}

	// mode is locked by the first successful add
	e.identifierMode = mode

	e.entries = append(e.entries, section.FeatureIndexEntry{
		ID:     id,
		Offset: uint32(start),       //nolint:gosec
		Length: uint32(end - start), //nolint:gosec
	})

	return nil
}

func (e *FeatureEncoder) writeGeometry(g geometry.Geometry) error {
	if e.header.Flag.Wire() == format.WireSpatiaLite {
		return spatialite.WriteGeometry(e.payload, g, e.defaultSRID)
	}

	return ewkb.WriteGeometry(e.payload, g)
}

// Finish completes the blob and returns its decoded view.
//
// The encoded bytes are available from FeatureBlob.Bytes. The encoder releases
// its pooled buffers and cannot be used afterwards.
//
// Returns errs.ErrNoFeaturesAdded for an empty encoder and
// errs.ErrEncoderFinished if called twice.
func (e *FeatureEncoder) Finish() (FeatureBlob, error) {
	if e.payload == nil {
		return FeatureBlob{}, errs.ErrEncoderFinished
	}
	defer e.release()

	if len(e.entries) == 0 {
		return FeatureBlob{}, errs.ErrNoFeaturesAdded
	}

	// Clone header for immutability
	header := *e.header
	header.Count = uint32(len(e.entries)) //nolint:gosec

	payload := e.payload.Bytes()
	header.PayloadSize = uint32(len(payload)) //nolint:gosec

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return FeatureBlob{}, fmt.Errorf("failed to compress payload: %w", err)
	}

	var names []string
	if e.identifierMode == modeNameManaged && (e.storeNames || e.tracker.HasCollision()) {
		names = e.tracker.Names()
		header.Flag.SetHasFeatureNames(true)
	}

	namesSize := 0
	if names != nil {
		namesSize = ienc.FeatureNamesSize(names)
	}

	payloadOffset := section.FeatureHeaderSize + namesSize + len(e.entries)*section.FeatureIndexEntrySize
	if uint64(payloadOffset) > section.FeatureMaxOffset {
		return FeatureBlob{}, fmt.Errorf("%w: index ends at byte %d", errs.ErrPayloadTooLarge, payloadOffset)
	}
	header.PayloadOffset = uint32(payloadOffset) //nolint:gosec

	data := make([]byte, 0, payloadOffset+len(compressed))
	data = header.Append(data)

	if names != nil {
		data, err = ienc.AppendFeatureNames(data, names, e.engine)
		if err != nil {
			return FeatureBlob{}, fmt.Errorf("failed to encode feature names: %w", err)
		}
	}

	for _, entry := range e.entries {
		data = entry.Append(data, e.engine)
	}
	data = append(data, compressed...)

	index := newFeatureIndex(slices.Clone(e.entries), slices.Clone(names))

	return newFeatureBlob(data, header, index, bytes.Clone(payload)), nil
}

func (e *FeatureEncoder) release() {
	e.payload.Release()
	e.payload = nil

	pool.PutIndexEntries(e.entries)
	e.entries = nil
}
