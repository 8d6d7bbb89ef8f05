package blob

import (
	"slices"

	"github.com/arloliu/geowire/ewkb"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/internal/hash"
	"github.com/arloliu/geowire/section"
	"github.com/arloliu/geowire/spatialite"
)

// identifierMode defines how features are keyed in the encoder.
type identifierMode uint8

const (
	// modeUndefined indicates no features have been added yet.
	modeUndefined identifierMode = iota
	// modeUserID indicates features are keyed by caller-provided IDs.
	modeUserID
	// modeNameManaged indicates features are keyed by names hashed to IDs.
	modeNameManaged
)

// featureIndex maps feature IDs and names to positions in the index entries.
type featureIndex struct {
	entries []section.FeatureIndexEntry
	names   []string       // nil if the blob has no names payload
	byID    map[uint64]int // feature ID → first entry position
	byName  map[string]int // feature name → entry position, nil without names
}

func newFeatureIndex(entries []section.FeatureIndexEntry, names []string) featureIndex {
	idx := featureIndex{
		entries: entries,
		names:   names,
		byID:    make(map[uint64]int, len(entries)),
	}

	for i := len(entries) - 1; i >= 0; i-- {
		idx.byID[entries[i].ID] = i
	}

	if names != nil {
		idx.byName = make(map[string]int, len(names))
		for i, name := range names {
			idx.byName[name] = i
		}
	}

	return idx
}

// Len returns the number of features.
func (m featureIndex) Len() int {
	return len(m.entries)
}

// HasID reports whether a feature with the given ID exists.
func (m featureIndex) HasID(id uint64) bool {
	_, ok := m.byID[id]
	return ok
}

// IDs returns the feature IDs in index order.
func (m featureIndex) IDs() []uint64 {
	ids := make([]uint64, len(m.entries))
	for i, e := range m.entries {
		ids[i] = e.ID
	}

	return ids
}

// Names returns a copy of the feature names in index order, or nil.
func (m featureIndex) Names() []string {
	return slices.Clone(m.names)
}

// ByID returns the entry for id.
func (m featureIndex) ByID(id uint64) (section.FeatureIndexEntry, bool) {
	i, ok := m.byID[id]
	if !ok {
		return section.FeatureIndexEntry{}, false
	}

	return m.entries[i], true
}

// ByName returns the entry for name.
//
// Without a names payload the name is hashed and looked up by ID, which is
// exact because the encoder stores names whenever two of them collide.
func (m featureIndex) ByName(name string) (section.FeatureIndexEntry, bool) {
	if m.byName == nil {
		return m.ByID(hash.ID(name))
	}

	i, ok := m.byName[name]
	if !ok {
		return section.FeatureIndexEntry{}, false
	}

	return m.entries[i], true
}

// decodeFeature decodes one geometry stored in the given wire format.
func decodeFeature(wire format.WireFormat, data []byte) (geometry.Geometry, error) {
	if wire == format.WireSpatiaLite {
		return spatialite.Unmarshal(data)
	}

	return ewkb.Unmarshal(data)
}
