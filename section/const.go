package section

import "math"

// EWKB framing.
const (
	EWKBMarkerSize = 1 // byte order marker
	EWKBTypeSize   = 4 // type code with flag bits
	EWKBSRIDSize   = 4 // optional SRID
	EWKBMinSize    = EWKBMarkerSize + EWKBTypeSize
	EWKBMaxSize    = EWKBMinSize + EWKBSRIDSize
)

// SpatiaLite framing.
const (
	SpatiaLiteStart         byte = 0x00 // SpatiaLiteStart opens every SpatiaLite BLOB.
	SpatiaLiteMBRTerminator byte = 0x7C // SpatiaLiteMBRTerminator follows the MBR.
	SpatiaLiteEnd           byte = 0xFE // SpatiaLiteEnd closes every SpatiaLite BLOB.

	SpatiaLiteHeaderSize  = 43 // start + marker + SRID + MBR + terminator + class
	SpatiaLiteTrailerSize = 1  // end marker
)

// Feature blob bit masks and magic.
const (
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	FeatureNamesMask = 0x0004 // Mask for feature names payload bit (bit 2)
	ReservedBitsMask = 0x0009 // Mask for reserved bits (bits 0 and 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicFeatureV1Opt = 0x6E10 // MagicFeatureV1Opt is the version 1 magic number for feature blobs.
)

// Feature blob section sizes.
const (
	FeatureHeaderSize     = 16             // fixed header size in bytes
	FeatureIndexEntrySize = 16             // fixed index entry size in bytes
	FeatureMaxCount       = math.MaxUint16 // maximum number of features in one blob
	FeatureMaxOffset      = math.MaxUint32 // maximum offset into the uncompressed payload
	FeatureNameMaxLen     = math.MaxUint16 // maximum byte length of one feature name
)
