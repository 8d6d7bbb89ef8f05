// Package section defines the fixed binary structures of the geowire formats.
//
// It covers three framings:
//
//  1. EWKBHeader: the PostGIS EWKB header (byte order, type code, optional SRID)
//  2. SpatiaLiteHeader: the 43-byte SpatiaLite BLOB header plus its 0xFE trailer
//  3. FeatureHeader, FeatureFlag, FeatureIndexEntry: the feature blob container
//
// The coordinate payload between header and trailer is handled by the encoding
// package. Most users should use the ewkb, spatialite or blob packages instead.
//
// # EWKB
//
//	Bytes | Field | Description
//	------|-------|--------------------------------------------------
//	0     | Order | 0x00 big-endian, 0x01 little-endian
//	1-4   | Type  | kind code | 0x80000000 (Z) | 0x20000000 (SRID)
//	5-8   | SRID  | present only when the SRID flag is set
//
// # SpatiaLite
//
//	Bytes | Field      | Description
//	------|------------|------------------------------------------
//	0     | Start      | 0x00
//	1     | Order      | 0x00 big-endian, 0x01 little-endian
//	2-5   | SRID       | always present
//	6-37  | MBR        | min-x, min-y, max-x, max-y (float64)
//	38    | Terminator | 0x7C
//	39-42 | Class      | 1-7 for 2D, 1001-1007 for 3D
//	...   | Payload    | coordinate payload
//	last  | End        | 0xFE
//
// # Feature Blob
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (16 bytes, fixed)                                │
//	│  - Flag (4 bytes): options/magic, wire format, codec    │
//	│  - Count (4 bytes)                                      │
//	│  - PayloadOffset (4 bytes)                              │
//	│  - PayloadSize (4 bytes, uncompressed)                  │
//	├─────────────────────────────────────────────────────────┤
//	│ Feature Names Payload (variable, optional)              │
//	│  - u16 count, then u16 length + UTF-8 bytes per name    │
//	├─────────────────────────────────────────────────────────┤
//	│ Index (N × 16 bytes)                                    │
//	│  - ID (8), Offset (4), Length (4)                       │
//	├─────────────────────────────────────────────────────────┤
//	│ Geometry Payload (compressed)                           │
//	└─────────────────────────────────────────────────────────┘
//
// Flag bytes 0-1 (Options) are always little-endian:
//
//	Bit 0:     Reserved (must be 0)
//	Bit 1:     Endianness (0=little-endian, 1=big-endian)
//	Bit 2:     Feature names payload present
//	Bit 3:     Reserved (must be 0)
//	Bits 4-15: Magic number (0x6E10)
//
// Byte 2 holds the wire format (1=EWKB, 2=SpatiaLite) and byte 3 the payload
// compression (1=None, 2=Zstd, 3=S2, 4=LZ4). Every other multi-byte field uses
// the byte order selected by bit 1.
//
// # Thread Safety
//
// All types in this package are plain values and safe for concurrent reads.
package section
