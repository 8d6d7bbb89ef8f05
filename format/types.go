package format

type (
	WireFormat      uint8
	CompressionType uint8
)

const (
	WireEWKB       WireFormat = 0x1 // WireEWKB represents PostGIS Extended Well-Known Binary.
	WireSpatiaLite WireFormat = 0x2 // WireSpatiaLite represents the SpatiaLite BLOB geometry format.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (w WireFormat) String() string {
	switch w {
	case WireEWKB:
		return "EWKB"
	case WireSpatiaLite:
		return "SpatiaLite"
	default:
		return "Unknown"
	}
}

// IsValid reports whether w names a supported wire format.
func (w WireFormat) IsValid() bool {
	return w == WireEWKB || w == WireSpatiaLite
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c names a supported compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
