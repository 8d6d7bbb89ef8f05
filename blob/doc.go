// Package blob stores many keyed geometries in a single compact binary blob.
//
// A feature blob holds up to 65535 features. Each feature is a geometry keyed
// either by a name, hashed to a 64-bit ID with xxHash64, or by a caller-provided
// ID. All geometries are encoded in one wire format (EWKB or SpatiaLite) and one
// byte order, concatenated, and compressed as a single payload.
//
// # Layout
//
//	Header (16 bytes)
//	  [0:2]   options (always little-endian): magic 0x6E10 in bits 4-15,
//	          bit 1 big-endian, bit 2 names payload present
//	  [2]     wire format (1=EWKB, 2=SpatiaLite)
//	  [3]     compression (1=None, 2=Zstd, 3=S2, 4=LZ4)
//	  [4:8]   feature count
//	  [8:12]  payload offset
//	  [12:16] uncompressed payload size
//	Names payload (optional): [count u16] ([len u16][UTF-8])*
//	Index: count x 16 bytes: [ID u64][offset u32][length u32]
//	Payload: concatenated geometries, compressed
//
// Index offsets point into the uncompressed payload, so each geometry can be
// sliced out directly after one decompression.
//
// # Encoding
//
//	enc, err := blob.NewFeatureEncoder(
//	    blob.WithWireFormat(format.WireSpatiaLite),
//	    blob.WithCompression(format.CompressionS2),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := enc.AddByName("parcel/17", parcel); err != nil {
//	    return err
//	}
//	fb, err := enc.Finish()
//	data := fb.Bytes()
//
// # Decoding
//
//	fb, err := blob.DecodeFeatureBlob(data)
//	if err != nil {
//	    return err
//	}
//	g, err := fb.GetByName("parcel/17")
//
// # Name collisions
//
// When two distinct names hash to the same ID the encoder stores the names
// payload automatically, and GetByName resolves features by their exact name.
// Without collisions names are only stored when WithFeatureNames(true) is set;
// GetByName then hashes the name and looks it up by ID.
//
// # Thread Safety
//
// Encoders and decoders are not safe for concurrent use. FeatureBlob and
// FeatureBlobSet are immutable and safe for concurrent reads.
package blob
