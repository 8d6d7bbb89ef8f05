// Package options implements the functional options shared by the geowire
// encoders. Each configurable package declares
//
//	type Option = options.Option[*Config]
//
// and builds its options with New or NoError.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a function to Option.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates an option that may reject its input, e.g. an unknown wire format.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError creates an option that cannot fail, such as a byte order switch.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped, so callers can pass conditional options:
//
//	var compression blob.FeatureEncoderOption
//	if compress {
//	    compression = blob.WithCompression(format.CompressionZstd)
//	}
//	enc, err := blob.NewFeatureEncoder(blob.WithBigEndian(), compression)
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
