package ewkb

import (
	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/internal/options"
)

// Config holds encoder settings.
type Config struct {
	engine endian.EndianEngine
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{engine: endian.GetNativeEngine()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Engine returns the configured byte order.
func (c *Config) Engine() endian.EndianEngine {
	return c.engine
}

// Option represents a functional option for configuring EWKB encoding.
type Option = options.Option[*Config]

// WithLittleEndian encodes in little-endian (NDR) byte order.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian encodes in big-endian (XDR) byte order.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian encodes in the host byte order. It is the default option.
func WithNativeEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetNativeEngine()
	})
}
