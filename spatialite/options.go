package spatialite

import (
	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/internal/options"
)

// Config holds encoder settings.
type Config struct {
	engine      endian.EndianEngine
	defaultSRID uint32
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		engine:      endian.GetNativeEngine(),
		defaultSRID: geometry.DefaultSRID,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Engine returns the configured byte order.
func (c *Config) Engine() endian.EndianEngine {
	return c.engine
}

// DefaultSRID returns the SRID written for geometries that carry none.
func (c *Config) DefaultSRID() uint32 {
	return c.defaultSRID
}

// Option represents a functional option for configuring SpatiaLite encoding.
type Option = options.Option[*Config]

// WithLittleEndian encodes in little-endian byte order.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian encodes in big-endian byte order.
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

// WithDefaultSRID sets the SRID written for geometries without one.
// It defaults to geometry.DefaultSRID (4326).
func WithDefaultSRID(srid uint32) Option {
	return options.NoError(func(c *Config) {
		c.defaultSRID = srid
	})
}
