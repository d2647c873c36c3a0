package huffman

import (
	"errors"

	"github.com/arloliu/huffpack/endian"
	"github.com/arloliu/huffpack/internal/options"
)

// Config holds the settings shared by Encoder and Decoder.
//
// The container does not record its byte order, so a Decoder must be given the same
// endianness option as the Encoder that produced the data.
type Config struct {
	engine endian.EndianEngine
}

func newConfig(opts ...Option) (Config, error) {
	cfg := &Config{engine: endian.GetLittleEndianEngine()}
	if err := options.Apply(cfg, opts...); err != nil {
		return Config{}, err
	}

	return *cfg, nil
}

// Engine returns the byte order used for header fields.
func (c Config) Engine() endian.EndianEngine {
	return c.engine
}

// Option represents a functional option for configuring an Encoder or a Decoder.
// This is a type alias for the generic Option interface specialized for Config.
type Option = options.Option[*Config]

// WithLittleEndian writes and reads header fields little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes and reads header fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian uses the host byte order for header fields.
func WithNativeEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetNativeEngine()
	})
}

// WithEndianEngine uses a caller-supplied engine for header fields.
func WithEndianEngine(engine endian.EndianEngine) Option {
	return options.New(func(c *Config) error {
		if engine == nil {
			return errors.New("endian engine must not be nil")
		}
		c.engine = engine

		return nil
	})
}
