package reader

import (
	"fmt"

	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/options"
)

// Config holds the settings of a reader.
type Config struct {
	compression format.CompressionType
	order       endian.ByteOrder
	checksums   bool
}

// Option configures a reader.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		compression: format.CompressionDeflate,
		order:       endian.NativeOrder,
	}
}

// WithCompression sets the codec the dump was written with. The default is raw DEFLATE.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		switch comp {
		case format.CompressionNone, format.CompressionDeflate, format.CompressionZstd,
			format.CompressionS2, format.CompressionLZ4:
			c.compression = comp
			return nil
		default:
			return fmt.Errorf("%w: %s", format.ErrUnsupportedCompression, comp)
		}
	})
}

// WithByteOrder sets the byte order the dump was written with. The default is
// the native order of the running host.
func WithByteOrder(order endian.ByteOrder) Option {
	return options.New(func(c *Config) error {
		switch order {
		case endian.NativeOrder, endian.LittleEndian, endian.BigEndian:
			c.order = order
			return nil
		default:
			return fmt.Errorf("invalid byte order: %d", order)
		}
	})
}

// WithChecksums enables verification of every block against the manifest digests.
func WithChecksums(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.checksums = enabled
	})
}
