package dump

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/rowpack/compress"
	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/logging"
	"github.com/arloliu/rowpack/internal/options"
	"github.com/arloliu/rowpack/internal/pool"
)

// Config holds the settings of a Dumper.
type Config struct {
	compression     format.CompressionType
	level           int
	order           endian.ByteOrder
	chunkSize       int
	compressedInput bool
	logger          *zerolog.Logger
}

// Option configures a Dumper.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		compression: format.CompressionDeflate,
		level:       compress.DefaultLevel,
		order:       endian.NativeOrder,
		chunkSize:   pool.ChunkDefaultSize,
	}
}

// WithCompression selects the unit codec. The default is raw DEFLATE.
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

// WithCompressionLevel sets the codec level. Its range depends on the codec;
// compress.DefaultLevel picks each codec's default.
func WithCompressionLevel(level int) Option {
	return options.NoError(func(c *Config) {
		c.level = level
	})
}

// WithByteOrder forces the byte order of multi-byte elements.
// The default, endian.NativeOrder, writes in the order of the running host.
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

// WithChunkSize sets the read size Recompress uses when streaming a file.
func WithChunkSize(size int) Option {
	return options.New(func(c *Config) error {
		if size < compress.MagicPrefixLen || size > pool.ChunkMaxThreshold {
			return fmt.Errorf("chunk size %d out of range [%d, %d]", size, compress.MagicPrefixLen, pool.ChunkMaxThreshold)
		}
		c.chunkSize = size

		return nil
	})
}

// WithCompressedInput lets Recompress accept files that already start with a
// compressed stream, compressing them a second time.
func WithCompressedInput(allow bool) Option {
	return options.NoError(func(c *Config) {
		c.compressedInput = allow
	})
}

// WithLogger sets the logger used for debug events. The default is the
// package logger of internal/logging.
func WithLogger(l zerolog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = &l
	})
}

func (c *Config) log(phase string) zerolog.Logger {
	if c.logger == nil {
		return logging.WithPhase(phase)
	}

	return c.logger.With().Str("phase", phase).Logger()
}
