// Package compress provides the unit compressor of the rowpack format.
//
// A unit is one vector, the values of one matrix row, or the delta-encoded
// indices of one sparse row. Each unit goes through its own stream and becomes
// one self-contained block: no dictionary or history is shared between blocks,
// so a reader holding only the size manifest can seek to any block and
// decompress it in isolation.
//
// # Stream Lifecycle
//
//	stream, err := codec.NewStream()   // open
//	stream.Write(header)               // feed, any number of times
//	stream.Write(payload)
//	block, err := stream.Finish()      // finish; stream is now unusable
//	sink.Write(block.Data)
//	sizes = append(sizes, block.Len())
//
// A stream that failed during Write keeps returning the same error, and Finish
// reports it instead of a block. There is no partial-unit recovery; callers
// abort the whole dump.
//
// # Supported Algorithms
//
//   - Deflate (format.CompressionDeflate): raw DEFLATE, the format default.
//     Readers in any language can inflate it with a stock zlib in raw mode.
//   - Zstd (format.CompressionZstd): one zstd frame per block. Better ratio,
//     larger per-block header.
//   - S2 (format.CompressionS2): S2 stream format. Fastest to decode.
//   - LZ4 (format.CompressionLZ4): LZ4 frame format.
//   - None (format.CompressionNone): bytes stored as-is.
//
// # Codec Selection
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, 9)
//	codec, err := compress.GetCodec(format.CompressionDeflate) // shared, default level
//
// # Thread Safety
//
// Codec values are safe for concurrent use. Streams are not; each stream
// belongs to the goroutine that opened it.
package compress
