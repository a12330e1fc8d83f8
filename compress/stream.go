package compress

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/rowpack/internal/hash"
	"github.com/arloliu/rowpack/internal/pool"
)

// ErrStreamFinished is returned when a stream is used after Finish.
var ErrStreamFinished = errors.New("compression stream already finished")

// Block is the self-contained output of exactly one stream lifecycle.
type Block struct {
	// Data holds the compressed bytes. It is owned by the caller.
	Data []byte
}

// Len returns the compressed size in bytes, the value recorded in size manifests.
func (b Block) Len() int {
	return len(b.Data)
}

// Checksum returns the xxHash64 digest of the compressed bytes.
func (b Block) Checksum() uint64 {
	return hash.Block(b.Data)
}

// Stream compresses one logical unit.
//
// Write may be called any number of times to append input. Finish closes the
// stream and returns the complete block; after Finish every call returns
// ErrStreamFinished. Once a Write fails, the stream keeps returning that error
// and Finish reports it instead of producing a block.
type Stream interface {
	io.Writer
	Finish() (Block, error)
}

// encoderStream adapts a streaming encoder that writes into an in-memory buffer.
type encoderStream struct {
	name    string
	enc     io.WriteCloser
	out     *pool.ByteBuffer
	release func(io.WriteCloser)
	err     error
	done    bool
}

var _ Stream = (*encoderStream)(nil)

// newEncoderStream wires enc (already targeting out) into a Stream. release,
// when non-nil, receives the encoder after a successful Close for reuse.
func newEncoderStream(name string, enc io.WriteCloser, out *pool.ByteBuffer, release func(io.WriteCloser)) *encoderStream {
	return &encoderStream{
		name:    name,
		enc:     enc,
		out:     out,
		release: release,
	}
}

func (s *encoderStream) Write(p []byte) (int, error) {
	if s.done {
		return 0, ErrStreamFinished
	}
	if s.err != nil {
		return 0, s.err
	}

	n, err := s.enc.Write(p)
	if err != nil {
		s.err = fmt.Errorf("%s stream write: %w", s.name, err)
		return n, s.err
	}

	return n, nil
}

func (s *encoderStream) Finish() (Block, error) {
	if s.done {
		return Block{}, ErrStreamFinished
	}
	s.done = true

	// A failed encoder is dropped rather than returned to its pool.
	if s.err != nil {
		return Block{}, s.err
	}

	if err := s.enc.Close(); err != nil {
		s.err = fmt.Errorf("%s stream finish: %w", s.name, err)
		return Block{}, s.err
	}

	if s.release != nil {
		s.release(s.enc)
	}
	s.enc = nil

	return Block{Data: s.out.Bytes()}, nil
}

func newBlockBuffer() *pool.ByteBuffer {
	return pool.NewByteBuffer(pool.BlockBufferDefaultSize)
}
