package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Block([]byte(tt.data)))
		})
	}
}

func BenchmarkBlock(b *testing.B) {
	data := make([]byte, 16*1024)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for b.Loop() {
		Block(data)
	}
}
