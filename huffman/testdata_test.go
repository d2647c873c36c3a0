package huffman

import (
	"bytes"
	"math/rand/v2"
)

// sampleInputs returns the inputs shared by the round-trip tests.
func sampleInputs() map[string][]byte {
	rng := rand.New(rand.NewPCG(7, 11))

	random := make([]byte, 8192)
	for i := range random {
		random[i] = byte(rng.IntN(256))
	}

	skewed := make([]byte, 0, 4096)
	for i := range 12 {
		// symbol i appears 2^i times
		skewed = append(skewed, bytes.Repeat([]byte{byte('a' + i)}, 1<<i)...)
	}

	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	return map[string][]byte{
		"empty":           {},
		"single byte":     {0x42},
		"aaabb":           []byte("aaabb"),
		"repeated A":      bytes.Repeat([]byte{'A'}, 1000),
		"repeated zero":   make([]byte, 4096),
		"two symbols":     bytes.Repeat([]byte{0x00, 0xFF}, 333),
		"text":            []byte("the quick brown fox jumps over the lazy dog, again and again and again"),
		"all byte values": allBytes,
		"skewed":          skewed,
		"random":          random,
		"log lines": bytes.Repeat(
			[]byte("2026-10-15T08:00:00Z INFO request served path=/api/v1/items status=200\n"), 200),
	}
}
