package hash

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Digest computes the xxHash64 of the given bytes.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// DigestReader computes the xxHash64 of everything read from r.
func DigestReader(r io.Reader) (uint64, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// Format renders a digest the way the CLI reports it.
func Format(sum uint64) string {
	return fmt.Sprintf("xxh64:%016x", sum)
}
