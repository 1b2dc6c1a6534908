// Package cryptorand exposes crypto/rand as a math/rand Source, for
// callers like the server that want unpredictable IDs and board layouts
// through the same seeded-rand plumbing the tests use.
package cryptorand

import (
	"crypto/rand"
)

// NewSource returns a rand.Source backed by crypto/rand. Seed is a no-op.
func NewSource() Source {
	return Source{}
}

type Source struct{}

func (Source) Int63() int64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		panic(err)
	}
	return int64(buf[0]) |
		int64(buf[1])<<8 |
		int64(buf[2])<<16 |
		int64(buf[3])<<24 |
		int64(buf[4])<<32 |
		int64(buf[5])<<40 |
		int64(buf[6])<<48 |
		int64(buf[7]&0x7f)<<56
}

func (Source) Seed(int64) {}
