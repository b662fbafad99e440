package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest is a streaming xxHash64 that also counts the bytes written to it.
// It is used as one leg of an io.MultiWriter while an output file is written.
type Digest struct {
	d *xxhash.Digest
	n int64
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write adds p to the running hash. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.n += int64(len(p))
	return d.d.Write(p)
}

// Sum64 returns the hash of everything written so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Size returns the number of bytes written so far.
func (d *Digest) Size() int64 {
	return d.n
}
