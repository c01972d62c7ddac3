package hash

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the length of the digest returned by Sum.
const DigestLengthBytes = 32

// Hash is the hash function used to fingerprint circuit descriptions.
//
// Internally, this is a wrapper around blake3, with domain separation applied to
// everything written through WriteAny.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash struct where the internal hash function is keyed with a context string.
func New() *Hash {
	h := blake3.New()
	_, _ = h.Write([]byte("shor"))
	return &Hash{h: h}
}

// Digest returns a reader for the current output of the function.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the current hash state.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - string
//   - uint64
//   - hash.WriterToWithDomain
func (hash *Hash) WriteAny(data ...interface{}) error {
	var err error
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			err = writeWithDomain(hash.h, BytesWithDomain{TheDomain: "[]byte", Bytes: t})
		case string:
			err = writeWithDomain(hash.h, BytesWithDomain{TheDomain: "string", Bytes: []byte(t)})
		case uint64:
			buf := make([]byte, 8)
			binary.BigEndian.PutUint64(buf, t)
			err = writeWithDomain(hash.h, BytesWithDomain{TheDomain: "uint64", Bytes: buf})
		case WriterToWithDomain:
			err = writeWithDomain(hash.h, t)
		case nil:
			return fmt.Errorf("hash.Hash: write nil")
		default:
			return fmt.Errorf("hash.Hash: unsupported type %T", d)
		}
		if err != nil {
			return fmt.Errorf("hash.Hash: write %T: %w", d, err)
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}
