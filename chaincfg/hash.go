package chaincfg

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	x11 "github.com/samli88/go-x11-hash"
)

// HeaderHasher computes the identifying hash of a block header.
type HeaderHasher interface {
	HeaderHash(header *wire.BlockHeader) chainhash.Hash
}

// HeaderHasherFunc adapts a plain function to HeaderHasher.
type HeaderHasherFunc func(header *wire.BlockHeader) chainhash.Hash

// HeaderHash calls f(header).
func (f HeaderHasherFunc) HeaderHash(header *wire.BlockHeader) chainhash.Hash {
	return f(header)
}

// X11 hashes the 80 byte serialized header with the X11 chain of hash
// functions. This is the block hash used by the bloodcoin networks.
var X11 HeaderHasher = HeaderHasherFunc(x11HeaderHash)

// DoubleSHA256 hashes the header the way Bitcoin does.
var DoubleSHA256 HeaderHasher = HeaderHasherFunc(func(header *wire.BlockHeader) chainhash.Hash {
	return header.BlockHash()
})

func x11HeaderHash(header *wire.BlockHeader) chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, wire.MaxBlockHeaderPayload))
	// Writes to a bytes.Buffer can't fail.
	_ = header.Serialize(buf)

	var hash chainhash.Hash
	// The x11 state is not safe for reuse across goroutines.
	x11.New().Hash(buf.Bytes(), hash[:])
	return hash
}
