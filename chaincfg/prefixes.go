package chaincfg

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/base58"
)

// AddressKind selects an entry of a network's Base58Check prefix table.
type AddressKind int

const (
	PubKeyAddress AddressKind = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey
	ExtCoinType
)

var addressKindNames = map[AddressKind]string{
	PubKeyAddress: "pubkeyaddress",
	ScriptAddress: "scriptaddress",
	SecretKey:     "secretkey",
	ExtPublicKey:  "extpublickey",
	ExtSecretKey:  "extsecretkey",
	ExtCoinType:   "extcointype",
}

func (k AddressKind) String() string {
	if s, ok := addressKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("AddressKind(%d)", int(k))
}

// Prefixes maps every address kind to the bytes prepended before Base58Check
// encoding. ExtCoinType holds the hardened BIP44 coin type, big endian.
type Prefixes map[AddressKind][]byte

// clone returns a deep copy so profiles never share backing arrays.
func (p Prefixes) clone() Prefixes {
	c := make(Prefixes, len(p))
	for k, v := range p {
		c[k] = append([]byte(nil), v...)
	}
	return c
}

// Prefix returns a copy of the prefix for kind.
func (p *Params) Prefix(kind AddressKind) ([]byte, error) {
	b, ok := p.prefixes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAddressKind, kind)
	}
	return append([]byte(nil), b...), nil
}

// HDCoinType returns the unhardened BIP44 coin type of the network.
func (p *Params) HDCoinType() uint32 {
	b := p.prefixes[ExtCoinType]
	if len(b) != 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b) &^ hardenedKeyStart
}

// hardenedKeyStart is the index of the first hardened BIP32 child.
const hardenedKeyStart = 0x80000000

// EncodeBase58Check prefixes payload with the network's prefix for kind,
// appends a four byte double SHA-256 checksum and encodes the result.
func (p *Params) EncodeBase58Check(kind AddressKind, payload []byte) (string, error) {
	prefix, err := p.Prefix(kind)
	if err != nil {
		return "", err
	}
	b := make([]byte, 0, len(prefix)+len(payload)+4)
	b = append(b, prefix...)
	b = append(b, payload...)
	b = append(b, chainhash.DoubleHashB(b)[:4]...)
	return base58.Encode(b), nil
}

// DecodeBase58Check reverses EncodeBase58Check, rejecting strings with a bad
// checksum or encoded for another network or address kind.
func (p *Params) DecodeBase58Check(kind AddressKind, s string) ([]byte, error) {
	prefix, err := p.Prefix(kind)
	if err != nil {
		return nil, err
	}
	b := base58.Decode(s)
	if len(b) < len(prefix)+4 {
		return nil, ErrChecksum
	}
	body, sum := b[:len(b)-4], b[len(b)-4:]
	if !bytes.Equal(chainhash.DoubleHashB(body)[:4], sum) {
		return nil, ErrChecksum
	}
	if !bytes.HasPrefix(body, prefix) {
		return nil, ErrPrefixMismatch
	}
	return body[len(prefix):], nil
}

// PubKeyHashAddress encodes the pay-to-pubkey-hash address of a serialized
// public key on this network.
func (p *Params) PubKeyHashAddress(pubKey []byte) (string, error) {
	return p.EncodeBase58Check(PubKeyAddress, btcutil.Hash160(pubKey))
}
