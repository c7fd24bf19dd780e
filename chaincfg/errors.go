package chaincfg

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// ErrAmbiguousNetwork describes a selection request that asked for both
	// the test network and the regression test network.
	ErrAmbiguousNetwork = errors.New("testnet and regtest can't be used together")

	// ErrUnknownNetwork describes a network identifier that does not name a
	// known profile.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrPrefixMismatch describes a Base58Check string whose leading bytes do
	// not match the prefix expected for the address kind on this network.
	ErrPrefixMismatch = errors.New("base58 prefix does not match network")

	// ErrChecksum describes a Base58Check string with a bad checksum.
	ErrChecksum = errors.New("base58 checksum mismatch")

	// ErrUnknownAddressKind describes an address kind with no prefix entry.
	ErrUnknownAddressKind = errors.New("unknown address kind")
)

// GenesisMismatchError is returned when a computed genesis value differs from
// the constant a profile asserts. It means the constant table was corrupted or
// mis-edited, and the profile must not be used.
type GenesisMismatchError struct {
	Network  Network
	Field    string
	Computed chainhash.Hash
	Expected chainhash.Hash
}

func (e *GenesisMismatchError) Error() string {
	return fmt.Sprintf("%s genesis %s mismatch: computed %s, expected %s",
		e.Network, e.Field, e.Computed, e.Expected)
}

// GenesisTargetError is returned when the genesis difficulty bits encode a
// target easier than the profile's proof of work limit.
type GenesisTargetError struct {
	Network Network
	Bits    uint32
}

func (e *GenesisTargetError) Error() string {
	return fmt.Sprintf("%s genesis bits %08x exceed the proof of work limit", e.Network, e.Bits)
}
