// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
)

const (
	// genesisScriptBits is pushed first in the genesis coinbase signature
	// script. It is the difficulty of the first Bitcoin block and carries
	// no meaning here.
	genesisScriptBits = 486604799

	// genesisScriptExtraNonce follows the bits literal as a one byte data
	// push (01 04), never as the small integer opcode OP_4.
	genesisScriptExtraNonce = 0x04
)

// GenesisInputs holds the literal values a genesis block is built from.
type GenesisInputs struct {
	Timestamp    string
	Reward       btcutil.Amount
	RewardPubKey []byte
	Time         int64
	Bits         uint32
	Nonce        uint32
	Version      int32
}

// GenesisCoinbaseTx builds the single coinbase transaction of a genesis
// block: one input without a previous output whose signature script embeds
// the timestamp string, and one output paying the reward to the public key.
func GenesisCoinbaseTx(in GenesisInputs) (*wire.MsgTx, error) {
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(genesisScriptBits).
		// Both AddData and AddFullData encode a lone 0x04 as OP_4.
		AddOps([]byte{txscript.OP_DATA_1, genesisScriptExtraNonce}).
		AddData([]byte(in.Timestamp)).
		Script()
	if err != nil {
		return nil, fmt.Errorf("genesis signature script: %w", err)
	}
	pkScript, err := txscript.NewScriptBuilder().
		AddData(in.RewardPubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, fmt.Errorf("genesis output script: %w", err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	tx.AddTxIn(wire.NewTxIn(prevOut, sigScript, nil))
	tx.AddTxOut(wire.NewTxOut(int64(in.Reward), pkScript))
	return tx, nil
}

// BuildGenesisBlock deterministically constructs the genesis block for the
// given inputs and returns it with its header hash.
func BuildGenesisBlock(in GenesisInputs, hasher HeaderHasher) (*wire.MsgBlock, chainhash.Hash, error) {
	coinbase, err := GenesisCoinbaseTx(in)
	if err != nil {
		return nil, chainhash.Hash{}, err
	}

	// A merkle tree over one transaction is that transaction's hash.
	merkleRoot := coinbase.TxHash()
	header := wire.NewBlockHeader(in.Version, &chainhash.Hash{}, &merkleRoot, in.Bits, in.Nonce)
	header.Timestamp = time.Unix(in.Time, 0)

	block := wire.NewMsgBlock(header)
	if err = block.AddTransaction(coinbase); err != nil {
		return nil, chainhash.Hash{}, err
	}
	return block, hasher.HeaderHash(&block.Header), nil
}

// genesisCheck lists the constants a profile asserts about its genesis
// block. Nil fields are not checked.
type genesisCheck struct {
	hash       *chainhash.Hash
	merkleRoot *chainhash.Hash
}

// verifyGenesis checks a freshly built genesis block against the asserted
// constants and the proof of work limit.
func verifyGenesis(p *Params, check genesisCheck) error {
	header := &p.GenesisBlock.Header
	if check.merkleRoot != nil && header.MerkleRoot != *check.merkleRoot {
		return &GenesisMismatchError{
			Network:  p.Network,
			Field:    "merkle root",
			Computed: header.MerkleRoot,
			Expected: *check.merkleRoot,
		}
	}
	if check.hash != nil && p.GenesisHash != *check.hash {
		return &GenesisMismatchError{
			Network:  p.Network,
			Field:    "hash",
			Computed: p.GenesisHash,
			Expected: *check.hash,
		}
	}
	if blockchain.CompactToBig(header.Bits).Cmp(p.PowLimit) > 0 {
		return &GenesisTargetError{Network: p.Network, Bits: header.Bits}
	}
	return nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}
