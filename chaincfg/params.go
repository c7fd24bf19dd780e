// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chaincfg

import (
	"encoding/binary"
	"math/big"
	"path/filepath"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
	"github.com/sirupsen/logrus"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have on
	// the main and test networks.  It is the value 2^235 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 235), bigOne)

	// regressionPowLimit is the highest proof of work value a block can have
	// on the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// Params defines a bloodcoin network by its parameters. A Params value is
// fully built by its constructor and must not be modified afterwards.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Network identifies the profile.
	Network Network

	// Net is the magic number prefixing every wire message, read little
	// endian from the four message start bytes.
	Net wire.BitcoinNet

	// AlertPubKey verifies signed alert messages. Empty when the network
	// has no alert system.
	AlertPubKey []byte

	DefaultPort uint16
	RPCPort     uint16

	// PowLimit is the highest proof of work value a block can have, and
	// PowLimitBits its compact form.
	PowLimit     *big.Int
	PowLimitBits uint32

	// SubsidyHalvingInterval is the number of blocks between reward
	// halvings. Zero means the network does not halve rewards.
	SubsidyHalvingInterval uint32

	GenesisReward      btcutil.Amount
	BlockRewardStart   btcutil.Amount
	BlockRewardMinimum btcutil.Amount

	GenesisBlock *wire.MsgBlock
	GenesisHash  chainhash.Hash

	DNSSeeds   []DNSSeed
	FixedSeeds []*wire.NetAddress

	// DataDirName is the directory below the node's data directory that
	// holds this network's files. The main network uses the root itself.
	DataDirName string

	RequireRPCPassword bool

	prefixes Prefixes
	hasher   HeaderHasher
}

// profile lists the literal values a network constructor sets. Constructors
// start from defaultProfile and override only what differs.
type profile struct {
	name               string
	network            Network
	messageStart       [4]byte
	alertPubKey        string
	defaultPort        uint16
	rpcPort            uint16
	powLimit           *big.Int
	halvingInterval    uint32
	genesis            GenesisInputs
	check              genesisCheck
	dnsSeeds           []DNSSeed
	fixedSeeds         []uint32
	dataDirName        string
	requireRPCPassword bool
	prefixes           Prefixes
}

// newParams builds and verifies the parameters described by pr.
func newParams(pr profile, prims Primitives) (*Params, error) {
	prims = prims.withDefaults()

	genesis, hash, err := BuildGenesisBlock(pr.genesis, prims.Hasher)
	if err != nil {
		return nil, err
	}

	p := &Params{
		Name:                   pr.name,
		Network:                pr.network,
		Net:                    wire.BitcoinNet(binary.LittleEndian.Uint32(pr.messageStart[:])),
		AlertPubKey:            hexToBytes(pr.alertPubKey),
		DefaultPort:            pr.defaultPort,
		RPCPort:                pr.rpcPort,
		PowLimit:               new(big.Int).Set(pr.powLimit),
		PowLimitBits:           blockchain.BigToCompact(pr.powLimit),
		SubsidyHalvingInterval: pr.halvingInterval,
		GenesisReward:          pr.genesis.Reward,
		BlockRewardStart:       8192 * btcutil.SatoshiPerBitcoin,
		BlockRewardMinimum:     1 * btcutil.SatoshiPerBitcoin,
		GenesisBlock:           genesis,
		GenesisHash:            hash,
		DNSSeeds:               append([]DNSSeed(nil), pr.dnsSeeds...),
		DataDirName:            pr.dataDirName,
		RequireRPCPassword:     pr.requireRPCPassword,
		prefixes:               pr.prefixes.clone(),
		hasher:                 prims.Hasher,
	}
	if err = verifyGenesis(p, pr.check); err != nil {
		log.WithError(err).Error("genesis verification failed")
		return nil, err
	}
	p.FixedSeeds = MaterializeSeeds(pr.fixedSeeds, p.DefaultPort, prims.Now(), prims.Rand)

	log.WithFields(logrus.Fields{
		"network": p.Name,
		"genesis": p.GenesisHash.String(),
		"seeds":   len(p.FixedSeeds),
	}).Debug("network parameters constructed")
	return p, nil
}

// MessageStart returns the four magic bytes in wire order.
func (p *Params) MessageStart() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(p.Net))
	return b
}

// HasSubsidyHalving reports whether block rewards halve on this network.
func (p *Params) HasSubsidyHalving() bool {
	return p.SubsidyHalvingInterval > 0
}

// DataDir returns the directory for this network below base.
func (p *Params) DataDir(base string) string {
	if p.DataDirName == "" {
		return base
	}
	return filepath.Join(base, p.DataDirName)
}

// GenesisCoinbase returns the coinbase transaction of the genesis block.
func (p *Params) GenesisCoinbase() *wire.MsgTx {
	return p.GenesisBlock.Transactions[0]
}

// BlockHash hashes a block header with the hash function of this network.
func (p *Params) BlockHash(header *wire.BlockHeader) chainhash.Hash {
	return p.hasher.HeaderHash(header)
}
