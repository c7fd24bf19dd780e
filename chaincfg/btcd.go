package chaincfg

import (
	"math/big"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg"
)

// BtcdParams returns the network as a btcd chaincfg.Params so btcd and
// btcutil code (address encoding, WIF, HD keys) can be pointed at it. Only
// the fields this package defines are filled in.
func (p *Params) BtcdParams() *chaincfg.Params {
	genesisHash := p.GenesisHash
	var hdPriv, hdPub [4]byte
	copy(hdPriv[:], p.prefixes[ExtSecretKey])
	copy(hdPub[:], p.prefixes[ExtPublicKey])

	seeds := make([]chaincfg.DNSSeed, 0, len(p.DNSSeeds))
	for _, s := range p.DNSSeeds {
		seeds = append(seeds, chaincfg.DNSSeed{Host: s.Host})
	}

	return &chaincfg.Params{
		Name:        p.Name,
		Net:         p.Net,
		DefaultPort: strconv.Itoa(int(p.DefaultPort)),
		DNSSeeds:    seeds,

		// Chain parameters
		GenesisBlock:             p.GenesisBlock,
		GenesisHash:              &genesisHash,
		PowLimit:                 new(big.Int).Set(p.PowLimit),
		PowLimitBits:             p.PowLimitBits,
		SubsidyReductionInterval: int32(p.SubsidyHalvingInterval),

		// Address encoding magics
		PubKeyHashAddrID: p.prefixes[PubKeyAddress][0],
		ScriptHashAddrID: p.prefixes[ScriptAddress][0],
		PrivateKeyID:     p.prefixes[SecretKey][0],

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: hdPriv,
		HDPublicKeyID:  hdPub,

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		HDCoinType: p.HDCoinType(),
	}
}
