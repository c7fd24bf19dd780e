package chaincfg

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageStart(t *testing.T) {
	main, test, regtest := allParams(t)

	tests := []struct {
		params *Params
		want   [4]byte
	}{
		{main, [4]byte{0xab, 0xa2, 0x35, 0xc2}},
		{test, [4]byte{0xce, 0xe2, 0xca, 0xff}},
		{regtest, [4]byte{0xfc, 0xc1, 0xb7, 0xdc}},
	}
	seen := make(map[[4]byte]string)
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.params.MessageStart(), tt.params.Name)
		if other, ok := seen[tt.want]; ok {
			t.Errorf("%s shares its magic with %s", tt.params.Name, other)
		}
		seen[tt.want] = tt.params.Name
	}
	assert.Equal(t, uint32(0xc235a2ab), uint32(main.Net))
}

func TestPortsAndFlags(t *testing.T) {
	main, test, regtest := allParams(t)

	assert.Equal(t, uint16(5011), main.DefaultPort)
	assert.Equal(t, uint16(5009), main.RPCPort)
	assert.Equal(t, uint16(19999), test.DefaultPort)
	assert.Equal(t, uint16(19998), test.RPCPort)
	assert.Equal(t, uint16(19994), regtest.DefaultPort)
	assert.Equal(t, uint16(19998), regtest.RPCPort)

	assert.True(t, main.RequireRPCPassword)
	assert.True(t, test.RequireRPCPassword)
	assert.False(t, regtest.RequireRPCPassword)

	assert.Len(t, main.DNSSeeds, 3)
	assert.Equal(t, "nd000.bloodcoin.cc", main.DNSSeeds[0].Host)
	assert.Equal(t, "ns000.bloodcoin.cc", main.DNSSeeds[0].Name)
	assert.Empty(t, test.DNSSeeds)
	assert.Empty(t, regtest.DNSSeeds)
}

func TestAlertKeys(t *testing.T) {
	main, test, regtest := allParams(t)
	assert.Len(t, main.AlertPubKey, 65)
	assert.Len(t, test.AlertPubKey, 65)
	assert.NotEqual(t, main.AlertPubKey, test.AlertPubKey)
	assert.Empty(t, regtest.AlertPubKey)
}

func TestPowLimit(t *testing.T) {
	main, test, regtest := allParams(t)

	want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 235), big.NewInt(1))
	assert.Equal(t, 0, main.PowLimit.Cmp(want))
	assert.Equal(t, 0, test.PowLimit.Cmp(want))
	assert.Equal(t, uint32(0x1e07ffff), main.PowLimitBits)
	assert.Equal(t, uint32(0x207fffff), regtest.PowLimitBits)
	assert.Equal(t, regtest.GenesisBlock.Header.Bits, regtest.PowLimitBits)

	// The regression network accepts anything below 2^255.
	assert.Equal(t, 255, regtest.PowLimit.BitLen())
	assert.True(t, regtest.PowLimit.Cmp(main.PowLimit) > 0)
	assert.True(t, blockchain.CompactToBig(main.GenesisBlock.Header.Bits).Cmp(main.PowLimit) <= 0)

	// Callers can't change the limit through the profile.
	main.PowLimit.SetInt64(1)
	assert.Equal(t, 0, mainPowLimit.Cmp(want))
}

func TestSubsidyHalving(t *testing.T) {
	main, test, regtest := allParams(t)
	assert.False(t, main.HasSubsidyHalving())
	assert.False(t, test.HasSubsidyHalving())
	assert.True(t, regtest.HasSubsidyHalving())
	assert.Equal(t, uint32(150), regtest.SubsidyHalvingInterval)

	assert.EqualValues(t, 100000000, main.GenesisReward)
	assert.EqualValues(t, 819200000000, main.BlockRewardStart)
	assert.EqualValues(t, 100000000, main.BlockRewardMinimum)
}

func TestGenesisHeaders(t *testing.T) {
	main, test, regtest := allParams(t)

	assert.Equal(t, int64(1390666206), test.GenesisBlock.Header.Timestamp.Unix())
	assert.Equal(t, uint32(3861367235), test.GenesisBlock.Header.Nonce)
	assert.Equal(t, main.GenesisBlock.Header.Bits, test.GenesisBlock.Header.Bits)

	assert.Equal(t, int64(1417713337), regtest.GenesisBlock.Header.Timestamp.Unix())
	assert.Equal(t, uint32(1096447), regtest.GenesisBlock.Header.Nonce)

	assert.NotEqual(t, main.GenesisHash, test.GenesisHash)
	assert.NotEqual(t, main.GenesisHash, regtest.GenesisHash)
	assert.NotEqual(t, test.GenesisHash, regtest.GenesisHash)
}

func TestDataDir(t *testing.T) {
	main, test, regtest := allParams(t)
	base := filepath.Join("home", "blood")
	assert.Equal(t, base, main.DataDir(base))
	assert.Equal(t, filepath.Join(base, "testnet3"), test.DataDir(base))
	assert.Equal(t, filepath.Join(base, "regtest"), regtest.DataDir(base))
}

func TestNetworkNames(t *testing.T) {
	for _, n := range Networks() {
		parsed, err := ParseNetwork(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
		assert.True(t, n.Valid())
	}
	n, err := ParseNetwork("testnet3")
	require.NoError(t, err)
	assert.Equal(t, TestNet, n)

	_, err = ParseNetwork("simnet")
	assert.ErrorIs(t, err, ErrUnknownNetwork)
	assert.False(t, Network(7).Valid())
	assert.Equal(t, "Unknown network (7)", Network(7).String())
}

func TestSummarize(t *testing.T) {
	main, _, regtest := allParams(t)

	s := main.Summarize()
	assert.Equal(t, "mainnet", s.Name)
	assert.Equal(t, "aba235c2", s.MessageStart)
	assert.Equal(t, "1e07ffff", s.PowLimitBits)
	assert.Equal(t, main.GenesisHash.String(), s.GenesisHash)
	assert.Len(t, s.FixedSeeds, 8)
	assert.Equal(t, "213.168.249.109:5011", s.FixedSeeds[0])
	assert.Equal(t, "55", s.Prefixes["pubkeyaddress"])
	assert.Equal(t, "80000005", s.Prefixes["extcointype"])

	r := regtest.Summarize()
	assert.Empty(t, r.DNSSeeds)
	assert.Equal(t, uint32(150), r.HalvingInterval)
	assert.False(t, r.RequireRPCPassword)
}
