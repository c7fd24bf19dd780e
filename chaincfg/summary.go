package chaincfg

import (
	"encoding/hex"
	"fmt"
)

// Summary is a printable view of a network's parameters.
type Summary struct {
	Name               string            `yaml:"name" json:"name"`
	MessageStart       string            `yaml:"messagestart" json:"messagestart"`
	DefaultPort        uint16            `yaml:"port" json:"port"`
	RPCPort            uint16            `yaml:"rpcport" json:"rpcport"`
	PowLimitBits       string            `yaml:"powlimitbits" json:"powlimitbits"`
	HalvingInterval    uint32            `yaml:"halvinginterval,omitempty" json:"halvinginterval,omitempty"`
	GenesisHash        string            `yaml:"genesishash" json:"genesishash"`
	GenesisMerkleRoot  string            `yaml:"genesismerkleroot" json:"genesismerkleroot"`
	GenesisTime        int64             `yaml:"genesistime" json:"genesistime"`
	DNSSeeds           []string          `yaml:"dnsseeds,omitempty" json:"dnsseeds,omitempty"`
	FixedSeeds         []string          `yaml:"fixedseeds,omitempty" json:"fixedseeds,omitempty"`
	Prefixes           map[string]string `yaml:"prefixes" json:"prefixes"`
	DataDirName        string            `yaml:"datadirname" json:"datadirname"`
	RequireRPCPassword bool              `yaml:"requirerpcpassword" json:"requirerpcpassword"`
}

// Summarize returns the printable view of p.
func (p *Params) Summarize() Summary {
	start := p.MessageStart()
	s := Summary{
		Name:               p.Name,
		MessageStart:       hex.EncodeToString(start[:]),
		DefaultPort:        p.DefaultPort,
		RPCPort:            p.RPCPort,
		PowLimitBits:       fmt.Sprintf("%08x", p.PowLimitBits),
		HalvingInterval:    p.SubsidyHalvingInterval,
		GenesisHash:        p.GenesisHash.String(),
		GenesisMerkleRoot:  p.GenesisBlock.Header.MerkleRoot.String(),
		GenesisTime:        p.GenesisBlock.Header.Timestamp.Unix(),
		Prefixes:           make(map[string]string, len(p.prefixes)),
		DataDirName:        p.DataDirName,
		RequireRPCPassword: p.RequireRPCPassword,
	}
	for _, seed := range p.DNSSeeds {
		s.DNSSeeds = append(s.DNSSeeds, seed.Host)
	}
	for _, addr := range p.FixedSeeds {
		s.FixedSeeds = append(s.FixedSeeds, fmt.Sprintf("%s:%d", addr.IP, addr.Port))
	}
	for kind, prefix := range p.prefixes {
		s.Prefixes[kind.String()] = hex.EncodeToString(prefix)
	}
	return s
}
