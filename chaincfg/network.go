package chaincfg

import (
	"fmt"
	"strings"
)

// Network identifies one of the known parameter profiles.
type Network int

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest
)

var networkNames = map[Network]string{
	MainNet: "mainnet",
	TestNet: "testnet",
	RegTest: "regtest",
}

// Networks returns every known network, main network first.
func Networks() []Network {
	return []Network{MainNet, TestNet, RegTest}
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if s, ok := networkNames[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown network (%d)", int(n))
}

// Valid reports whether n is one of the known networks.
func (n Network) Valid() bool {
	_, ok := networkNames[n]
	return ok
}

// ParseNetwork returns the network with the given name. "main", "test" and
// "testnet3" are accepted as aliases.
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mainnet", "main":
		return MainNet, nil
	case "testnet", "test", "testnet3":
		return TestNet, nil
	case "regtest":
		return RegTest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}
