package chaincfg

import (
	"fmt"
	"sync/atomic"
)

// Selector holds the parameters of every network and the one currently
// active. It is built once at startup and handed to each component that needs
// network parameters.
//
// The active profile is expected to change at most once, before other
// components start reading it. The swap is atomic so a late reader sees
// either the old or the new profile, never a mix.
type Selector struct {
	params map[Network]*Params
	active atomic.Value // *Params
}

// NewSelector builds all network profiles with the given primitives and
// activates the main network. Any profile whose genesis constants do not
// verify makes construction fail.
func NewSelector(prims Primitives) (*Selector, error) {
	prims = prims.withDefaults()
	ctors := map[Network]func(Primitives) (*Params, error){
		MainNet: NewMainNetParams,
		TestNet: NewTestNetParams,
		RegTest: NewRegTestParams,
	}

	s := &Selector{params: make(map[Network]*Params, len(ctors))}
	for _, network := range Networks() {
		p, err := ctors[network](prims)
		if err != nil {
			return nil, fmt.Errorf("failed to build %v parameters: %w", network, err)
		}
		s.params[network] = p
	}
	s.active.Store(s.params[MainNet])
	return s, nil
}

// Current returns the active parameters.
func (s *Selector) Current() *Params {
	return s.active.Load().(*Params)
}

// Params returns the parameters for network whether or not it is active.
func (s *Selector) Params(network Network) (*Params, error) {
	p, ok := s.params[network]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNetwork, network)
	}
	return p, nil
}

// Select makes network the active profile. Network is a closed set, so an
// unknown value is a programming error and panics.
func (s *Selector) Select(network Network) {
	p, ok := s.params[network]
	if !ok {
		panic(fmt.Sprintf("chaincfg: unimplemented network %v", network))
	}
	s.active.Store(p)
	log.WithField("network", p.Name).Info("selected network parameters")
}

// SelectFromFlags activates the network requested by the testnet and regtest
// switches. Requesting both returns ErrAmbiguousNetwork and leaves the active
// profile unchanged; requesting neither selects the main network.
func (s *Selector) SelectFromFlags(testnet, regtest bool) error {
	switch {
	case testnet && regtest:
		return ErrAmbiguousNetwork
	case regtest:
		s.Select(RegTest)
	case testnet:
		s.Select(TestNet)
	default:
		s.Select(MainNet)
	}
	return nil
}
