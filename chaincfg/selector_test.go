package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	sel, err := NewSelector(testPrimitives())
	require.NoError(t, err)
	return sel
}

func TestSelectorDefaultsToMain(t *testing.T) {
	sel := newTestSelector(t)
	assert.Equal(t, MainNet, sel.Current().Network)
}

func TestSelectFromFlags(t *testing.T) {
	tests := []struct {
		name    string
		testnet bool
		regtest bool
		want    Network
	}{
		{"neither", false, false, MainNet},
		{"testnet", true, false, TestNet},
		{"regtest", false, true, RegTest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := newTestSelector(t)
			// Start away from the expected network so the switch is visible.
			sel.Select(RegTest)
			if tt.want == RegTest {
				sel.Select(TestNet)
			}
			require.NoError(t, sel.SelectFromFlags(tt.testnet, tt.regtest))
			assert.Equal(t, tt.want, sel.Current().Network)
		})
	}
}

func TestSelectFromFlagsAmbiguous(t *testing.T) {
	sel := newTestSelector(t)
	sel.Select(TestNet)
	before := sel.Current()

	err := sel.SelectFromFlags(true, true)
	assert.ErrorIs(t, err, ErrAmbiguousNetwork)
	assert.Same(t, before, sel.Current())
}

func TestSelectUnknownNetworkPanics(t *testing.T) {
	sel := newTestSelector(t)
	assert.Panics(t, func() { sel.Select(Network(42)) })
	assert.Equal(t, MainNet, sel.Current().Network)
}

func TestSelectorParams(t *testing.T) {
	sel := newTestSelector(t)
	for _, n := range Networks() {
		p, err := sel.Params(n)
		require.NoError(t, err)
		assert.Equal(t, n, p.Network)
		assert.Equal(t, n.String(), p.Name)
	}
	_, err := sel.Params(Network(-1))
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}

// TestSelectorsIndependent checks that two selectors in one process don't
// share the active profile.
func TestSelectorsIndependent(t *testing.T) {
	a := newTestSelector(t)
	b := newTestSelector(t)
	a.Select(RegTest)
	assert.Equal(t, RegTest, a.Current().Network)
	assert.Equal(t, MainNet, b.Current().Network)
}

func TestNewSelectorFillsPrimitives(t *testing.T) {
	sel, err := NewSelector(Primitives{})
	require.NoError(t, err)
	assert.Equal(t, "51a08b78121d81bfa00d933098381f56336c6f82b7c7cfdb406d782bd594a941", sel.Current().GenesisHash.String())
}
