package chaincfg

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testNow is the fixed clock used by tests.
var testNow = time.Unix(1600000000, 0)

// fixedRand always returns the same fraction of n.
type fixedRand struct {
	last bool
}

func (f fixedRand) Int63n(n int64) int64 {
	if f.last {
		return n - 1
	}
	return 0
}

func testPrimitives() Primitives {
	return Primitives{
		Hasher: X11,
		Now:    func() time.Time { return testNow },
		Rand:   rand.New(rand.NewSource(1)),
	}
}

func allParams(t *testing.T) (main, test, regtest *Params) {
	t.Helper()
	sel, err := NewSelector(testPrimitives())
	require.NoError(t, err)
	main, err = sel.Params(MainNet)
	require.NoError(t, err)
	test, err = sel.Params(TestNet)
	require.NoError(t, err)
	regtest, err = sel.Params(RegTest)
	require.NoError(t, err)
	return
}
