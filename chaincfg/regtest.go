package chaincfg

// NewRegTestParams builds the regression test network parameters: trivial
// difficulty, a short halving interval, and no network bootstrap at all.
func NewRegTestParams(prims Primitives) (*Params, error) {
	pr := defaultProfile()
	pr.name = "regtest"
	pr.network = RegTest
	pr.messageStart = [4]byte{0xfc, 0xc1, 0xb7, 0xdc}
	// Alerts are not relayed on a local network.
	pr.alertPubKey = ""
	pr.defaultPort = 19994
	pr.rpcPort = 19998
	pr.powLimit = regressionPowLimit
	pr.halvingInterval = 150
	pr.dataDirName = "regtest"
	pr.genesis.Time = 1417713337
	pr.genesis.Bits = 0x207fffff
	pr.genesis.Nonce = 1096447
	pr.requireRPCPassword = false
	pr.prefixes = testPrefixes()
	return newParams(pr, prims)
}
