package chaincfg

// NewTestNetParams builds the public test network parameters.
//
// The test network has no published genesis hash for this coinbase, so only
// the shared merkle root and the difficulty bound are asserted; the computed
// header hash becomes GenesisHash.
func NewTestNetParams(prims Primitives) (*Params, error) {
	pr := defaultProfile()
	pr.name = "testnet"
	pr.network = TestNet
	pr.messageStart = [4]byte{0xce, 0xe2, 0xca, 0xff}
	pr.alertPubKey = "04517d8a699cb43d3938d7b24faaff7cda448ca4ea267723ba614784de661949bf632d6304316b244646dea079735b9a6fc4af804efb4752075b9fe2245e14e412"
	pr.defaultPort = 19999
	pr.rpcPort = 19998
	pr.dataDirName = "testnet3"
	pr.genesis.Time = 1390666206
	pr.genesis.Nonce = 3861367235
	pr.prefixes = testPrefixes()
	return newParams(pr, prims)
}

// testPrefixes are used by both test networks.
func testPrefixes() Prefixes {
	return Prefixes{
		PubKeyAddress: {139},                    // starts with x or y
		ScriptAddress: {19},                     // starts with 8 or 9
		SecretKey:     {239},                    // starts with 9 or c
		ExtPublicKey:  {0x3a, 0x80, 0x61, 0xa0}, // starts with DRKV
		ExtSecretKey:  {0x3a, 0x80, 0x58, 0x37}, // starts with DRKP
		ExtCoinType:   {0x80, 0x00, 0x00, 0x01},
	}
}
