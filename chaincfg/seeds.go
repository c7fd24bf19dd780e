package chaincfg

import (
	"encoding/binary"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// oneWeek is the width of the window fixed seed timestamps are drawn from.
const oneWeek = 7 * 24 * time.Hour

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a human readable label for the seed operator.
	Name string

	// Host is the hostname resolved to find peers.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// SeedIP returns the IPv4 address an embedded seed value stands for. The
// value is laid out in memory order, least significant byte first, so
// 0x6df9a8d5 is 213.168.249.109.
func SeedIP(seed uint32) net.IP {
	ip := make(net.IP, net.IPv4len)
	binary.LittleEndian.PutUint32(ip, seed)
	return ip
}

// MaterializeSeeds turns embedded IPv4 seed values into peer addresses on the
// given port. Each address is given a random last seen time between one and
// two weeks before now, so that the address manager prefers any fresher
// address learned from live peers.
func MaterializeSeeds(seeds []uint32, port uint16, now time.Time, rnd RandSource) []*wire.NetAddress {
	week := int64(oneWeek / time.Second)
	addrs := make([]*wire.NetAddress, 0, len(seeds))
	for _, seed := range seeds {
		addr := wire.NewNetAddressIPPort(SeedIP(seed), port, wire.SFNodeNetwork)
		addr.Timestamp = time.Unix(now.Unix()-rnd.Int63n(week)-week, 0)
		addrs = append(addrs, addr)
	}
	return addrs
}
