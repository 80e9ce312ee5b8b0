package hdwallet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// HardenedOffset is added to an index to mark it hardened.
const HardenedOffset = hdkeychain.HardenedKeyStart

// SLIP-0044 coin types.
const (
	CoinEVM    uint32 = 60
	CoinTron   uint32 = 195
	CoinSolana uint32 = 501
)

// Path is a parsed derivation path, one index per level.
type Path []uint32

// BIP44Path returns m/44'/coin'/0'/0/0.
func BIP44Path(coin uint32) Path {
	return Path{44 + HardenedOffset, coin + HardenedOffset, HardenedOffset, 0, 0}
}

// SolanaPath returns m/44'/coin'/0', the all-hardened account path Solana wallets use.
func SolanaPath(coin uint32) Path {
	return Path{44 + HardenedOffset, coin + HardenedOffset, HardenedOffset}
}

// ParsePath parses "m/44'/60'/0'/0/0". Hardened levels may be marked
// with ', h or H.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if parts[0] != "m" && parts[0] != "M" {
		return nil, fmt.Errorf("%w: path %q must start with m", generator.ErrDerivation, s)
	}

	path := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := false
		if n := len(part); n > 0 && (part[n-1] == '\'' || part[n-1] == 'h' || part[n-1] == 'H') {
			hardened = true
			part = part[:n-1]
		}
		if part == "" {
			return nil, fmt.Errorf("%w: empty level in path %q", generator.ErrDerivation, s)
		}

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil || index >= uint64(HardenedOffset) {
			return nil, fmt.Errorf("%w: invalid index %q in path %q", generator.ErrDerivation, part, s)
		}

		i := uint32(index)
		if hardened {
			i += HardenedOffset
		}
		path = append(path, i)
	}
	return path, nil
}

// String renders the path with ' as the hardened marker.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, index := range p {
		b.WriteByte('/')
		if index >= HardenedOffset {
			b.WriteString(strconv.FormatUint(uint64(index-HardenedOffset), 10))
			b.WriteByte('\'')
		} else {
			b.WriteString(strconv.FormatUint(uint64(index), 10))
		}
	}
	return b.String()
}

// AllHardened reports whether every level is hardened.
func (p Path) AllHardened() bool {
	for _, index := range p {
		if index < HardenedOffset {
			return false
		}
	}
	return true
}
