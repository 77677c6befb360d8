package schema

import "github.com/cespare/xxhash/v2"

// StringHash maps a string to the 64-bit value folded into schema hashes.
// Producer and consumer must use the same function.
type StringHash func(s string) uint64

var (
	// LibstdcxxHash matches std::hash<std::string> of libstdc++ on 64-bit
	// little-endian hosts, which is what C++ producers stamp into __hash__.
	LibstdcxxHash StringHash = murmurHash64
	// XXHash is available for deployments where both ends are Go.
	XXHash StringHash = xxhash.Sum64String
)

const (
	murmurMul  uint64 = 0xc6a4a793<<32 | 0x5bd1e995
	murmurSeed uint64 = 0xc70f6907
)

func shiftMix(v uint64) uint64 { return v ^ (v >> 47) }

func load8(s string) uint64 {
	_ = s[7]
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

// murmurHash64 is libstdc++'s _Hash_bytes with its default seed.
func murmurHash64(s string) uint64 {
	n := len(s)
	aligned := n &^ 7
	h := murmurSeed ^ (uint64(n) * murmurMul)

	for i := 0; i < aligned; i += 8 {
		h ^= shiftMix(load8(s[i:])*murmurMul) * murmurMul
		h *= murmurMul
	}
	if n&7 != 0 {
		var tail uint64
		for i := n - 1; i >= aligned; i-- {
			tail = tail<<8 + uint64(s[i])
		}
		h ^= tail
		h *= murmurMul
	}
	h = shiftMix(h) * murmurMul
	return shiftMix(h)
}

func combine(h, v uint64) uint64 {
	return h ^ (v + 0x9e3779b9 + (h << 6) + (h >> 2))
}

// AddFieldToHash folds f into h. The fold order is name, type tag, custom type
// name (Other only), vector flag, array size.
func AddFieldToHash(f Field, h uint64, hashString StringHash) uint64 {
	h = combine(h, hashString(f.Name))
	h = combine(h, uint64(f.Type))
	if f.Type == Other {
		h = combine(h, hashString(f.CustomTypeName))
	}
	var vec uint64
	if f.IsVector {
		vec = 1
	}
	h = combine(h, vec)
	h = combine(h, uint64(f.ArraySize))
	return h
}
