package consensus

import (
	"hash/fnv"
	"strconv"
)

// hashID derives a short, reproducible identifier from a string using FNV-1a.
// Same input always yields the same id, which keeps category ids and
// synthesized credit ids stable across runs and human-debuggable. It is not
// collision-resistant and must not be treated as a true unique identifier.
func hashID(s string) string {
	h := fnv.New32a()
	h.Write([]byte(s)) //nolint:errcheck
	return strconv.FormatUint(uint64(h.Sum32()), 36)
}
