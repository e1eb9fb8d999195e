// Package target reports the libclang major version requested at build time.
//
// Builds opt in with cumulative tags such as `-tags clang_18_0`; the highest
// enabled tag decides the version. The 3.x tags all map to major 3.
package target

var enabled []int

// Version returns the requested major version, or false when no tag is set.
func Version() (int, bool) {
	best := 0
	for _, v := range enabled {
		if v > best {
			best = v
		}
	}
	return best, best > 0
}
