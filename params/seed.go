package params

// hash64 is the splitmix64 finalizer, used as a cheap avalanche step so
// that consecutive indices and caller seeds land on unrelated points of
// the generator's state space. Not cryptographic.
func hash64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// indexSeed derives the per-datapoint generator seed. Addition wraps,
// which is fine: only the mixing matters, not the magnitude.
func indexSeed(index, seedOffset uint64) uint64 {
	return hash64(index) + seedOffset
}
