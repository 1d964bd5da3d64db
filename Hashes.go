package Fixed

// Portable string hashes. Unlike Hasher these are seedless and produce the
// same value on every run and platform, so they're safe to persist or to use
// as cross-process test vectors.

// HashELF is the PJW hash as used by the SysV ELF format.
func HashELF(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h = h<<4 + uint32(c)
		if g := h & 0xF0000000; g != 0 {
			h ^= g >> 24
			h &^= g
		}
	}
	return h
}

// HashELFString is HashELF on the bytes of s without copying.
func HashELFString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h<<4 + uint32(s[i])
		if g := h & 0xF0000000; g != 0 {
			h ^= g >> 24
			h &^= g
		}
	}
	return h
}

// HashJenkins is Bob Jenkins' one-at-a-time hash.
func HashJenkins(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h += uint32(c)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// HashJenkinsString is HashJenkins on the bytes of s without copying.
func HashJenkinsString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h += uint32(s[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}
