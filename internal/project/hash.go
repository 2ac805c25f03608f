package project

import (
	"crypto/sha256"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Combine строит составной ключ: H( content || part1 || part2 ... ).
// Порядок parts важен, вызывающий отвечает за детерминизм.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// HashString хеширует произвольную строку, например отпечаток настроек.
func HashString(s string) Digest {
	return Digest(sha256.Sum256([]byte(s)))
}
