package dump

import (
	"math/rand"
	"sync"

	"github.com/dchest/siphash"
)

var (
	seedMu  sync.RWMutex
	seedKey = make([]byte, 16)
)

// SetSeed sets the 16 byte key digests are computed with. Shorter seeds are
// zero padded.
func SetSeed(seed []byte) {
	key := make([]byte, 16)
	copy(key, seed)
	seedMu.Lock()
	seedKey = key
	seedMu.Unlock()
}

func RandomSeed() []byte {
	seed := make([]byte, 16)
	for i := range seed {
		seed[i] = byte(rand.Intn(256))
	}
	return seed
}

func hash(buf []byte) uint64 {
	seedMu.RLock()
	h := siphash.New(seedKey)
	seedMu.RUnlock()
	h.Write(buf)
	return h.Sum64()
}

// Digest hashes the YAML rendering of doc. Two containers holding the same
// payloads in the same shape digest alike under the same seed.
func Digest(doc Document) (uint64, error) {
	out, err := Marshal(doc)
	if err != nil {
		return 0, err
	}
	return hash(out), nil
}
