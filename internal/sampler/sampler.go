package sampler

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_sampler.go github.com/KirkDiggler/guildkeeper/internal/sampler Sampler

// Sampler picks winners from a participant list
type Sampler interface {
	// Pick returns min(count, len(ids)) distinct elements drawn uniformly
	// at random without replacement
	Pick(ids []string, count int) []string
}

// Config for the random sampler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandSampler implements Sampler with a partial Fisher-Yates shuffle
type RandSampler struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random sampler. The default seed is drawn from
// crypto/rand so two samplers created in the same tick do not produce
// correlated picks.
func New(cfg *Config) *RandSampler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = entropySeed()
	}

	source := rand.NewSource(seed)

	return &RandSampler{
		random: rand.New(source),
	}
}

// Pick selects min(count, len(ids)) distinct entries from ids. Every subset
// of that size is equally likely; a "take first count" bias toward entry
// order would not be. Returns an empty slice when ids is empty or count <= 0.
func (s *RandSampler) Pick(ids []string, count int) []string {
	if count <= 0 || len(ids) == 0 {
		return []string{}
	}

	n := len(ids)
	if count > n {
		count = n
	}

	// Shuffle a copy so the caller's slice is untouched
	pool := make([]string, n)
	copy(pool, ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Partial Fisher-Yates: only the first count positions need settling
	for i := 0; i < count; i++ {
		j := i + s.random.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:count:count]
}

// entropySeed returns a seed from crypto/rand, falling back to the clock
// only if the system entropy source fails
func entropySeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err == nil {
		return int64(binary.LittleEndian.Uint64(b[:]))
	}
	return time.Now().UnixNano()
}
