// internal/daily/daily.go
//
// Deterministic daily answer selection and the arcade random draw.
//
// Date keys are computed in a single fixed reference time zone (US Eastern)
// so every client worldwide rolls over to the next puzzle at the same
// real-world moment, regardless of the host clock's zone. The zone database
// is compiled in via time/tzdata so the lookup works on bare hosts.
//
// The daily index hashes "<sport>[:<variant>]:<YYYY-MM-DD>" with a classic
// multiplicative string hash, then scrambles the result with a Knuth-style
// odd constant before the modulus. The scramble keeps adjacent calendar days
// from mapping to adjacent pool indices.

package daily

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/playerdle/playerdle/internal/sports"
)

const referenceZone = "America/New_York"

// knuthMultiplier is 2^32 * (sqrt(5)-1)/2, the golden-ratio hashing constant.
const knuthMultiplier = 2654435761

var (
	zoneOnce sync.Once
	zone     *time.Location
)

func referenceLocation() *time.Location {
	zoneOnce.Do(func() {
		loc, err := time.LoadLocation(referenceZone)
		if err != nil {
			// Deterministic fallback; date keys must never depend on the host zone.
			loc = time.UTC
		}
		zone = loc
	})
	return zone
}

// DateKey returns YYYY-MM-DD for t in the reference time zone.
func DateKey(t time.Time) string {
	return t.In(referenceLocation()).Format("2006-01-02")
}

// TodayKey returns the current date key in the reference time zone.
func TodayKey() string {
	return DateKey(time.Now())
}

// ParseDateKey interprets a YYYY-MM-DD key as midnight in the reference
// time zone, so a round-trip through DateKey yields the same key.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", key, referenceLocation())
}

// hashString folds the seed into a non-negative 31-bit value using the
// classic hash*31 + char recurrence over the raw bytes.
func hashString(s string) uint64 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}
	h64 := int64(h)
	if h64 < 0 {
		h64 = -h64
	}
	return uint64(h64)
}

// Index maps a seed string onto an answer pool index.
func Index(seed string, poolLen int) int {
	return int(hashString(seed) * knuthMultiplier % uint64(poolLen))
}

// Seed builds the daily seed for a resolved config and date key. A variant's
// daily answer is independent of the base sport's.
func Seed(cfg *sports.Config, dateKey string) string {
	if cfg.ActiveVariantID != "" {
		return fmt.Sprintf("%s:%s:%s", cfg.ID, cfg.ActiveVariantID, dateKey)
	}
	return fmt.Sprintf("%s:%s", cfg.ID, dateKey)
}

// Answer returns the daily hidden player for a resolved config and date.
// The same sport, variant, pool, and calendar date always yield the same
// player. An empty answer pool is a configuration defect that validation is
// expected to catch before selection runs.
func Answer(cfg *sports.Config, date time.Time) (sports.Player, error) {
	if len(cfg.AnswerPool) == 0 {
		return sports.Player{}, fmt.Errorf("daily: %s has an empty answer pool", cfg.ID)
	}
	idx := Index(Seed(cfg, DateKey(date)), len(cfg.AnswerPool))
	return cfg.AnswerPool[idx], nil
}

// ArcadeAnswer draws uniformly at random from the answer pool, excluding the
// given player id (typically the previous round's answer). If exclusion
// empties the pool, the full pool's first element is returned instead of
// failing.
func ArcadeAnswer(cfg *sports.Config, excludeID string) (sports.Player, error) {
	if len(cfg.AnswerPool) == 0 {
		return sports.Player{}, fmt.Errorf("daily: %s has an empty answer pool", cfg.ID)
	}
	eligible := make([]sports.Player, 0, len(cfg.AnswerPool))
	for _, p := range cfg.AnswerPool {
		if p.ID != excludeID {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return cfg.AnswerPool[0], nil
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(eligible))))
	if err != nil {
		return eligible[0], nil
	}
	return eligible[nBig.Int64()], nil
}
