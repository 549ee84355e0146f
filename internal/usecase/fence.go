package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/timeutil"
)

// DefaultFenceTTL is how long an idle autocomplete field keeps its sequence.
const DefaultFenceTTL = 15 * time.Minute

// maxSessionKeyLength bounds the session part of a fence key; longer sessions are
// stored as their SHA-256 digest.
const maxSessionKeyLength = 128

type fenceKey struct {
	session string
	field   domain.AirportField
}

func newFenceKey(session string, field domain.AirportField) fenceKey {
	if len(session) > maxSessionKeyLength {
		sum := sha256.Sum256([]byte(session))
		session = "sha256:" + hex.EncodeToString(sum[:])
	}
	return fenceKey{session: session, field: field}
}

type fenceEntry struct {
	latest  uint64
	touched time.Time
}

// sequenceFence hands out increasing tokens per (session, field). Only the holder
// of the latest token may publish its lookup result; older responses are stale.
type sequenceFence struct {
	mu        sync.Mutex
	entries   map[fenceKey]*fenceEntry
	ttl       time.Duration
	clock     timeutil.Clock
	lastSweep time.Time
}

func newSequenceFence(ttl time.Duration, clock timeutil.Clock) *sequenceFence {
	if ttl <= 0 {
		ttl = DefaultFenceTTL
	}
	return &sequenceFence{
		entries:   make(map[fenceKey]*fenceEntry),
		ttl:       ttl,
		clock:     clock,
		lastSweep: clock.Now(),
	}
}

// issue starts a new lookup for the field and returns its token.
func (f *sequenceFence) issue(session string, field domain.AirportField) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.clock.Now()
	f.sweepLocked(now)

	key := newFenceKey(session, field)
	entry, ok := f.entries[key]
	if !ok {
		entry = &fenceEntry{}
		f.entries[key] = entry
	}
	entry.latest++
	entry.touched = now
	return entry.latest
}

// isLatest reports whether token is still the newest for the field.
func (f *sequenceFence) isLatest(session string, field domain.AirportField, token uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.entries[newFenceKey(session, field)]
	return ok && entry.latest == token
}

// size returns the number of tracked fields.
func (f *sequenceFence) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// sweepLocked drops entries idle for longer than the TTL, at most once per TTL.
func (f *sequenceFence) sweepLocked(now time.Time) {
	if now.Sub(f.lastSweep) < f.ttl {
		return
	}
	for key, entry := range f.entries {
		if now.Sub(entry.touched) >= f.ttl {
			delete(f.entries, key)
		}
	}
	f.lastSweep = now
}
