package auth

import (
	"sync"
	"time"
)

// Verification request throttling.
const (
	CooldownStep    = 30 * time.Second
	MaxCooldown     = 90 * time.Second
	MaxAttempts     = 3
	LockoutDuration = 2 * time.Hour
)

type attempt struct {
	count int
	first time.Time
	last  time.Time
}

// AttemptTracker throttles repeated verification e-mails per user. After
// the n-th send the user waits n*CooldownStep (capped at MaxCooldown);
// MaxAttempts sends within LockoutDuration lock the user out until the
// window that started with the first send closes.
type AttemptTracker struct {
	mu      sync.Mutex
	entries map[string]*attempt
	now     func() time.Time
}

// NewAttemptTracker creates an empty tracker.
func NewAttemptTracker() *AttemptTracker {
	return &AttemptTracker{entries: make(map[string]*attempt), now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (t *AttemptTracker) WithClock(now func() time.Time) *AttemptTracker {
	t.now = now
	return t
}

// Reserve claims a send slot for userID. A positive wait means the user is
// in cooldown or locked out and nothing was recorded. Otherwise the attempt
// is recorded under the same lock and release undoes it if the send fails.
func (t *AttemptTracker) Reserve(userID string) (release func(), wait time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	a := t.current(userID)
	if a != nil {
		if wait := a.wait(now); wait > 0 {
			return nil, wait
		}
	}

	var prev *attempt
	if a == nil {
		a = &attempt{first: now}
		t.entries[userID] = a
	} else {
		snapshot := *a
		prev = &snapshot
	}
	a.count++
	a.last = now
	reserved := *a

	return func() { t.release(userID, reserved, prev) }, 0
}

// release restores prev if the entry still holds the reserved attempt.
func (t *AttemptTracker) release(userID string, reserved attempt, prev *attempt) {
	t.mu.Lock()
	defer t.mu.Unlock()

	a, ok := t.entries[userID]
	if !ok || *a != reserved {
		return
	}
	if prev == nil {
		delete(t.entries, userID)
		return
	}
	*a = *prev
}

// Reset forgets userID.
func (t *AttemptTracker) Reset(userID string) {
	t.mu.Lock()
	delete(t.entries, userID)
	t.mu.Unlock()
}

// wait returns the remaining cooldown or lockout at now.
func (a *attempt) wait(now time.Time) time.Duration {
	if a.count >= MaxAttempts {
		return a.first.Add(LockoutDuration).Sub(now)
	}
	cooldown := min(CooldownStep*time.Duration(a.count), MaxCooldown)
	return max(a.last.Add(cooldown).Sub(now), 0)
}

// current returns the live entry for userID, dropping one whose window closed.
// Callers hold mu.
func (t *AttemptTracker) current(userID string) *attempt {
	a, ok := t.entries[userID]
	if !ok {
		return nil
	}
	if !t.now().Before(a.first.Add(LockoutDuration)) {
		delete(t.entries, userID)
		return nil
	}
	return a
}
