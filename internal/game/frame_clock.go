package game

import "time"

type subscription struct {
	fn        func()
	cancelled bool
}

// frameClock fans the ebiten update tick out to animation callbacks.
type frameClock struct {
	now  func() time.Time
	subs []*subscription
}

func newFrameClock(now func() time.Time) *frameClock {
	if now == nil {
		now = time.Now
	}
	return &frameClock{now: now}
}

func (c *frameClock) Now() time.Time { return c.now() }

func (c *frameClock) Subscribe(fn func()) func() {
	s := &subscription{fn: fn}
	c.subs = append(c.subs, s)
	return func() {
		if s.cancelled {
			return
		}
		s.cancelled = true
		for i, other := range c.subs {
			if other == s {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				break
			}
		}
	}
}

// Tick runs every live callback once. Callbacks cancelled by an earlier
// callback of the same tick are skipped.
func (c *frameClock) Tick() {
	if len(c.subs) == 0 {
		return
	}
	pending := append([]*subscription(nil), c.subs...)
	for _, s := range pending {
		if !s.cancelled {
			s.fn()
		}
	}
}

func (c *frameClock) active() int { return len(c.subs) }
