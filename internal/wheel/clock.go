package wheel

import "time"

// FrameClock is the periodic callback primitive provided by the host,
// typically ticked once per rendered frame.
type FrameClock interface {
	Now() time.Time
	// Subscribe runs fn on every tick until the returned cancel is called.
	// No tick may run fn after cancel returns.
	Subscribe(fn func()) (cancel func())
}
