// Package session owns one application shell per browser session.
package session

import (
	"time"

	"github.com/fjod/go_storefront/internal/badge"
	"github.com/fjod/go_storefront/internal/cart"
)

// Shell is the composition root of one session: it owns the cart and the
// views that depend on it.
type Shell struct {
	Cart  *cart.Store
	Badge *badge.Indicator

	unsubscribe func()
}

func NewShell(pulse time.Duration) *Shell {
	store := cart.NewStore()
	indicator := badge.NewIndicator(pulse)

	return &Shell{
		Cart:        store,
		Badge:       indicator,
		unsubscribe: store.Subscribe(indicator.Observe),
	}
}

// Close detaches the badge from the cart and stops its timer.
func (s *Shell) Close() {
	s.unsubscribe()
	s.Badge.Close()
}
