// Package badge renders the cart item count shown while browsing the shop.
package badge

import (
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/nav"
)

// DefaultPulse is how long the badge stays highlighted after a count change.
const DefaultPulse = 300 * time.Millisecond

// View is what a page renders for the badge. A zero View renders nothing.
type View struct {
	Visible   bool   `json:"visible"`
	Count     int    `json:"count"`
	ShowCount bool   `json:"show_count"`
	Pulsing   bool   `json:"pulsing"`
	Link      string `json:"link,omitempty"`
}

// Indicator tracks the cart size and a self-expiring pulse flag.
type Indicator struct {
	pulse time.Duration

	mu         sync.Mutex
	count      int
	pulsing    bool
	generation uint64
	timer      *time.Timer
	closed     bool
}

// NewIndicator returns an indicator whose pulse lasts for pulse. A
// non-positive duration falls back to DefaultPulse.
func NewIndicator(pulse time.Duration) *Indicator {
	if pulse <= 0 {
		pulse = DefaultPulse
	}
	return &Indicator{pulse: pulse}
}

// Observe is a cart listener.
func (i *Indicator) Observe(c domain.Cart) {
	i.SetCount(c.Len())
}

// SetCount records a new count and restarts the pulse when it differs from
// the previous one.
func (i *Indicator) SetCount(count int) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed || count == i.count {
		return
	}
	i.count = count
	i.pulsing = true

	if i.timer != nil {
		i.timer.Stop()
	}
	i.generation++
	gen := i.generation
	i.timer = time.AfterFunc(i.pulse, func() { i.expire(gen) })
}

// expire clears the pulse unless a newer change has superseded gen.
func (i *Indicator) expire(gen uint64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if gen != i.generation {
		return
	}
	i.pulsing = false
	i.timer = nil
}

// Visible reports whether the badge is shown at path.
func Visible(path string) bool {
	return nav.InSubtree(path, nav.ShopPath)
}

// Render returns the badge as seen from path.
func (i *Indicator) Render(path string) View {
	if !Visible(path) {
		return View{}
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	return View{
		Visible:   true,
		Count:     i.count,
		ShowCount: i.count > 0,
		Pulsing:   i.pulsing && i.count > 0,
		Link:      nav.CartPath,
	}
}

// Close stops a pending pulse timer. Later count changes are ignored.
func (i *Indicator) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.closed = true
	i.pulsing = false
	i.generation++
	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
}
