package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultTTL is how long an idle session keeps its cart
	DefaultTTL = 30 * time.Minute

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = 30 * time.Second
)

type entry struct {
	shell    *Shell
	lastSeen time.Time
}

// Registry keeps shells in memory only; nothing survives a restart.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	ttl      time.Duration
	pulse    time.Duration
	interval time.Duration
	logger   *zap.Logger

	stopCleanup chan struct{}
	closeOnce   sync.Once
	wg          sync.WaitGroup
}

type Options struct {
	TTL             time.Duration
	Pulse           time.Duration
	CleanupInterval time.Duration
	Logger          *zap.Logger
}

func NewRegistry(opts Options) *Registry {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = CleanupInterval
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := &Registry{
		sessions:    make(map[string]*entry),
		ttl:         opts.TTL,
		pulse:       opts.Pulse,
		interval:    opts.CleanupInterval,
		logger:      opts.Logger,
		stopCleanup: make(chan struct{}),
	}

	r.wg.Add(1)
	go r.cleanupLoop()

	return r
}

// Create starts a new session with an empty cart.
func (r *Registry) Create() (string, *Shell) {
	id := uuid.NewString()
	shell := NewShell(r.pulse)

	r.mu.Lock()
	r.sessions[id] = &entry{shell: shell, lastSeen: time.Now()}
	r.mu.Unlock()

	r.logger.Debug("session created", zap.String("session_id", id))
	return id, shell
}

// Get returns the shell for id and marks the session as active.
func (r *Registry) Get(id string) (*Shell, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.shell, true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) cleanupLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.expireSessions(time.Now())
		case <-r.stopCleanup:
			return
		}
	}
}

// expireSessions drops every session idle since before now-ttl.
func (r *Registry) expireSessions(now time.Time) {
	r.mu.Lock()
	var expired []*Shell
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.ttl {
			expired = append(expired, e.shell)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, shell := range expired {
		shell.Close()
	}
	if len(expired) > 0 {
		r.logger.Debug("sessions expired", zap.Int("count", len(expired)))
	}
}

// Close stops the cleanup loop and every shell.
func (r *Registry) Close() error {
	r.closeOnce.Do(func() {
		close(r.stopCleanup)
		r.wg.Wait()

		r.mu.Lock()
		for id, e := range r.sessions {
			e.shell.Close()
			delete(r.sessions, id)
		}
		r.mu.Unlock()
	})
	return nil
}
