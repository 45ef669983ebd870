package gallery

import (
	"context"
	"sync"

	"github.com/hairshop/admin/internal/observability"
)

// Registry holds the open gallery of each staff session. A session has at
// most one open gallery; opening another variant replaces it.
type Registry struct {
	gateway  Gateway
	notifier Notifier
	metrics  *observability.ConsoleMetrics
	onChange func(userID string, snap Snapshot)

	mu     sync.Mutex
	stores map[string]*entry
}

type entry struct {
	store       *Store
	unsubscribe func()
}

// NewRegistry creates a registry whose stores use gateway and notifier
func NewRegistry(gateway Gateway, notifier Notifier, metrics *observability.ConsoleMetrics) *Registry {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &Registry{
		gateway:  gateway,
		notifier: notifier,
		metrics:  metrics,
		stores:   make(map[string]*entry),
	}
}

// OnChange sets a callback invoked with the owner and a snapshot whenever
// any open gallery changes. It applies to galleries opened afterwards.
func (r *Registry) OnChange(fn func(userID string, snap Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// Open loads variantID's images and makes it the session's open gallery.
// On a fetch error the previously open gallery is left in place.
func (r *Registry) Open(ctx context.Context, sessionID, userID, variantID string) (*Store, error) {
	store := NewStore(variantID, r.gateway,
		WithNotifier(r.notifier),
		WithMetrics(r.metrics),
		WithOwner(userID),
	)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	var unsubscribe func()
	if fn := r.onChange; fn != nil {
		unsubscribe = store.Subscribe(func(snap Snapshot) { fn(userID, snap) })
	}
	previous := r.stores[sessionID]
	r.stores[sessionID] = &entry{store: store, unsubscribe: unsubscribe}
	r.mu.Unlock()

	if previous != nil && previous.unsubscribe != nil {
		previous.unsubscribe()
	}

	observability.WithContext(ctx).WithFields(map[string]interface{}{
		"variant_id": variantID,
		"images":     len(store.Snapshot().Images),
	}).Debug("Gallery opened")
	return store, nil
}

// Get returns the session's open gallery for variantID
func (r *Registry) Get(sessionID, variantID string) (*Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.stores[sessionID]
	if !ok || e.store.VariantID() != variantID {
		return nil, ErrGalleryNotOpen
	}
	return e.store, nil
}

// Close discards the session's open gallery, if any
func (r *Registry) Close(sessionID string) {
	r.mu.Lock()
	e, ok := r.stores[sessionID]
	delete(r.stores, sessionID)
	r.mu.Unlock()

	if ok && e.unsubscribe != nil {
		e.unsubscribe()
	}
}

// Len returns the number of open galleries
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
