package gallery

import (
	"context"
	"sync"

	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/observability"
	"go.opentelemetry.io/otel/attribute"
)

// Gateway is the remote side of a gallery: the catalog API
type Gateway interface {
	FetchImages(ctx context.Context, variantID string) ([]models.Image, error)
	DeleteImage(ctx context.Context, imageID string) error
	// CommitOrder persists a full ordering and returns the order the server stored
	CommitOrder(ctx context.Context, variantID string, order []models.ImageOrder) ([]models.Image, error)
}

// Snapshot is a copy of a store's state safe to hand to other goroutines
type Snapshot struct {
	VariantID   string
	Images      []models.Image
	PendingSave bool
	Committing  bool
}

// Store keeps one variant's image order under optimistic local edits.
//
// current is what the user sees; confirmed is the last order the catalog API
// accepted. While pendingSave is false both hold the same order. While it is
// true they hold the same images in a different order.
type Store struct {
	variantID string
	userID    string
	gateway   Gateway
	notifier  Notifier
	metrics   *observability.ConsoleMetrics

	// opMu serializes mutations and is held across gateway calls
	opMu sync.Mutex
	// commitMu is only ever try-locked; it rejects a second commit
	commitMu sync.Mutex

	mu          sync.RWMutex
	current     []models.Image
	confirmed   []models.Image
	pendingSave bool
	committing  bool

	obsMu     sync.Mutex
	observers map[int]func(Snapshot)
	nextObsID int
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithNotifier sets the sink for success and failure notifications
func WithNotifier(n Notifier) StoreOption {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithMetrics records commits and deletes on m
func WithMetrics(m *observability.ConsoleMetrics) StoreOption {
	return func(s *Store) { s.metrics = m }
}

// WithOwner tags notifications with the staff user the gallery belongs to
func WithOwner(userID string) StoreOption {
	return func(s *Store) { s.userID = userID }
}

// NewStore creates an empty store for a variant
func NewStore(variantID string, gateway Gateway, opts ...StoreOption) *Store {
	s := &Store{
		variantID: variantID,
		gateway:   gateway,
		notifier:  discardNotifier{},
		observers: map[int]func(Snapshot){},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// VariantID returns the variant this store holds images for
func (s *Store) VariantID() string {
	return s.variantID
}

// Load fetches the variant's images and initializes the store with them
func (s *Store) Load(ctx context.Context) error {
	ctx, span := observability.StartServiceSpan(ctx, "gallery", "Load")
	defer span.End()
	span.SetAttributes(observability.VariantID(s.variantID))

	images, err := s.gateway.FetchImages(ctx, s.variantID)
	if err != nil {
		observability.RecordError(span, err)
		return err
	}

	s.Initialize(images)
	observability.SetSuccess(span)
	return nil
}

// Initialize replaces both orders with images sorted by sort position and
// clears pendingSave.
func (s *Store) Initialize(images []models.Image) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	sorted := models.SortImages(images)

	s.mu.Lock()
	s.current = sorted
	s.confirmed = cloneImages(sorted)
	s.pendingSave = false
	s.mu.Unlock()

	s.publish()
}

// MoveImage moves the image at from to index to, shifting the images in
// between by one, then renumbers positions 1..N.
func (s *Store) MoveImage(from, to int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	n := len(s.current)
	if from < 0 || from >= n || to < 0 || to >= n {
		s.mu.Unlock()
		return ErrIndexOutOfRange
	}
	if from == to {
		s.mu.Unlock()
		return nil
	}

	s.current = moveImage(s.current, from, to)
	s.pendingSave = !sameOrder(s.current, s.confirmed)
	s.mu.Unlock()

	s.publish()
	return nil
}

// DeleteImage deletes an image through the gateway. Deletion is committed
// immediately and removes the image from both orders.
func (s *Store) DeleteImage(ctx context.Context, imageID string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.RLock()
	found := indexOf(s.current, imageID) >= 0
	s.mu.RUnlock()
	if !found {
		return ErrImageNotFound
	}

	ctx, span := observability.StartServiceSpan(ctx, "gallery", "DeleteImage")
	defer span.End()
	span.SetAttributes(observability.VariantID(s.variantID), observability.ImageID(imageID))
	logger := observability.WithContext(ctx).WithFields(map[string]interface{}{
		"variant_id": s.variantID,
		"image_id":   imageID,
	})

	if err := s.gateway.DeleteImage(ctx, imageID); err != nil {
		observability.RecordError(span, err)
		logger.Warnf("Image delete failed: %v", err)
		s.metrics.RecordImageDelete(ctx, false)

		n := newNotification(DeleteFailed, s.userID, s.variantID, err)
		n.ImageID = imageID
		s.notifier.Notify(ctx, n)
		return err
	}

	s.mu.Lock()
	s.current = removeImage(s.current, imageID)
	s.confirmed = removeImage(s.confirmed, imageID)
	s.pendingSave = !sameOrder(s.current, s.confirmed)
	s.mu.Unlock()

	observability.SetSuccess(span)
	logger.Info("Image deleted")
	s.metrics.RecordImageDelete(ctx, true)

	n := newNotification(DeleteSucceeded, s.userID, s.variantID, nil)
	n.ImageID = imageID
	s.notifier.Notify(ctx, n)
	s.publish()
	return nil
}

// CommitOrder sends the current order to the gateway. It is a no-op when
// nothing is pending. On success the server's order becomes both current and
// confirmed; on failure current rolls back to confirmed. Either way
// pendingSave ends cleared. A commit started while another one is in flight
// returns ErrCommitInProgress.
func (s *Store) CommitOrder(ctx context.Context) error {
	if !s.commitMu.TryLock() {
		return ErrCommitInProgress
	}
	defer s.commitMu.Unlock()

	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	if !s.pendingSave {
		s.mu.Unlock()
		return nil
	}
	order := make([]models.ImageOrder, len(s.current))
	for i, img := range s.current {
		order[i] = models.ImageOrder{ID: img.ID, SortOrder: img.SortOrder}
	}
	s.committing = true
	s.mu.Unlock()
	s.publish()

	ctx, span := observability.StartServiceSpan(ctx, "gallery", "CommitOrder")
	defer span.End()
	span.SetAttributes(
		observability.VariantID(s.variantID),
		attribute.Int("gallery.image_count", len(order)),
	)
	logger := observability.WithContext(ctx).WithField("variant_id", s.variantID)

	saved, err := s.gateway.CommitOrder(ctx, s.variantID, order)

	s.mu.Lock()
	s.committing = false
	s.pendingSave = false
	if err != nil {
		s.current = cloneImages(s.confirmed)
	} else {
		s.current = models.SortImages(saved)
		s.confirmed = cloneImages(s.current)
	}
	s.mu.Unlock()

	if err != nil {
		observability.RecordError(span, err)
		logger.Warnf("Image order commit failed, rolled back: %v", err)
		s.metrics.RecordReorder(ctx, s.variantID, len(order), false)
		s.notifier.Notify(ctx, newNotification(ReorderFailed, s.userID, s.variantID, err))
		s.publish()
		return err
	}

	observability.SetSuccess(span)
	logger.Infof("Image order saved (%d images)", len(order))
	s.metrics.RecordReorder(ctx, s.variantID, len(order), true)
	s.notifier.Notify(ctx, newNotification(ReorderSucceeded, s.userID, s.variantID, nil))
	s.publish()
	return nil
}

// DiscardOrder resets current to the confirmed order and clears pendingSave
func (s *Store) DiscardOrder() {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.current = cloneImages(s.confirmed)
	s.pendingSave = false
	s.mu.Unlock()

	s.publish()
}

// Snapshot returns a copy of the current state. It does not wait for an
// in-flight gateway call.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Confirmed returns a copy of the last server-confirmed order
func (s *Store) Confirmed() []models.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneImages(s.confirmed)
}

// Subscribe registers fn to be called with a snapshot after every change.
// The returned function removes it. fn must not call back into the store.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		VariantID:   s.variantID,
		Images:      cloneImages(s.current),
		PendingSave: s.pendingSave,
		Committing:  s.committing,
	}
}

// publish must be called without mu held
func (s *Store) publish() {
	s.obsMu.Lock()
	if len(s.observers) == 0 {
		s.obsMu.Unlock()
		return
	}
	fns := make([]func(Snapshot), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()

	snap := s.Snapshot()
	for _, fn := range fns {
		fn(snap)
	}
}

func cloneImages(images []models.Image) []models.Image {
	out := make([]models.Image, len(images))
	copy(out, images)
	return out
}

// moveImage returns a renumbered copy of images with the element at from
// reinserted at to.
func moveImage(images []models.Image, from, to int) []models.Image {
	out := make([]models.Image, 0, len(images))
	moved := images[from]
	for i, img := range images {
		if i != from {
			out = append(out, img)
		}
	}
	out = append(out, models.Image{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	models.RenumberImages(out)
	return out
}

func removeImage(images []models.Image, imageID string) []models.Image {
	out := make([]models.Image, 0, len(images))
	for _, img := range images {
		if img.ID != imageID {
			out = append(out, img)
		}
	}
	models.RenumberImages(out)
	return out
}

func sameOrder(a, b []models.Image) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func indexOf(images []models.Image, imageID string) int {
	for i, img := range images {
		if img.ID == imageID {
			return i
		}
	}
	return -1
}
