package gallery

import (
	"context"
	"testing"

	"github.com/hairshop/admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("open then get", func(t *testing.T) {
		gw := &fakeGateway{images: abc()}
		r := NewRegistry(gw, nil, nil)

		opened, err := r.Open(ctx, "s1", "u1", "v1")
		require.NoError(t, err)

		got, err := r.Get("s1", "v1")
		require.NoError(t, err)
		assert.Same(t, opened, got)
		assert.Equal(t, []string{"A", "B", "C"}, ids(got.Snapshot().Images))
	})

	t.Run("get without open", func(t *testing.T) {
		r := NewRegistry(&fakeGateway{}, nil, nil)

		_, err := r.Get("s1", "v1")
		assert.ErrorIs(t, err, ErrGalleryNotOpen)
	})

	t.Run("get for another variant", func(t *testing.T) {
		r := NewRegistry(&fakeGateway{images: abc()}, nil, nil)
		_, err := r.Open(ctx, "s1", "u1", "v1")
		require.NoError(t, err)

		_, err = r.Get("s1", "v2")
		assert.ErrorIs(t, err, ErrGalleryNotOpen)
	})

	t.Run("opening a new variant resets the session's gallery", func(t *testing.T) {
		gw := &fakeGateway{images: abc()}
		r := NewRegistry(gw, nil, nil)

		first, err := r.Open(ctx, "s1", "u1", "v1")
		require.NoError(t, err)
		require.NoError(t, first.MoveImage(0, 2))

		gw.images = []models.Image{{ID: "X", SortOrder: 1}}
		second, err := r.Open(ctx, "s1", "u1", "v2")
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.False(t, second.Snapshot().PendingSave)
		_, err = r.Get("s1", "v1")
		assert.ErrorIs(t, err, ErrGalleryNotOpen)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("reopening the same variant discards unsaved moves", func(t *testing.T) {
		r := NewRegistry(&fakeGateway{images: abc()}, nil, nil)

		first, err := r.Open(ctx, "s1", "u1", "v1")
		require.NoError(t, err)
		require.NoError(t, first.MoveImage(0, 2))

		second, err := r.Open(ctx, "s1", "u1", "v1")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, ids(second.Snapshot().Images))
	})

	t.Run("failed open keeps the previous gallery", func(t *testing.T) {
		gw := &fakeGateway{images: abc()}
		r := NewRegistry(gw, nil, nil)
		_, err := r.Open(ctx, "s1", "u1", "v1")
		require.NoError(t, err)

		gw.fetchErr = errUnavailable
		_, err = r.Open(ctx, "s1", "u1", "v2")
		assert.ErrorIs(t, err, errUnavailable)

		_, err = r.Get("s1", "v1")
		assert.NoError(t, err)
	})

	t.Run("sessions are independent", func(t *testing.T) {
		r := NewRegistry(&fakeGateway{images: abc()}, nil, nil)
		a, err := r.Open(ctx, "s1", "u1", "v1")
		require.NoError(t, err)
		b, err := r.Open(ctx, "s2", "u2", "v1")
		require.NoError(t, err)

		require.NoError(t, a.MoveImage(0, 2))
		assert.False(t, b.Snapshot().PendingSave)
	})

	t.Run("close", func(t *testing.T) {
		r := NewRegistry(&fakeGateway{images: abc()}, nil, nil)
		_, err := r.Open(ctx, "s1", "u1", "v1")
		require.NoError(t, err)

		r.Close("s1")
		r.Close("s1")

		_, err = r.Get("s1", "v1")
		assert.ErrorIs(t, err, ErrGalleryNotOpen)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("notifications carry the owner", func(t *testing.T) {
		notes := &recordingNotifier{}
		gw := &fakeGateway{images: abc(), commitErr: errUnavailable}
		r := NewRegistry(gw, notes, nil)

		s, err := r.Open(ctx, "s1", "u7", "v1")
		require.NoError(t, err)
		require.NoError(t, s.MoveImage(0, 1))
		_ = s.CommitOrder(ctx)

		require.Len(t, notes.notes, 1)
		assert.Equal(t, "u7", notes.notes[0].UserID)
		assert.Equal(t, "v1", notes.notes[0].VariantID)
		assert.True(t, notes.notes[0].Failed())
	})

	t.Run("change callback follows the open gallery", func(t *testing.T) {
		r := NewRegistry(&fakeGateway{images: abc()}, nil, nil)
		var owners []string
		r.OnChange(func(userID string, snap Snapshot) { owners = append(owners, userID+":"+snap.VariantID) })

		first, err := r.Open(ctx, "s1", "u1", "v1")
		require.NoError(t, err)
		require.NoError(t, first.MoveImage(0, 1))
		assert.Equal(t, []string{"u1:v1"}, owners)

		r.Close("s1")
		require.NoError(t, first.MoveImage(0, 1))
		assert.Len(t, owners, 1)
	})
}
