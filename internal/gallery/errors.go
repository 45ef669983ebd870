package gallery

// GalleryError is returned when a gallery operation is rejected before any
// state changes.
type GalleryError struct {
	Message string
}

func (e GalleryError) Error() string {
	return e.Message
}

// Gallery errors
var (
	ErrIndexOutOfRange  = GalleryError{"image index out of range"}
	ErrImageNotFound    = GalleryError{"image not found in gallery"}
	ErrCommitInProgress = GalleryError{"image order is already being saved"}
	ErrGalleryNotOpen   = GalleryError{"gallery is not open for this variant"}
)
