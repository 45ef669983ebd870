package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/hairshop/admin/internal/config"
	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/observability"
	"github.com/jdeng/goheif"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const uploadJPEGQuality = 90

// UploadService turns browser uploads into JPEGs the catalog API accepts:
// upright, no larger than the configured dimension, HEIC converted.
type UploadService struct {
	maxBytes     int64
	maxDimension int
	allowedExts  map[string]bool
}

// NewUploadService creates a new UploadService
func NewUploadService(cfg config.Uploads) *UploadService {
	exts := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		exts[strings.ToLower(ext)] = true
	}
	return &UploadService{
		maxBytes:     cfg.MaxFileSizeMB * 1024 * 1024,
		maxDimension: cfg.MaxDimension,
		allowedExts:  exts,
	}
}

// MaxBytes returns the largest accepted upload
func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// Prepare validates one uploaded file and re-encodes it as JPEG
func (s *UploadService) Prepare(filename, contentType string, data []byte) (models.UploadFile, error) {
	if int64(len(data)) >= s.maxBytes {
		return models.UploadFile{}, models.ErrImageTooLarge
	}
	if !s.isImage(filename, contentType, data) {
		return models.UploadFile{}, models.ErrNotAnImage
	}

	img, err := decodeUpload(filename, data)
	if err != nil {
		return models.UploadFile{}, err
	}

	img = applyOrientation(img, readOrientation(data))
	if s.maxDimension > 0 {
		b := img.Bounds()
		if b.Dx() > s.maxDimension || b.Dy() > s.maxDimension {
			img = imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: uploadJPEGQuality}); err != nil {
		return models.UploadFile{}, fmt.Errorf("failed to encode image: %w", err)
	}

	return models.UploadFile{
		Filename:    jpegFilename(filename),
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
		Hash:        ContentHash(data),
	}, nil
}

func (s *UploadService) isImage(filename, contentType string, data []byte) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(s.allowedExts) > 0 && !s.allowedExts[ext] {
		return false
	}
	if strings.HasPrefix(contentType, "image/") {
		return true
	}
	// Browsers send HEIC as application/octet-stream
	if isHEIC(filename) {
		return true
	}
	return strings.HasPrefix(http.DetectContentType(data), "image/")
}

func decodeUpload(filename string, data []byte) (image.Image, error) {
	if isHEIC(filename) {
		img, err := goheif.Decode(bytes.NewReader(data))
		if err != nil {
			observability.Debugf("HEIC decode failed for %s: %v", filename, err)
			return nil, models.ErrNotAnImage
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, models.ErrNotAnImage
	}
	return img, nil
}

// readOrientation returns the EXIF orientation, 1 when absent
func readOrientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	if val, err := tag.Int(0); err == nil && val >= 1 && val <= 8 {
		return val
	}
	return 1
}

// applyOrientation corrects image orientation based on EXIF data
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func isHEIC(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".heic" || ext == ".heif"
}

func jpegFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "image"
	}
	return base + ".jpg"
}
