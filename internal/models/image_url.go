package models

import (
	"fmt"
	"net/url"
	"strings"
)

// ImageTransform selects how the image CDN renders an image
type ImageTransform struct {
	Width   int
	Height  int
	Quality int
	Format  string
}

var (
	// ThumbnailTransform is used for gallery rows
	ThumbnailTransform = ImageTransform{Width: 60, Height: 60, Quality: 60, Format: "webp"}
	// FullSizeTransform is used for the "view" action
	FullSizeTransform = ImageTransform{Width: 800, Height: 600, Quality: 80, Format: "webp"}
)

// ImageKey extracts the storage key of an image from its URL (the last path segment)
func ImageKey(imageURL string) string {
	trimmed := strings.TrimRight(imageURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 && idx < len(trimmed)-1 {
		return trimmed[idx+1:]
	}
	return imageURL
}

// ImageURL builds a CDN URL for the image key rendered with t
func ImageURL(cdnBase, key string, t ImageTransform) string {
	q := url.Values{}
	if t.Width > 0 {
		q.Set("width", fmt.Sprint(t.Width))
	}
	if t.Height > 0 {
		q.Set("height", fmt.Sprint(t.Height))
	}
	if t.Quality > 0 {
		q.Set("quality", fmt.Sprint(t.Quality))
	}
	if t.Format != "" {
		q.Set("format", t.Format)
	}

	u := strings.TrimRight(cdnBase, "/") + "/images/" + url.PathEscape(key)
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// ImageView is an Image as the console renders it
type ImageView struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	SortOrder    int    `json:"sortOrder"`
	ThumbnailURL string `json:"thumbnailUrl"`
	FullURL      string `json:"fullUrl"`
}

// NewImageView decorates an image with its CDN URLs
func NewImageView(cdnBase string, img Image) ImageView {
	key := ImageKey(img.URL)
	return ImageView{
		ID:           img.ID,
		URL:          img.URL,
		SortOrder:    img.SortOrder,
		ThumbnailURL: ImageURL(cdnBase, key, ThumbnailTransform),
		FullURL:      ImageURL(cdnBase, key, FullSizeTransform),
	}
}
