package content

const (
	tributeMetadataKey = "ai_tribute"
	tributeTag         = "tribute"
)

// IsTribute reports whether a gallery item is an AI-generated tribute
// image. The metadata flag is authoritative when present; tag
// membership is the fallback for rows written before the flag
// existed. This is the only tribute check in the codebase: gallery
// extraction and the carousel both go through it
func IsTribute(item GalleryItem) bool {
	if v, ok := item.Metadata[tributeMetadataKey]; ok {
		return v == "true" || v == "1"
	}
	for _, tag := range item.Tags {
		if tag == tributeTag {
			return true
		}
	}
	return false
}
