package content

// Snapshot is one profile's content record as exported by the
// upstream store. Sub-records are optional: a nil or empty slice
// means the category is absent from the space. The engine never
// mutates a snapshot; edits flow through the external store and come
// back as a fresh snapshot on the next load
type Snapshot struct {
	ProfileID   string `json:"profile_id"`
	DisplayName string `json:"display_name"`

	Favorites   []Favorite      `json:"personal_favorites,omitempty"`
	Gaming      *GamingPrefs    `json:"gaming_preferences,omitempty"`
	Presence    []PresenceLink  `json:"digital_presence,omitempty"`
	Gallery     []GalleryItem   `json:"gallery_items,omitempty"`
	Narratives  []Narrative     `json:"narratives,omitempty"`
	Voice       []VoiceClip     `json:"voice_recordings,omitempty"`
	Avatars     []AvatarModel   `json:"avatar_models,omitempty"`
	FamilyTree  []Document      `json:"family_tree_documents,omitempty"`
}

// Favorite is a single liked thing (song, movie, quote, place)
type Favorite struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
}

// GamingPrefs is a single optional record, not a list
type GamingPrefs struct {
	Platforms     []string `json:"platforms,omitempty"`
	FavoriteGames []string `json:"favorite_games,omitempty"`
	GamerTag      string   `json:"gamer_tag,omitempty"`
}

// PresenceLink points at an external profile or page
type PresenceLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// GalleryItem is one media file in the gallery
type GalleryItem struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	MediaType string            `json:"media_type"` // "image" or "video"
	FilePath  string            `json:"file_path"`
	Tags      []string          `json:"tags,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Narrative is a written piece (memoir chapter, letter, story)
type Narrative struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// VoiceClip is one voice recording or clone sample
type VoiceClip struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	FilePath string  `json:"file_path"`
	Seconds  float64 `json:"seconds,omitempty"`
}

// AvatarModel is an uploaded 3D avatar
type AvatarModel struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	FilePath string `json:"file_path"`
}

// Document is a family-tree or legacy document
type Document struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	FilePath string `json:"file_path"`
}
