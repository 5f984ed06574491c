package content

// Category identifies one kind of user content in the memorial space.
// The set is fixed at build time; categories double as keys in the
// settings override maps, so they marshal as plain strings
type Category string

const (
	CategoryFavorites  Category = "personal_favorites"
	CategoryGaming     Category = "gaming_preferences"
	CategoryPresence   Category = "digital_presence"
	CategoryGallery    Category = "gallery"
	CategoryNarratives Category = "narratives"
	CategoryVoice      Category = "voice"
	CategoryAvatars    Category = "avatars"
	CategoryDocuments  Category = "documents"
	CategoryTributes   Category = "ai_tributes"
)

// Order is the canonical ring ordering. Layout slot assignment walks
// this list, so item angles are stable across renders
var Order = []Category{
	CategoryFavorites,
	CategoryGaming,
	CategoryPresence,
	CategoryGallery,
	CategoryNarratives,
	CategoryVoice,
	CategoryAvatars,
	CategoryDocuments,
	CategoryTributes,
}
