package content

// Entry is one extracted item behind a ring icon. Data is the
// underlying record, passed through to the detail view untouched
type Entry struct {
	ID    string
	Title string
	Data  any
}

// Descriptor binds a category to its label, icon glyph, and snapshot
// extractor. The table below replaces per-category presence branching:
// every surface walks Descriptors uniformly and a category is present
// exactly when its extractor returns at least one entry
type Descriptor struct {
	Category Category
	Label    string
	Icon     rune
	Extract  func(*Snapshot) []Entry
}

var Descriptors = []Descriptor{
	{CategoryFavorites, "Favorites", '♥', extractFavorites},
	{CategoryGaming, "Gaming", '♞', extractGaming},
	{CategoryPresence, "Presence", '☍', extractPresence},
	{CategoryGallery, "Gallery", '◈', extractGallery},
	{CategoryNarratives, "Narratives", '✎', extractNarratives},
	{CategoryVoice, "Voice", '♪', extractVoice},
	{CategoryAvatars, "Avatars", '☻', extractAvatars},
	{CategoryDocuments, "Family Tree", '⚘', extractDocuments},
	{CategoryTributes, "Tributes", '✦', extractTributes},
}

// DescriptorFor returns the descriptor for a category
func DescriptorFor(c Category) (Descriptor, bool) {
	for _, d := range Descriptors {
		if d.Category == c {
			return d, true
		}
	}
	return Descriptor{}, false
}

func extractFavorites(s *Snapshot) []Entry {
	entries := make([]Entry, 0, len(s.Favorites))
	for i := range s.Favorites {
		f := &s.Favorites[i]
		entries = append(entries, Entry{ID: f.ID, Title: f.Title, Data: f})
	}
	return entries
}

func extractGaming(s *Snapshot) []Entry {
	g := s.Gaming
	if g == nil {
		return nil
	}
	if len(g.Platforms) == 0 && len(g.FavoriteGames) == 0 && g.GamerTag == "" {
		return nil
	}
	title := g.GamerTag
	if title == "" {
		title = "Gaming preferences"
	}
	return []Entry{{ID: "gaming", Title: title, Data: g}}
}

func extractPresence(s *Snapshot) []Entry {
	entries := make([]Entry, 0, len(s.Presence))
	for i := range s.Presence {
		p := &s.Presence[i]
		entries = append(entries, Entry{ID: p.ID, Title: p.Label, Data: p})
	}
	return entries
}

// extractGallery returns non-tribute media only; tribute images live
// under their own category
func extractGallery(s *Snapshot) []Entry {
	var entries []Entry
	for i := range s.Gallery {
		item := &s.Gallery[i]
		if IsTribute(*item) {
			continue
		}
		entries = append(entries, Entry{ID: item.ID, Title: item.Title, Data: item})
	}
	return entries
}

func extractNarratives(s *Snapshot) []Entry {
	entries := make([]Entry, 0, len(s.Narratives))
	for i := range s.Narratives {
		n := &s.Narratives[i]
		entries = append(entries, Entry{ID: n.ID, Title: n.Title, Data: n})
	}
	return entries
}

func extractVoice(s *Snapshot) []Entry {
	entries := make([]Entry, 0, len(s.Voice))
	for i := range s.Voice {
		v := &s.Voice[i]
		entries = append(entries, Entry{ID: v.ID, Title: v.Title, Data: v})
	}
	return entries
}

func extractAvatars(s *Snapshot) []Entry {
	entries := make([]Entry, 0, len(s.Avatars))
	for i := range s.Avatars {
		a := &s.Avatars[i]
		entries = append(entries, Entry{ID: a.ID, Title: a.Title, Data: a})
	}
	return entries
}

func extractDocuments(s *Snapshot) []Entry {
	entries := make([]Entry, 0, len(s.FamilyTree))
	for i := range s.FamilyTree {
		d := &s.FamilyTree[i]
		entries = append(entries, Entry{ID: d.ID, Title: d.Title, Data: d})
	}
	return entries
}

func extractTributes(s *Snapshot) []Entry {
	var entries []Entry
	for i := range s.Gallery {
		item := &s.Gallery[i]
		if !IsTribute(*item) {
			continue
		}
		entries = append(entries, Entry{ID: item.ID, Title: item.Title, Data: item})
	}
	return entries
}
