package content

// Visible derives the ordered set of categories that should occupy a
// ring slot: the extractor must yield at least one entry and the
// category must not be hidden by settings. Absent and present-but-empty
// sub-records are treated identically. Hidden may be nil
//
// The result is recomputed per render; it is never persisted
func Visible(s *Snapshot, hidden func(Category) bool) []Category {
	if s == nil {
		return nil
	}

	var visible []Category
	for _, d := range Descriptors {
		if hidden != nil && hidden(d.Category) {
			continue
		}
		if len(d.Extract(s)) == 0 {
			continue
		}
		visible = append(visible, d.Category)
	}
	return visible
}
