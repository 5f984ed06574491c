package scene

import (
	"testing"
	"time"

	"memoa/content"
	"memoa/settings"
)

func spaceFixture() *Space {
	snap := &content.Snapshot{
		Favorites: []content.Favorite{{ID: "f1", Title: "Song"}},
		Gallery: []content.GalleryItem{
			{ID: "g1", Title: "Photo", MediaType: "image"},
		},
		Voice: []content.VoiceClip{{ID: "v1", Title: "Clip"}},
	}
	return NewSpace(snap, settings.Default())
}

func TestSpaceCursorWraps(t *testing.T) {
	sp := spaceFixture()
	n := len(sp.Items())
	if n != 3 {
		t.Fatalf("visible items = %d, want 3", n)
	}

	sp.CursorMove(-1)
	if sp.CursorIndex() != n-1 {
		t.Errorf("cursor after backward wrap = %d, want %d", sp.CursorIndex(), n-1)
	}
	sp.CursorMove(1)
	if sp.CursorIndex() != 0 {
		t.Errorf("cursor after forward wrap = %d, want 0", sp.CursorIndex())
	}
}

func TestSpaceAutoRotate(t *testing.T) {
	sp := spaceFixture()

	cfg := sp.Settings()
	cfg.AutoRotate = true
	cfg.RotationSpeed = 1
	sp.SetSettings(cfg)

	sp.Update(500 * time.Millisecond)
	if sp.Yaw() != 0.5 {
		t.Errorf("yaw = %v, want 0.5 after half a second at speed 1", sp.Yaw())
	}

	cfg.AutoRotate = false
	sp.SetSettings(cfg)
	sp.Update(500 * time.Millisecond)
	if sp.Yaw() != 0.5 {
		t.Errorf("yaw advanced while auto-rotate off: %v", sp.Yaw())
	}
}

func TestSpaceHighlightScales(t *testing.T) {
	sp := spaceFixture()
	cat := sp.Items()[0].Category

	sp.SetHighlight(cat, HighlightSelected)
	if sp.Items()[0].Scale != 1.3 {
		t.Errorf("selected scale = %v, want 1.3", sp.Items()[0].Scale)
	}

	sp.SetHighlight(cat, HighlightNone)
	if sp.Items()[0].Scale != 1 {
		t.Errorf("cleared scale = %v, want 1", sp.Items()[0].Scale)
	}
}

func TestSpaceHighlightSurvivesRebuild(t *testing.T) {
	sp := spaceFixture()
	cat := sp.Items()[0].Category

	sp.SetHighlight(cat, HighlightSelected)

	cfg := sp.Settings()
	cfg.Radius = 20
	sp.SetSettings(cfg)

	if sp.Items()[0].Scale != 1.3 {
		t.Errorf("highlight lost across settings rebuild: scale %v", sp.Items()[0].Scale)
	}
}

func TestSpaceHiddenCategoryLeavesRing(t *testing.T) {
	sp := spaceFixture()

	cfg := sp.Settings()
	visible := false
	cfg.SetItem(content.CategoryVoice, settings.ItemSettings{Visible: &visible})
	sp.SetSettings(cfg)

	for _, item := range sp.Items() {
		if item.Category == content.CategoryVoice {
			t.Error("hidden category still occupies a ring slot")
		}
	}
	if len(sp.Items()) != 2 {
		t.Errorf("items = %d, want 2", len(sp.Items()))
	}
}

func TestSpaceEntriesPassThrough(t *testing.T) {
	sp := spaceFixture()

	entries := sp.Entries(content.CategoryGallery)
	if len(entries) != 1 || entries[0].ID != "g1" {
		t.Errorf("entries = %v, want the one gallery item", entries)
	}
	if got := sp.Entries(content.Category("unknown")); got != nil {
		t.Errorf("unknown category entries = %v, want nil", got)
	}
}
