package settings

import (
	"path/filepath"
	"testing"
	"time"

	"memoa/content"
	"memoa/engine"
)

func TestClampRanges(t *testing.T) {
	tests := []struct {
		name  string
		in    Settings
		check func(t *testing.T, s Settings)
	}{
		{"Radius too small", Settings{Radius: -3}, func(t *testing.T, s Settings) {
			if s.Radius != 2 {
				t.Errorf("Radius = %v, want 2", s.Radius)
			}
		}},
		{"Radius too large", Settings{Radius: 900}, func(t *testing.T, s Settings) {
			if s.Radius != 50 {
				t.Errorf("Radius = %v, want 50", s.Radius)
			}
		}},
		{"Negative particle count", Settings{Particles: Particles{Count: -10, Depth: 50, Size: 1}}, func(t *testing.T, s Settings) {
			if s.Particles.Count != 0 {
				t.Errorf("Count = %d, want 0", s.Particles.Count)
			}
		}},
		{"Rotation speed cap", Settings{RotationSpeed: 99}, func(t *testing.T, s Settings) {
			if s.RotationSpeed != 2 {
				t.Errorf("RotationSpeed = %v, want 2", s.RotationSpeed)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Clamp()
			tt.check(t, tt.in)
		})
	}
}

func TestItemOverrideAccessors(t *testing.T) {
	s := Default()

	if s.Hidden(content.CategoryVoice) {
		t.Error("category hidden with no overrides set")
	}
	if _, ok := s.PositionOverride(content.CategoryVoice); ok {
		t.Error("position override reported with none set")
	}

	visible := false
	s.SetItem(content.CategoryVoice, ItemSettings{
		Color:    "#33ccff",
		Visible:  &visible,
		Position: &[3]float64{1, 2, 3},
	})

	if !s.Hidden(content.CategoryVoice) {
		t.Error("Hidden = false for visible:false override")
	}

	pos, ok := s.PositionOverride(content.CategoryVoice)
	if !ok || pos.X != 1 || pos.Y != 2 || pos.Z != 3 {
		t.Errorf("PositionOverride = %v, %v", pos, ok)
	}

	color, ok := s.ColorOverride(content.CategoryVoice)
	if !ok || color != "#33ccff" {
		t.Errorf("ColorOverride = %q, %v", color, ok)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.yaml")
	store := NewFileStore(path)

	// Missing file yields defaults, not an error
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if got.Theme != Default().Theme {
		t.Errorf("missing-file Theme = %q, want default", got.Theme)
	}

	s := Default()
	s.Radius = 14
	s.AutoRotate = false
	s.SetItem(content.CategoryGallery, ItemSettings{Color: "#ff8800"})

	if err := store.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Radius != 14 || got.AutoRotate {
		t.Errorf("loaded Radius=%v AutoRotate=%v", got.Radius, got.AutoRotate)
	}
	if c, ok := got.ColorOverride(content.CategoryGallery); !ok || c != "#ff8800" {
		t.Errorf("loaded color override = %q, %v", c, ok)
	}
}

type recordingSaver struct {
	saves []Settings
}

func (r *recordingSaver) Save(s Settings) error {
	r.saves = append(r.saves, s)
	return nil
}

func TestAutosaverDebounce(t *testing.T) {
	clock := engine.NewManualClock(time.Unix(0, 0))
	sched := engine.NewScheduler(clock)
	saver := &recordingSaver{}
	a := NewAutosaver(sched, saver, nil)

	s := Default()
	s.Radius = 5
	a.Update(s)
	clock.Advance(SaveDebounce / 2)
	sched.Drain()
	if len(saver.saves) != 0 {
		t.Fatal("save fired before debounce elapsed")
	}

	// A second edit inside the window re-arms the timer
	s.Radius = 6
	a.Update(s)
	clock.Advance(SaveDebounce / 2)
	sched.Drain()
	if len(saver.saves) != 0 {
		t.Fatal("save fired from the cancelled first timer")
	}

	clock.Advance(SaveDebounce / 2)
	sched.Drain()
	if len(saver.saves) != 1 {
		t.Fatalf("saves = %d, want 1", len(saver.saves))
	}
	if saver.saves[0].Radius != 6 {
		t.Errorf("saved Radius = %v, want the latest edit (6)", saver.saves[0].Radius)
	}
}

func TestAutosaverCloseFlushesOnce(t *testing.T) {
	clock := engine.NewManualClock(time.Unix(0, 0))
	sched := engine.NewScheduler(clock)
	saver := &recordingSaver{}
	a := NewAutosaver(sched, saver, nil)

	s := Default()
	a.Update(s)
	a.Close()

	if len(saver.saves) != 1 {
		t.Fatalf("Close flushed %d saves, want 1", len(saver.saves))
	}

	// The debounce task must be gone: advancing time fires nothing
	clock.Advance(10 * SaveDebounce)
	sched.Drain()
	if len(saver.saves) != 1 {
		t.Error("debounce task fired after Close")
	}

	a.Update(s)
	clock.Advance(10 * SaveDebounce)
	sched.Drain()
	if len(saver.saves) != 1 {
		t.Error("Update after Close scheduled a save")
	}
}
