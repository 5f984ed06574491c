package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"memoa/audio"
	"memoa/content"
	"memoa/engine"
	"memoa/events"
	"memoa/input"
	"memoa/pointer"
	"memoa/render"
	"memoa/scene"
	"memoa/settings"
	"memoa/starfield"
)

// tickInterval targets ~30 frames per second; the scene is mostly
// static so a higher rate buys nothing on a terminal
const tickInterval = 33 * time.Millisecond

// App wires the scene together. All state mutation happens on the
// frame loop goroutine: the poll goroutine only pushes events, and
// scheduler tasks are drained by the loop itself
type App struct {
	screen tcell.Screen
	logger *zap.Logger

	clock  engine.Clock
	sched  *engine.Scheduler
	loop   *engine.Loop
	queue  *events.Queue
	router *events.Router

	saver    *settings.Autosaver
	space    *scene.Space
	field    *starfield.Field
	disamb   *pointer.Disambiguator
	keys     *input.KeyTable
	sound    *audio.Service
	renderer *render.Renderer

	mode     input.Mode
	carousel *scene.Carousel
	detail   struct {
		label   string
		entries []content.Entry
	}

	done chan struct{}
}

// NewApp loads the snapshot and settings and builds the scene
func NewApp(screen tcell.Screen, snapshotPath, settingsPath string, muted bool, logger *zap.Logger) (*App, error) {
	store := settings.NewFileStore(settingsPath)
	cfg, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	snap, err := content.NewFileProvider(snapshotPath).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load content snapshot: %w", err)
	}

	clock := engine.NewSystemClock()
	sched := engine.NewScheduler(clock)
	queue := events.NewQueue()

	a := &App{
		screen:   screen,
		logger:   logger,
		clock:    clock,
		sched:    sched,
		queue:    queue,
		router:   events.NewRouter(queue),
		space:    scene.NewSpace(snap, cfg),
		keys:     input.DefaultKeyTable(),
		sound:    audio.NewService(),
		renderer: render.NewRenderer(screen),
		mode:     input.ModeSpace,
		done:     make(chan struct{}),
	}

	a.saver = settings.NewAutosaver(sched, store, func(err error) {
		logger.Warn("settings autosave failed", zap.Error(err))
	})

	a.field = starfield.New(starfield.Config{
		Count: cfg.Particles.Count,
		Depth: cfg.Particles.Depth,
		Speed: cfg.Particles.Speed,
		Size:  cfg.Particles.Size,
		Base:  starfield.RGB{R: 210, G: 210, B: 230},
	})

	a.disamb = pointer.New(clock, sched, a.onOpen, a.onFeedback)
	a.sound.Init(muted)

	a.router.Register(a)

	a.loop = engine.NewLoop(clock, sched, tickInterval, a.frame)
	a.loop.AddSystem(a.space)
	a.loop.AddSystem(a.field)
	a.loop.AddSystem(carouselSystem{app: a})

	logger.Info("space loaded",
		zap.String("profile", snap.ProfileID),
		zap.Int("visible_categories", len(a.space.Items())),
		zap.Int("particles", a.field.Len()),
	)

	return a, nil
}

// Run starts the frame loop and polls terminal input until quit
func (a *App) Run() {
	a.loop.Start()

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			a.queue.Push(events.Event{Type: events.EventKey, Payload: tev, Timestamp: a.clock.Now()})
		case *tcell.EventResize:
			a.queue.Push(events.Event{Type: events.EventResize, Timestamp: a.clock.Now()})
		case *tcell.EventInterrupt:
			a.loop.Stop()
			return
		}

		select {
		case <-a.done:
			a.loop.Stop()
			return
		default:
		}
	}
	a.loop.Stop()
}

// Close tears down every timer-owning component so no scheduled
// callback can fire against disposed state
func (a *App) Close() {
	a.disamb.Close()
	if a.carousel != nil {
		a.carousel.Close()
	}
	a.saver.Close()
	a.sound.Close()
	a.sched.CancelAll()
}

// frame runs on the loop goroutine after systems update
func (a *App) frame() {
	a.router.DispatchAll()

	switch a.mode {
	case input.ModeCarousel:
		a.renderer.RenderCarousel(a.carousel, a.field, a.carouselStatus())
	case input.ModeDetail:
		a.renderer.RenderDetail(a.detail.label, a.detail.entries, "Esc back · q quit")
	default:
		a.renderer.RenderSpace(a.space, a.field, a.spaceStatus())
	}
}

func (a *App) spaceStatus() string {
	status := "←/→ select · Enter×2 open · r rotate · m mute · q quit"
	if item, ok := a.space.Current(); ok {
		if d, found := content.DescriptorFor(item.Category); found {
			status = d.Label + "  |  " + status
		}
	}
	if a.sound.Muted() {
		status += " [muted]"
	}
	return status
}

func (a *App) carouselStatus() string {
	if a.carousel == nil || len(a.carousel.Items()) == 0 {
		return "Esc back"
	}
	return fmt.Sprintf("←/a →/d page (%d/%d) · Esc back",
		a.carousel.Index()+1, len(a.carousel.Items()))
}

// HandleEvent implements events.Handler on the frame loop
func (a *App) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.EventKey:
		if key, ok := ev.Payload.(*tcell.EventKey); ok {
			a.handleKey(key)
		}
	case events.EventResize:
		a.screen.Sync()
	case events.EventItemClicked, events.EventItemSelected:
		a.sound.PlayClick()
	case events.EventDetailOpen:
		if p, ok := ev.Payload.(*events.DetailPayload); ok {
			a.openDetail(p)
		}
	case events.EventCarouselOpen:
		if p, ok := ev.Payload.(*events.CarouselOpenPayload); ok {
			a.openCarousel(p.Entries)
		}
	case events.EventCarouselStep:
		a.sound.PlayStep()
	case events.EventCarouselClose:
		a.closeCarousel()
	case events.EventDetailClose:
		a.detail.label = ""
		a.detail.entries = nil
		a.mode = input.ModeSpace
	case events.EventSettingsChanged:
		a.saver.Update(a.space.Settings())
	case events.EventToggleMute:
		a.sound.ToggleMute()
	case events.EventQuit:
		a.requestQuit()
	}
}

// EventTypes implements events.Handler
func (a *App) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventKey,
		events.EventResize,
		events.EventItemClicked,
		events.EventItemSelected,
		events.EventDetailOpen,
		events.EventCarouselOpen,
		events.EventCarouselStep,
		events.EventCarouselClose,
		events.EventDetailClose,
		events.EventSettingsChanged,
		events.EventToggleMute,
		events.EventQuit,
	}
}

func (a *App) push(t events.EventType, payload any) {
	a.queue.Push(events.Event{Type: t, Payload: payload, Timestamp: a.clock.Now()})
}

func (a *App) handleKey(ev *tcell.EventKey) {
	intent := a.keys.Translate(ev, a.mode)

	switch intent.Type {
	case input.IntentQuit:
		a.requestQuit()
	case input.IntentEscape:
		switch a.mode {
		case input.ModeCarousel:
			a.push(events.EventCarouselClose, nil)
		case input.ModeDetail:
			a.push(events.EventDetailClose, nil)
		}
	case input.IntentCursorNext:
		a.space.CursorMove(1)
	case input.IntentCursorPrev:
		a.space.CursorMove(-1)
	case input.IntentActivate:
		if item, ok := a.space.Current(); ok {
			a.disamb.Activate(string(item.Category), a.space.Entries(item.Category))
		}
	case input.IntentToggleAutoRotate:
		cfg := a.space.Settings()
		cfg.AutoRotate = !cfg.AutoRotate
		a.space.SetSettings(cfg)
		a.push(events.EventSettingsChanged, nil)
	case input.IntentToggleMute:
		a.push(events.EventToggleMute, nil)
	case input.IntentCarouselCounter:
		if a.carousel != nil {
			a.carousel.Navigate(+1)
		}
	case input.IntentCarouselClock:
		if a.carousel != nil {
			a.carousel.Navigate(-1)
		}
	}
}

// onOpen receives resolved double-clicks from the disambiguator
func (a *App) onOpen(itemID string, data any) {
	entries, _ := data.([]content.Entry)
	a.push(events.EventDetailOpen, &events.DetailPayload{
		Category: content.Category(itemID),
		Data:     entries,
	})
}

// onFeedback applies transient highlights and raises the click events
func (a *App) onFeedback(itemID string, f pointer.Feedback) {
	cat := content.Category(itemID)
	switch f {
	case pointer.FeedbackClicked:
		a.space.SetHighlight(cat, scene.HighlightClicked)
		a.push(events.EventItemClicked, &events.ItemPayload{Category: cat})
	case pointer.FeedbackSelected:
		a.space.SetHighlight(cat, scene.HighlightSelected)
		a.push(events.EventItemSelected, &events.ItemPayload{Category: cat})
	default:
		a.space.SetHighlight(cat, scene.HighlightNone)
	}
}

func (a *App) openDetail(p *events.DetailPayload) {
	a.sound.PlayOpen()

	entries, _ := p.Data.([]content.Entry)
	a.logger.Debug("detail opened",
		zap.String("category", string(p.Category)),
		zap.Int("entries", len(entries)),
	)

	if p.Category == content.CategoryGallery || p.Category == content.CategoryTributes {
		a.push(events.EventCarouselOpen, &events.CarouselOpenPayload{Entries: entries})
		return
	}

	label := string(p.Category)
	if d, ok := content.DescriptorFor(p.Category); ok {
		label = d.Label
	}
	a.detail.label = label
	a.detail.entries = entries
	a.mode = input.ModeDetail
}

func (a *App) openCarousel(entries []content.Entry) {
	a.carousel = scene.NewCarousel(a.sched, entries, func(index, direction int) {
		a.push(events.EventCarouselStep, &events.CarouselStepPayload{
			Index:     index,
			Direction: direction,
		})
	})
	a.mode = input.ModeCarousel
}

func (a *App) closeCarousel() {
	if a.carousel != nil {
		a.carousel.Close()
		a.carousel = nil
	}
	a.mode = input.ModeSpace
}

func (a *App) requestQuit() {
	select {
	case <-a.done:
		return
	default:
		close(a.done)
	}
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// carouselSystem steps the carousel camera while one is open
type carouselSystem struct {
	app *App
}

func (cs carouselSystem) Update(dt time.Duration) {
	if cs.app.carousel != nil {
		cs.app.carousel.Update(dt)
	}
}

func (cs carouselSystem) Priority() int { return 20 }
