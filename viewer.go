package scrollreel

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// maxResultsPerTick is the most loader results uploaded in one update.
const maxResultsPerTick = 32

// scrollToDuration is the Home/End animation time in seconds.
const scrollToDuration = 0.8

// Viewer is the top-level object that owns the viewer state, the frame set,
// the canvas and the scroll mappers. It implements ebiten.Game.
//
// All state changes flow through dispatch on the update goroutine: input,
// timers and loader completions are all turned into events first.
type Viewer struct {
	cfg    Config
	layout FrameLayout
	log    *zap.Logger
	sink   EventSink
	debug  bool

	loader   *Loader
	frames   *FrameSet
	surface  Surface
	canvas   *Canvas
	renderer *Renderer
	observer ScrollObserver
	armed    []Subscription

	viewport Viewport
	page     Page
	navbar   *Navbar
	sections []*Section
	overlay  Overlay

	palettes    [2]Palette
	paletteFrom Palette
	paletteMix  float64
	paletteFade *TweenGroup

	state         State
	category      Category
	pending       Category
	theme         Theme
	loading       bool
	revealPending bool
	generation    uint64
	inflight      loadRequest
	wanted        int

	timers []timer
	tweens tweenSet

	started   bool
	realInput bool
	width     int
	height    int
	upload    func(image.Image) *ebiten.Image

	// Input injection and scripted runs.
	injectQueue []InputState
	testRunner  *TestRunner

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	// ShowFPS draws the stats line in the top-left corner.
	ShowFPS   bool
	hud       hud
	lastStats debugStats
}

// NewViewer creates a viewer for cfg that reads frames from source. Nothing
// is loaded until the first Update.
func NewViewer(cfg Config, source FrameSource) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	theme := ThemeDark
	if cfg.InitialTheme != "" {
		theme, _ = ParseTheme(cfg.InitialTheme)
	}
	category := Category(cfg.InitialCategory)
	if category == "" {
		category = Category(cfg.Categories[0].Name)
	}
	dark, _ := cfg.palette(ThemeDark)
	light, _ := cfg.palette(ThemeLight)

	categories := make([]Category, len(cfg.Categories))
	for i, c := range cfg.Categories {
		categories[i] = Category(c.Name)
	}

	v := &Viewer{
		cfg:           cfg,
		layout:        cfg.Layout(),
		log:           zap.NewNop(),
		frames:        NewFrameSet(cfg.FrameCount),
		observer:      NewScrollTriggers(),
		navbar:        newNavbar(categories, cfg.NavTopThreshold, float32(cfg.NavDuration)),
		sections:      newSections(cfg),
		palettes:      [2]Palette{dark, light},
		paletteMix:    1,
		category:      category,
		theme:         theme,
		wanted:        NoFrame,
		realInput:     true,
		upload:        ebiten.NewImageFromImage,
		ScreenshotDir: "screenshots",
	}
	v.paletteFrom = v.palettes[theme]
	v.canvas = NewCanvas(1, 1)
	v.surface = v.canvas
	v.renderer = NewRenderer(v.surface, v.frames)
	v.renderer.onDraw = v.onFrameDrawn
	v.loader = newLoader(source, v.layout, cfg.FrameCount, cfg.MaxConcurrentLoads, v.log)
	return v, nil
}

// SetLogger replaces the logger. Nil restores the no-op logger.
func (v *Viewer) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	v.log = log
	v.loader.log = log
}

// SetEventSink sets the optional notification receiver.
func (v *Viewer) SetEventSink(sink EventSink) {
	v.sink = sink
}

// SetScrollObserver replaces the scroll-trigger implementation. Must be
// called before the first Update.
func (v *Viewer) SetScrollObserver(o ScrollObserver) {
	v.observer = o
}

// SetSurface replaces the drawing target frames are painted onto. The
// built-in canvas is no longer composited by Draw.
func (v *Viewer) SetSurface(s Surface) {
	if c, ok := s.(*Canvas); ok {
		v.canvas = c
	} else {
		v.canvas = nil
	}
	v.surface = s
	v.renderer.surface = s
}

// SetDebugMode enables or disables debug mode. When enabled, every
// dispatched event and every change in loader stats is logged at debug level.
func (v *Viewer) SetDebugMode(enabled bool) {
	v.debug = enabled
}

// --- Public actions ---

// SelectCategory requests a switch to category. Ignored while a load or
// another switch is in progress, or if category is already active.
func (v *Viewer) SelectCategory(category Category) {
	v.dispatch(event{kind: evSelectCategory, category: category})
}

// ToggleTheme flips between the dark and light theme and reloads frames.
func (v *Viewer) ToggleTheme() {
	v.dispatch(event{kind: evToggleTheme})
}

// Resize resizes the canvas to w x h and repaints the current frame.
func (v *Viewer) Resize(w, h int) {
	v.dispatch(event{kind: evResize, width: w, height: h})
}

// ScrollBy moves the page by dy pixels.
func (v *Viewer) ScrollBy(dy float64) {
	v.dispatch(event{kind: evScrollBy, scroll: dy})
}

// ScrollTo moves the page to offset y, animated over duration seconds when
// duration is positive.
func (v *Viewer) ScrollTo(y float64, duration float32) {
	v.dispatch(event{kind: evScrollTo, scroll: y, duration: duration})
}

// --- Accessors ---

// State returns the coordinator state.
func (v *Viewer) State() State { return v.state }

// Category returns the active category.
func (v *Viewer) Category() Category { return v.category }

// Theme returns the active theme.
func (v *Viewer) Theme() Theme { return v.theme }

// ThemeClass returns the global visual class of the active theme.
func (v *Viewer) ThemeClass() string { return v.theme.Class() }

// ThemeIcon returns the glyph on the theme toggle.
func (v *Viewer) ThemeIcon() string { return v.theme.Icon() }

// Loading reports whether a foreground load is in flight or has failed.
func (v *Viewer) Loading() bool { return v.loading }

// Generation returns the current load generation.
func (v *Viewer) Generation() uint64 { return v.generation }

// CurrentFrame returns the index of the frame on the canvas, or NoFrame.
func (v *Viewer) CurrentFrame() int { return v.renderer.Current() }

// Frames returns the frame collection.
func (v *Viewer) Frames() *FrameSet { return v.frames }

// Overlay returns a copy of the loading overlay state.
func (v *Viewer) Overlay() Overlay { return v.overlay }

// Scroll returns the page scroll offset.
func (v *Viewer) Scroll() float64 { return v.viewport.Y }

// Page returns the current document layout.
func (v *Viewer) Page() Page { return v.page }

// Navbar returns the navigation bar.
func (v *Viewer) Navbar() *Navbar { return v.navbar }

// Sections returns the content sections. The returned slice MUST NOT be mutated.
func (v *Viewer) Sections() []*Section { return v.sections }

// Palette returns the colors currently in effect, mid-fade if a theme
// toggle is animating.
func (v *Viewer) Palette() Palette {
	target := v.palettes[v.theme]
	if v.paletteMix >= 1 {
		return target
	}
	return BlendPalette(v.paletteFrom, target, v.paletteMix)
}

// --- ebiten.Game ---

// Update processes input, delivers loader results and timers, and advances
// scroll mappers and tweens.
func (v *Viewer) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	v.step(1.0 / float64(tps))
	return nil
}

// Layout tracks the window size; a change is dispatched as a resize.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// step advances the viewer by dt seconds.
func (v *Viewer) step(dt float64) {
	if !v.started {
		v.start()
	}
	if v.testRunner != nil {
		v.testRunner.step(v)
	}
	v.processInput()
	v.drainResults()
	v.advanceTimers(dt)

	v.viewport.update(float32(dt))
	v.observer.Update(v.viewport.Y, float32(dt))
	v.tweens.update(float32(dt))

	if v.ShowFPS {
		v.hud.update(dt, v.stats(), v.frames.Cap())
	}
	if v.debug {
		v.debugLog()
	}
}

// start registers the global navbar trigger and begins the initial load.
func (v *Viewer) start() {
	v.started = true
	v.observer.Observe(TriggerSpec{
		Name:     "navbar",
		End:      func() float64 { return v.page.MaxScroll() },
		OnUpdate: v.onNavScroll,
	})
	if s := v.activeSection(); s != nil {
		s.Hidden = false
		s.Alpha = 1
	}
	v.startLoad()
}

func (v *Viewer) drainResults() {
	for i := 0; i < maxResultsPerTick; i++ {
		ev, ok := v.loader.poll()
		if !ok {
			return
		}
		v.dispatch(ev)
	}
}

// after schedules ev to be dispatched once delay seconds have elapsed.
func (v *Viewer) after(delay float64, ev event) {
	v.timers = append(v.timers, timer{remaining: delay, ev: ev})
}

func (v *Viewer) advanceTimers(dt float64) {
	if len(v.timers) == 0 {
		return
	}
	var fired []event
	live := v.timers[:0]
	for _, t := range v.timers {
		t.remaining -= dt
		if t.remaining <= 0 {
			fired = append(fired, t.ev)
			continue
		}
		live = append(live, t)
	}
	v.timers = live
	for _, ev := range fired {
		v.dispatch(ev)
	}
}

// --- Dispatch ---

func (v *Viewer) dispatch(ev event) {
	if v.debug {
		v.log.Debug("dispatch",
			zap.Stringer("event", ev.kind),
			zap.Stringer("state", v.state),
			zap.Uint64("generation", v.generation))
	}
	switch ev.kind {
	case evSelectCategory:
		v.handleSelectCategory(ev.category)
	case evToggleTheme:
		v.handleToggleTheme()
	case evResize:
		v.handleResize(ev.width, ev.height)
	case evScrollBy:
		v.viewport.ScrollBy(ev.scroll)
	case evScrollTo:
		if ev.duration > 0 {
			v.viewport.ScrollTo(ev.scroll, ev.duration, ease.InOutCubic)
		} else {
			v.viewport.SetScroll(ev.scroll)
		}
	case evSwitchDelayElapsed:
		v.handleSwitchDelay()
	case evRevealSection:
		v.handleReveal()
	case evFirstFrame:
		v.handleFirstFrame(ev)
	case evFrame:
		v.handleFrame(ev)
	case evBackgroundDone:
		v.handleBackgroundDone(ev)
	}
}

func (v *Viewer) handleSelectCategory(category Category) {
	switch {
	case category == v.category:
		return
	case v.loading:
		v.log.Debug("ignoring category switch during load", zap.String("category", string(category)))
		return
	case v.state == StateSwitching:
		v.log.Debug("ignoring category switch during switch", zap.String("category", string(category)))
		return
	}

	fade := float32(v.cfg.FadeDuration)
	for _, s := range v.sections {
		v.tweens.add(s.fadeTo(0, fade))
	}
	v.pending = category
	v.state = StateSwitching
	v.after(v.cfg.SwitchDelay, event{kind: evSwitchDelayElapsed})
}

func (v *Viewer) handleSwitchDelay() {
	if v.state != StateSwitching {
		return
	}
	for _, s := range v.sections {
		s.Hidden = true
	}
	v.category = v.pending
	v.pending = ""
	v.relayout()
	v.emit(ViewerEvent{Type: ViewerCategoryChanged, Category: v.category, Theme: v.theme, Frame: NoFrame})

	v.revealPending = true
	v.state = StateIdle
	v.startLoad()
}

func (v *Viewer) handleToggleTheme() {
	v.paletteFrom = v.Palette()
	v.paletteMix = 0
	v.paletteFade.Stop()
	v.paletteFade = v.tweens.add(TweenValue(&v.paletteMix, 1, float32(v.cfg.FadeDuration), ease.Linear))

	v.theme = v.theme.Toggle()
	v.emit(ViewerEvent{Type: ViewerThemeChanged, Category: v.category, Theme: v.theme, Frame: v.CurrentFrame()})

	// A pending switch loads with whatever theme is active when it fires.
	if v.state == StateSwitching {
		return
	}
	v.startLoad()
}

func (v *Viewer) handleResize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	v.width, v.height = w, h
	v.surface.Resize(w, h)
	v.relayout()
	v.renderer.Redraw()
}

func (v *Viewer) handleReveal() {
	s := v.activeSection()
	if s == nil || s.Hidden {
		return
	}
	v.tweens.add(s.fadeTo(1, float32(v.cfg.FadeDuration)))
}

// --- Loading ---

// startLoad begins a new load sequence for the active category and theme.
// It is a no-op while another foreground load is in flight.
func (v *Viewer) startLoad() bool {
	if v.loading {
		v.log.Debug("load already in progress", zap.Uint64("generation", v.generation))
		return false
	}
	v.loading = true
	v.generation++
	v.frames.Reset()
	v.renderer.Reset()
	v.wanted = NoFrame
	v.overlay.showLoading()
	v.state = StateLoading
	v.inflight = v.request()
	v.loader.loadFirst(v.inflight)
	return true
}

// request describes the frame set the viewer wants under the current generation.
func (v *Viewer) request() loadRequest {
	return loadRequest{generation: v.generation, category: v.category, theme: v.theme}
}

func (v *Viewer) handleFirstFrame(ev event) {
	if ev.generation != v.generation {
		v.log.Debug("dropping stale first frame", zap.Uint64("generation", ev.generation))
		return
	}
	if ev.err != nil {
		// The loading flag stays set: no retry, and no further loads.
		v.log.Error("image load failed", zap.String("path", ev.path), zap.Error(ev.err))
		v.overlay.fail(ev.path)
		v.emit(ViewerEvent{Type: ViewerLoadFailed, Category: v.inflight.category, Theme: v.inflight.theme, Frame: NoFrame, Generation: v.generation, Path: ev.path})
		v.settle()
		return
	}

	v.frames.Set(0, v.upload(ev.image))
	v.render(0)
	v.overlay.hide()
	v.loading = false
	v.emit(ViewerEvent{Type: ViewerReady, Category: v.inflight.category, Theme: v.inflight.theme, Frame: 0, Generation: v.generation, Path: ev.path})
	// The theme was toggled while frame 1 was in flight: skip the rest of
	// this set and load the one now wanted.
	if v.request() != v.inflight {
		v.settle()
		v.startLoad()
		return
	}
	v.loader.loadRest(v.inflight)
	v.settle()
}

// settle runs once frame 1 has resolved either way: re-arm the scroll
// mappers and reveal the section of a just-switched category.
func (v *Viewer) settle() {
	v.armScrollMappers()
	if v.revealPending {
		v.revealPending = false
		if s := v.activeSection(); s != nil {
			s.Hidden = false
			v.after(v.cfg.RevealDelay, event{kind: evRevealSection})
		}
	}
	v.state = StateIdle
}

func (v *Viewer) handleFrame(ev event) {
	if ev.generation != v.generation {
		return
	}
	v.frames.Set(ev.index, v.upload(ev.image))
	// The scrub may already be parked on this frame waiting for it.
	if ev.index == v.wanted {
		v.render(ev.index)
	}
}

func (v *Viewer) handleBackgroundDone(ev event) {
	if ev.generation != v.generation {
		return
	}
	if ev.err != nil {
		v.log.Warn("background frames failed",
			zap.Int("failed", len(multierr.Errors(ev.err))),
			zap.Int("loaded", v.frames.Loaded()),
			zap.Error(ev.err))
		return
	}
	v.log.Debug("all frames loaded", zap.Int("loaded", v.frames.Loaded()), zap.Uint64("generation", ev.generation))
}

// --- Scroll mappers ---

// armScrollMappers kills the per-set triggers and creates fresh ones for
// the active category. The navbar trigger is not touched.
func (v *Viewer) armScrollMappers() {
	for _, s := range v.armed {
		s.Kill()
	}
	v.armed = v.armed[:0]

	count := v.frames.Cap()
	v.armed = append(v.armed, v.observer.Observe(TriggerSpec{
		Name:  "frames",
		Start: func() float64 { return v.page.FrameStart() },
		End:   func() float64 { return v.page.FrameEnd() },
		Scrub: v.cfg.Scrub,
		OnUpdate: func(u TriggerUpdate) {
			v.wanted = FrameForProgress(u.Progress, count)
			v.render(v.wanted)
		},
	}))

	s := v.activeSection()
	if s == nil || s.Strip == nil {
		return
	}
	strip := s.Strip
	strip.Offset = 0
	v.armed = append(v.armed, v.observer.Observe(TriggerSpec{
		Name:  "pan",
		Start: func() float64 { return v.page.PinStart() },
		End:   func() float64 { return v.page.PinEnd() },
		Scrub: v.cfg.PanScrub,
		OnUpdate: func(u TriggerUpdate) {
			strip.Apply(u.Progress, v.page.ViewportW)
		},
	}))
}

func (v *Viewer) onNavScroll(u TriggerUpdate) {
	if tw := v.navbar.onScroll(u); tw != nil {
		v.tweens.add(tw)
	}
}

func (v *Viewer) render(index int) {
	v.renderer.Render(index)
}

func (v *Viewer) onFrameDrawn(index int) {
	v.emit(ViewerEvent{Type: ViewerFrameDrawn, Category: v.category, Theme: v.theme, Frame: index, Generation: v.generation})
}

// --- Layout ---

// relayout recomputes the page, scroll bounds and navbar for the current
// window size and category.
func (v *Viewer) relayout() {
	vw, vh := float64(v.width), float64(v.height)
	v.page = Page{ViewportW: vw, ViewportH: vh, ScrollScreens: v.cfg.ScrollScreens}
	if s := v.activeSection(); s != nil && s.Strip != nil {
		v.page.StripWidth = s.Strip.Width(vw)
	}
	v.viewport.Width, v.viewport.Height = vw, vh
	v.viewport.SetBounds(v.page.MaxScroll())
	v.navbar.layout(vw, vh)
}

func (v *Viewer) activeSection() *Section {
	return sectionByID(v.sections, v.category.Section())
}

func (v *Viewer) emit(ev ViewerEvent) {
	if v.sink != nil {
		v.sink.EmitEvent(ev)
	}
}
