package tool

import (
	"fmt"

	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/surface"
)

// State is the lifecycle state of a drafting tool.
type State uint8

const (
	// StateIdle means the tool holds no temp points.
	StateIdle State = iota

	// StateCollecting means some but not all required points are captured.
	StateCollecting

	// StateReady means all required input is captured and the tool is
	// about to commit.
	StateReady
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// KeyEvent is a keyboard event delivered to the active tool.
// Key uses the host's key name for printable keys ("c", "+") and the
// conventional names "Escape" and "Enter" for the universal shortcuts.
type KeyEvent struct {
	Key   string
	Shift bool
	Ctrl  bool
	Alt   bool
}

// Modifiers is the host-maintained modifier key state. See the package
// documentation for why modifiers live on the Context rather than on
// pointer events.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// Context carries the capabilities a tool needs while active: the entity
// store, the host configuration, the pixel-to-unit scale for pick
// tolerances, and the current modifier state.
type Context struct {
	Store  Store
	Config Config

	// PixelScale converts device pixels to drawing-space units. Pick
	// tolerances in the spec are pixel-space (10 px polyline close, 5 px
	// fillet pick); tools multiply them by PixelScale.
	PixelScale float64

	// Modifiers is kept current by the host before each event.
	Modifiers Modifiers

	// exit switches back to the host's default tool. Set by the Manager.
	exit func()
}

// pxToUnits converts a pixel tolerance to drawing-space units.
func (c *Context) pxToUnits(px float64) float64 {
	scale := c.PixelScale
	if scale <= 0 {
		scale = 1
	}
	return px * scale
}

// prompt sends formatted feedback to the host's command prompt.
func (c *Context) prompt(format string, args ...any) {
	if c.Store != nil {
		c.Store.SetCommandPrompt(fmt.Sprintf(format, args...))
	}
}

// Tool is one finite-state drafting tool. Implementations form a closed
// set: LineTool, ArcTool, PolylineTool, FilletTool, DimensionTool.
//
// All methods run synchronously on the interaction thread. RenderPreview
// never mutates tool or entity state.
type Tool interface {
	// ID is the stable machine identifier, e.g. "line".
	ID() string

	// Name is the human-readable display name.
	Name() string

	// Icon names the toolbar icon the host should show.
	Icon() string

	// Cursor names the pointer cursor the host should show.
	Cursor() string

	// Activate prepares the tool for input. The context remains valid
	// until Deactivate.
	Activate(ctx *Context)

	// Deactivate clears temp points and any host-side selection
	// highlight the tool made.
	Deactivate()

	// OnPointerDown appends or finalizes a temp point.
	OnPointerDown(p draft.Point)

	// OnPointerMove updates the preview point without advancing state.
	OnPointerMove(p draft.Point)

	// OnKeyDown handles tool shortcuts and the universal Escape.
	OnKeyDown(ev KeyEvent)

	// RenderPreview draws the in-progress geometry once per frame.
	RenderPreview(s surface.Surface)

	// State returns the current lifecycle state.
	State() State
}

// Manager owns the single active tool. Activating a new tool first
// deactivates the current one.
type Manager struct {
	ctx         *Context
	active      Tool
	defaultTool Tool
}

// ManagerOption configures a Manager during creation.
type ManagerOption func(*Manager)

// WithPixelScale sets the device-pixel to drawing-unit scale used for
// pick tolerances.
func WithPixelScale(unitsPerPixel float64) ManagerOption {
	return func(m *Manager) { m.ctx.PixelScale = unitsPerPixel }
}

// WithDefaultTool sets the tool activated when the active tool exits
// via Escape with no points left.
func WithDefaultTool(t Tool) ManagerOption {
	return func(m *Manager) { m.defaultTool = t }
}

// NewManager creates a tool manager bound to the given store and
// configuration. An invalid configuration is a programmer error and
// panics.
func NewManager(store Store, cfg Config, opts ...ManagerOption) *Manager {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	m := &Manager{
		ctx: &Context{Store: store, Config: cfg, PixelScale: 1},
	}
	m.ctx.exit = m.exitToDefault
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Activate makes t the active tool, deactivating the current one first.
func (m *Manager) Activate(t Tool) {
	if m.active != nil {
		m.active.Deactivate()
	}
	m.active = t
	if t != nil {
		draft.Logger().Debug("tool activated", "tool", t.ID())
		t.Activate(m.ctx)
	}
}

// Deactivate deactivates the active tool, leaving none active.
func (m *Manager) Deactivate() {
	if m.active != nil {
		m.active.Deactivate()
		m.active = nil
	}
}

// Active returns the active tool, or nil.
func (m *Manager) Active() Tool { return m.active }

// SetModifiers records the host's current modifier key state. Hosts call
// this before delivering the event the modifiers belong to.
func (m *Manager) SetModifiers(shift, ctrl, alt bool) {
	m.ctx.Modifiers = Modifiers{Shift: shift, Ctrl: ctrl, Alt: alt}
}

// OnPointerDown forwards a pointer-down event to the active tool.
func (m *Manager) OnPointerDown(p draft.Point) {
	if m.active != nil {
		m.active.OnPointerDown(p)
	}
}

// OnPointerMove forwards a pointer-move event to the active tool.
func (m *Manager) OnPointerMove(p draft.Point) {
	if m.active != nil {
		m.active.OnPointerMove(p)
	}
}

// OnKeyDown forwards a key event to the active tool.
func (m *Manager) OnKeyDown(ev KeyEvent) {
	if m.active != nil {
		m.active.OnKeyDown(ev)
	}
}

// RenderPreview forwards the per-frame preview call to the active tool.
func (m *Manager) RenderPreview(s surface.Surface) {
	if m.active != nil {
		m.active.RenderPreview(s)
	}
}

func (m *Manager) exitToDefault() {
	if m.active == m.defaultTool {
		return
	}
	m.Activate(m.defaultTool)
}

// collector is the shared temp-point machinery embedded by point-based
// tools. Temp points are an append-only sequence scoped to one
// construction attempt, discarded on commit or cancel, never persisted.
type collector struct {
	ctx      *Context
	temp     []draft.Point
	hover    draft.Point
	hasHover bool
}

func (c *collector) activate(ctx *Context) {
	c.ctx = ctx
	c.temp = nil
	c.hasHover = false
}

func (c *collector) deactivate() {
	c.temp = nil
	c.hasHover = false
	if c.ctx != nil && c.ctx.Store != nil {
		c.ctx.Store.ClearSelection()
	}
}

func (c *collector) push(p draft.Point) {
	c.temp = append(c.temp, p)
}

// stepBack removes the most recent temp point, reporting false when none
// remain to remove.
func (c *collector) stepBack() bool {
	if len(c.temp) == 0 {
		return false
	}
	c.temp = c.temp[:len(c.temp)-1]
	return true
}

func (c *collector) reset() {
	c.temp = nil
}

func (c *collector) move(p draft.Point) {
	c.hover = p
	c.hasHover = true
}

// escape implements the universal Escape: step back one point, or exit
// to the host's default tool when no points remain.
func (c *collector) escape() {
	if c.stepBack() {
		return
	}
	if c.ctx != nil && c.ctx.exit != nil {
		c.ctx.exit()
	}
}

func (c *collector) state(required int) State {
	switch {
	case len(c.temp) == 0:
		return StateIdle
	case len(c.temp) < required:
		return StateCollecting
	default:
		return StateReady
	}
}
