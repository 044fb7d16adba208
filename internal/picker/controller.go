package picker

import (
	"errors"
	"fmt"

	"colorpick/internal/appbridge"
	"colorpick/internal/color"
	"colorpick/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

// DefaultColor is the initial selection when neither config nor host supply one.
const DefaultColor = "#6366f1"

// View receives a frame after every state change.
type View interface {
	Render(f Frame)
}

// Notifier carries model-context updates to the host.
type Notifier interface {
	UpdateModelContext(text string) error
}

// Presenter applies host presentation state (theme, style variables, fonts,
// safe-area padding). It has no bearing on the color state.
type Presenter interface {
	ApplyHostContext(hc appbridge.HostContext)
}

// ErrorSink receives failures that are logged but never surfaced to the user.
type ErrorSink func(err error)

// Option configures a Controller.
type Option func(*Controller)

func WithView(v View) Option { return func(c *Controller) { c.view = v } }

func WithNotifier(n Notifier) Option { return func(c *Controller) { c.notifier = n } }

func WithPresenter(p Presenter) Option { return func(c *Controller) { c.presenter = p } }

func WithErrorSink(sink ErrorSink) Option { return func(c *Controller) { c.onError = sink } }

// Controller owns the canonical HSV state and mediates the panel, the hue
// slider, the hex field, the RGB fields and the host. It is not safe for
// concurrent use; every call must come from the same event loop.
type Controller struct {
	hsv color.HSV

	view      View
	notifier  Notifier
	presenter Presenter
	onError   ErrorSink

	// captured is true between PointerDown and PointerUp.
	captured bool
}

var _ appbridge.Handler = (*Controller)(nil)

// New creates a controller holding initial. It does not render; call Render
// once the view is ready.
func New(initial color.HSV, opts ...Option) *Controller {
	c := &Controller{
		hsv: initial.Normalize(),
		onError: func(err error) {
			logging.Error("Picker", err, "Host communication failed")
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromHex creates a controller from a hex color, falling back to
// DefaultColor when hex is malformed.
func NewFromHex(hex string, opts ...Option) *Controller {
	rgb, err := color.ParseHex(color.NormalizeHexInput(hex))
	if err != nil {
		logging.Warn("Picker", "Ignoring invalid initial color %q, using %s", hex, DefaultColor)
		rgb, _ = color.ParseHex(DefaultColor)
	}
	return New(rgb.HSV(), opts...)
}

// SetNotifier attaches the host channel once a session is established.
func (c *Controller) SetNotifier(n Notifier) {
	c.notifier = n
}

// HSV returns the canonical state.
func (c *Controller) HSV() color.HSV {
	return c.hsv
}

// RGB returns the current selection as 8-bit channels.
func (c *Controller) RGB() color.RGB {
	return c.hsv.RGB()
}

// Hex returns the current selection as "#rrggbb".
func (c *Controller) Hex() string {
	return c.hsv.Hex()
}

// Frame returns the derived values for the current state.
func (c *Controller) Frame() Frame {
	return NewFrame(c.hsv)
}

// Captured reports whether a panel drag is in progress.
func (c *Controller) Captured() bool {
	return c.captured
}

// Render writes the current frame to the view.
func (c *Controller) Render() {
	if c.view != nil {
		c.view.Render(c.Frame())
	}
}

// PointerDown starts a drag on the saturation/value panel and applies p.
func (c *Controller) PointerDown(p Point, panel Rect) {
	c.captured = true
	c.applyPointer(p, panel)
}

// PointerMove drives the panel while a drag is captured, wherever the
// pointer is. Moves without a capture are ignored.
func (c *Controller) PointerMove(p Point, panel Rect) {
	if !c.captured {
		return
	}
	c.applyPointer(p, panel)
}

// PointerUp releases the capture.
func (c *Controller) PointerUp() {
	c.captured = false
}

func (c *Controller) applyPointer(p Point, panel Rect) {
	x, y := panel.local(p)
	c.hsv.S = x
	c.hsv.V = 1 - y
	c.userChanged()
}

// SetHue applies the hue slider's value.
func (c *Controller) SetHue(h float64) {
	c.hsv.H = color.NormalizeHue(h)
	c.userChanged()
}

// CommitHex applies the hex field on commit. A missing '#' is added; any
// other malformed text leaves state and display untouched.
func (c *Controller) CommitHex(text string) {
	rgb, err := color.ParseHex(color.NormalizeHexInput(text))
	if err != nil {
		logging.Debug("Picker", "Ignoring hex input %q: %v", text, err)
		return
	}
	c.hsv = rgb.HSV()
	c.userChanged()
}

// CommitRGB applies all three channel fields together. Each unparseable
// channel counts as 0 and each is clamped into [0,255].
func (c *Controller) CommitRGB(r, g, b string) {
	rgb := color.RGB{
		R: color.ParseChannel(r),
		G: color.ParseChannel(g),
		B: color.ParseChannel(b),
	}
	c.hsv = rgb.HSV()
	c.userChanged()
}

// userChanged renders, then tells the host about the new selection.
func (c *Controller) userChanged() {
	c.hsv = c.hsv.Normalize()
	f := c.Frame()
	if c.view != nil {
		c.view.Render(f)
	}
	c.notify(f)
}

func (c *Controller) notify(f Frame) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.UpdateModelContext(f.Description()); err != nil {
		c.OnError(fmt.Errorf("failed to update model context: %w", err))
	}
}

// applyHostColor overwrites state from a host-supplied color without
// notifying the host back. The leading '#' is optional, as in the hex field.
func (c *Controller) applyHostColor(source string, value any) {
	hex, ok := value.(string)
	if !ok || hex == "" {
		return
	}
	rgb, err := color.ParseHex(color.NormalizeHexInput(hex))
	if err != nil {
		logging.Debug("Picker", "Ignoring %s color %q: %v", source, hex, err)
		return
	}
	c.hsv = rgb.HSV()
	c.Render()
}

// OnToolInput applies the optional "color" argument of the tool call.
func (c *Controller) OnToolInput(args map[string]any) {
	c.applyHostColor("tool input", args["color"])
}

// OnToolResult applies the optional "color" field of the structured result.
func (c *Controller) OnToolResult(result *mcp.CallToolResult) {
	if result == nil {
		return
	}
	structured, ok := result.StructuredContent.(map[string]any)
	if !ok {
		return
	}
	c.applyHostColor("tool result", structured["color"])
}

// OnHostContextChanged hands presentation state to the presenter.
func (c *Controller) OnHostContextChanged(hc appbridge.HostContext) {
	if c.presenter != nil {
		c.presenter.ApplyHostContext(hc)
	}
}

// OnTeardown acknowledges teardown without touching state.
func (c *Controller) OnTeardown() appbridge.TeardownResult {
	logging.Debug("Picker", "Teardown requested")
	return appbridge.TeardownResult{}
}

// OnError forwards to the error sink.
func (c *Controller) OnError(err error) {
	if err == nil || c.onError == nil {
		return
	}
	if errors.Is(err, appbridge.ErrClosed) {
		logging.Debug("Picker", "Host bridge closed: %v", err)
		return
	}
	c.onError(err)
}
