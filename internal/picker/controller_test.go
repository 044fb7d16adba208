package picker

import (
	"errors"
	"testing"

	"colorpick/internal/appbridge"
	"colorpick/internal/color"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingView struct {
	frames []Frame
}

func (v *recordingView) Render(f Frame) { v.frames = append(v.frames, f) }

func (v *recordingView) last(t *testing.T) Frame {
	t.Helper()
	require.NotEmpty(t, v.frames, "expected at least one render")
	return v.frames[len(v.frames)-1]
}

type recordingNotifier struct {
	texts []string
	err   error
}

func (n *recordingNotifier) UpdateModelContext(text string) error {
	n.texts = append(n.texts, text)
	return n.err
}

type recordingPresenter struct {
	contexts []appbridge.HostContext
}

func (p *recordingPresenter) ApplyHostContext(hc appbridge.HostContext) {
	p.contexts = append(p.contexts, hc)
}

var panel = Rect{X: 10, Y: 20, W: 200, H: 100}

func newTestController(t *testing.T, hex string) (*Controller, *recordingView, *recordingNotifier) {
	t.Helper()
	view := &recordingView{}
	notifier := &recordingNotifier{}
	c := NewFromHex(hex, WithView(view), WithNotifier(notifier))
	return c, view, notifier
}

func TestController_PanelCorners(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		want  string
	}{
		{"top left is white", Point{X: 10, Y: 20}, "#ffffff"},
		{"top right is pure hue", Point{X: 210, Y: 20}, "#ff0000"},
		{"bottom left is black", Point{X: 10, Y: 120}, "#000000"},
		{"bottom right is black", Point{X: 210, Y: 120}, "#000000"},
		{"outside top left clamps", Point{X: -50, Y: -50}, "#ffffff"},
		{"outside top right clamps", Point{X: 900, Y: -3}, "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, view, notifier := newTestController(t, "#ff0000")

			c.PointerDown(tt.point, panel)

			assert.Equal(t, tt.want, c.Hex())
			assert.Equal(t, tt.want, view.last(t).Hex)
			require.Len(t, notifier.texts, 1)
		})
	}
}

func TestController_PanelCursorPosition(t *testing.T) {
	c, view, _ := newTestController(t, "#ff0000")

	c.PointerDown(Point{X: 60, Y: 45}, panel)

	f := view.last(t)
	assert.InDelta(t, 25.0, f.CursorX, 1e-9)
	assert.InDelta(t, 25.0, f.CursorY, 1e-9)
	assert.InDelta(t, 0.25, c.HSV().S, 1e-9)
	assert.InDelta(t, 0.75, c.HSV().V, 1e-9)
	assert.InDelta(t, 0.0, c.HSV().H, 1e-9)
}

func TestController_ZeroSizedPanel(t *testing.T) {
	c, _, _ := newTestController(t, "#ff0000")

	c.PointerDown(Point{X: 5, Y: 5}, Rect{})

	hsv := c.HSV()
	assert.Equal(t, 0.0, hsv.S)
	assert.Equal(t, 1.0, hsv.V)
}

func TestController_PointerCapture(t *testing.T) {
	c, _, notifier := newTestController(t, "#ff0000")

	// Moves before a press are ignored.
	c.PointerMove(Point{X: 10, Y: 20}, panel)
	assert.Equal(t, "#ff0000", c.Hex())
	assert.Empty(t, notifier.texts)
	assert.False(t, c.Captured())

	c.PointerDown(Point{X: 210, Y: 20}, panel)
	assert.True(t, c.Captured())

	// Leaving the panel during a drag still drives the value, clamped.
	c.PointerMove(Point{X: 5000, Y: 5000}, panel)
	assert.Equal(t, "#000000", c.Hex())

	c.PointerUp()
	assert.False(t, c.Captured())

	c.PointerMove(Point{X: 10, Y: 20}, panel)
	assert.Equal(t, "#000000", c.Hex())
	assert.Len(t, notifier.texts, 2)
}

func TestController_HueKeepsSaturationAndValue(t *testing.T) {
	c, view, notifier := newTestController(t, "#ff0000")

	c.SetHue(120)

	assert.Equal(t, "#00ff00", c.Hex())
	f := view.last(t)
	assert.Equal(t, 120, f.HueSlider)
	assert.Equal(t, "linear-gradient(to right, #fff, hsl(120, 100%, 50%))", f.Backdrop.CSS)
	assert.Equal(t, "#00ff00", f.Backdrop.To)
	require.Len(t, notifier.texts, 1)
	assert.Equal(t, "User selected color: #00ff00 (rgb: 0, 255, 0)", notifier.texts[0])

	c.SetHue(360)
	assert.InDelta(t, 0.0, c.HSV().H, 1e-9)
	assert.Equal(t, "#ff0000", c.Hex())
}

func TestController_BackdropDependsOnHueOnly(t *testing.T) {
	c, view, _ := newTestController(t, "#ff0000")

	c.SetHue(200)
	before := view.last(t).Backdrop

	c.PointerDown(Point{X: 30, Y: 110}, panel)
	c.PointerUp()

	assert.Equal(t, before, view.last(t).Backdrop)
}

func TestController_CommitHex(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       string
		wantNotify bool
	}{
		{"with hash", "#00ff00", "#00ff00", true},
		{"hash added", "ff0000", "#ff0000", true},
		{"surrounding whitespace", "  #0000ff ", "#0000ff", true},
		{"uppercase", "#ABCDEF", "#abcdef", true},
		{"too short", "#fff", "#6366f1", false},
		{"not hex", "#gggggg", "#6366f1", false},
		{"empty", "", "#6366f1", false},
		{"too long", "#1234567", "#6366f1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, view, notifier := newTestController(t, DefaultColor)

			c.CommitHex(tt.input)

			assert.Equal(t, tt.want, c.Hex())
			if tt.wantNotify {
				require.Len(t, notifier.texts, 1)
				assert.Equal(t, tt.want, view.last(t).Hex)
			} else {
				assert.Empty(t, notifier.texts)
				assert.Empty(t, view.frames, "malformed hex must not re-render")
			}
		})
	}
}

func TestController_CommitRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b string
		want    color.RGB
	}{
		{"black", "0", "0", "0", color.RGB{}},
		{"white", "255", "255", "255", color.RGB{R: 255, G: 255, B: 255}},
		{"over range clamps", "999", "0", "0", color.RGB{R: 255}},
		{"negative clamps", "-5", "128", "0", color.RGB{G: 128}},
		{"unparseable is zero", "abc", "", "64", color.RGB{B: 64}},
		{"fractions round", "12.6", "0.4", "254.5", color.RGB{R: 13, G: 0, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, view, notifier := newTestController(t, DefaultColor)

			c.CommitRGB(tt.r, tt.g, tt.b)

			assert.Equal(t, tt.want, c.RGB())
			assert.Equal(t, tt.want, view.last(t).RGB)
			require.Len(t, notifier.texts, 1)
		})
	}
}

func TestController_RGBExtremesMapToHex(t *testing.T) {
	c, _, _ := newTestController(t, DefaultColor)

	c.CommitRGB("0", "0", "0")
	assert.Equal(t, "#000000", c.Hex())

	c.CommitRGB("255", "255", "255")
	assert.Equal(t, "#ffffff", c.Hex())
}

func TestController_NotificationText(t *testing.T) {
	c, _, notifier := newTestController(t, DefaultColor)

	c.CommitHex("#6366f1")

	require.Len(t, notifier.texts, 1)
	assert.Equal(t, "User selected color: #6366f1 (rgb: 99, 102, 241)", notifier.texts[0])
}

func TestController_HostUpdatesDoNotNotify(t *testing.T) {
	c, view, notifier := newTestController(t, DefaultColor)

	c.OnToolInput(map[string]any{"color": "#ff0000"})
	assert.Equal(t, "#ff0000", c.Hex())
	assert.Equal(t, "#ff0000", view.last(t).Hex)

	c.OnToolResult(&mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent("Color picker opened with: #00ff00")},
		StructuredContent: map[string]any{"color": "#00ff00"},
	})
	assert.Equal(t, "#00ff00", c.Hex())
	assert.Len(t, view.frames, 2)

	assert.Empty(t, notifier.texts)
}

func TestController_HostUpdatesIgnoreBadInput(t *testing.T) {
	tests := []struct {
		name  string
		apply func(c *Controller)
	}{
		{"no color argument", func(c *Controller) { c.OnToolInput(map[string]any{}) }},
		{"nil arguments", func(c *Controller) { c.OnToolInput(nil) }},
		{"non string color", func(c *Controller) { c.OnToolInput(map[string]any{"color": 42}) }},
		{"malformed color", func(c *Controller) { c.OnToolInput(map[string]any{"color": "red"}) }},
		{"shorthand hex", func(c *Controller) { c.OnToolInput(map[string]any{"color": "#f00"}) }},
		{"nil result", func(c *Controller) { c.OnToolResult(nil) }},
		{"result without structured content", func(c *Controller) {
			c.OnToolResult(&mcp.CallToolResult{Content: []mcp.Content{mcp.NewTextContent("hi")}})
		}},
		{"structured content without color", func(c *Controller) {
			c.OnToolResult(&mcp.CallToolResult{StructuredContent: map[string]any{"other": "#ffffff"}})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, view, notifier := newTestController(t, DefaultColor)

			tt.apply(c)

			assert.Equal(t, DefaultColor, c.Hex())
			assert.Empty(t, view.frames)
			assert.Empty(t, notifier.texts)
		})
	}
}

func TestController_HostColorHashIsOptional(t *testing.T) {
	tests := []struct {
		name  string
		apply func(c *Controller)
		want  string
	}{
		{"tool input", func(c *Controller) { c.OnToolInput(map[string]any{"color": "00ff00"}) }, "#00ff00"},
		{"tool result", func(c *Controller) {
			c.OnToolResult(&mcp.CallToolResult{StructuredContent: map[string]any{"color": "0000FF"}})
		}, "#0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, view, notifier := newTestController(t, "#ffffff")

			tt.apply(c)

			assert.Equal(t, tt.want, c.Hex())
			assert.Equal(t, tt.want, view.last(t).Hex)
			assert.Empty(t, notifier.texts)
		})
	}
}

func TestController_UserEditAfterHostUpdateNotifies(t *testing.T) {
	c, _, notifier := newTestController(t, DefaultColor)

	c.OnToolInput(map[string]any{"color": "#ff0000"})
	c.SetHue(240)

	require.Len(t, notifier.texts, 1)
	assert.Equal(t, "User selected color: #0000ff (rgb: 0, 0, 255)", notifier.texts[0])
}

func TestController_NotifierErrorGoesToSink(t *testing.T) {
	var sunk []error
	notifier := &recordingNotifier{err: errors.New("pipe broken")}
	c := NewFromHex(DefaultColor, WithNotifier(notifier), WithErrorSink(func(err error) { sunk = append(sunk, err) }))

	c.SetHue(10)

	require.Len(t, sunk, 1)
	assert.Contains(t, sunk[0].Error(), "pipe broken")
	assert.InDelta(t, 10.0, c.HSV().H, 1e-9)
}

func TestController_ClosedBridgeIsNotAnError(t *testing.T) {
	var sunk []error
	c := NewFromHex(DefaultColor, WithErrorSink(func(err error) { sunk = append(sunk, err) }))

	c.OnError(appbridge.ErrClosed)
	c.OnError(nil)

	assert.Empty(t, sunk)
}

func TestController_HostContextGoesToPresenter(t *testing.T) {
	presenter := &recordingPresenter{}
	view := &recordingView{}
	c := NewFromHex(DefaultColor, WithPresenter(presenter), WithView(view))

	c.OnHostContextChanged(appbridge.HostContext{Theme: "dark"})

	require.Len(t, presenter.contexts, 1)
	assert.Equal(t, "dark", presenter.contexts[0].Theme)
	assert.Empty(t, view.frames)
	assert.Equal(t, DefaultColor, c.Hex())
}

func TestController_TeardownLeavesState(t *testing.T) {
	c, view, notifier := newTestController(t, "#123456")

	assert.Equal(t, appbridge.TeardownResult{}, c.OnTeardown())
	assert.Equal(t, "#123456", c.Hex())
	assert.Empty(t, view.frames)
	assert.Empty(t, notifier.texts)
}

func TestController_SetNotifierLater(t *testing.T) {
	c := NewFromHex(DefaultColor)
	c.SetHue(30)

	notifier := &recordingNotifier{}
	c.SetNotifier(notifier)
	c.SetHue(60)

	assert.Len(t, notifier.texts, 1)
}

func TestNewFromHex_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultColor, NewFromHex("nope").Hex())
	assert.Equal(t, "#ff8800", NewFromHex("ff8800").Hex())
}

func TestNewFrame(t *testing.T) {
	f := NewFrame(color.HSV{H: 240, S: 0.5, V: 0.8})

	assert.Equal(t, color.RGB{R: 102, G: 102, B: 204}, f.RGB)
	assert.Equal(t, "#6666cc", f.Hex)
	assert.Equal(t, f.Hex, f.Swatch)
	assert.InDelta(t, 50.0, f.CursorX, 1e-9)
	assert.InDelta(t, 20.0, f.CursorY, 1e-9)
	assert.Equal(t, 240, f.HueSlider)
	assert.Equal(t, "#0000ff", f.Backdrop.To)
	assert.Equal(t, "#ffffff", f.Backdrop.From)
}
