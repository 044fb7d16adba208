package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"colorpick/internal/appbridge"
	"colorpick/internal/config"
	"colorpick/internal/picker"
	"colorpick/internal/tui"
	"colorpick/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoBridge is returned when headless mode has no host to talk to.
var ErrNoBridge = errors.New("headless mode requires a host bridge")

// headlessView logs each frame and each presentation update, since there is
// nothing to draw.
type headlessView struct{}

func (headlessView) Render(f picker.Frame) {
	logging.Info("Headless", "Selection %s (rgb: %d, %d, %d)", f.Hex, f.RGB.R, f.RGB.G, f.RGB.B)
}

func (headlessView) ApplyHostContext(hc appbridge.HostContext) {
	logging.Debug("Headless", "Host context changed: theme=%q", hc.Theme)
}

// runHeadlessMode drives the picker from the host alone until the host
// disconnects or the process is interrupted.
func runHeadlessMode(ctx context.Context, cfg *Config, services *Services) error {
	if services.Transport == nil {
		return ErrNoBridge
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := picker.NewLoop(32)
	go loop.Run(ctx)

	view := headlessView{}
	ctrl := picker.NewFromHex(cfg.InitialColor(), picker.WithView(view), picker.WithPresenter(view))
	session := appbridge.NewSession(services.Transport, ctrl,
		appbridge.WithDispatcher(loop.Post),
		appbridge.WithAppInfo(cfg.AppName(), cfg.appVersion()),
	)

	// Nothing else touches the controller until the session starts.
	ctrl.Render()

	hc, err := session.Connect(ctx)
	if err != nil {
		logging.Error("Headless", err, "Host handshake failed")
		return err
	}
	ready := make(chan struct{})
	loop.Post(func() {
		defer close(ready)
		ctrl.SetNotifier(session)
		if hc != nil {
			ctrl.OnHostContextChanged(*hc)
		}
	})
	select {
	case <-ready:
	case <-loop.Stopped():
		return nil
	}

	select {
	case <-session.Done():
		logging.Info("Headless", "Host bridge closed")
		return session.Err()
	case <-ctx.Done():
		logging.Info("Headless", "Shutting down")
		_ = session.Close()
		return nil
	}
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, services *Services) error {
	logChan := logging.InitForTUI(cfg.logLevel())
	defer logging.CloseTUIChannel()

	m := tui.New(tui.Options{
		Title:        cfg.AppName(),
		InitialColor: cfg.InitialColor(),
		LogChannel:   logChan,
		Dark:         themeOverride(cfg),
	})
	p := tui.NewProgram(m, tea.WithContext(ctx))

	if services.Transport != nil {
		session := appbridge.NewSession(services.Transport, m.Controller(),
			appbridge.WithDispatcher(tui.Dispatcher(p)),
			appbridge.WithAppInfo(cfg.AppName(), cfg.appVersion()),
		)
		go connectTUI(ctx, p, session, services.HostLabel)
	}

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

// connectTUI performs the handshake off the UI loop and reports the
// session's lifecycle to the program.
func connectTUI(ctx context.Context, p *tea.Program, session *appbridge.Session, host string) {
	hc, err := session.Connect(ctx)
	if err != nil {
		logging.Error("TUI", err, "Host handshake failed")
		p.Send(tui.HostDisconnectedMsg{Err: err})
		return
	}
	p.Send(tui.HostConnectedMsg{Host: host, Notifier: session, Context: hc})

	<-session.Done()
	p.Send(tui.HostDisconnectedMsg{Err: session.Err()})
}

// themeOverride maps the configured theme onto the TUI's dark flag. Auto
// leaves the decision to the terminal.
func themeOverride(cfg *Config) *bool {
	if cfg.ColorpickConfig == nil {
		return nil
	}
	var dark bool
	switch cfg.ColorpickConfig.UI.Theme {
	case config.ThemeDark:
		dark = true
	case config.ThemeLight:
		dark = false
	default:
		return nil
	}
	return &dark
}
