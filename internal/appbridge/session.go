package appbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"colorpick/pkg/logging"

	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler receives host events. Register it before Connect; every method is
// invoked through the session's Dispatcher.
type Handler interface {
	OnToolInput(args map[string]any)
	OnToolResult(result *mcp.CallToolResult)
	OnHostContextChanged(hc HostContext)
	OnTeardown() TeardownResult
	OnError(err error)
}

// Dispatcher schedules f on the app's event loop.
type Dispatcher func(f func())

// Option configures a Session.
type Option func(*Session)

// WithDispatcher routes handler calls through d instead of calling them on
// the reader goroutine.
func WithDispatcher(d Dispatcher) Option {
	return func(s *Session) { s.dispatch = d }
}

// WithAppInfo sets the name and version announced in ui/initialize.
func WithAppInfo(name, version string) Option {
	return func(s *Session) {
		s.appInfo = mcp.Implementation{Name: name, Version: version}
	}
}

const outboundBufferSize = 64

// Session is the app side of an MCP Apps connection.
type Session struct {
	transport Transport
	handler   Handler
	dispatch  Dispatcher
	appInfo   mcp.Implementation

	outbound chan []byte
	nextID   atomic.Int64

	mu      sync.Mutex
	pending map[string]func(*transport.JSONRPCResponse)

	startOnce sync.Once
	doneOnce  sync.Once
	done      chan struct{}
	err       error
}

// NewSession creates a session over t. Nothing is sent until Connect.
func NewSession(t Transport, h Handler, opts ...Option) *Session {
	s := &Session{
		transport: t,
		handler:   h,
		dispatch:  func(f func()) { f() },
		appInfo:   mcp.Implementation{Name: "colorpick", Version: "dev"},
		outbound:  make(chan []byte, outboundBufferSize),
		pending:   make(map[string]func(*transport.JSONRPCResponse)),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect starts the read and write loops and performs the ui/initialize
// handshake. The returned host context may be nil.
func (s *Session) Connect(ctx context.Context) (*HostContext, error) {
	s.start(ctx)

	raw, err := s.call(ctx, MethodInitialize, initializeParams{
		AppInfo:         s.appInfo,
		AppCapabilities: map[string]any{},
		ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize host bridge: %w", err)
	}

	var result initializeResult
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, fmt.Errorf("failed to decode initialize result: %w", err)
		}
	}
	logging.Info("Bridge", "Connected to host %s %s", result.HostInfo.Name, result.HostInfo.Version)

	if err := s.notify(MethodInitialized); err != nil {
		return nil, err
	}
	return result.HostContext, nil
}

// UpdateModelContext reports text to the host's model context. It does not
// wait for the host's reply; a failed reply is passed to Handler.OnError.
func (s *Session) UpdateModelContext(text string) error {
	params := updateModelContextParams{Content: []mcp.Content{mcp.NewTextContent(text)}}
	return s.send(MethodUpdateModelContext, params, func(resp *transport.JSONRPCResponse) {
		if resp.Error != nil {
			s.reportError(fmt.Errorf("%s rejected: %w", MethodUpdateModelContext, resp.Error.AsError()))
		}
	})
}

// Done is closed when the read loop stops.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err reports why the session stopped. It is nil after a clean EOF.
func (s *Session) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Close closes the transport, which ends the read loop.
func (s *Session) Close() error {
	err := s.transport.Close()
	s.finish(nil)
	return err
}

func (s *Session) start(ctx context.Context) {
	s.startOnce.Do(func() {
		go s.readLoop(ctx)
		go s.writeLoop(ctx)
	})
}

func (s *Session) finish(err error) {
	s.doneOnce.Do(func() {
		s.err = err
		close(s.done)
	})
}

func (s *Session) readLoop(ctx context.Context) {
	for {
		data, err := s.transport.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logging.Info("Bridge", "Host closed the connection")
				s.finish(nil)
			} else {
				logging.Error("Bridge", err, "Read failed")
				s.finish(err)
			}
			return
		}

		s.handle(data)
	}
}

func (s *Session) writeLoop(ctx context.Context) {
	for {
		select {
		case data := <-s.outbound:
			if err := s.transport.WriteMessage(ctx, data); err != nil {
				s.reportError(fmt.Errorf("failed to write to host: %w", err))
			}
		case <-s.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) handle(data []byte) {
	var h header
	if err := json.Unmarshal(data, &h); err != nil {
		s.reportError(fmt.Errorf("failed to decode host message: %w", err))
		return
	}

	switch {
	case h.isResponse():
		var resp transport.JSONRPCResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			s.reportError(fmt.Errorf("failed to decode host response: %w", err))
			return
		}
		key := resp.ID.String()
		s.mu.Lock()
		cb, ok := s.pending[key]
		delete(s.pending, key)
		s.mu.Unlock()
		if !ok {
			logging.Debug("Bridge", "Dropping response for unknown id %s", key)
			return
		}
		cb(&resp)

	case h.isRequest():
		s.handleRequest(&h)

	case h.isNotification():
		s.handleNotification(&h)

	default:
		s.reportError(fmt.Errorf("malformed host message: no method and no id"))
	}
}

func (s *Session) handleRequest(h *header) {
	id := *h.ID
	switch h.Method {
	case MethodResourceTeardown:
		s.dispatch(func() {
			ack := s.handler.OnTeardown()
			s.respond(id, ack)
		})
	case MethodPing:
		s.respond(id, struct{}{})
	default:
		s.respondError(id, mcp.METHOD_NOT_FOUND, "Method not found: "+h.Method)
	}
}

func (s *Session) handleNotification(h *header) {
	switch h.Method {
	case MethodToolInput:
		var params toolInputParams
		if err := decodeParams(h, &params); err != nil {
			s.reportError(err)
			return
		}
		s.dispatch(func() { s.handler.OnToolInput(params.Arguments) })

	case MethodToolResult:
		var result mcp.CallToolResult
		if err := decodeParams(h, &result); err != nil {
			s.reportError(err)
			return
		}
		s.dispatch(func() { s.handler.OnToolResult(&result) })

	case MethodHostContextChanged:
		var hc HostContext
		if err := decodeParams(h, &hc); err != nil {
			s.reportError(err)
			return
		}
		s.dispatch(func() { s.handler.OnHostContextChanged(hc) })

	default:
		logging.Debug("Bridge", "Ignoring notification %s", h.Method)
	}
}

func decodeParams(h *header, v any) error {
	if len(h.Params) == 0 {
		return nil
	}
	if err := json.Unmarshal(h.Params, v); err != nil {
		return fmt.Errorf("invalid params for %s: %w", h.Method, err)
	}
	return nil
}

// call sends a request and waits for its response.
func (s *Session) call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	replies := make(chan *transport.JSONRPCResponse, 1)
	if err := s.send(method, params, func(resp *transport.JSONRPCResponse) { replies <- resp }); err != nil {
		return nil, err
	}

	select {
	case resp := <-replies:
		if resp.Error != nil {
			return nil, resp.Error.AsError()
		}
		return resp.Result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.done:
		if s.err != nil {
			return nil, s.err
		}
		return nil, ErrClosed
	}
}

func (s *Session) send(method string, params any, onReply func(*transport.JSONRPCResponse)) error {
	id := mcp.NewRequestId(s.nextID.Add(1))
	key := id.String()

	s.mu.Lock()
	s.pending[key] = onReply
	s.mu.Unlock()

	err := s.enqueue(transport.JSONRPCRequest{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		s.mu.Lock()
		delete(s.pending, key)
		s.mu.Unlock()
	}
	return err
}

func (s *Session) notify(method string) error {
	return s.enqueue(mcp.JSONRPCNotification{
		JSONRPC:      mcp.JSONRPC_VERSION,
		Notification: mcp.Notification{Method: method},
	})
}

func (s *Session) respond(id mcp.RequestId, result any) {
	if err := s.enqueue(mcp.NewJSONRPCResultResponse(id, result)); err != nil {
		s.reportError(err)
	}
}

func (s *Session) respondError(id mcp.RequestId, code int, msg string) {
	if err := s.enqueue(mcp.NewJSONRPCError(id, code, msg, nil)); err != nil {
		s.reportError(err)
	}
}

func (s *Session) enqueue(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	select {
	case <-s.done:
		return ErrClosed
	default:
	}
	select {
	case s.outbound <- data:
		return nil
	case <-s.done:
		return ErrClosed
	}
}

func (s *Session) reportError(err error) {
	s.dispatch(func() { s.handler.OnError(err) })
}
