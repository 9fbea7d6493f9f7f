package rpc

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coderrahul01/tempwallets/pkg/log"
	"github.com/gorilla/websocket"
)

// ConnState is one state in the transport's connection state machine.
type ConnState int32

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
	StateReconnecting
	StateFailed
)

func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// cleanCloseCode is the websocket close code that suppresses reconnection.
const cleanCloseCode = 1000

// NotificationHandler processes a server-pushed message that does not
// correlate with any pending request. Handlers are invoked synchronously
// from the dispatch loop and must not block; a handler that may block is
// expected to hand its work off (e.g. to a buffered channel of its own).
type NotificationHandler func(ctx context.Context, msg *Response)

// TransportConfig holds the exhaustive set of dial-time options named in
// the RPC transport's specification: reconnect budget/backoff and the
// per-request timeout.
type TransportConfig struct {
	URL                     string
	MaxReconnectAttempts    int
	InitialReconnectDelayMs int
	MaxReconnectDelayMs     int
	RequestTimeoutMs        int
}

// DefaultTransportConfig mirrors the spec's stated defaults.
func DefaultTransportConfig(url string) TransportConfig {
	return TransportConfig{
		URL:                     url,
		MaxReconnectAttempts:    5,
		InitialReconnectDelayMs: 1000,
		MaxReconnectDelayMs:     30000,
		RequestTimeoutMs:        30000,
	}
}

type pendingEntry struct {
	resultCh chan *Response
	timer    *time.Timer
}

// Transport is a single duplex connection to the clearing node with
// automatic reconnection, strictly-monotonic request ids, an offline
// queue, and notification dispatch. It is the concurrency owner named in
// the data model: the pending-request map, the offline queue, the next-id
// counter, and the connection itself belong to this type alone.
type Transport struct {
	cfg TransportConfig
	lg  log.Logger

	dialer *WebsocketDialer

	nextID uint64 // atomic, strictly increasing, never reused

	state atomic.Int32

	mu      sync.Mutex // guards pending and queue
	pending map[uint64]*pendingEntry
	queue   []*Request

	subMu sync.RWMutex
	subs  map[string][]NotificationHandler

	metrics *Metrics

	onConnect func(ctx context.Context) error

	attempts int

	closeOnce sync.Once
	closed    chan struct{}
}

// NewTransport builds a Transport that has not yet dialed.
func NewTransport(cfg TransportConfig, lg log.Logger) *Transport {
	if lg == nil {
		lg = log.NewNoopLogger()
	}
	t := &Transport{
		cfg:     cfg,
		lg:      lg.WithName("rpc-transport"),
		dialer:  NewWebsocketDialer(DefaultWebsocketDialerConfig),
		pending: make(map[uint64]*pendingEntry),
		subs:    make(map[string][]NotificationHandler),
		closed:  make(chan struct{}),
	}
	t.setState(StateDisconnected)
	return t
}

// OnConnect registers a hook run after every successful (re)connect and
// before the offline queue is flushed. The session-auth module uses this
// to complete its handshake first, per the design note that the transport
// treats auth as opaque and delegates ordering through this single hook.
func (t *Transport) OnConnect(hook func(ctx context.Context) error) {
	t.onConnect = hook
}

// Subscribe registers a handler for a notification method (e.g. "bu", "cu",
// "tr", "asu", "assets"). Multiple handlers may be registered per method.
func (t *Transport) Subscribe(method string, handler NotificationHandler) {
	t.subMu.Lock()
	defer t.subMu.Unlock()
	t.subs[method] = append(t.subs[method], handler)
}

// State returns the current connection state.
func (t *Transport) State() ConnState {
	return ConnState(t.state.Load())
}

// Start launches the connect-and-reconnect loop and the Dispatch loop in
// the background and returns at once, before the first connection attempt
// completes. Callers observe readiness via State(); a Send made while
// disconnected is queued and waits for its response, the request timeout,
// or cancellation of its context.
func (t *Transport) Start(ctx context.Context) {
	go t.connectLoop(ctx)
	go t.Dispatch(ctx)
}

func (t *Transport) connectLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.closed:
			return
		default:
		}

		t.setState(StateConnecting)
		connCtx, cancelConn := context.WithCancel(ctx)
		closedCh := make(chan error, 1)
		err := t.dialer.Dial(connCtx, t.cfg.URL, func(err error) {
			closedCh <- err
		})
		if err != nil {
			cancelConn()
			t.lg.Warn("dial failed", "error", err, "attempt", t.attempts+1)
			if !t.scheduleRetry(ctx) {
				return
			}
			continue
		}

		t.attempts = 0
		t.setState(StateConnected)
		t.lg.Info("connected", "url", t.cfg.URL)

		if t.onConnect != nil {
			if err := t.onConnect(ctx); err != nil {
				t.lg.Error("on-connect hook failed", "error", err)
				cancelConn()
				<-closedCh
				if !t.scheduleRetry(ctx) {
					return
				}
				continue
			}
		}

		t.flushQueue()

		select {
		case <-ctx.Done():
			cancelConn()
			return
		case closeErr := <-closedCh:
			cancelConn()
			t.lg.Warn("connection closed", "error", closeErr)
			t.failPending()
			var closeFrame *websocket.CloseError
			if errors.As(closeErr, &closeFrame) && closeFrame.Code == cleanCloseCode {
				t.setState(StateDisconnected)
				return
			}
			if !t.scheduleRetry(ctx) {
				return
			}
		}
	}
}

// scheduleRetry waits out the backoff delay for the next reconnect
// attempt, or transitions to FAILED and returns false once the budget is
// exhausted.
func (t *Transport) scheduleRetry(ctx context.Context) bool {
	t.attempts++
	if t.metrics != nil {
		t.metrics.ReconnectsTotal.Inc()
	}
	if t.attempts > t.cfg.MaxReconnectAttempts {
		t.setState(StateFailed)
		t.lg.Error("reconnect budget exhausted, giving up", "attempts", t.attempts-1)
		return false
	}

	t.setState(StateReconnecting)
	delay := backoffDelay(t.attempts, t.cfg.InitialReconnectDelayMs, t.cfg.MaxReconnectDelayMs)
	t.lg.Info("scheduling reconnect", "attempt", t.attempts, "delayMs", delay.Milliseconds())

	select {
	case <-ctx.Done():
		return false
	case <-t.closed:
		return false
	case <-time.After(delay):
		return true
	}
}

func backoffDelay(attempt, initialMs, maxMs int) time.Duration {
	delay := initialMs << uint(attempt-1)
	if delay <= 0 || delay > maxMs {
		delay = maxMs
	}
	return time.Duration(delay) * time.Millisecond
}

// nextRequestID returns the next strictly monotonic id for this
// connection's lifetime. It is never reused, even across reconnects.
func (t *Transport) nextRequestID() uint64 {
	return atomic.AddUint64(&t.nextID, 1)
}

// Send assigns the payload a fresh id, registers a pending resolver with a
// RequestTimeoutMs timer, and either writes immediately (if connected) or
// enqueues it for FIFO replay on the next successful connect. The caller
// never observes the assigned id.
func (t *Transport) Send(ctx context.Context, method string, params Params, sigs ...func(payload Payload) (Request, error)) (*Response, error) {
	id := t.nextRequestID()
	payload := NewPayload(id, method, params)

	var req Request
	var err error
	if len(sigs) == 0 {
		req = NewRequest(payload)
	} else {
		req, err = sigs[0](payload)
		if err != nil {
			return nil, err
		}
	}

	return t.send(ctx, &req)
}

// SendRequest sends an already-built, already-signed Request. Used by
// callers (session-auth, controllers) that need full control over signing.
func (t *Transport) SendRequest(ctx context.Context, req *Request) (*Response, error) {
	if req.Req.RequestID == 0 {
		req.Req.RequestID = t.nextRequestID()
	}
	return t.send(ctx, req)
}

func (t *Transport) send(ctx context.Context, req *Request) (*Response, error) {
	if t.State() == StateFailed {
		return nil, Errorf("transport not connected: reconnect budget exhausted")
	}

	resultCh := make(chan *Response, 1)
	timeout := time.Duration(t.cfg.RequestTimeoutMs) * time.Millisecond
	entry := &pendingEntry{
		resultCh: resultCh,
		timer: time.AfterFunc(timeout, func() {
			t.resolveTimeout(req.Req.RequestID)
		}),
	}

	t.mu.Lock()
	t.pending[req.Req.RequestID] = entry
	t.mu.Unlock()

	if t.dialer.IsConnected() {
		if err := t.dialer.Send(req); err != nil {
			t.mu.Lock()
			delete(t.pending, req.Req.RequestID)
			t.mu.Unlock()
			entry.timer.Stop()
			return nil, err
		}
	} else {
		t.mu.Lock()
		t.queue = append(t.queue, req)
		t.mu.Unlock()
	}

	select {
	case <-ctx.Done():
		t.cleanupPending(req.Req.RequestID)
		t.recordOutcome(req.Req.Method, "cancelled")
		return nil, ctx.Err()
	case res := <-resultCh:
		if res == nil {
			t.recordOutcome(req.Req.Method, "timeout")
			return nil, Errorf("timeout waiting for response to request %d", req.Req.RequestID)
		}
		t.recordOutcome(req.Req.Method, "success")
		return res, nil
	}
}

func (t *Transport) recordOutcome(method, outcome string) {
	if t.metrics != nil {
		t.metrics.RequestsTotal.WithLabelValues(method, outcome).Inc()
	}
}

func (t *Transport) cleanupPending(id uint64) {
	t.mu.Lock()
	entry, ok := t.pending[id]
	delete(t.pending, id)
	t.mu.Unlock()
	if ok {
		entry.timer.Stop()
	}
}

func (t *Transport) resolveTimeout(id uint64) {
	t.mu.Lock()
	entry, ok := t.pending[id]
	if ok {
		delete(t.pending, id)
	}
	t.mu.Unlock()
	if ok {
		entry.resultCh <- nil
	}
}

// failPending does not clear pending resolvers on disconnect (they remain
// registered so a reconnect-and-replay can still resolve them); it exists
// only to log the transition. Pending entries are cleared individually by
// response delivery, explicit timeout, or caller-side context cancellation.
func (t *Transport) failPending() {
	t.mu.Lock()
	n := len(t.pending)
	t.mu.Unlock()
	if n > 0 {
		t.lg.Warn("connection lost with requests still pending", "count", n)
	}
}

// flushQueue drains the offline queue in FIFO order. A write failure
// re-prepends the failed message and stops the loop so remaining queued
// messages await the next connect.
func (t *Transport) flushQueue() {
	for {
		t.mu.Lock()
		if len(t.queue) == 0 {
			t.mu.Unlock()
			return
		}
		req := t.queue[0]
		t.mu.Unlock()

		if err := t.dialer.Send(req); err != nil {
			t.lg.Warn("failed to flush queued request, will retry on next connect", "error", err)
			return
		}

		t.mu.Lock()
		t.queue = t.queue[1:]
		t.mu.Unlock()
	}
}

// Dispatch should be run in its own goroutine; it drains the dialer's
// event channel for the transport's lifetime, routing each message to its
// pending resolver or, failing that, to subscribed notification handlers.
func (t *Transport) Dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-t.dialer.EventCh():
			if !ok || msg == nil {
				continue
			}
			t.route(ctx, msg)
		}
	}
}

func (t *Transport) route(ctx context.Context, msg *Response) {
	t.mu.Lock()
	entry, ok := t.pending[msg.Res.RequestID]
	if ok {
		delete(t.pending, msg.Res.RequestID)
	}
	t.mu.Unlock()

	if ok {
		entry.timer.Stop()
		entry.resultCh <- msg
		return
	}

	t.dispatchNotification(ctx, msg)
}

func (t *Transport) dispatchNotification(ctx context.Context, msg *Response) {
	t.subMu.RLock()
	handlers := t.subs[msg.Res.Method]
	t.subMu.RUnlock()

	if len(handlers) == 0 {
		t.lg.Debug("unrecognized notification discarded", "method", msg.Res.Method)
		return
	}
	for _, h := range handlers {
		h(ctx, msg)
	}
}

// Close tears down the transport and stops the reconnect loop.
func (t *Transport) Close() {
	t.closeOnce.Do(func() {
		close(t.closed)
	})
}
