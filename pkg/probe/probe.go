package probe

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/mafredri/cdp"
	"github.com/mafredri/cdp/devtool"
	"github.com/mafredri/cdp/protocol/runtime"
	"github.com/mafredri/cdp/rpcc"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

// signalsExpr reads the raw environment signals inside the inspected page.
// Evaluated fresh on every query so live state is never cached.
const signalsExpr = `JSON.stringify({
	user_agent: navigator.userAgent,
	viewport: {width: window.innerWidth, height: window.innerHeight},
	touch: {
		events: "ontouchstart" in window,
		max_touch_points: navigator.maxTouchPoints || 0,
		ms_max_touch_points: navigator.msMaxTouchPoints || 0
	}
})`

// Probe implements device.Source against a live browser page over the
// Chrome DevTools Protocol. Transport failures degrade to zero-valued
// signals (logged at Warn), matching the pipeline's never-fail contract.
type Probe struct {
	conn    *rpcc.Conn
	client  *cdp.Client
	log     *slog.Logger
	timeout time.Duration
}

// Option configures a Probe.
type Option func(*Probe)

// WithLogger sets the structured logger used for degradation warnings.
func WithLogger(log *slog.Logger) Option {
	return func(p *Probe) {
		if log != nil {
			p.log = log
		}
	}
}

// WithEvalTimeout bounds each in-page evaluation.
func WithEvalTimeout(d time.Duration) Option {
	return func(p *Probe) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// Connect attaches to the first page target of a DevTools endpoint
// (e.g. http://127.0.0.1:9222).
func Connect(ctx context.Context, devtoolsURL string, opts ...Option) (*Probe, error) {
	dt := devtool.New(devtoolsURL)
	target, err := dt.Get(ctx, devtool.Page)
	if err != nil {
		return nil, errors.Join(ErrConnect, err)
	}

	conn, err := rpcc.DialContext(ctx, target.WebSocketDebuggerURL)
	if err != nil {
		return nil, errors.Join(ErrConnect, err)
	}

	p := &Probe{
		conn:    conn,
		client:  cdp.NewClient(conn),
		log:     slog.Default(),
		timeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.client.Page.Enable(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Join(ErrConnect, err)
	}

	return p, nil
}

// Close releases the DevTools connection.
func (p *Probe) Close() error {
	return p.conn.Close()
}

// UserAgent implements device.Source.
func (p *Probe) UserAgent() string {
	return p.snapshot().UserAgent()
}

// ViewportSize implements device.Source.
func (p *Probe) ViewportSize() (width, height int) {
	return p.snapshot().ViewportSize()
}

// TouchSupport implements device.Source.
func (p *Probe) TouchSupport() device.TouchSupport {
	return p.snapshot().TouchSupport()
}

// WatchResize converts DevTools frame-resize events into classifier
// triggers. The returned channel closes when ctx is cancelled or the event
// stream fails. Rapid resize bursts coalesce: pending triggers beyond the
// buffered one are dropped, which is safe because every evaluation re-reads
// live state anyway.
func (p *Probe) WatchResize(ctx context.Context) (<-chan device.Trigger, error) {
	stream, err := p.client.Page.FrameResized(ctx)
	if err != nil {
		return nil, errors.Join(ErrWatch, err)
	}

	triggers := make(chan device.Trigger, 1)
	go func() {
		defer close(triggers)
		defer stream.Close()
		for {
			if _, err := stream.Recv(); err != nil {
				return
			}
			select {
			case triggers <- device.TriggerResize:
			case <-ctx.Done():
				return
			default:
			}
		}
	}()

	return triggers, nil
}

// snapshot evaluates the signals expression in the page. Any failure
// yields a zero snapshot so callers keep their never-fail contract.
func (p *Probe) snapshot() device.Snapshot {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	args := runtime.NewEvaluateArgs(signalsExpr).SetReturnByValue(true)
	reply, err := p.client.Runtime.Evaluate(ctx, args)
	if err != nil {
		p.log.Warn("signal probe failed, degrading to zero signals", slog.Any("error", err))
		return device.Snapshot{}
	}

	doc, err := decodeEvalResult(reply.Result.Value)
	if err != nil {
		p.log.Warn("signal probe returned unexpected payload", slog.Any("error", err))
		return device.Snapshot{}
	}

	return device.ParseSnapshot(doc)
}

// decodeEvalResult unwraps the JSON string the evaluation returns into the
// raw signals document.
func decodeEvalResult(value json.RawMessage) ([]byte, error) {
	var doc string
	if err := json.Unmarshal(value, &doc); err != nil {
		return nil, err
	}
	return []byte(doc), nil
}
