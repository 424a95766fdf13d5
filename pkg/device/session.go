package device

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Trigger identifies the event that caused a re-evaluation.
type Trigger string

const (
	// TriggerMount fires once when a session starts watching.
	TriggerMount Trigger = "mount"
	// TriggerResize fires on viewport size changes.
	TriggerResize Trigger = "resize"
	// TriggerOrientationChange fires on device rotation. Handled exactly
	// like a resize: the full pipeline re-runs.
	TriggerOrientationChange Trigger = "orientationchange"
)

// anchorState is the stabilizer's session state. The anchor is written
// exactly once, on the first evaluation, and never leaves its anchored
// state afterwards.
type anchorState int

const (
	unanchored anchorState = iota
	anchoredDesktop
	anchoredNonDesktop
)

func (s anchorState) String() string {
	switch s {
	case anchoredDesktop:
		return "anchored-desktop"
	case anchoredNonDesktop:
		return "anchored-non-desktop"
	default:
		return "unanchored"
	}
}

// Session stabilizes classification for the lifetime of one page view.
//
// The first evaluation anchors the session: a definitely-desktop result
// pins every later evaluation to {Mobile:false, Tablet:false} no matter
// how narrow the window gets, so desktop windows resized narrow never
// flip into mobile or tablet. A non-desktop anchor lets later evaluations
// toggle freely between mobile and tablet from the current viewport
// width, but never promotes into desktop anchoring.
type Session struct {
	id         uuid.UUID
	source     Source
	classifier *Classifier
	cfg        Config
	log        *slog.Logger
	metrics    *Metrics
	hub        *hub

	loading *atomic.Bool

	mu      sync.Mutex
	state   anchorState
	current Classification
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger. Sessions are silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRules replaces the default rule table.
func WithRules(rules Ruleset) Option {
	return func(s *Session) {
		s.classifier = NewClassifier(rules)
	}
}

// WithConfig applies configuration: breakpoints flow into the rule table,
// the buffer size into subscriber channels.
func WithConfig(cfg Config) Option {
	return func(s *Session) {
		s.cfg = cfg
		rules := s.classifier.Rules()
		rules.Breakpoints = Breakpoints{
			MobileMax: cfg.MobileBreakpoint,
			TabletMax: cfg.TabletBreakpoint,
		}
		s.classifier = NewClassifier(rules)
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

// NewSession creates a session around an environment source. The session
// reports Loading until the first evaluation completes.
func NewSession(source Source, opts ...Option) *Session {
	s := &Session{
		id:         uuid.New(),
		source:     source,
		classifier: NewClassifier(DefaultRules()),
		cfg:        DefaultConfig(),
		log:        slog.New(discardHandler{}),
		loading:    atomic.NewBool(true),
		state:      unanchored,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = newHub(s.cfg.UpdateBuffer)
	return s
}

// ID returns the session identifier used in logs and update correlation.
func (s *Session) ID() uuid.UUID { return s.id }

// IsLoading reports whether the first evaluation has not completed yet.
// This is a logical in-progress window, not an error state.
func (s *Session) IsLoading() bool { return s.loading.Load() }

// Current returns the last published classification, or a loading
// placeholder before the first evaluation.
func (s *Session) Current() Classification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading.Load() {
		return Classification{Loading: true}
	}
	return s.current
}

// Evaluate runs the full collect→classify→stabilize pipeline once and
// publishes the result to subscribers. It is safe to call from concurrent
// triggers: evaluations serialize on the session lock and the anchor is
// still written exactly once even when trigger events coalesce.
func (s *Session) Evaluate(trigger Trigger) Classification {
	signals := Collect(s.source)
	result := s.classifier.Classify(signals)

	s.mu.Lock()
	if s.state == unanchored {
		s.anchorLocked(signals, result)
	}

	var c Classification
	switch s.state {
	case anchoredDesktop:
		// Permanent: immune to later resizes and re-detected signals.
		c = Classification{}
	default:
		// Width is the final arbiter while anchored non-desktop. The raw
		// mobile/tablet booleans are ignored here, which also resolves
		// signal conflicts where both matched.
		c = s.deriveFromWidthLocked(signals.ViewportWidth)
	}
	s.current = c
	s.loading.Store(false)
	s.mu.Unlock()

	s.observe(trigger, signals, result, c)
	s.hub.publish(Update{SessionID: s.id, Trigger: trigger, Classification: c})
	return c
}

// anchorLocked performs the one-shot unanchored transition. Caller holds s.mu.
func (s *Session) anchorLocked(signals Signals, result Result) {
	anchor := CategoryMobile
	switch {
	case result.DefinitelyDesktop:
		anchor = CategoryDesktop
		s.state = anchoredDesktop
	case result.TabletDevice:
		anchor = CategoryTablet
		s.state = anchoredNonDesktop
	default:
		s.state = anchoredNonDesktop
	}

	s.log.Debug("session anchored",
		slog.String("session_id", s.id.String()),
		slog.String("anchor", string(anchor)),
		slog.String("state", s.state.String()),
		slog.String("desktop_rule", result.DesktopRule),
		slog.String("tablet_rule", result.TabletRule),
		slog.String("mobile_rule", result.MobileRule),
		slog.Int("viewport_width", signals.ViewportWidth),
	)
	if s.metrics != nil {
		s.metrics.AnchorsTotal.WithLabelValues(string(anchor)).Inc()
	}
}

// deriveFromWidthLocked maps the current width onto the category partition.
// Width at or beyond the tablet breakpoint yields neither flag: the layout
// is desktop-shaped for that evaluation, but the session stays anchored
// non-desktop and may toggle back on the next resize.
func (s *Session) deriveFromWidthLocked(width int) Classification {
	bp := s.classifier.Rules().Breakpoints
	switch {
	case width < bp.MobileMax:
		return Classification{Mobile: true}
	case width < bp.TabletMax:
		return Classification{Tablet: true}
	default:
		return Classification{}
	}
}

func (s *Session) observe(trigger Trigger, signals Signals, result Result, c Classification) {
	s.log.Debug("evaluated",
		slog.String("session_id", s.id.String()),
		slog.String("trigger", string(trigger)),
		slog.String("category", string(c.Category())),
		slog.Int("viewport_width", signals.ViewportWidth),
		slog.Int("viewport_height", signals.ViewportHeight),
	)
	if s.metrics == nil {
		return
	}
	s.metrics.EvaluationsTotal.WithLabelValues(string(c.Category()), string(trigger)).Inc()
	for step, name := range map[string]string{
		"desktop": result.DesktopRule,
		"mobile":  result.MobileRule,
		"tablet":  result.TabletRule,
	} {
		if name != "" {
			s.metrics.RuleMatchesTotal.WithLabelValues(step, name).Inc()
		}
	}
}

// Watch evaluates once for the mount trigger, then consumes trigger events
// until ctx is cancelled or the channel closes. Events are processed one
// at a time, in arrival order, on the calling goroutine — no two
// evaluations overlap.
func (s *Session) Watch(ctx context.Context, triggers <-chan Trigger) {
	s.Evaluate(TriggerMount)
	for {
		select {
		case <-ctx.Done():
			return
		case trig, ok := <-triggers:
			if !ok {
				return
			}
			s.Evaluate(trig)
		}
	}
}

// Subscribe registers for classification updates. The subscription is
// released when ctx is cancelled or the session closes, whichever comes
// first.
func (s *Session) Subscribe(ctx context.Context) *Subscriber {
	return s.hub.subscribe(ctx)
}

// Close tears the session down and closes all subscribers. Idempotent.
func (s *Session) Close() error {
	return s.hub.close()
}

// discardHandler drops every record. Avoids nil checks on the hot path.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
