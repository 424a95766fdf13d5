// Package device classifies a web client's runtime environment into one of
// three categories – desktop, tablet, mobile – and keeps that classification
// stable across viewport changes for the lifetime of a page view.
//
// Classification combines three signal groups collected fresh on every
// evaluation: parsed user-agent fields (device type, OS, CPU architecture),
// touch-capability indicators, and current viewport dimensions.
//
// # Architecture
//
// Three stages, consumed top-down:
//
//	┌───────────┐   Signals   ┌────────────┐   Result   ┌───────────┐
//	│  Collect   │────────────▶│ Classifier │───────────▶│  Session  │──▶ Classification
//	└───────────┘             └────────────┘            └───────────┘
//	 (signals.go)              (classifier.go)           (session.go)
//
//   - Collect reads a Source (live environment or recorded Snapshot) into an
//     immutable Signals value. It never fails; unknown fields degrade to
//     zero values.
//   - Classifier runs an ordered three-step rule cascade with early exit:
//     desktop determination (high-confidence OS/architecture heuristics that
//     override everything), mobile determination, tablet determination. The
//     rule table (rules.go) is parameterized and TOML-overridable.
//   - Session is the stabilizer. Its first evaluation anchors the session:
//     once anchored desktop, the session never reports mobile or tablet
//     again, no matter how narrow the window is resized; anchored
//     non-desktop, later evaluations derive mobile vs tablet purely from the
//     current viewport width and never promote into desktop.
//
// Sessions republish every evaluation to context-scoped subscribers and can
// drive themselves from a trigger channel (mount, resize, orientation
// change) via Watch.
//
// # Usage
//
//	src := device.NewSnapshotSource(device.ParseSnapshot(payload))
//	sess := device.NewSession(src, device.WithLogger(log))
//	defer sess.Close()
//
//	c := sess.Evaluate(device.TriggerMount)
//	if c.MobileOrTablet() {
//	    // actionable link
//	} else {
//	    // scannable code
//	}
//
// # Error Handling
//
// The classification pipeline itself never returns an error: missing parser
// fields, unsupported environment queries, and malformed snapshots all
// degrade to non-matching signals, and the worst observable outcome is a
// misclassification. Sentinel errors (ErrInvalidRules, ErrInvalidConfig,
// ErrInvalidSnapshot) exist only at the configuration edges and compare
// with errors.Is.
package device
