// Package probe implements a live device.Source over the Chrome DevTools
// Protocol, for exercising the classification pipeline against a real
// browser page.
//
// A Probe attaches to a DevTools endpoint, evaluates a small JavaScript
// expression in the inspected page on every query (no caching – each
// evaluation sees current state), and surfaces frame-resize events as
// classifier triggers.
//
// # Usage
//
//	p, err := probe.Connect(ctx, "http://127.0.0.1:9222")
//	if err != nil {
//	    // handle ErrConnect
//	}
//	defer p.Close()
//
//	sess := device.NewSession(p)
//	defer sess.Close()
//
//	triggers, err := p.WatchResize(ctx)
//	if err != nil {
//	    // handle ErrWatch
//	}
//	go sess.Watch(ctx, triggers)
//
// # Error Handling
//
// Connection and stream setup return sentinel errors (ErrConnect, ErrWatch)
// comparable with errors.Is. Once connected, signal reads never fail:
// transport problems degrade to zero-valued signals with a Warn log entry,
// preserving the pipeline's never-fail contract.
package probe
