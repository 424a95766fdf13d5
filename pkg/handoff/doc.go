// Package handoff turns a device classification into a rendering decision:
// clients that can follow a URL directly (mobile, tablet) get an actionable
// link, clients that cannot (desktop) get a scannable QR code, and sessions
// still loading get a neutral placeholder.
//
// QR images are produced as base64 data-URI PNGs ready for embedding:
//
//	target, err := handoff.Resolve(sess.Current(), "https://example.com/continue")
//	if err != nil {
//	    // handle ErrEmptyURL / ErrQRCodeFailed
//	}
//
//	switch target.Kind {
//	case handoff.KindPending:
//	    // render placeholder
//	case handoff.KindLink:
//	    // render <a href="{{.URL}}">
//	case handoff.KindQRCode:
//	    // render <img src="{{.Image}}">
//	}
//
// Errors are declared as package-level variables comparable with errors.Is.
package handoff
