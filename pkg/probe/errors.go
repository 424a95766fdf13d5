package probe

import "errors"

var (
	// ErrConnect is returned when the DevTools endpoint cannot be attached.
	ErrConnect = errors.New("failed to connect to devtools endpoint")

	// ErrWatch is returned when the resize event stream cannot be opened.
	ErrWatch = errors.New("failed to watch resize events")
)
