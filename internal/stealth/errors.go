package stealth

import "errors"

// Load-time fatal errors. A level that trips either of these refuses to
// enter play state; there is no partial initialization.
var (
	// ErrInvalidLevelFormat reports malformed level text: ragged rows,
	// unknown runes, or an empty grid.
	ErrInvalidLevelFormat = errors.New("stealth: invalid level format")

	// ErrMissingMarker reports a level without a start or goal marker.
	ErrMissingMarker = errors.New("stealth: missing start or goal marker")
)
