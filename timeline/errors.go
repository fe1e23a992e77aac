package timeline

import (
	"errors"
	"fmt"
)

// Sentinel errors for timeline package.
var (
	// ErrNoTracks is returned when a clip file has no tracks.
	ErrNoTracks = errors.New("timeline: clip has no tracks")

	// ErrNoKeys is returned when a track has no keys.
	ErrNoKeys = errors.New("timeline: track has no keys")

	// ErrDuplicateTrack is returned when two tracks animate the same binding.
	ErrDuplicateTrack = errors.New("timeline: duplicate track")
)

// TrackError reports an invalid track in a clip file.
type TrackError struct {
	Index  int
	Reason string
	Err    error
}

func (e *TrackError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("timeline: track %d: %s: %v", e.Index, e.Reason, e.Err)
	}
	return fmt.Sprintf("timeline: track %d: %s", e.Index, e.Reason)
}

func (e *TrackError) Unwrap() error {
	return e.Err
}
