package router

// Config holds the routing thresholds. The values are empirically
// tuned; they are configuration rather than inline literals so callers
// can tighten or loosen capture behavior without forking the router.
type Config struct {
	// TopK is how many matcher results to consider per turn.
	TopK int

	// CaptureThreshold is the minimum top-match score for a turn to
	// write anything into the priority tracker.
	CaptureThreshold float64

	// HighThreshold is the score above which a captured field is
	// tracked as high importance instead of medium.
	HighThreshold float64

	// CaptureLimit is how many qualifying matches are tracked per turn.
	CaptureLimit int

	// MaxTurnsPerNode is the loop failsafe: once a node has consumed
	// this many turns the router forces advancement regardless of what
	// the classifier suggests. Liveness guarantee, not an error path.
	MaxTurnsPerNode int
}

// DefaultConfig returns the standard routing thresholds.
func DefaultConfig() Config {
	return Config{
		TopK:             5,
		CaptureThreshold: 3.0,
		HighThreshold:    6.0,
		CaptureLimit:     3,
		MaxTurnsPerNode:  5,
	}
}
