package config

import "time"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Display defaults
const (
	DefaultPadding = 12
	DefaultColor   = ColorAuto
)

// Demo defaults
const (
	DefaultDemoDelay  = 10 * time.Millisecond
	DefaultDemoFailAt = 975
)
