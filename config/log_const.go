package config

// Color constants for component log prefixes
const (
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorPurple  = "\033[95m"
	ColorReset   = "\033[0m"
)
