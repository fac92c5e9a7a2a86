package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Suggestion string
}

var registry = map[string]Template{
	// Configuration (E100-E199)

	"E101": {
		Category:   CategoryConfig,
		Message:    "Cannot read config file",
		Suggestion: "Check the path passed to --config and the file permissions.",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Invalid config file",
		Suggestion: "cineverse.json must be valid JSON and cineverse.yaml valid YAML.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
	},
	"E104": {
		Category:   CategoryConfig,
		Message:    "Config variable expansion failed",
		Suggestion: "Use ${VAR} or ${VAR:-default} for environment references.",
	},

	// Live protocol (E200-E299)

	"E201": {
		Category: CategoryProtocol,
		Message:  "Malformed live message",
	},
	"E202": {
		Category: CategoryProtocol,
		Message:  "Unknown live message type",
	},
	"E203": {
		Category:   CategoryProtocol,
		Message:    "Unknown hydration id",
		Suggestion: "The page may be stale; reload to resynchronise.",
	},
	"E204": {
		Category: CategoryProtocol,
		Message:  "Invalid watchlist id",
	},

	// Runtime (E300-E399)

	"E301": {
		Category: CategoryRuntime,
		Message:  "Event handler panicked",
	},
	"E302": {
		Category: CategoryRuntime,
		Message:  "Render failed",
	},
	"E303": {
		Category: CategoryRuntime,
		Message:  "Watchlist store unavailable",
	},
	"E304": {
		Category: CategoryRuntime,
		Message:  "Server failed",
	},
}

// Codes returns every registered code in ascending order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the template of code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
