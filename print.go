package envspec

import (
	"fmt"
	"io"
	"strings"
)

// Print writes the environment to the output set with WithOutput, masking secrets.
func (e *Environment) Print() {
	PrintTo(e.output, e)
}

// PrintTo writes the environment to w with secret masking.
func PrintTo(w io.Writer, e *Environment) {
	rule := strings.Repeat("─", 50)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, rule)
	for _, name := range e.Keys() {
		fmt.Fprintf(w, "%-25s = %s\n", name, redact(name, e.values[name]))
	}
	fmt.Fprintln(w, rule)
}

// redact formats value for display. Values of secret-looking names keep at
// most three characters on each side.
func redact(name string, value any) string {
	s := fmt.Sprintf("%v", value)
	switch {
	case s == "" || !isSecret(name):
		return s
	case len(s) > 8:
		return s[:3] + "***" + s[len(s)-3:]
	default:
		return "***"
	}
}

var secretMarkers = []string{"SECRET", "PASSWORD", "TOKEN", "KEY"}

func isSecret(name string) bool {
	upper := strings.ToUpper(name)
	for _, m := range secretMarkers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}
