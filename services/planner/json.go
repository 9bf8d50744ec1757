// File: services/planner/json.go
package planner

import "strings"

// extractJSON strips markdown code fences and any surrounding chatter from a
// model response, leaving the outermost JSON value. Providers occasionally
// wrap JSON output even when asked not to.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	objStart := strings.IndexAny(s, "{[")
	if objStart < 0 {
		return s
	}
	var objEnd int
	if s[objStart] == '{' {
		objEnd = strings.LastIndex(s, "}")
	} else {
		objEnd = strings.LastIndex(s, "]")
	}
	if objEnd < objStart {
		return s
	}
	return s[objStart : objEnd+1]
}
