package handler

import (
	"regexp"
	"strings"
)

var (
	scriptTagPattern = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	htmlTagPattern   = regexp.MustCompile(`<[^>]*>`)
	jsProtoPattern   = regexp.MustCompile(`(?i)javascript:`)
	eventAttrPattern = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// stripHTML removes script blocks, markup, and inline handler fragments from
// free-text input before it is stored.
func stripHTML(s string) string {
	s = scriptTagPattern.ReplaceAllString(s, "")
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = jsProtoPattern.ReplaceAllString(s, "")
	s = eventAttrPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// capitalize uppercases the first character and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
