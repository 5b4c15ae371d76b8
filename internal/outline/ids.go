package outline

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	idNonAlnum   = regexp.MustCompile(`[^a-z0-9]`)
	anchorStrip  = regexp.MustCompile(`[^\w\s-]`)
	anchorSpaces = regexp.MustCompile(`\s+`)
	anchorDashes = regexp.MustCompile(`-+`)
)

// NodeID derives a deterministic identifier from a node's title, type and
// line: "{type}-{slug}" plus "-{line}" when the line is known. Duplicate ids
// across a document are possible and accepted.
func NodeID(title, kind string, line int) string {
	slug := idNonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	id := kind + "-" + slug
	if line > 0 {
		id += "-" + strconv.Itoa(line)
	}
	return id
}

// Anchor derives a navigation anchor from a title alone: lowercased, stripped
// of everything outside word characters, spaces and hyphens, with whitespace
// and hyphen runs collapsed to single hyphens.
func Anchor(title string) string {
	a := strings.ToLower(title)
	a = anchorStrip.ReplaceAllString(a, "")
	a = anchorSpaces.ReplaceAllString(a, "-")
	a = anchorDashes.ReplaceAllString(a, "-")
	return strings.Trim(a, "-")
}
