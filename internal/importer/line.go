// Package importer provides the shared machinery for fixed-width catalog
// importers: length-guarded field extraction and the tolerant numeric
// conversions that let a multi-thousand-line import degrade gracefully on
// malformed fields instead of aborting.
package importer

import "strings"

// Line is one raw text line from a fixed-column catalog file. Field offsets
// are byte positions; catalog layouts predate Unicode and are pure ASCII.
type Line string

// Field returns the whitespace-trimmed substring at [start, end). A line is
// never assumed to reach its layout's nominal length: ranges lying wholly or
// partly beyond the end of the line are clipped, and a range beyond the line
// yields "". Optional trailing fields therefore read as empty on short
// lines rather than failing.
func (l Line) Field(start, end int) string {
	if start >= len(l) {
		return ""
	}
	if end > len(l) {
		end = len(l)
	}
	return strings.TrimSpace(string(l[start:end]))
}

// Rest returns the trimmed remainder of the line from start onward.
func (l Line) Rest(start int) string {
	return l.Field(start, len(l))
}
