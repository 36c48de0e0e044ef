package importer

import (
	"math"
	"strconv"
	"strings"
)

// Float converts a free-text catalog field to a float64, reading the
// longest leading numeric prefix and ignoring trailing junk. Malformed or
// empty fields convert to zero, never an error: bad catalog data degrades
// to zero at field granularity.
func Float(s string) float64 {
	s = strings.TrimSpace(s)

	end := 0
	seenDigit := false
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '+' || c == '-':
			if end != 0 {
				goto done
			}
		case c == '.':
			if strings.ContainsRune(s[:end], '.') {
				goto done
			}
		default:
			goto done
		}
		end++
	}

done:
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// Int converts a free-text catalog field to an int, with the same
// degrade-to-zero contract as Float.
func Int(s string) int {
	return int(Float(s))
}

// Degrees converts an angle written as "degrees [minutes [seconds]]" to
// decimal degrees. Missing minute and second groups default to zero, and a
// leading '-' applies to the whole combined value no matter which group
// carries digits after it: "-0 31 30" is -0.525 degrees.
func Degrees(s string) float64 {
	s = strings.TrimSpace(s)

	var parts [3]float64
	for i, f := range strings.Fields(s) {
		if i >= len(parts) {
			break
		}
		parts[i] = Float(f)
	}

	deg := math.Abs(parts[0]) + parts[1]/60.0 + parts[2]/3600.0
	if strings.HasPrefix(s, "-") {
		return -deg
	}
	return deg
}
