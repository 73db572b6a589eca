/*
PURPOSE:
  Parses a flat "key = value" counter dump into a model.Record.

REQUIREMENTS:
  User-specified:
  - One pair per line, whitespace around '=' insignificant.
  - '#' comment lines and blank lines are ignored.
  - Integer values are stored as integers, anything else verbatim.

  Implementation-discovered:
  - Lenient: lines without '=' are skipped, never reported as errors.
  - Values containing '=' keep everything after the first separator.
  - Dumps come from tools that end lines with \r, \r\n, form feeds or
    Unicode separators. All of them break lines.
  - Counters may use '_' digit grouping (10_000).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Produces: internal/model.Record

ERROR HANDLING:
  - None. Malformed input degrades to a partial record.

IMPLEMENTATION RULES:
  - Later occurrences of a key overwrite earlier ones.

USAGE:
  rec := parser.ParseKV(text)

RELATED FILES:
  - internal/model/types.go
*/

package parser

import (
	"strconv"
	"strings"

	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/model"
)

// ParseKV parses dump text into a record.
func ParseKV(text string) model.Record {
	rec, _ := parse(text)
	return rec
}

// ParseKVStats is ParseKV that also reports how many non-blank,
// non-comment lines were dropped for lacking a separator.
func ParseKVStats(text string) (model.Record, int) {
	return parse(text)
}

func parse(text string) (model.Record, int) {
	rec := make(model.Record)
	skipped := 0

	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, found := strings.Cut(line, "=")
		if !found {
			skipped++
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		rec[key] = parseValue(val)
	}

	return rec, skipped
}

// isLineBreak reports whether r ends a line: \n, \r, \v, \f, the file,
// group and record separators, NEL, and the Unicode line and paragraph
// separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

func parseValue(val string) model.Value {
	digits, ok := stripDigitGroups(val)
	if !ok {
		return model.StringValue(val)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Leave non-integer as raw string
		return model.StringValue(val)
	}
	return model.IntValue(n)
}

// stripDigitGroups removes '_' separators from a decimal literal. Each '_'
// must sit between two ASCII digits; otherwise ok is false.
func stripDigitGroups(val string) (string, bool) {
	if !strings.Contains(val, "_") {
		return val, true
	}

	var b strings.Builder
	for i := 0; i < len(val); i++ {
		c := val[i]
		if c != '_' {
			b.WriteByte(c)
			continue
		}
		if i == 0 || i == len(val)-1 || !isDigit(val[i-1]) || !isDigit(val[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
