package hfont

import (
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/hershey/core"
)

// Character maps assign glyph IDs to consecutive ASCII codes, starting at
// the first printable character.
const firstASCII = 32 // ' '

// LoadCharMap reads and parses a Hershey mapping file. Failure to read the
// file is fatal; unreadable tokens within it are reported as diagnostics
// and skipped.
func LoadCharMap(path string) (*CharMap, []Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, core.WrapError(err, core.EMISSING, "cannot read mapping %s", path)
	}
	cm, diags := ParseCharMap(data)
	return cm, diags, nil
}

// ParseCharMap parses a whitespace-separated token list into a character
// map. Each token is either a single decimal glyph ID, consuming one ASCII
// slot, or an inclusive range "A-B", consuming one slot per ID from A to B.
// A token that is neither produces a Diagnostic and consumes no slot. An
// empty range (A > B) consumes no slot either. If slots collide, the later
// assignment wins.
func ParseCharMap(data []byte) (*CharMap, []Diagnostic) {
	cm := &CharMap{m: make(map[rune]int)}
	var diags []Diagnostic
	code := rune(firstASCII)
	for _, token := range strings.Fields(string(data)) {
		if from, to, ok := splitRange(token); ok {
			for id := from; id <= to; id++ {
				cm.m[code] = id
				code++
			}
			continue
		}
		id, err := strconv.Atoi(token)
		if err != nil {
			tracer().Infof("skipping invalid mapping token %q", token)
			diags = append(diags, Diagnostic{Message: "invalid mapping token " + strconv.Quote(token)})
			continue
		}
		cm.m[code] = id
		code++
	}
	tracer().Infof("character map holds %d characters", cm.Len())
	return cm, diags
}

// splitRange recognizes range tokens like "501-526". A leading '-' marks a
// negative number, not a range.
func splitRange(token string) (from, to int, ok bool) {
	if strings.HasPrefix(token, "-") {
		return 0, 0, false
	}
	lo, hi, found := strings.Cut(token, "-")
	if !found {
		return 0, 0, false
	}
	from, err := strconv.Atoi(lo)
	if err != nil {
		return 0, 0, false
	}
	to, err = strconv.Atoi(hi)
	if err != nil {
		return 0, 0, false
	}
	return from, to, true
}
