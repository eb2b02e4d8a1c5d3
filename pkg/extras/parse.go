package extras

import (
	"strings"

	"github.com/goliatone/go-formextras/pkg/policy"
)

// Attr is an accepted attribute line.
type Attr struct {
	Key   string
	Value string
}

var lineSplitter = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitClasses splits raw on runs of ASCII whitespace (space, tab, newline,
// vertical tab, form feed, carriage return). Other Unicode spaces stay inside
// tokens. The result never holds empty tokens and is nil when raw is blank.
func SplitClasses(raw string) []string {
	tokens := strings.FieldsFunc(raw, isClassSeparator)
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

func isClassSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ParseAttrLines returns the key|value lines of raw that p accepts, in input
// order. Keys keep their original case; values may themselves contain "|".
func ParseAttrLines(raw string, p *policy.Policy) []Attr {
	if raw == "" {
		return nil
	}

	var out []Attr
	for _, line := range strings.Split(lineSplitter.Replace(raw), "\n") {
		key, value, found := strings.Cut(line, "|")
		if !found {
			continue
		}
		key = policy.Trim(key)
		if key == "" || !p.Allows(key) {
			continue
		}
		out = append(out, Attr{Key: key, Value: policy.Trim(value)})
	}
	return out
}
