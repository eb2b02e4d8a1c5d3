// Package policy decides which attribute keys may be set on rendered form
// elements through free-form field configuration. Keys that control element
// identity or state (id, name, type, value, ...) are denied, as are inline
// event handlers and the class attribute, which has its own channel.
package policy

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultDisallowedKeys lists the keys denied when no override is supplied.
var DefaultDisallowedKeys = []string{
	"id", "name", "type", "value",
	"checked", "selected", "multiple",
	"form", "list",
}

var eventHandlerKey = regexp.MustCompile(`^on[a-z]+$`)

// trimSet matches the characters stripped from both ends of keys and values:
// ASCII space, tab, newline, carriage return, NUL and vertical tab.
const trimSet = " \t\n\r\x00\x0B"

// Trim strips trimSet characters from both ends of s.
func Trim(s string) string {
	return strings.Trim(s, trimSet)
}

// ValidAttributeName reports whether name can be written as a single HTML
// attribute name: non-empty, with no whitespace, control characters, NUL,
// quotes, '<', '>', '/' or '='.
func ValidAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r < 0x20, r == 0x7F, r >= 0x80 && r <= 0x9F:
			return false
		case r == ' ', r == '"', r == '\'', r == '<', r == '>', r == '/', r == '=':
			return false
		case r == 0xFFFD:
			return false
		}
	}
	return true
}

// KeysFilter receives the candidate denylist and returns the effective one.
type KeysFilter func(keys []string) []string

// Option configures a Policy at construction time.
type Option func(*config)

type config struct {
	keys    []string
	extra   []string
	filters []KeysFilter
}

// WithDisallowedKeys replaces the default denylist.
func WithDisallowedKeys(keys ...string) Option {
	return func(cfg *config) {
		cfg.keys = append([]string(nil), keys...)
	}
}

// WithExtraDisallowedKeys extends the denylist without dropping the defaults.
func WithExtraDisallowedKeys(keys ...string) Option {
	return func(cfg *config) {
		cfg.extra = append(cfg.extra, keys...)
	}
}

// WithKeysFilter registers a hook that may rewrite the denylist. Filters run
// in registration order after replacements and extensions are applied.
func WithKeysFilter(filter KeysFilter) Option {
	return func(cfg *config) {
		if filter != nil {
			cfg.filters = append(cfg.filters, filter)
		}
	}
}

// Policy is immutable once built and safe to share across render passes.
type Policy struct {
	disallowed map[string]struct{}
}

// New builds a Policy from the defaults and the supplied options.
func New(options ...Option) *Policy {
	cfg := config{keys: append([]string(nil), DefaultDisallowedKeys...)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	keys := append(cfg.keys, cfg.extra...)
	for _, filter := range cfg.filters {
		keys = filter(append([]string(nil), keys...))
	}

	p := &Policy{disallowed: make(map[string]struct{}, len(keys))}
	for _, key := range keys {
		normalized := strings.ToLower(Trim(key))
		if normalized == "" {
			continue
		}
		p.disallowed[normalized] = struct{}{}
	}
	return p
}

// Default returns a Policy holding DefaultDisallowedKeys.
func Default() *Policy {
	return New()
}

// Allows reports whether key may be set through attribute lines. The check
// is case-insensitive and keys that are not valid attribute names are
// denied. A nil Policy falls back to the defaults.
func (p *Policy) Allows(key string) bool {
	lower := strings.ToLower(Trim(key))
	if !ValidAttributeName(lower) || lower == "class" {
		return false
	}
	if eventHandlerKey.MatchString(lower) {
		return false
	}
	if p == nil {
		p = defaultPolicy
	}
	_, denied := p.disallowed[lower]
	return !denied
}

// Keys returns the configured denylist, sorted. Implicit rules are not listed.
func (p *Policy) Keys() []string {
	if p == nil {
		p = defaultPolicy
	}
	out := make([]string, 0, len(p.disallowed))
	for key := range p.disallowed {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

var defaultPolicy = New()
