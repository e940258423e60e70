// Package profile implements the stanza-aware store behind hostbook: it
// reads a conventional SSH-style configuration file as an ordered line
// sequence, interprets it as a list of named Host blocks, and mutates or
// queries those blocks while round-tripping everything else verbatim.
package profile

import "strings"

// keyword introduces a block. Matching is case-insensitive.
const keyword = "Host"

// Stanza is one parsed block: its alias and the attribute view built from
// the block's Key Value lines. Attrs keys are lowercased; for duplicate keys
// within one block the last write wins.
type Stanza struct {
	Alias string
	Attrs map[string]string
}

// ParseLines interprets raw lines as an ordered stanza list. Blank lines and
// comment lines are skipped and never open or close a block. Lines that
// cannot be split into a key and a value, or that appear before any block
// has started, are dropped from the parsed view; removal operates on raw
// lines, so nothing is lost from the file itself.
func ParseLines(lines []string) []Stanza {
	var (
		out     []Stanza
		alias   string
		attrs   map[string]string
		started bool
	)
	flush := func() {
		if started {
			out = append(out, Stanza{Alias: alias, Attrs: attrs})
		}
	}
	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if a, ok := blockStart(trimmed); ok {
			flush()
			alias = a
			attrs = map[string]string{}
			started = true
			continue
		}
		if !started {
			continue
		}
		key, value, ok := splitAttr(trimmed)
		if !ok {
			continue
		}
		attrs[strings.ToLower(key)] = value
	}
	flush()
	return out
}

// blockStart reports whether the trimmed line opens a block, returning the
// alias: the remainder of the line after the first whitespace run.
func blockStart(trimmed string) (string, bool) {
	i := strings.IndexAny(trimmed, " \t")
	if i <= 0 {
		return "", false
	}
	if !strings.EqualFold(trimmed[:i], keyword) {
		return "", false
	}
	return strings.TrimSpace(trimmed[i:]), true
}

// splitAttr splits a trimmed attribute line on the first whitespace run.
// Lines with no whitespace or no value are malformed and rejected.
func splitAttr(trimmed string) (key, value string, ok bool) {
	i := strings.IndexAny(trimmed, " \t")
	if i <= 0 {
		return "", "", false
	}
	key = trimmed[:i]
	value = strings.TrimSpace(trimmed[i+1:])
	return key, value, value != ""
}

// matchesBlockStart reports whether the raw line opens the block named by
// alias exactly. The boundary test is a literal token comparison (alias
// followed by end of line or more whitespace), so removing "my" never
// touches a block named "myhost" and aliases with pattern metacharacters
// are compared verbatim.
func matchesBlockStart(raw, alias string) bool {
	rest, ok := blockStart(strings.TrimSpace(raw))
	if !ok {
		return false
	}
	if rest == alias {
		return true
	}
	if !strings.HasPrefix(rest, alias) {
		return false
	}
	c := rest[len(alias)]
	return c == ' ' || c == '\t'
}
