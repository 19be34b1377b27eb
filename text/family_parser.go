// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
	"strings"
)

// parser extracts font family names from comma separated lists in the manner
// of the CSS font-family property. Names may be bare or quoted with single or
// double quotes, and quoted names may contain quotes and backslashes escaped
// by a backslash.
type parser struct {
	faces []string
}

// parse returns the family names within families in priority order. The
// returned slice is reused by subsequent calls to parse.
func (p *parser) parse(families string) ([]string, error) {
	p.faces = p.faces[:0]
	rest := families
	for {
		rest = strings.TrimLeft(rest, " \t")
		if len(rest) == 0 {
			return nil, fmt.Errorf("missing font family in list %q", families)
		}
		var (
			face string
			err  error
		)
		if c := rest[0]; c == '\'' || c == '"' {
			face, rest, err = parseQuotedFamily(rest)
		} else {
			face, rest, err = parseBareFamily(rest)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing families %q: %w", families, err)
		}
		if face == "" {
			return nil, fmt.Errorf("empty font family in list %q", families)
		}
		p.faces = append(p.faces, face)
		rest = strings.TrimLeft(rest, " \t")
		if len(rest) == 0 {
			return p.faces, nil
		}
		if rest[0] != ',' {
			return nil, fmt.Errorf("unexpected character %q after family %q", rest[0], face)
		}
		rest = rest[1:]
	}
}

// parseBareFamily reads an unquoted family name extending to the next comma
// or the end of the input. Quotes and backslashes within the name are
// literal, and trailing whitespace is discarded.
func parseBareFamily(s string) (face, rest string, err error) {
	if end := strings.IndexByte(s, ','); end != -1 {
		face, rest = s[:end], s[end:]
	} else {
		face = s
	}
	return strings.TrimRight(face, " \t"), rest, nil
}

// parseQuotedFamily reads a family name surrounded by matching single or
// double quotes. A backslash escapes the following character.
func parseQuotedFamily(s string) (face, rest string, err error) {
	quote := s[0]
	var b strings.Builder
	escaped := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			b.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == quote:
			return b.String(), s[i+1:], nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("unterminated %q-quoted family", rune(quote))
}
