package catalog

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrUnterminatedQuote is returned when a quoted section is never closed.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Placeholders returns the sorted, distinct argument indices referenced by
// template. A doubled single quote is a literal quote, a lone single quote
// starts or ends quoted text, and {n} or {n,...} outside quotes is a
// placeholder. Braces holding anything else are plain text.
//
// The indices found so far are returned along with ErrUnterminatedQuote
// when the template ends inside quoted text.
func Placeholders(template string) ([]int, error) {
	seen := make(map[int]struct{})
	quoted := false

	for i := 0; i < len(template); i++ {
		switch c := template[i]; {
		case c == '\'':
			if i+1 < len(template) && template[i+1] == '\'' {
				i++
				continue
			}
			quoted = !quoted
		case quoted:
		case c == '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				i = len(template)
				continue
			}
			body, _, _ := strings.Cut(template[i+1:i+end], ",")
			if n, ok := argIndex(strings.TrimSpace(body)); ok {
				seen[n] = struct{}{}
			}
			i += end
		}
	}

	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)

	if quoted {
		return out, ErrUnterminatedQuote
	}
	return out, nil
}

// takesArguments reports whether template contains {n} or {n,...} anywhere,
// ignoring quotes. A stray quote can hide every placeholder from
// Placeholders, so this decides whether the quoting rules apply at all.
func takesArguments(template string) bool {
	for rest := template; ; {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return false
		}
		rest = rest[start+1:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return false
		}
		body, _, _ := strings.Cut(rest[:end], ",")
		if _, ok := argIndex(strings.TrimSpace(body)); ok {
			return true
		}
	}
}

func argIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
