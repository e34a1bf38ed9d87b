package trie

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// WildcardKey is the capture name for remainder-of-path matches.
const WildcardKey = "wildcard"

// Result is a matched node together with the captures collected on the way.
type Result[H any] struct {
	Handler    H
	HasHandler bool
	Route      string
	Params     map[string]string
}

// Match finds the node for path. Literal children win over the named param
// edge, which wins over the wildcard edge. A node is returned once the path
// is exhausted even if it carries no handler; check Result.HasHandler.
func (t *Trie[H]) Match(path string) (Result[H], bool) {
	segs := split(path)
	params := make(map[string]string)

	n := search(t.root, segs, 0, params)
	if n == nil {
		return Result[H]{}, false
	}

	return Result[H]{
		Handler:    n.handler,
		HasHandler: n.hasHandler,
		Route:      n.route,
		Params:     params,
	}, true
}

// search walks segs from index i. Captures set on a failed branch are
// rolled back before the next alternative is tried.
func search[H any](n *Node[H], segs []string, i int, params map[string]string) *Node[H] {
	if i == len(segs) {
		return n
	}
	seg := segs[i]

	if child, ok := n.children[seg]; ok {
		if found := search(child, segs, i+1, params); found != nil {
			return found
		}
	}

	if n.param == nil {
		return nil
	}

	if n.paramName != "" {
		if value, ok := decode(seg); ok {
			prev, had := params[n.paramName]
			params[n.paramName] = value

			if found := search(n.param, segs, i+1, params); found != nil {
				return found
			}

			if had {
				params[n.paramName] = prev
			} else {
				delete(params, n.paramName)
			}
		}
	}

	if n.wildcard {
		// no descent past a wildcard
		if value, ok := decode(strings.Join(segs[i:], "/")); ok {
			params[WildcardKey] = value
			return n.param
		}
	}

	return nil
}

// decode percent-decodes a URI component. Malformed escapes and
// sequences that do not decode to valid UTF-8 are rejected.
func decode(s string) (string, bool) {
	if strings.IndexByte(s, '%') < 0 {
		return s, true
	}
	value, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(value) {
		return "", false
	}
	return value, true
}
