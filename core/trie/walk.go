package trie

import "sort"

// Walk visits every node carrying a handler and calls fn with the full
// pattern leading to it. Literal children are visited in key order before
// the param edge, mirroring match precedence. A non-nil error from fn stops
// the walk and is returned.
func (t *Trie[H]) Walk(fn func(pattern string, handler H) error) error {
	return t.root.visit("", func(pattern string, n *Node[H]) error {
		return fn(pattern, n.handler)
	})
}

// Rewrite replaces every handler in place with the value returned by fn.
// Patterns and order are the same as Walk.
func (t *Trie[H]) Rewrite(fn func(pattern string, handler H) H) {
	_ = t.root.visit("", func(pattern string, n *Node[H]) error {
		n.handler = fn(pattern, n.handler)
		return nil
	})
}

func (n *Node[H]) visit(prefix string, fn func(pattern string, n *Node[H]) error) error {
	if n.hasHandler {
		pattern := prefix
		if pattern == "" {
			pattern = "/"
		}
		if err := fn(pattern, n); err != nil {
			return err
		}
	}

	for _, key := range n.keys() {
		if err := n.children[key].visit(prefix+"/"+key, fn); err != nil {
			return err
		}
	}

	if n.param != nil {
		return n.param.visit(prefix+"/"+n.paramSegment(), fn)
	}
	return nil
}

// keys returns literal child keys in sorted order.
func (n *Node[H]) keys() []string {
	keys := make([]string, 0, len(n.children))
	for key := range n.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// paramSegment renders the param edge the way it was last registered.
func (n *Node[H]) paramSegment() string {
	if n.paramSigil == '*' {
		return "*" + n.paramName
	}
	return ":" + n.paramName
}
