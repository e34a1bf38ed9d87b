package trie

import "strings"

// Node is one segment position in the trie.
type Node[H any] struct {
	// literal children keyed by the exact segment text
	children map[string]*Node[H]

	// param is the shared edge for ':name' and '*name' segments
	param *Node[H]

	// paramName is the capture name bound to the param edge
	paramName string

	// wildcard marks the param edge as remainder-of-path capture
	wildcard bool

	// paramSigil is ':' or '*', as written by the last registration that
	// named the param edge
	paramSigil byte

	handler    H
	hasHandler bool

	// route is the pattern the handler was registered under
	route string
}

func newNode[H any]() *Node[H] {
	return &Node[H]{children: make(map[string]*Node[H])}
}

// Set attaches a handler and the pattern it was registered under.
// A later call replaces the previous handler.
func (n *Node[H]) Set(handler H, route string) {
	n.handler = handler
	n.hasHandler = true
	n.route = route
}

// Handler returns the handler attached to the node, if any.
func (n *Node[H]) Handler() (H, bool) {
	return n.handler, n.hasHandler
}

// Route returns the pattern recorded with the handler.
func (n *Node[H]) Route() string {
	return n.route
}

func (n *Node[H]) clone() *Node[H] {
	c := &Node[H]{
		children:   make(map[string]*Node[H], len(n.children)),
		paramName:  n.paramName,
		paramSigil: n.paramSigil,
		wildcard:   n.wildcard,
		handler:    n.handler,
		hasHandler: n.hasHandler,
		route:      n.route,
	}
	for key, child := range n.children {
		c.children[key] = child.clone()
	}
	if n.param != nil {
		c.param = n.param.clone()
	}
	return c
}

// promote copies every attribute of src except its children onto n,
// then merges src's children (param edge included) into n.
func (n *Node[H]) promote(src *Node[H]) {
	if src.hasHandler {
		n.handler = src.handler
		n.hasHandler = true
	}
	if src.route != "" {
		n.route = src.route
	}
	if src.paramSigil != 0 {
		n.paramName = src.paramName
		n.paramSigil = src.paramSigil
	}
	if src.wildcard {
		n.wildcard = true
	}
	for key, child := range src.children {
		n.children[key] = child
	}
	if src.param != nil {
		n.param = src.param
	}
}

// Trie is a prefix tree over '/'-delimited path segments.
//
// A Trie is not safe for concurrent mutation. Build it first, then match
// from any number of goroutines.
type Trie[H any] struct {
	root *Node[H]
}

// New creates an empty trie.
func New[H any]() *Trie[H] {
	return &Trie[H]{root: newNode[H]()}
}

// Insert resolves the node for pattern, creating intermediate nodes as needed.
// Segments starting with ':' bind a named capture, segments starting with '*'
// bind a remainder-of-path capture. The caller attaches the handler with Set.
func (t *Trie[H]) Insert(pattern string) *Node[H] {
	n := t.root
	for _, seg := range split(pattern) {
		if isParam(seg) {
			if n.param == nil {
				n.param = newNode[H]()
			}
			// the wildcard flag lives on the node owning the param edge
			if seg[0] == '*' {
				n.wildcard = true
			}
			n.paramName = seg[1:]
			n.paramSigil = seg[0]
			n = n.param
			continue
		}

		child, ok := n.children[seg]
		if !ok {
			child = newNode[H]()
			n.children[seg] = child
		}
		n = child
	}
	return n
}

// Mount splices a snapshot of sub into the node at pattern.
// Later changes to sub are not reflected in t.
func (t *Trie[H]) Mount(pattern string, sub *Trie[H]) {
	n := t.Insert(pattern)
	src := sub.Clone().root

	for key, child := range src.children {
		n.children[key] = child
	}
	if src.param != nil {
		n.param = src.param
	}
	if src.paramSigil != 0 {
		n.paramName = src.paramName
		n.paramSigil = src.paramSigil
	}
	if src.wildcard {
		n.wildcard = true
	}

	// The sub trie's own "/" lives on an empty-segment child. Once mounted it
	// can no longer be reached that way, so its attributes move up.
	if empty, ok := n.children[""]; ok {
		delete(n.children, "")
		n.promote(empty)
	}
}

// Clone returns a deep copy of the trie.
func (t *Trie[H]) Clone() *Trie[H] {
	return &Trie[H]{root: t.root.clone()}
}

// split strips a single leading slash and splits on '/'.
func split(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

func isParam(seg string) bool {
	return len(seg) > 0 && (seg[0] == ':' || seg[0] == '*')
}
