// Package trie implements a prefix tree over '/'-delimited path segments.
//
// Patterns are split on '/' after stripping a single leading slash. Each
// segment is either a literal, a named capture (":name") or a remainder
// capture ("*name"). Named and remainder captures at the same position share
// one structural edge; the most recently registered name wins.
//
//	t := trie.New[string]()
//	t.Insert("/users/:id").Set("user", "/users/:id")
//	t.Insert("/files/*").Set("files", "/files/*")
//
//	res, ok := t.Match("/users/42")
//	// ok == true, res.Handler == "user", res.Params["id"] == "42"
//
//	res, _ = t.Match("/files/a/b%20c")
//	// res.Params["wildcard"] == "a/b c"
//
// Matching prefers literal children, then the named edge, then the wildcard
// edge, and backtracks when a branch fails. Captures are percent-decoded; a
// segment that fails to decode is treated as a dead end for that branch.
//
// Mount splices a snapshot of another trie under a pattern. If the mounted
// trie registered its own "/" that handler is promoted onto the mount point.
//
// The trie carries no locks: build first, then match concurrently.
package trie
