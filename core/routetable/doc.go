// Package routetable compiles declarative YAML route tables into routers
// that produce canned responses.
//
// A table lists routes, optional nested tables mounted under a pattern and
// an optional default pattern:
//
//	default: /404
//	routes:
//	  - pattern: /users/:id
//	    body: "user {{id}}"
//	  - pattern: /404
//	    status: 404
//	    body: not found
//	mounts:
//	  - at: /api
//	    table:
//	      routes:
//	        - pattern: /
//	          body: api index
//
// Load reads and validates a file, Build turns the table into a
// *router.Router[Response]:
//
//	t, err := routetable.Load("routes.yaml")
//	if err != nil {
//		return err
//	}
//	r, err := t.Build(router.WithLogger[routetable.Response](log))
//	if err != nil {
//		return err
//	}
//	resp, err := r.Dispatch("/users/42") // resp.Body == "user 42"
//
// A route without a status answers 200. Body placeholders of the form
// {{name}} are replaced by the captured param of that name, and the
// wildcard capture is available as {{wildcard}}.
package routetable
