package routetable

import (
	"maps"
	"regexp"

	"github.com/dmitrymomot/wayfarer/core/router"
)

// Response is what a compiled route produces for a dispatched path.
type Response struct {
	Status  int               `json:"status"`
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
	Route   string            `json:"route"`
	Params  router.Params     `json:"params"`
}

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// responder is the handler registered for every table route.
type responder struct {
	route   string
	status  int
	body    string
	headers map[string]string
}

// Handle renders the body with the captured params. Unknown placeholders
// render as empty strings.
func (rs responder) Handle(params router.Params, _ ...any) Response {
	body := placeholder.ReplaceAllStringFunc(rs.body, func(m string) string {
		return params.Get(placeholder.FindStringSubmatch(m)[1])
	})

	return Response{
		Status:  rs.status,
		Body:    body,
		Headers: maps.Clone(rs.headers),
		Route:   rs.route,
		Params:  params,
	}
}

// Build compiles the table into a router. opts are applied to the root
// router and to every nested router; the table's Default is applied to the
// root only.
func (t *Table) Build(opts ...router.Option[Response]) (*router.Router[Response], error) {
	t.applyDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}

	rootOpts := opts
	if t.Default != "" {
		rootOpts = append(append([]router.Option[Response]{}, opts...), router.WithDefault[Response](t.Default))
	}

	r := t.compile(rootOpts)

	// Report full patterns for mounted routes.
	err := r.Walk(func(pattern string, h router.Handler[Response]) router.Handler[Response] {
		if rs, ok := h.(responder); ok {
			rs.route = pattern
			return rs
		}
		return h
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (t *Table) compile(opts []router.Option[Response]) *router.Router[Response] {
	r := router.New(opts...)

	for _, rt := range t.Routes {
		r.Handle(rt.Pattern, responder{
			route:   rt.Pattern,
			status:  rt.Status,
			body:    rt.Body,
			headers: rt.Headers,
		})
	}

	for _, m := range t.Mounts {
		r.Mount(m.At, m.Table.compile(opts))
	}

	return r
}
