package router

// chain builds a single handler from a middleware stack and endpoint.
func chain[R any](middlewares []Middleware[R], endpoint Handler[R]) Handler[R] {
	h := endpoint

	// Wrap in reverse order so the first middleware runs first
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return h
}
