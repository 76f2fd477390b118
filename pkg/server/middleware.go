package server

// Middleware wraps request handling. Implementations call next to
// continue the chain, or return without calling it to short-circuit.
type Middleware interface {
	Handle(ctx Ctx, next func() error) error
}

// MiddlewareFunc adapts a function to the Middleware interface.
type MiddlewareFunc func(ctx Ctx, next func() error) error

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(ctx Ctx, next func() error) error {
	return f(ctx, next)
}

// RunMiddleware executes a middleware chain and then calls final.
//
// Middleware can short-circuit by returning nil without calling next.
// In that case ranFinal will be false and err will be nil.
func RunMiddleware(ctx Ctx, middleware []Middleware, final func() error) (ranFinal bool, err error) {
	if final == nil {
		return false, nil
	}

	ran := false
	wrappedFinal := func() error {
		ran = true
		return final()
	}

	if len(middleware) == 0 {
		return true, wrappedFinal()
	}

	index := 0
	var next func() error
	next = func() error {
		if index >= len(middleware) {
			return wrappedFinal()
		}

		mw := middleware[index]
		index++
		if mw == nil {
			return next()
		}

		return mw.Handle(ctx, next)
	}

	err = next()
	return ran, err
}
