package httpx

import "github.com/adeilh/go-rakh-status/status"

// ClassHeaderMiddleware stamps every response with the name of the status
// class its code belongs to. Codes outside the built-in classes get no header.
func ClassHeaderMiddleware() MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			res := c.Response()
			res.Before(func() {
				if cls, ok := status.ClassOf(res.Status); ok {
					res.Header().Set(HeaderStatusClass, cls.Name)
				}
			})
			return next(c)
		}
	}
}
