package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adeilh/go-rakh-status/status"
)

// Validator runs before route handlers; return an error to stop the pipeline.
type Validator func(Context) error

type Server struct {
	app      *App
	address  string
	srv      *http.Server
	shutdown time.Duration
}

type RouteRegistrar func(*App)

type StartOption func(*Server)

func WithShutdownTimeout(d time.Duration) StartOption {
	return func(s *Server) {
		if d > 0 {
			s.shutdown = d
		}
	}
}

func NewServer(opts ...ServerOption) *Server {
	cfg := defaultServerOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	a := New()
	e := a.e
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = cfg.ErrorHandler
	if cfg.Logger != nil {
		e.Logger = cfg.Logger
	}
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	for _, mw := range cfg.Middlewares {
		e.Use(mw)
	}
	if cfg.CORS != nil {
		e.Use(CORSMiddleware(cfg.CORS))
	}
	if len(cfg.Validators) > 0 {
		e.Use(validatorMiddleware(cfg.Validators...))
	}

	return &Server{
		app:      a,
		address:  cfg.Address,
		shutdown: 5 * time.Second,
	}
}

func (s *Server) RegisterRoutes(reg RouteRegistrar) {
	if reg != nil {
		reg(s.app)
	}
}

func (s *Server) Handler() http.Handler {
	return s.app.e
}

// Address returns the listen address the server was configured with.
func (s *Server) Address() string { return s.address }

func (s *Server) Start(ctx context.Context, opts ...StartOption) error {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	e := s.app.e
	s.srv = &http.Server{
		Addr:         s.address,
		Handler:      e,
		ReadTimeout:  e.Server.ReadTimeout,
		WriteTimeout: e.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	e.Logger.Infof("httpx: listening on %s", s.address)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			e.Logger.Warnf("httpx: shutdown: %v", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// ErrorBody is the JSON shape written by the default error handler.
type ErrorBody struct {
	Error  string `json:"error"`
	Code   int    `json:"code"`
	Status string `json:"status,omitempty"`
	Class  string `json:"class,omitempty"`
}

func newErrorBody(code int, msg string) ErrorBody {
	body := ErrorBody{Error: msg, Code: code}
	if s, ok := status.Lookup(code); ok {
		body.Status = s.Name()
		body.Class = s.Class().Name
	} else if c, ok := status.ClassOf(code); ok {
		body.Class = c.Name
	}
	if body.Error == "" {
		body.Error = body.Status
	}
	return body
}

func defaultHTTPErrorHandler(err error, c echo.Context) {
	code := StatusInternalError
	msg := StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case nil:
			msg = StatusText(code)
		case string:
			msg = m
		case error:
			msg = m.Error()
		default:
			msg = fmt.Sprint(m)
		}
	}
	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, newErrorBody(code, msg))
}

func validatorMiddleware(v ...Validator) MiddlewareFunc {
	copied := append([]Validator(nil), v...)
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			for _, validator := range copied {
				if validator == nil {
					continue
				}
				if err := validator(c); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}
