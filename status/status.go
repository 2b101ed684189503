package status

import (
	"fmt"
	"iter"
	"strconv"
)

// Status is a catalogued HTTP status code.
type Status int

// 1xx
const (
	Continue           Status = 100
	SwitchingProtocols Status = 101
	// Processing is deprecated; it was used by WebDAV.
	Processing Status = 102
	EarlyHints Status = 104
)

// 2xx
const (
	OK                          Status = 200
	Created                     Status = 201
	Accepted                    Status = 202
	NonAuthoritativeInformation Status = 203
	NoContent                   Status = 204
	ResetContent                Status = 205
	PartialContent              Status = 206
	MultiStatus                 Status = 207
	AlreadyReported             Status = 208
	IMUsed                      Status = 226
)

// 3xx
const (
	MultipleChoices  Status = 300
	MovedPermanently Status = 301
	Found            Status = 302
	SeeOther         Status = 303
	NotModified      Status = 304
	// UseProxy is deprecated.
	UseProxy Status = 305
	// Unused is reserved; it was only used by an early HTTP/1.1 draft.
	Unused            Status = 306
	TemporaryRedirect Status = 307
	PermanentRedirect Status = 308
)

// 4xx
const (
	BadRequest                  Status = 400
	Unauthorized                Status = 401
	PaymentRequired             Status = 402
	Forbidden                   Status = 403
	NotFound                    Status = 404
	MethodNotAllowed            Status = 405
	NotAcceptable               Status = 406
	ProxyAuthenticationRequired Status = 407
	RequestTimeout              Status = 408
	Conflict                    Status = 409
	Gone                        Status = 410
	LengthRequired              Status = 411
	PreconditionFailed          Status = 412
	ContentTooLarge             Status = 413
	URITooLong                  Status = 414
	UnsupportedMediaType        Status = 415
	RangeNotSatisfiable         Status = 416
	ExpectationFailed           Status = 417
	Teapot                      Status = 418
	MisdirectedRequest          Status = 421
	UnprocessableContent        Status = 422
	Locked                      Status = 423
	FailedDependency            Status = 424
	TooEarly                    Status = 425
	UpgradeRequired             Status = 426
	PreconditionRequired        Status = 428
	TooManyRequests             Status = 429
	RequestHeaderFieldsTooLarge Status = 431
	UnavailableForLegalReasons  Status = 451
)

// 5xx
const (
	InternalServerError           Status = 500
	NotImplemented                Status = 501
	BadGateway                    Status = 502
	ServiceUnavailable            Status = 503
	GatewayTimeout                Status = 504
	HTTPVersionNotSupported       Status = 505
	VariantAlsoNegotiates         Status = 506
	InsufficientStorage           Status = 507
	LoopDetected                  Status = 508
	NotExtended                   Status = 510
	NetworkAuthenticationRequired Status = 511
)

// Coder is implemented by anything that describes a status code. Status
// satisfies it; callers can define their own codes (vendor or private ones)
// and use them wherever a Coder is accepted.
type Coder interface {
	Code() int
	Name() string
	Class() Class
}

var _ Coder = Status(0)

// Lookup returns the catalogued status for code. The boolean is false for any
// code outside the catalogue.
func Lookup(code int) (Status, bool) {
	if _, ok := names[Status(code)]; !ok {
		return 0, false
	}
	return Status(code), true
}

// All yields every catalogued status in ascending code order. The sequence
// can be ranged over any number of times.
func All() iter.Seq[Status] {
	return func(yield func(Status) bool) {
		for _, e := range catalogue {
			if !yield(e.status) {
				return
			}
		}
	}
}

// Known returns the full catalogue as a new slice.
func Known() []Status {
	out := make([]Status, 0, len(catalogue))
	for _, e := range catalogue {
		out = append(out, e.status)
	}
	return out
}

// Code returns the numeric value.
func (s Status) Code() int { return int(s) }

// Name returns the canonical name, or "" when s is not catalogued.
func (s Status) Name() string { return names[s] }

// Known reports whether s is part of the catalogue.
func (s Status) Known() bool {
	_, ok := names[s]
	return ok
}

// Class returns the built-in class containing s. It panics when no built-in
// class does: every catalogued status is classified, so reaching that branch
// means s was built from an arbitrary integer.
func (s Status) Class() Class {
	c, ok := ClassOf(int(s))
	if !ok {
		panic(fmt.Sprintf("status: no class contains code %d", int(s)))
	}
	return c
}

// String returns "<code> <name>", or just the code when s is not catalogued.
func (s Status) String() string {
	name := s.Name()
	if name == "" {
		return strconv.Itoa(int(s))
	}
	return strconv.Itoa(int(s)) + " " + name
}

// Equal reports whether a and b describe the same code, name, and class.
func Equal(a, b Coder) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Code() == b.Code() && a.Name() == b.Name() && a.Class() == b.Class()
}

// Describe formats any Coder as "<code> <name>".
func Describe(c Coder) string {
	if c == nil {
		return ""
	}
	return strconv.Itoa(c.Code()) + " " + c.Name()
}
