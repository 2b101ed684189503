package status

import "fmt"

type entry struct {
	status Status
	name   string
}

// catalogue lists every known status in ascending order. Names follow the
// MDN status reference.
var catalogue = [...]entry{
	{Continue, "Continue"},
	{SwitchingProtocols, "Switching Protocols"},
	{Processing, "Processing"},
	{EarlyHints, "Early Hits"},

	{OK, "OK"},
	{Created, "Created"},
	{Accepted, "Accepted"},
	{NonAuthoritativeInformation, "Non-Authoritative Information"},
	{NoContent, "No Content"},
	{ResetContent, "Reset Content"},
	{PartialContent, "Partial Content"},
	{MultiStatus, "Multi-Status"},
	{AlreadyReported, "Already Reported"},
	{IMUsed, "IM Used"},

	{MultipleChoices, "Multiple Choices"},
	{MovedPermanently, "Moved Permanently"},
	{Found, "Found"},
	{SeeOther, "See Other"},
	{NotModified, "Not Modified"},
	{UseProxy, "Use Proxy"},
	{Unused, "Unused"},
	{TemporaryRedirect, "Temporary Redirect"},
	{PermanentRedirect, "Permanent Redirect"},

	{BadRequest, "Bad Request"},
	{Unauthorized, "Unauthorized"},
	{PaymentRequired, "Payment Required"},
	{Forbidden, "Forbidden"},
	{NotFound, "Not Found"},
	{MethodNotAllowed, "Method Not Allowed"},
	{NotAcceptable, "Not Acceptable"},
	{ProxyAuthenticationRequired, "Proxy Authentication Required"},
	{RequestTimeout, "Request Timeout"},
	{Conflict, "Conflict"},
	{Gone, "Gone"},
	{LengthRequired, "Length Required"},
	{PreconditionFailed, "Precondition Failed"},
	{ContentTooLarge, "Content Too Large"},
	{URITooLong, "URI Too Long"},
	{UnsupportedMediaType, "Unsupported Media Type"},
	{RangeNotSatisfiable, "Range Not Satisfiable"},
	{ExpectationFailed, "Expectation Failed"},
	{Teapot, "I'm a Teapot"},
	{MisdirectedRequest, "Misdirected Request"},
	{UnprocessableContent, "Unprocessable Content"},
	{Locked, "Locked"},
	{FailedDependency, "Failed Dependency"},
	{TooEarly, "Too Early"},
	{UpgradeRequired, "Upgrade Required"},
	{PreconditionRequired, "Precondition Required"},
	{TooManyRequests, "Too Many Requests"},
	{RequestHeaderFieldsTooLarge, "Request Header Fields Too Large"},
	{UnavailableForLegalReasons, "Unavailable For Legal Reasons"},

	{InternalServerError, "Internal Server Error"},
	{NotImplemented, "Not Implemented"},
	{BadGateway, "Bad Gateway"},
	{ServiceUnavailable, "Service Unavailable"},
	{GatewayTimeout, "Gateway Timeout"},
	{HTTPVersionNotSupported, "HTTP Version Not Supported"},
	{VariantAlsoNegotiates, "Variant Also Negotiates"},
	{InsufficientStorage, "Insufficient Storage"},
	{LoopDetected, "Loop Detected"},
	{NotExtended, "Not Extended"},
	{NetworkAuthenticationRequired, "Network Authentication Required"},
}

var names = buildIndex()

func buildIndex() map[Status]string {
	idx := make(map[Status]string, len(catalogue))
	prev := Status(0)
	for _, e := range catalogue {
		if err := checkEntry(e, prev, idx); err != nil {
			panic(err)
		}
		idx[e.status] = e.name
		prev = e.status
	}
	return idx
}

// checkEntry enforces the catalogue invariants: non-empty names, strictly
// ascending unique codes, and exactly one built-in class per code.
func checkEntry(e entry, prev Status, seen map[Status]string) error {
	if e.name == "" {
		return fmt.Errorf("status: code %d has no name", int(e.status))
	}
	if _, dup := seen[e.status]; dup {
		return fmt.Errorf("status: code %d declared twice", int(e.status))
	}
	if e.status <= prev {
		return fmt.Errorf("status: code %d declared out of order after %d", int(e.status), int(prev))
	}
	matches := 0
	for _, c := range builtinClasses {
		if c.Contains(int(e.status)) {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("status: code %d matches %d built-in classes", int(e.status), matches)
	}
	return nil
}
