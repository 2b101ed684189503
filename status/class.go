package status

// Class names a contiguous, inclusive range of status codes. Class values are
// comparable, so they can be used with == and as map keys.
type Class struct {
	Name  string
	Lower int
	Upper int
}

// NewClass builds a class covering lower..upper inclusive. A class with
// lower > upper is accepted and contains no code.
func NewClass(name string, lower, upper int) Class {
	return Class{Name: name, Lower: lower, Upper: upper}
}

var (
	// Informational responses indicate the request was received and processing continues.
	Informational = NewClass("Informational Responses", 100, 199)
	// Successful responses indicate the request was received, understood, and accepted.
	Successful = NewClass("Successful Responses", 200, 299)
	// Redirection messages indicate the client must take further action.
	Redirection = NewClass("Redirection Messages", 300, 399)
	// ClientError responses indicate the error seems to have been caused by the client.
	ClientError = NewClass("Client Error Responses", 400, 499)
	// ServerError responses indicate the server failed to fulfil a valid request.
	ServerError = NewClass("Server Error Responses", 500, 599)
)

// builtinClasses is the priority order used for class resolution.
var builtinClasses = [...]Class{Informational, Successful, Redirection, ClientError, ServerError}

// Classes returns the built-in classes in resolution order.
func Classes() []Class {
	out := make([]Class, len(builtinClasses))
	copy(out, builtinClasses[:])
	return out
}

// ClassOf returns the first built-in class containing code.
func ClassOf(code int) (Class, bool) {
	for _, c := range builtinClasses {
		if c.Contains(code) {
			return c, true
		}
	}
	return Class{}, false
}

// Contains reports whether code lies within the class bounds.
func (c Class) Contains(code int) bool {
	return c.Lower <= code && code <= c.Upper
}

// Range returns the inclusive bounds.
func (c Class) Range() (lower, upper int) {
	return c.Lower, c.Upper
}

// Codes returns the catalogued statuses that fall inside the class, in
// catalogue order. The result is computed on every call.
func (c Class) Codes() []Status {
	var out []Status
	for s := range All() {
		if c.Contains(int(s)) {
			out = append(out, s)
		}
	}
	return out
}

func (c Class) String() string { return c.Name }
