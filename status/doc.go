// Package status is a typed catalogue of HTTP status codes.
//
// Every catalogued code is a Status constant with a canonical name and a
// Class derived from the range its value falls in. Lookup maps an arbitrary
// integer back to the catalogue:
//
//	s, ok := status.Lookup(404)
//	if ok {
//		fmt.Println(s.Name(), s.Class()) // Not Found Client Error Responses
//	}
//
// Callers can describe their own codes by implementing Coder; such values
// work with Class, Equal and Describe but are never added to the catalogue.
// The package holds no mutable state and is safe for concurrent use.
package status
