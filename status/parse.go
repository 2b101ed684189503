package status

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCode = errors.New("status: unknown code")
	ErrInvalidText = errors.New("status: invalid code text")
)

// Parse is Lookup with absence reported as an error wrapping ErrUnknownCode.
func Parse(code int) (Status, error) {
	s, ok := Lookup(code)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}
	return s, nil
}

// ParseText parses the decimal form of a code, e.g. "404".
func ParseText(text string) (Status, error) {
	text = strings.TrimSpace(text)
	code, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidText, text)
	}
	return Parse(code)
}

// MarshalText encodes the numeric code. Uncatalogued values are rejected.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCode, int(s))
	}
	return strconv.AppendInt(nil, int64(s), 10), nil
}

// UnmarshalText decodes a numeric code produced by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseText(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
