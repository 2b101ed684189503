package status_test

import (
	"fmt"

	"github.com/adeilh/go-rakh-status/status"
)

func ExampleLookup() {
	if s, ok := status.Lookup(404); ok {
		fmt.Println(s.Name(), "|", s.Class())
	}
	if _, ok := status.Lookup(999); !ok {
		fmt.Println("999 is not catalogued")
	}
	// Output:
	// Not Found | Client Error Responses
	// 999 is not catalogued
}

func ExampleClass_Codes() {
	for _, s := range status.Informational.Codes() {
		fmt.Println(s)
	}
	// Output:
	// 100 Continue
	// 101 Switching Protocols
	// 102 Processing
	// 104 Early Hits
}

type gatewayStatus int

func (g gatewayStatus) Code() int           { return int(g) }
func (g gatewayStatus) Name() string        { return "Custom Timeout" }
func (g gatewayStatus) Class() status.Class { return status.ServerError }

func ExampleCoder() {
	var c status.Coder = gatewayStatus(599)
	fmt.Println(status.Describe(c), "|", c.Class().Contains(c.Code()))
	// Output: 599 Custom Timeout | true
}
