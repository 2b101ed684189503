// Package rpcstatus maps between RPC error codes and catalogued HTTP statuses.
//
// The forward direction follows the gRPC-HTTP mapping used by gateways and
// transcoders. The reverse direction is the inference an RPC client applies
// when a non-RPC intermediary answers with a bare HTTP status.
package rpcstatus

import (
	"connectrpc.com/connect"
	"google.golang.org/grpc/codes"

	"github.com/adeilh/go-rakh-status/status"
)

// indexed by RPC code number; connect and gRPC share the numbering
var codeToStatus = [...]status.Status{
	status.OK,                  // 0 OK
	status.RequestTimeout,      // 1 Canceled
	status.InternalServerError, // 2 Unknown
	status.BadRequest,          // 3 InvalidArgument
	status.GatewayTimeout,      // 4 DeadlineExceeded
	status.NotFound,            // 5 NotFound
	status.Conflict,            // 6 AlreadyExists
	status.Forbidden,           // 7 PermissionDenied
	status.TooManyRequests,     // 8 ResourceExhausted
	status.BadRequest,          // 9 FailedPrecondition
	status.Conflict,            // 10 Aborted
	status.BadRequest,          // 11 OutOfRange
	status.NotImplemented,      // 12 Unimplemented
	status.InternalServerError, // 13 Internal
	status.ServiceUnavailable,  // 14 Unavailable
	status.InternalServerError, // 15 DataLoss
	status.Unauthorized,        // 16 Unauthenticated
}

func fromCode(c uint32) status.Status {
	if int(c) >= len(codeToStatus) {
		return status.InternalServerError
	}
	return codeToStatus[c]
}

// FromConnect returns the HTTP status a Connect error code is reported as.
// Codes outside the defined set map to 500.
func FromConnect(code connect.Code) status.Status {
	return fromCode(uint32(code))
}

// FromGRPC returns the HTTP status a gRPC code is reported as.
func FromGRPC(code codes.Code) status.Status {
	return fromCode(uint32(code))
}

// ToConnect infers a Connect code from an HTTP status received without an
// RPC error body.
func ToConnect(c status.Coder) connect.Code {
	switch c.Code() {
	case int(status.BadRequest):
		return connect.CodeInternal
	case int(status.Unauthorized):
		return connect.CodeUnauthenticated
	case int(status.Forbidden):
		return connect.CodePermissionDenied
	case int(status.NotFound):
		return connect.CodeUnimplemented
	case int(status.TooManyRequests), int(status.BadGateway),
		int(status.ServiceUnavailable), int(status.GatewayTimeout):
		return connect.CodeUnavailable
	default:
		return connect.CodeUnknown
	}
}

// ToGRPC infers a gRPC code from an HTTP status. Successful statuses map
// to codes.OK; everything else follows ToConnect.
func ToGRPC(c status.Coder) codes.Code {
	if status.Successful.Contains(c.Code()) {
		return codes.OK
	}
	return codes.Code(ToConnect(c))
}
