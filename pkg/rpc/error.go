package rpc

import (
	"fmt"
)

// errorParamKey is the key Params.Error looks under for a server-reported
// error message.
const errorParamKey = "error"

// Errorf formats an error the way fmt.Errorf does; the transport and request
// validation use it for their own failures.
func Errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Dialer error messages
var (
	// Connection errors
	ErrAlreadyConnected  = fmt.Errorf("already connected")
	ErrNotConnected      = fmt.Errorf("not connected to server")
	ErrConnectionTimeout = fmt.Errorf("websocket connection timeout")
	ErrReadingMessage    = fmt.Errorf("error reading message")

	// Request/Response errors
	ErrNilRequest           = fmt.Errorf("nil request")
	ErrInvalidRequestMethod = fmt.Errorf("invalid request method")
	ErrMarshalingRequest    = fmt.Errorf("error marshaling request")
	ErrSendingRequest       = fmt.Errorf("error sending request")
	ErrNoResponse           = fmt.Errorf("no response received")
	ErrSendingPing          = fmt.Errorf("error sending ping")

	// WebSocket-specific errors
	ErrDialingWebsocket = fmt.Errorf("error dialing websocket server")
)
