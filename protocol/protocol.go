// Package protocol implements the iHomma SML wire protocol: instruction
// packet forging in the packet sub-package, and the per-bulb network client
// in the device sub-package.
package protocol

import "net"

// ResultKind tags the outcome of a wire exchange.
type ResultKind uint8

const (
	// ResultOK indicates the exchange succeeded
	ResultOK ResultKind = iota
	// ResultTimedOut indicates the bulb did not answer in time
	ResultTimedOut
	// ResultConnectionError indicates the exchange failed before or during
	// transmission
	ResultConnectionError
)

// Result is the outcome of a single wire exchange with a bulb.  The
// transport layer never lets socket errors escape - callers branch on the
// kind instead.
type Result struct {
	Kind ResultKind
	// Data holds the response bytes when a response was requested, nil
	// otherwise
	Data []byte
	// Err retains the underlying transport error for logging, nil on
	// success
	Err error
}

// OK reports whether the exchange succeeded.
func (r Result) OK() bool {
	return r.Kind == ResultOK
}

// Ok returns a successful Result carrying the response data.
func Ok(data []byte) Result {
	return Result{Kind: ResultOK, Data: data}
}

// Failed classifies a transport error into a Result, distinguishing
// timeouts from other connection failures.
func Failed(err error) Result {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return Result{Kind: ResultTimedOut, Err: err}
	}
	return Result{Kind: ResultConnectionError, Err: err}
}
