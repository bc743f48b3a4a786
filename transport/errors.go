package transport

import "errors"

// ErrReceiverNotReady is returned by Feed when the receiver is in
// StateDone or StateError and has not been Reset.
var ErrReceiverNotReady = errors.New("transport: receiver not ready, call Reset")
