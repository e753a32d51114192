// Package service implements the two dispatch operations of the portal:
// credential login and off-day submission. Every downstream failure is
// caught here and mapped to a closed taxonomy; no error crosses into the
// presentation layer.
package service

import "github.com/zanda/offday-portal/internal/model"

// ErrorKind identifies a failure class surfaced to the user.
type ErrorKind string

const (
	ErrorParse       ErrorKind = "parse_error"
	ErrorNoUser      ErrorKind = "no_user"
	ErrorBadPassword ErrorKind = "bad_password"
	ErrorServer      ErrorKind = "server_error"
)

// errorMessages maps each failure class to its display text.
var errorMessages = map[ErrorKind]string{
	ErrorParse:       "Parse error",
	ErrorNoUser:      "User not found",
	ErrorBadPassword: "Invalid Password",
	ErrorServer:      "Internal Server Error",
}

// Message returns the user-facing text for the failure class.
func (k ErrorKind) Message() string { return errorMessages[k] }

// Success messages returned by the dispatchers.
const (
	MsgLoginOK  = "Login"
	MsgOffDayOK = "Off day added successfully!"
)

// Result is the envelope both dispatchers return. Presentation code
// branches on OK; Message is display text only and Kind carries the
// machine-checkable failure class.
type Result struct {
	OK      bool
	Kind    ErrorKind
	Message string
}

// LoginResult adds the authenticated identity on success.
type LoginResult struct {
	Result
	Identity *model.Identity
}

func success(msg string) Result {
	return Result{OK: true, Message: msg}
}

func failure(kind ErrorKind) Result {
	return Result{Kind: kind, Message: kind.Message()}
}
