package api

import (
	"fmt"
	"net/http"

	"github.com/ytget/rickmorty/internal/i18n"
)

// Kind classifies a failed API call
type Kind int

const (
	// KindUnknown is used when the failure could not be classified
	KindUnknown Kind = iota

	// KindConnection means no HTTP response was received (status 0)
	KindConnection

	// KindNotFound means the API answered 404
	KindNotFound

	// KindServer means the API answered 500
	KindServer

	// KindStatus covers every other non-2xx answer
	KindStatus

	// KindClient means the request could not be built or the response could not be read
	KindClient
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindStatus:
		return "status"
	case KindClient:
		return "client"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks; only the Kind is compared.
var (
	ErrConnection = &Error{Kind: KindConnection}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrServer     = &Error{Kind: KindServer}
	ErrStatus     = &Error{Kind: KindStatus}
	ErrClient     = &Error{Kind: KindClient}
)

// Error is returned by every Client operation that fails.
type Error struct {
	Kind   Kind
	Status int   // HTTP status, 0 when no response was received
	Err    error // underlying cause, may be nil
}

// Error returns the user-facing message in the default language
func (e *Error) Error() string {
	return i18n.Default(e.MessageKey(), e.MessageArgs()...)
}

// Unwrap exposes the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels of the same Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// MessageKey returns the i18n key describing the failure
func (e *Error) MessageKey() string {
	switch e.Kind {
	case KindConnection:
		return i18n.KeyErrConnection
	case KindNotFound:
		return i18n.KeyErrNotFound
	case KindServer:
		return i18n.KeyErrServer
	case KindStatus:
		return i18n.KeyErrStatus
	case KindClient:
		return i18n.KeyErrClient
	default:
		return i18n.KeyErrUnknown
	}
}

// MessageArgs returns the format arguments for MessageKey
func (e *Error) MessageArgs() []any {
	switch e.Kind {
	case KindStatus:
		return []any{e.Status}
	case KindClient:
		if e.Err == nil {
			return []any{"unknown"}
		}
		return []any{e.Err.Error()}
	default:
		return nil
	}
}

// Detail returns a diagnostic string including the underlying cause, for logs.
func (e *Error) Detail() string {
	if e.Err == nil {
		return fmt.Sprintf("%s (status %d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("%s (status %d): %v", e.Kind, e.Status, e.Err)
}

// statusError maps a non-2xx HTTP status onto an Error
func statusError(status int) *Error {
	switch status {
	case 0:
		return &Error{Kind: KindConnection}
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: status}
	case http.StatusInternalServerError:
		return &Error{Kind: KindServer, Status: status}
	default:
		return &Error{Kind: KindStatus, Status: status}
	}
}
