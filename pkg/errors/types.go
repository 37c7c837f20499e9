package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so boundary layers (HTTP, CLI) can map it to a
// transport status with a table lookup instead of type inspection.
type Kind string

const (
	// KindNotFound covers unparseable ids and videos that don't exist or are private.
	KindNotFound Kind = "NOT_FOUND"

	// KindCaptionsUnavailable means the video exists but captions are disabled entirely.
	KindCaptionsUnavailable Kind = "CAPTIONS_UNAVAILABLE"

	// KindLanguageUnavailable means captions exist, but not in any requested language.
	KindLanguageUnavailable Kind = "LANGUAGE_UNAVAILABLE"

	// KindUpstreamFetch is the generic unexpected failure from the caption source.
	KindUpstreamFetch Kind = "UPSTREAM_FETCH_FAILURE"

	// KindMetadataFetch means the metadata lookup failed.
	KindMetadataFetch Kind = "METADATA_FETCH_FAILURE"

	// KindStorage covers persistence layer I/O and schema failures.
	KindStorage Kind = "STORAGE_FAULT"

	// KindInvalidRequest covers malformed caller-supplied parameters,
	// raised before any I/O happens.
	KindInvalidRequest Kind = "INVALID_REQUEST"
)

// Error is the single error type returned by all core operations.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the HTTP status class for this error's kind.
func (e *Error) HTTPStatus() int {
	return statusForKind(e.Kind)
}

func statusForKind(kind Kind) int {
	switch kind {
	case KindNotFound, KindCaptionsUnavailable:
		return http.StatusNotFound
	case KindLanguageUnavailable, KindInvalidRequest:
		return http.StatusBadRequest
	case KindUpstreamFetch, KindMetadataFetch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new Error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a new Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a kind and message.
func Wrap(cause error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Wrapf wraps an existing error with a kind and formatted message.
func Wrapf(cause error, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Common constructors

// NotFound reports an id that doesn't resolve to a real video.
func NotFound(input string) *Error {
	return Newf(KindNotFound, "video not found: %s", input)
}

// CaptionsUnavailable reports a video that has no captions at all.
func CaptionsUnavailable(videoID string) *Error {
	return Newf(KindCaptionsUnavailable, "no transcript available for video: %s", videoID)
}

// LanguageUnavailable reports captions that exist but not in the requested languages.
func LanguageUnavailable(videoID string, requested []string) *Error {
	return Newf(KindLanguageUnavailable,
		"transcript not available in requested language(s) %v for video: %s", requested, videoID)
}

// UpstreamFailure wraps an unexpected caption-source error.
func UpstreamFailure(videoID string, cause error) *Error {
	return Wrapf(cause, KindUpstreamFetch, "failed to fetch transcript for video %s", videoID)
}

// MetadataFailure wraps a metadata lookup error with its reason.
func MetadataFailure(videoID string, cause error) *Error {
	return Wrapf(cause, KindMetadataFetch, "failed to fetch metadata for video %s", videoID)
}

// Storage wraps a persistence layer fault.
func Storage(message string, cause error) *Error {
	return Wrap(cause, KindStorage, message)
}

// InvalidRequest reports malformed caller input.
func InvalidRequest(message string) *Error {
	return New(KindInvalidRequest, message)
}

// KindOf extracts the kind from an error, defaulting to KindStorage for
// unclassified internal failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// HTTPStatus extracts the HTTP status from an error.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// Message returns the human-readable message bound to an error, without
// exposing internal causes to end users.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// IsKind checks whether an error carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
