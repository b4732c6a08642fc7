package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindIo
	KindJsonParse
	KindMissingContentType
	KindWrongContentType

	// 4xx
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindGone
	KindRateLimit
	KindUnknownClientError

	// 5xx
	KindInternal
	KindNotImplemented
	KindBadGateway
	KindServiceUnavailable
	KindUnknownServerError
)

var kindNames = map[ErrorKind]string{
	KindUnknown:            "Unknown",
	KindIo:                 "IoError",
	KindJsonParse:          "JsonParseError",
	KindMissingContentType: "MissingContentType",
	KindWrongContentType:   "WrongContentType",
	KindBadRequest:         "BadRequest",
	KindUnauthorized:       "Unauthorized",
	KindNotFound:           "NotFound",
	KindGone:               "Gone",
	KindRateLimit:          "RateLimit",
	KindUnknownClientError: "UnknownClientError",
	KindInternal:           "Internal",
	KindNotImplemented:     "NotImplemented",
	KindBadGateway:         "BadGateway",
	KindServiceUnavailable: "ServiceUnavailable",
	KindUnknownServerError: "UnknownServerError",
}

func (k ErrorKind) String() string {
	return kindNames[k]
}

func (k ErrorKind) IsClientError() bool {
	return k >= KindBadRequest && k <= KindUnknownClientError
}

func (k ErrorKind) IsServerError() bool {
	return k >= KindInternal && k <= KindUnknownServerError
}

// ApiError is a failed call to the Mastodon API.
type ApiError struct {
	Kind        ErrorKind
	Code        int    // HTTP status; 0 if no response arrived
	Method      string // Of the failed request
	Url         string
	ContentType string // Set for WrongContentType
	// ServerMessage is the "error" member of the server's JSON error body, if there was one.
	ServerMessage string
	Err           error
}

func (e *ApiError) Error() string {
	msg := e.ServerMessage
	if msg == "" && e.Err != nil {
		msg = strings.TrimSpace(e.Err.Error())
	}
	if e.Kind == KindWrongContentType {
		msg = fmt.Sprintf("wrong content type %q", e.ContentType)
	} else if e.Kind == KindMissingContentType {
		msg = "missing content type"
	}
	if msg == "" {
		return fmt.Sprintf("%s: %s %s", e.Kind, e.Method, e.Url)
	}
	return fmt.Sprintf("%s: %s: %s %s", e.Kind, msg, e.Method, e.Url)
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func kindFromStatus(code int) ErrorKind {
	switch {
	case code == http.StatusBadRequest:
		return KindBadRequest
	case code == http.StatusUnauthorized:
		return KindUnauthorized
	case code == http.StatusNotFound:
		return KindNotFound
	case code == http.StatusGone:
		return KindGone
	case code == http.StatusTooManyRequests:
		return KindRateLimit
	case code >= 400 && code < 500:
		return KindUnknownClientError
	case code == http.StatusInternalServerError:
		return KindInternal
	case code == http.StatusNotImplemented:
		return KindNotImplemented
	case code == http.StatusBadGateway:
		return KindBadGateway
	case code == http.StatusServiceUnavailable:
		return KindServiceUnavailable
	case code >= 500 && code < 600:
		return KindUnknownServerError
	default:
		return KindUnknown
	}
}

// Mastodon error bodies look like {"error": "Record not found"}
func serverErrorMessage(body []byte) string {
	var se struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &se); err != nil {
		return ""
	}
	return strings.TrimSpace(se.Error)
}
