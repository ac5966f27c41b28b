package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound matches any *ServiceError carrying a 404 status.
var ErrNotFound = errors.New("not found")

// TransportError is returned when no response reached the client:
// connection refused, timeout, or an unreadable response body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is returned when the service answered with a non-2xx status.
// Detail is empty when the response carried no usable detail field.
type ServiceError struct {
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("service error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("service error %d: %s", e.StatusCode, e.Detail)
}

// Is reports 404 service errors as ErrNotFound.
func (e *ServiceError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// DetailOf extracts the service-provided detail from err, if any.
func DetailOf(err error) (string, bool) {
	var se *ServiceError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail, true
	}
	return "", false
}

// IsTransport reports whether err is a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// validationIssue is one element of a 422 detail list.
type validationIssue struct {
	Loc []interface{} `json:"loc"`
	Msg string        `json:"msg"`
}

// parseDetail reads the detail field of an error body. The service sends
// either {"detail": "text"} or, for schema rejections, a list of issues.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var issues []validationIssue
	if err := json.Unmarshal(envelope.Detail, &issues); err != nil {
		return ""
	}
	parts := make([]string, 0, len(issues))
	for _, is := range issues {
		if is.Msg == "" {
			continue
		}
		if field := lastLoc(is.Loc); field != "" {
			parts = append(parts, field+": "+is.Msg)
		} else {
			parts = append(parts, is.Msg)
		}
	}
	return strings.Join(parts, "; ")
}

func lastLoc(loc []interface{}) string {
	if len(loc) == 0 {
		return ""
	}
	if s, ok := loc[len(loc)-1].(string); ok && s != "body" {
		return s
	}
	return ""
}
