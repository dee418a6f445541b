package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BackendResponse is the envelope every backend endpoint answers with.
type BackendResponse struct {
	Status int             `json:"status"`
	Msg    string          `json:"msg"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// DecodeData unmarshals the data part of the envelope into v.
func (r *BackendResponse) DecodeData(v any) error {
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

// BackendError is returned when the backend answers with a non-2xx status.
type BackendError struct {
	StatusCode int              // HTTP status of the response
	Response   *BackendResponse // Decoded envelope, nil when the body is not one
	Body       string           // Raw body, truncated
}

func (e *BackendError) Error() string {
	if e.Response != nil && e.Response.Msg != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Response.Msg)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Msg returns the envelope message, or "" when there is none.
func (e *BackendError) Msg() string {
	if e.Response == nil {
		return ""
	}
	return e.Response.Msg
}

// DataContains reports whether any string inside the envelope data contains
// substr. Data may be a string, a list of strings or a map of field errors.
func (e *BackendError) DataContains(substr string) bool {
	if e.Response == nil || len(e.Response.Data) == 0 {
		return false
	}
	var data any
	if err := json.Unmarshal(e.Response.Data, &data); err != nil {
		return false
	}
	return containsString(data, substr)
}

func containsString(v any, substr string) bool {
	switch t := v.(type) {
	case string:
		return strings.Contains(t, substr)
	case []any:
		for _, item := range t {
			if containsString(item, substr) {
				return true
			}
		}
	case map[string]any:
		for _, item := range t {
			if containsString(item, substr) {
				return true
			}
		}
	}
	return false
}
