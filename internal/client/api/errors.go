package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is a structured backend failure: an HTTP status plus whatever
// the backend said about it. Validation failures carry a field-keyed
// message map; everything else usually carries a detail string.
type Error struct {
	Status   int
	Fields   map[string][]string
	NonField []string
	Detail   string
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
	case len(e.NonField) > 0:
		return fmt.Sprintf("api error (status %d): %s", e.Status, strings.Join(e.NonField, "; "))
	case len(e.Fields) > 0:
		parts := make([]string, 0, len(e.Fields))
		for k, v := range e.Fields {
			parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(v, ", ")))
		}
		return fmt.Sprintf("api error (status %d): %s", e.Status, strings.Join(parts, "; "))
	default:
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
}

// IsAuthFailure reports whether the error is an HTTP 401.
func (e *Error) IsAuthFailure() bool {
	return e.Status == http.StatusUnauthorized
}

// parseError maps a >=400 response body into an Error. The backend
// speaks DRF: either {"detail": "..."} or a field->messages map with
// "non_field_errors" for errors not tied to a field. Unparseable bodies
// degrade to a bare status error, never to a secondary failure.
func parseError(status int, body []byte) *Error {
	e := &Error{Status: status}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return e
	}

	for key, val := range raw {
		if key == "detail" {
			var s string
			if json.Unmarshal(val, &s) == nil {
				e.Detail = s
			}
			continue
		}

		msgs := decodeMessages(val)
		if msgs == nil {
			continue
		}
		if key == "non_field_errors" {
			e.NonField = msgs
			continue
		}
		if e.Fields == nil {
			e.Fields = make(map[string][]string)
		}
		e.Fields[key] = msgs
	}

	return e
}

// decodeMessages accepts either a single string or a list of strings.
func decodeMessages(raw json.RawMessage) []string {
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return list
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return []string{s}
	}
	return nil
}
