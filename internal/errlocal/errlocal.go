package errlocal

import (
	"fmt"
	"strings"
)

// LocalError is the domain error contract: every error carries a short
// client-facing message, an internal system detail and an HTTP status code.
type LocalError interface {
	error
	Message() string
	System() string
	Details() map[string]any
	Code() int
	Base() *BaseError
}

type BaseError struct {
	Msg        string         `json:"message,omitempty"`
	Sys        string         `json:"system,omitempty"`
	DetailsMap map[string]any `json:"details,omitempty"`
}

func (e *BaseError) Error() string {
	b := strings.Builder{}
	if e.Msg != "" {
		b.WriteString("message: " + e.Msg)
	}
	if e.Sys != "" {
		b.WriteString(" system: " + e.Sys)
	}
	for key, value := range e.DetailsMap {
		b.WriteString(fmt.Sprintf(" %s: %v", key, value))
	}
	return b.String()
}

func (e *BaseError) Message() string {
	return e.Msg
}

func (e *BaseError) System() string {
	return e.Sys
}

func (e *BaseError) Details() map[string]any {
	return e.DetailsMap
}

func (e *BaseError) Code() int {
	return 500
}

func (e *BaseError) Base() *BaseError {
	return e
}
