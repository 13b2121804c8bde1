package gomap

import "fmt"

// MarshalError reports a Go value that From could not represent,
// located by the dotted path of the offending field.
type MarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.FieldPath, e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError reports a tree node that To could not place in the
// destination.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.FieldPath, e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}
