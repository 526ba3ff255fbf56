package hyerr

import (
	"fmt"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidPayload = "INVALID_PAYLOAD"
	CodePropertyType   = "PROPERTY_TYPE_MISMATCH"
)

var (
	// ErrNotFound is returned when a requested category or payload does not exist.
	ErrNotFound = New(CodeNotFound, "resource not found with given parameters")

	// ErrInvalidPayload is returned when the payload is not valid JSON.
	ErrInvalidPayload = New(CodeInvalidPayload, "invalid payload: input is not a valid JSON document")

	// ErrPropertyType is returned when a property exists but holds a value of an unexpected kind.
	ErrPropertyType = New(CodePropertyType, "property holds a value of an unexpected type")
)

type Extras map[string]interface{}

type HypixelError struct {
	ErrorCode string
	Message   string
	Extras    *Extras
}

func New(errorCode string, message string) *HypixelError {
	return &HypixelError{
		ErrorCode: errorCode,
		Message:   message,
	}
}

func (e HypixelError) Msg(format string, parts ...interface{}) *HypixelError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e HypixelError) WithExtras(extras Extras) *HypixelError {
	e.Extras = &extras
	return &e
}

// NewPropertyType describes a property whose value is not of the expected kind.
func NewPropertyType(property, expected, actual string) *HypixelError {
	e := *ErrPropertyType
	e.Message = fmt.Sprintf("property %q: expected %s, got %s", property, expected, actual)
	e.Extras = &Extras{
		"property": property,
		"expected": expected,
		"actual":   actual,
	}
	return &e
}

func (e *HypixelError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Is reports whether target is a *HypixelError carrying the same error code,
// so derived errors still match the sentinel they were built from.
func (e *HypixelError) Is(target error) bool {
	t, ok := target.(*HypixelError)
	if !ok {
		return false
	}
	return e.ErrorCode == t.ErrorCode
}
