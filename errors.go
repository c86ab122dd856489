package enums

import (
	"errors"
	"fmt"
)

// Sentinel errors for enum conversion failures.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrOrdinalOutOfRange indicates a value outside [0, N) was converted to a name.
	ErrOrdinalOutOfRange = errors.New("ordinal out of range")

	// ErrUnknownName indicates a string that is not a canonical name of the type.
	ErrUnknownName = errors.New("unknown name")

	// ErrInvalidDefinition indicates a table whose limit is not positive or
	// whose name list length does not match the limit.
	ErrInvalidDefinition = errors.New("invalid enum definition")

	// ErrDecode indicates serialized input that is not a string scalar.
	ErrDecode = errors.New("cannot decode enum value")
)

// Error kinds categorize errors by their type.
const (
	// KindRange represents forward conversion of an out-of-range ordinal.
	KindRange = "range"

	// KindNotFound represents reverse conversion of an unregistered name.
	KindNotFound = "not_found"

	// KindDefinition represents a malformed table declaration.
	KindDefinition = "definition"

	// KindDecode represents malformed serialized input.
	KindDecode = "decode"
)

// EnumError is a structured error type that wraps underlying errors with
// the enum type, the operation that failed and the category of error.
//
// EnumError supports error unwrapping, making it compatible with errors.Is()
// and errors.As().
//
// Example usage:
//
//	err := &EnumError{
//		Op:   "Name",
//		Kind: KindRange,
//		Type: "types.Color",
//		Err:  ErrOrdinalOutOfRange,
//	}
type EnumError struct {
	// Op is the operation that failed (e.g., "Name", "Lookup", "New").
	Op string

	// Kind categorizes the error (e.g., KindRange, KindNotFound).
	Kind string

	// Type is the enum type name the operation ran against.
	Type string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional), such
	// as the offending ordinal or name.
	Context map[string]any
}

// Error implements the error interface.
func (e *EnumError) Error() string {
	op := e.Op
	if e.Type != "" {
		op = e.Type + "." + e.Op
	}

	if e.Err == nil {
		return fmt.Sprintf("enums: %s: %s", op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("enums: %s (%s): %v [context: %+v]", op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("enums: %s (%s): %v", op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *EnumError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *EnumError of the same Kind (and Op, when the
// target sets one), or whether the wrapped error matches target.
func (e *EnumError) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*EnumError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the provided context merged in.
func (e *EnumError) WithContext(ctx map[string]any) *EnumError {
	newErr := *e
	merged := make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	newErr.Context = merged
	return &newErr
}

// NewRangeError creates a new EnumError with KindRange.
func NewRangeError(op, typeName string) *EnumError {
	return &EnumError{
		Op:   op,
		Kind: KindRange,
		Type: typeName,
		Err:  ErrOrdinalOutOfRange,
	}
}

// NewNotFoundError creates a new EnumError with KindNotFound.
func NewNotFoundError(op, typeName string) *EnumError {
	return &EnumError{
		Op:   op,
		Kind: KindNotFound,
		Type: typeName,
		Err:  ErrUnknownName,
	}
}

// NewDefinitionError creates a new EnumError with KindDefinition.
func NewDefinitionError(op, typeName string) *EnumError {
	return &EnumError{
		Op:   op,
		Kind: KindDefinition,
		Type: typeName,
		Err:  ErrInvalidDefinition,
	}
}

// NewDecodeError creates a new EnumError with KindDecode wrapping err.
func NewDecodeError(op, typeName string, err error) *EnumError {
	if err == nil {
		err = ErrDecode
	} else {
		err = fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &EnumError{
		Op:   op,
		Kind: KindDecode,
		Type: typeName,
		Err:  err,
	}
}
