package semantics

import "errors"

var (
	ErrRedefinition      = errors.New("redefinition")
	ErrUndeclared        = errors.New("undeclared")
	ErrIncompatibleTypes = errors.New("incompatible types")
	ErrNoEntryPoint      = errors.New("missing entry point")
)
