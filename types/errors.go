package types

import "errors"

var (
	ErrUnmarshal      = errors.New("unmarshal error")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrOverflow       = errors.New("arithmetic overflow")
	ErrDivisionByZero = errors.New("division by zero")
)
