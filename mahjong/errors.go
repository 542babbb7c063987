package mahjong

import (
	"errors"
	"fmt"
)

// ErrorCode 错误码
type ErrorCode string

const (
	CodeInvalidHandSize       ErrorCode = "INVALID_HAND_SIZE"
	CodeTileSupplyExceeded    ErrorCode = "TILE_SUPPLY_EXCEEDED"
	CodeMalformedMeld         ErrorCode = "MALFORMED_MELD"
	CodeUnsupportedShape      ErrorCode = "UNSUPPORTED_SHAPE"
	CodeIllegalWinDeclaration ErrorCode = "ILLEGAL_WIN_DECLARATION"
	CodeInvalidTile           ErrorCode = "INVALID_TILE"
	CodeTileNotInHand         ErrorCode = "TILE_NOT_IN_HAND"
)

// Error 核心错误类型，errors.Is 按错误码匹配
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithCause 附加原因
func (e *Error) WithCause(cause error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Cause: cause}
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

var (
	ErrInvalidHandSize       = NewError(CodeInvalidHandSize, "hand size mismatch")
	ErrTileSupplyExceeded    = NewError(CodeTileSupplyExceeded, "tile supply exceeded")
	ErrMalformedMeld         = NewError(CodeMalformedMeld, "malformed meld")
	ErrUnsupportedShape      = NewError(CodeUnsupportedShape, "unsupported shape")
	ErrIllegalWinDeclaration = NewError(CodeIllegalWinDeclaration, "illegal win declaration")
	ErrInvalidTile           = NewError(CodeInvalidTile, "invalid tile")
	ErrTileNotInHand         = NewError(CodeTileNotInHand, "tile not in hand")
)

func newError(sentinel *Error, format string, args ...any) error {
	return &Error{Code: sentinel.Code, Message: fmt.Sprintf(format, args...)}
}

// Errorf 以 sentinel 的错误码构造带上下文的错误
func Errorf(sentinel *Error, format string, args ...any) error {
	return newError(sentinel, format, args...)
}
