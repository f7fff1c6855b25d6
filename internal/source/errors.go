package source

import (
	"errors"
	"fmt"
)

// Kind categorizes why a page could not be produced
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidPage
	KindEmptyPage
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindInvalidPage:
		return "invalid page"
	case KindEmptyPage:
		return "empty page"
	case KindTransport:
		return "transport error"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is. A *PageError matches the sentinel of its kind.
var (
	ErrInvalidPage = errors.New("invalid page number")
	ErrEmptyPage   = errors.New("page is empty")
	ErrTransport   = errors.New("transport error")
)

// PageError is the error returned by sources and the navigation engine
type PageError struct {
	Kind   Kind
	Number int
	Err    error // underlying cause, may be nil
}

func (e *PageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("page %d: %s: %v", e.Number, e.Kind, e.Err)
	}
	return fmt.Sprintf("page %d: %s", e.Number, e.Kind)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel
func (e *PageError) Is(target error) bool {
	switch target {
	case ErrInvalidPage:
		return e.Kind == KindInvalidPage
	case ErrEmptyPage:
		return e.Kind == KindEmptyPage
	case ErrTransport:
		return e.Kind == KindTransport
	}
	return false
}

// UserMessage is the Swedish text shown in the error box
func (e *PageError) UserMessage() string {
	switch e.Kind {
	case KindInvalidPage:
		return fmt.Sprintf("Sidnumret du angav (%d) är inte giltigt, ange ett sidnummer mellan 100 och 999", e.Number)
	case KindEmptyPage:
		return fmt.Sprintf("Sida %d är tom eller inte i sändning just nu", e.Number)
	default:
		return "Ett nätverksfel uppstod. Vänligen kontrollera din internetanslutning."
	}
}

// InvalidPage builds a KindInvalidPage error
func InvalidPage(number int) error {
	return &PageError{Kind: KindInvalidPage, Number: number}
}

// EmptyPage builds a KindEmptyPage error
func EmptyPage(number int) error {
	return &PageError{Kind: KindEmptyPage, Number: number}
}

// Transport wraps err as a KindTransport error
func Transport(number int, err error) error {
	return &PageError{Kind: KindTransport, Number: number, Err: err}
}

// IsEmpty reports whether err is an empty-page error
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmptyPage)
}

// KindOf returns the kind of err, or KindUnknown
func KindOf(err error) Kind {
	var e *PageError
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ValidateNumber checks the 100..999 range
func ValidateNumber(number int) error {
	if number < 100 || number > 999 {
		return InvalidPage(number)
	}
	return nil
}
