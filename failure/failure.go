// Package failure defines the closed set of user-facing failure reasons
// shared by both wizards and the HTTP mock backend.
package failure

import (
	"errors"
	"fmt"
)

// Kind identifies why a submission attempt failed.
type Kind string

const (
	InvalidInput            Kind = "INVALID_INPUT"
	AlreadyRegistered       Kind = "ALREADY_REGISTERED"
	NotFound                Kind = "NOT_FOUND"
	WrongState              Kind = "WRONG_STATE"
	ProcessNotFinal         Kind = "PROCESS_NOT_FINAL"
	NoConfirmedApplications Kind = "NO_CONFIRMED_APPLICATIONS"
	Unexpected              Kind = "UNEXPECTED"
)

var messages = map[Kind]string{
	InvalidInput:            "Los datos ingresados no son válidos. Intenta nuevamente.",
	AlreadyRegistered:       "La empresa ya se encuentra registrada en el sistema",
	NotFound:                "No se ha podido encontrar el proyecto ingresado. Intente nuevamente",
	WrongState:              `El proyecto no está en estado "En evaluación".`,
	ProcessNotFinal:         `El proceso de selección no está en estado "Definitivo".`,
	NoConfirmedApplications: `En el proyecto ingresado, hay postulaciones que no se encuentran en estado "Confirmado"`,
	Unexpected:              "Error inesperado. Intente nuevamente.",
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		InvalidInput,
		AlreadyRegistered,
		NotFound,
		WrongState,
		ProcessNotFinal,
		NoConfirmedApplications,
		Unexpected,
	}
}

// Message returns the fixed user-facing message for k. Unknown kinds get
// the UNEXPECTED message.
func Message(k Kind) string {
	if m, ok := messages[k]; ok {
		return m
	}
	return messages[Unexpected]
}

// Error carries a failure kind and an optional underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

// New returns an *Error of the given kind with no cause.
func New(k Kind) *Error {
	return &Error{Kind: k}
}

// Wrap returns an *Error of the given kind wrapping err.
func Wrap(k Kind, err error) *Error {
	return &Error{Kind: k, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the failure kind carried by err. Errors that carry no
// kind map to UNEXPECTED; a nil error has no kind and returns "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var fe *Error
	if errors.As(err, &fe) {
		if _, ok := messages[fe.Kind]; ok {
			return fe.Kind
		}
	}
	return Unexpected
}

// Is reports whether err carries kind k.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
