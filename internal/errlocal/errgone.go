package errlocal

import "net/http"

type ErrGone struct {
	BaseError
}

func NewErrGone(msg string, system string, details map[string]any) LocalError {
	return &ErrGone{
		BaseError: BaseError{
			Msg:        msg,
			Sys:        system,
			DetailsMap: details,
		},
	}
}

func (e *ErrGone) Code() int {
	return http.StatusGone
}
