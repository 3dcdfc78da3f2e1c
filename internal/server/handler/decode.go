package handler

import (
	"errors"
	"net/http"

	"github.com/garrettladley/wellscore/internal/xerrors"
	"github.com/garrettladley/wellscore/internal/xhttp"
)

// decode reads a JSON body into v and maps failures onto client errors.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	err := xhttp.DecodeJSON(w, r, v)
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return xerrors.RequestTooLarge(xerrors.WithCause(err))
	case errors.Is(err, xhttp.ErrEmptyBody):
		return xerrors.BadRequest(xerrors.WithMessage("request body is empty"))
	default:
		return xerrors.BadRequest(xerrors.WithMessage("invalid JSON body"), xerrors.WithCause(err))
	}
}
