package middleware

import (
	"net/http"

	"github.com/garrettladley/wellscore/internal/version"
	"github.com/garrettladley/wellscore/internal/xerrors"
)

// ClientVersion rejects API clients that announce an incompatible major
// version. Requests without the header, such as browsers, pass through.
func ClientVersion(serverVersion string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientVersion := r.Header.Get(version.Header)
			if clientVersion == "" {
				next.ServeHTTP(w, r)
				return
			}

			if verr := version.CheckCompatibility(clientVersion, serverVersion); verr != nil {
				xerrors.WriteError(r.Context(), w, xerrors.UpgradeRequired(xerrors.WithMessage(verr.Error())))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
