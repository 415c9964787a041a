package middleware

import (
	"net/http"

	"lost-found-pets/internal/store"
)

// Session adjunta el store de la sesión a cada request. Los handlers lo
// obtienen con store.FromContext; sin este middleware eso entra en pánico.
func Session(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if st == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := store.WithStore(r.Context(), st)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
