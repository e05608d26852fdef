package middleware

import (
	"net/http"

	"google.golang.org/grpc/metadata"
)

// AccessTokenCookie carries the session token of browser logins.
const AccessTokenCookie = "access-token"

// Auth forwards the caller's token to the gRPC handlers as "authorization"
// metadata. The token comes from the Authorization header or, failing that,
// from the access-token cookie. Checking it is left to AuthInterceptor.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			if c, err := r.Cookie(AccessTokenCookie); err == nil {
				token = c.Value
			}
		}
		md := metadata.MD{}
		if token != "" {
			md.Set("authorization", token)
		}
		ctx := metadata.NewIncomingContext(r.Context(), md)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
