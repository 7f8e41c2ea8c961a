package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"agrimitra/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func userIDFromToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	sub, ok := claims["sub"].(string)
	return sub, ok && sub != ""
}

// Authenticate rejects requests without a valid bearer token and stores the
// user id on the request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		userID, ok := userIDFromToken(r)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), globals.UserIDKey, userID)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuth attaches the user id when a valid token is present but lets
// anonymous requests through.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if userID, ok := userIDFromToken(r); ok {
			ctx := context.WithValue(r.Context(), globals.UserIDKey, userID)
			r = r.WithContext(ctx)
		}
		next(w, r, ps)
	}
}
