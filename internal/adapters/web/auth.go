package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bilantra/internal/app"
	"bilantra/internal/locale"

	"github.com/golang-jwt/jwt/v5"
)

const authCookie = "auth_token"

type authClaimsKey struct{}

// AuthClaims holds the authenticated account extracted from the JWT.
type AuthClaims struct {
	Email string
}

// authFromContext returns the auth claims stored in ctx, or nil.
func authFromContext(ctx context.Context) *AuthClaims {
	v, _ := ctx.Value(authClaimsKey{}).(*AuthClaims)
	return v
}

// accountEmail returns the authenticated email. Only valid behind RequireAuth.
func accountEmail(r *http.Request) string {
	if c := authFromContext(r.Context()); c != nil {
		return c.Email
	}
	return ""
}

// jwtClaims is the JWT payload struct used for signing and parsing.
type jwtClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// RequireAuth is chi middleware that validates the auth_token cookie and injects
// AuthClaims into the request context. Returns 401 if the token is absent or invalid.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(authCookie)
		if err != nil {
			writeError(w, r, "authentication required", "UNAUTHORIZED", http.StatusUnauthorized)
			return
		}

		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(h.opts.JWTSecret), nil
		})
		if err != nil || !token.Valid || claims.Email == "" {
			writeError(w, r, "invalid or expired token", "UNAUTHORIZED", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsKey{}, &AuthClaims{Email: claims.Email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// issueToken signs a token for email and sets it as the auth cookie.
func (h *Handler) issueToken(w http.ResponseWriter, email string) error {
	now := time.Now()
	claims := &jwtClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(h.opts.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.opts.JWTSecret))
	if err != nil {
		return fmt.Errorf("token generation failed: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.opts.TokenTTL.Seconds()),
	})
	return nil
}

func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// signup handles POST /api/signup. The account language follows the
// browser's Accept-Language header.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req app.SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	acct, err := h.svc.SignUp(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if lang := locale.Match(r.Header.Get("Accept-Language")); lang != locale.English {
		if updated, err := h.svc.SetLanguage(r.Context(), acct.Email, string(lang)); err == nil {
			acct = updated
		}
	}

	if err := h.issueToken(w, acct.Email); err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSONStatus(w, http.StatusCreated, acct)
}

// login handles POST /api/login.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	acct, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if err := h.issueToken(w, acct.Email); err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, acct)
}

// logout handles POST /api/logout. It clears the cookie; account data stays.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if email := accountEmail(r); email != "" {
		_ = h.svc.Logout(r.Context(), email)
	}
	clearAuthCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
