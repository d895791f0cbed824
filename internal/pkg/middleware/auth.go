package middleware

import (
	"context"
	"net/http"
	"strings"

	apperror "gopets/internal/errors"
	"gopets/internal/pkg/httpx"
	"gopets/internal/pkg/token"
)

// ContextKey é não-exportada na prática: só este pacote grava valores com ela.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// UserClaims representa os dados do usuário extraídos do token JWT.
type UserClaims struct {
	UserID int64
	Email  string
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	scheme, tok, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}

// NewAuthMiddleware exige um Bearer token válido e anexa as claims ao contexto.
// Qualquer falha (ausente, malformado, expirado, assinatura) gera o mesmo 401.
func NewAuthMiddleware(tokenSvc TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				httpx.WriteError(w, apperror.NewUnauthorizedError(apperror.MsgInvalidCredentials))
				return
			}

			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				httpx.WriteError(w, apperror.NewUnauthorizedError(apperror.MsgInvalidCredentials))
				return
			}

			ctx := WithUserClaims(r.Context(), UserClaims{UserID: claims.UserID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth anexa as claims quando há um token válido e segue adiante em qualquer caso.
func OptionalAuth(tokenSvc TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenString, ok := bearerToken(r); ok {
				if claims, err := tokenSvc.ValidateToken(tokenString); err == nil {
					ctx := WithUserClaims(r.Context(), UserClaims{UserID: claims.UserID, Email: claims.Email})
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithUserClaims grava as claims no contexto.
func WithUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, UserClaimsKey, claims)
}

// GetUserClaimsFromContext é uma função utilitária para extrair as claims no handler.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}
