package handler

import (
	"context"
	"go-lists-api/common"
	"go-lists-api/model"
	"net/http"
	"strings"
)

type contextKey string

const identityKey contextKey = "identity"

const (
	MsgNoToken      = "No Token, authorization denied"
	MsgInvalidToken = "Token is not valid"
)

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity attached by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}

// AuthMiddleware authenticates requests by the token found in a single
// configured header. A missing token is a 400, a bad one a 401; in both
// cases the wrapped handler is not run.
type AuthMiddleware struct {
	tokens TokenVerifier
	header string
}

func NewAuthMiddleware(tokens TokenVerifier, header string) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, header: header}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(m.header))
		// Tolerate clients that send the token in bearer form. The scheme
		// alone carries no credential.
		if scheme, rest, ok := strings.Cut(raw, " "); ok && strings.EqualFold(scheme, "bearer") {
			raw = strings.TrimSpace(rest)
		} else if strings.EqualFold(raw, "bearer") {
			raw = ""
		}

		if raw == "" {
			common.NewAppError(http.StatusBadRequest, MsgNoToken, nil).Send(w)
			return
		}

		identity, err := m.tokens.Verify(raw)
		if err != nil {
			common.NewAppError(http.StatusUnauthorized, MsgInvalidToken, err).Send(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// requireIdentity is used by handlers mounted behind AuthMiddleware.
func requireIdentity(r *http.Request) (model.Identity, *common.AppError) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		return model.Identity{}, common.NewAppError(http.StatusUnauthorized, MsgInvalidToken, nil)
	}
	return identity, nil
}
