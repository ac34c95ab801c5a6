package httpx

import (
	"context"
	"net/http"

	"github.com/fixhire/fixhire-api/internal/domain/model"
)

// actorKey is an unexported context key type to avoid collisions across packages.
type actorKey struct{}

// sessionTokenKey carries the raw bearer token alongside the actor so logout
// can revoke the session it rode in on.
type sessionTokenKey struct{}

// SetActorInContext returns a child context carrying the authenticated actor.
func SetActorInContext(ctx context.Context, actor model.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor from context and whether one is present.
func ActorFromContext(ctx context.Context) (model.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(model.Actor)
	return actor, ok
}

// SetSessionTokenInContext returns a child context carrying the bearer token.
func SetSessionTokenInContext(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

// SessionTokenFromContext returns the bearer token behind the request, if any.
func SessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey{}).(string)
	return token
}

// requireActor fetches the actor set by RequireAuth, writing a 401 envelope
// when a route was somehow reached without it.
func requireActor(w http.ResponseWriter, r *http.Request) (model.Actor, bool) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, Envelope{Message: "Authentication required."})
	}
	return actor, ok
}
