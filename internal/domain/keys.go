package domain

import "context"

type CtxKey string

const (
	KeyUsername  CtxKey = "Username"
	KeyRequestID CtxKey = "RequestID"
)

// UsernameFromContext extracts the session username placed on the context by
// the auth middleware. ok is false when the request carries no session.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(KeyUsername).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
