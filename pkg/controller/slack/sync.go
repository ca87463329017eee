package slack

import "context"

type ctxSyncKey struct{}

// WithSync makes dispatch run handlers inline instead of in a goroutine.
// Used by tests that need to observe handler effects deterministically.
func WithSync(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxSyncKey{}, true)
}

func IsSync(ctx context.Context) bool {
	v := ctx.Value(ctxSyncKey{})
	if v == nil {
		return false
	}
	return v.(bool)
}
