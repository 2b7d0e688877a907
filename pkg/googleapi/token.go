package googleapi

import "context"

type tokenContextKey struct{}

// WithToken binds a Google OAuth access token to the context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext extracts the access token bound by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}

// ContextTokenSource resolves the access token from the request context.
// Each API caller brings their own token, so nothing is shared between
// requests.
type ContextTokenSource struct{}

// Token implements TokenSource.
func (ContextTokenSource) Token(ctx context.Context) (string, error) {
	token, ok := TokenFromContext(ctx)
	if !ok {
		return "", ErrUnauthenticated
	}
	return token, nil
}
