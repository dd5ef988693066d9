package middleware

import (
	"context"
	"net/http"

	"kuugen/internal/messages"
)

type localeContextKey struct{}

// LocaleKey indexes the resolved locale in the request context.
var LocaleKey = localeContextKey{}

// Locale resolves the response language for each request: an explicit
// X-Locale header wins, then Accept-Language, then the default. Only the
// locales the message catalog carries are ever produced.
func Locale(defaultLocale string) func(http.Handler) http.Handler {
	if defaultLocale == "" {
		defaultLocale = "ja"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested := r.Header.Get("X-Locale")
			if requested == "" {
				requested = r.Header.Get("Accept-Language")
			}
			locale := defaultLocale
			if requested != "" {
				locale = messages.MatchLocale(requested)
			}
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleFromContext returns the resolved locale, defaulting to Japanese.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return "ja"
}
