package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const htmxKey contextKey = "htmx"

// HTMXInfo carries the htmx request headers relevant to rendering.
type HTMXInfo struct {
	Request bool
	Boosted bool
	Target  string
	Trigger string
}

// HTMX records whether the request was issued by htmx. Responses vary on
// HX-Request because the same URL renders either a fragment or a full page.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := HTMXInfo{
			Request: r.Header.Get("HX-Request") == "true",
			Boosted: r.Header.Get("HX-Boosted") == "true",
			Target:  r.Header.Get("HX-Target"),
			Trigger: r.Header.Get("HX-Trigger"),
		}
		w.Header().Add("Vary", "HX-Request")
		ctx := context.WithValue(r.Context(), htmxKey, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IsHTMX(r *http.Request) bool {
	info := HTMXFrom(r)
	return info.Request && !info.Boosted
}

func HTMXFrom(r *http.Request) HTMXInfo {
	if v, ok := r.Context().Value(htmxKey).(HTMXInfo); ok {
		return v
	}
	return HTMXInfo{}
}
