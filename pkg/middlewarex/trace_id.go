package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"basket/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID reuses the caller's trace id when it is a valid xid and issues a new
// one otherwise, so arbitrary header values never reach the logs.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := xid.FromString(r.Header.Get(headerNameTraceID))
		if err != nil {
			id = xid.New()
		}

		traceID := id.String()

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
