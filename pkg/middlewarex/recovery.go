package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"basket/pkg/errcodes"
	"basket/pkg/httpx/reply"
	"basket/pkg/logx"
	"basket/pkg/rest"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.JSON(ctx, w, http.StatusInternalServerError, rest.Error{
					Code:    rest.ErrorCode(errcodes.InternalServerError),
					Message: http.StatusText(http.StatusInternalServerError),
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
