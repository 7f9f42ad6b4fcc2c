package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"basket/pkg/logx"
	"basket/pkg/middlewarex"
)

// NewRouter собирает HTTP-обработчик с общими middleware.
func NewRouter(s Server, masker logx.SensitiveDataMaskerInterface, logFieldMaxLen int) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
		middlewarex.Recovery,
	)

	s.RegisterRoutes(r)

	return r
}
