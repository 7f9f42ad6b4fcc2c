package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"basket/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1/basket", func(r chi.Router) {
		r.Get("/", handler(s.getV1Basket))
		r.Put("/draft", handler(s.putV1Draft))

		r.Route("/items", func(r chi.Router) {
			r.Post("/", handler(s.postV1Item))
			r.Delete("/{article}", handler(s.deleteV1Item))
		})

		r.Route("/discount", func(r chi.Router) {
			r.Post("/", handler(s.postV1Discount))
			r.Delete("/", handler(s.deleteV1Discount))
			r.Put("/input", handler(s.putV1DiscountInput))
		})

		r.Post("/selection/{article}", handler(s.postV1Selection))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
