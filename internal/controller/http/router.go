package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handlers interface {
	Ping(w http.ResponseWriter, r *http.Request)

	GetOrder(w http.ResponseWriter, r *http.Request)
	GetPickupOptions(w http.ResponseWriter, r *http.Request)
	SetQuantity(w http.ResponseWriter, r *http.Request)
	SetFlavor(w http.ResponseWriter, r *http.Request)
	SetDate(w http.ResponseWriter, r *http.Request)
	ResetOrder(w http.ResponseWriter, r *http.Request)

	GetAuth(w http.ResponseWriter, r *http.Request)
	SetEmail(w http.ResponseWriter, r *http.Request)
	SetPassword(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

func InitRoutes(r *chi.Mux, h Handlers) *chi.Mux {
	r.Get("/ping", h.Ping)

	r.Route("/api/order", func(r chi.Router) {
		r.Get("/", h.GetOrder)
		r.Get("/pickup-options", h.GetPickupOptions)
		r.Post("/quantity", h.SetQuantity)
		r.Post("/flavor", h.SetFlavor)
		r.Post("/date", h.SetDate)
		r.Post("/reset", h.ResetOrder)
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Get("/", h.GetAuth)
		r.Post("/email", h.SetEmail)
		r.Post("/password", h.SetPassword)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	return r
}
