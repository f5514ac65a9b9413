package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nikhilbhutani/piccytts/internal/api/handlers"
	"github.com/nikhilbhutani/piccytts/internal/api/middleware"
	"github.com/nikhilbhutani/piccytts/internal/tts"
)

type Router struct {
	mux      *chi.Mux
	provider tts.Provider
	voices   []string
}

func NewRouter(provider tts.Provider) *Router {
	return &Router{
		mux:      chi.NewRouter(),
		provider: provider,
		voices:   tts.Voices(),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware. CORS runs before the method guard so that every
	// response, rejections included, carries the CORS headers.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetOnly)

	svcH := handlers.NewServiceHandler(rt.voices)
	r.Get("/", svcH.Index)
	r.Get("/voices", svcH.Voices)
	r.Get("/voices/", svcH.Voices)

	speechH := handlers.NewSpeechHandler(rt.provider)
	r.Get("/tts", speechH.Speak)
	r.Get("/tts/", speechH.Speak)

	r.NotFound(handlers.NotFound)

	return r
}
