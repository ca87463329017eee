package http

import (
	"net/http"

	slack_controller "github.com/deskhound/deskhound/pkg/controller/slack"
	"github.com/deskhound/deskhound/pkg/domain/interfaces"
	slack_model "github.com/deskhound/deskhound/pkg/domain/model/slack"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	router    *chi.Mux
	slackCtrl *slack_controller.Controller
	verifier  slack_model.PayloadVerifier
}

type Options func(*Server)

func WithSlackVerifier(verifier slack_model.PayloadVerifier) Options {
	return func(s *Server) {
		s.verifier = verifier
	}
}

type UseCase interface {
	interfaces.SlackEventUsecases
	interfaces.SlackInteractionUsecases
}

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:    r,
		slackCtrl: slack_controller.New(uc, uc),
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	r.Route("/hooks", func(r chi.Router) {
		r.Route("/slack", func(r chi.Router) {
			r.Use(verifySlackRequest(s.verifier))
			r.Post("/event", slackEventHandler(s.slackCtrl))
			r.Post("/interaction", slackInteractionHandler(s.slackCtrl))
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			handleError(w, r, err)
		}
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
