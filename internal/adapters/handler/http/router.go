package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewHandler(voteHandler *VoteHandler, resultsHandler *ResultsHandler, summaryHandler *SummaryHandler, adminHandler *AdminHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(SessionMiddleware)

		r.Post("/votes", voteHandler.SubmitVote)
		r.Get("/results", resultsHandler.GetResults)
		r.Get("/comments", resultsHandler.GetComments)
		r.Get("/summary", summaryHandler.GetSummary)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/reset", adminHandler.ResetVotes)
			r.Get("/stats", adminHandler.GetStats)
		})
	})

	return r
}
