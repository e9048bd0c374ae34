package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
	"github.com/sells-group/outreach-cli/internal/pipeline"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a webhook server that enriches one lead per request",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := newEnv(cfg.Compose.PersonalOpener)
		if err != nil {
			return err
		}
		enricher := pipeline.NewEnricher(env.prober, env.composer)

		r := chi.NewRouter()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/enrich", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Company      string `json:"company"`
				Website      string `json:"website"`
				ContactName  string `json:"contact_name"`
				ContactEmail string `json:"contact_email"`
				Location     string `json:"location"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}
			if body.Website == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "website is required"})
				return
			}

			requestID := uuid.NewString()
			log := zap.L().With(
				zap.String("request_id", requestID),
				zap.String("website", body.Website),
			)
			log.Info("serve: enrichment requested")

			lead := model.Lead{
				Company:      body.Company,
				Website:      body.Website,
				ContactName:  body.ContactName,
				ContactEmail: body.ContactEmail,
				Location:     body.Location,
			}

			row, err := enricher.Enrich(req.Context(), lead)
			if err != nil {
				log.Error("serve: enrichment failed", zap.Error(err))
				writeJSON(w, http.StatusBadGateway, map[string]string{
					"request_id": requestID,
					"error":      "completion failed",
				})
				return
			}

			log.Info("serve: enrichment complete",
				zap.String("company", lead.Company),
				zap.Bool("scrape_error", row.ScrapeError != ""),
			)
			writeJSON(w, http.StatusOK, map[string]any{
				"request_id": requestID,
				"result":     row,
			})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Shutdown(context.Background())
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
