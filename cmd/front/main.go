package main

import (
	"net/http"
	"os"
	"time"

	"vetcare-front/internal/adapters/backend/expressapi"
	"vetcare-front/internal/adapters/backend/laravelapi"
	"vetcare-front/internal/config"
	"vetcare-front/internal/domain/auth"
	"vetcare-front/internal/domain/dashboard"
	"vetcare-front/internal/domain/owners"
	"vetcare-front/internal/domain/pets"
	"vetcare-front/internal/platform/logger"
	"vetcare-front/internal/router"
	"vetcare-front/internal/session"
	"vetcare-front/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		App:    "vetcare-front",
	})

	primary, err := laravelapi.New(cfg.Backends.PrimaryURL, cfg.Backends.Timeout)
	if err != nil {
		log.Error("cliente laravel", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	secondary, err := expressapi.New(cfg.Backends.SecondaryURL, cfg.Backends.Timeout)
	if err != nil {
		log.Error("cliente express", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	sessions := session.NewMemoryStore()

	authSvc := auth.NewService(auth.Options{
		Primary:      primary,
		Secondary:    secondary,
		Sessions:     sessions,
		DemoEmail:    cfg.Demo.Email,
		DemoPassword: cfg.Demo.Password,
		Log:          log,
	})
	petsSvc := pets.NewService(secondary.Pets(), log)
	ownersSvc := owners.NewService(secondary.Owners(), secondary.Pets(), log)
	dashSvc := dashboard.NewService(secondary.Owners(), secondary.Pets(), log)

	rnd, err := web.NewRenderer(log)
	if err != nil {
		log.Error("templates", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	h := router.NewRouter(router.Options{
		Sessions:  sessions,
		Auth:      authSvc,
		Owners:    ownersSvc,
		Pets:      petsSvc,
		Dashboard: dashSvc,
		Renderer:  rnd,
		Log:       log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Info("front escuchando", map[string]any{
		"addr":      cfg.Addr,
		"primary":   cfg.Backends.PrimaryURL,
		"secondary": cfg.Backends.SecondaryURL,
	})
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
