package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aduvalf/harmonie-site/internal/cache"
	"github.com/aduvalf/harmonie-site/internal/config"
	sitehttp "github.com/aduvalf/harmonie-site/internal/http"
	"github.com/aduvalf/harmonie-site/internal/mail"
	"github.com/aduvalf/harmonie-site/internal/service"
	"github.com/aduvalf/harmonie-site/internal/storage/minio"
	"github.com/aduvalf/harmonie-site/internal/storage/postgres"
	"github.com/aduvalf/harmonie-site/web"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting harmonie-site", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	store, err := postgres.New(rootCtx, cfg.DB.DatabaseURL)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	svc := service.New(store, cfg)

	// SMTP опционален: без него magic-link остаётся доступным через debug_link вне prod.
	if cfg.SMTP.Host != "" {
		mailer, err := mail.NewSMTP(cfg.SMTP)
		if err != nil {
			log.Error("mailer_init_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		svc.SetMailer(mailer)
	} else {
		log.Warn("mailer_disabled")
	}

	images, err := minio.New(rootCtx, cfg.S3, cfg.Upload)
	if err != nil {
		log.Error("image_storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	svc.SetImageStorage(images)

	// Кеш страниц тоже опционален: без Redis сайт просто рендерит каждый запрос.
	var pages cache.PageCache
	if cfg.Redis.RedisURL != "" {
		pages, err = cache.NewRedisCache(cfg.Redis.RedisURL, "", cfg.Redis.PageTTL)
		if err != nil {
			log.Error("page_cache_init_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if cerr := pages.Close(); cerr != nil {
				log.Warn("page_cache_close_failed", slog.String("err", cerr.Error()))
			}
		}()
		svc.SetPageCache(pages)
	} else {
		log.Warn("page_cache_disabled")
	}

	tmpl, err := web.Templates()
	if err != nil {
		log.Error("templates_parse_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	siteHandler := sitehttp.NewRouter(svc, cfg, tmpl, sitehttp.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Service,
		Pages:   pages,
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", siteHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("site_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
