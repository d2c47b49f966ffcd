package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"reelvault/api"
	"reelvault/config"
	"reelvault/handlers"
	"reelvault/internal/database"
	"reelvault/internal/notify"
	"reelvault/services/metadata"
	"reelvault/services/watchlist"
	"reelvault/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}

	if cfg.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}))
	}

	db, err := database.NewDB(database.Config{DatabasePath: cfg.DatabasePath})
	if err != nil {
		log.Fatalf("[main] failed to open database: %v", err)
	}
	defer db.Close()
	log.Printf("[main] database ready at %s", cfg.DatabasePath)

	broadcaster := notify.NewBroadcaster()

	metadataSvc := metadata.NewService(metadata.Config{
		TMDBBaseURL:    cfg.TMDBBaseURL,
		TMDBAPIKey:     cfg.TMDBAPIKey,
		Language:       cfg.Language,
		VideoSearchURL: cfg.VideoSearchURL,
		VideoSearchKey: cfg.VideoSearchKey,
		RequestTimeout: cfg.RequestTimeout,
	})
	watchlistSvc := watchlist.NewService(db.Watchlist, broadcaster)

	// Log watchlist changes; real observers (list screens) re-query on
	// the same signal.
	changes, cancelChanges := broadcaster.Subscribe()
	defer cancelChanges()
	go func() {
		for event := range changes {
			log.Printf("[main] broadcast received: %s", event)
		}
	}()

	catalogHandler := handlers.NewCatalogHandler(metadataSvc)
	detailsHandler := handlers.NewDetailsHandler(metadataSvc)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistSvc)

	router := utils.NewRouter()
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(api.RequestLogMiddleware())

	apiRouter.HandleFunc("/catalog/trending/{mediaType}", catalogHandler.Trending).Methods(http.MethodGet)
	apiRouter.HandleFunc("/catalog/popular", catalogHandler.Popular).Methods(http.MethodGet)
	apiRouter.HandleFunc("/catalog/top-rated", catalogHandler.TopRated).Methods(http.MethodGet)
	apiRouter.HandleFunc("/catalog/upcoming", catalogHandler.Upcoming).Methods(http.MethodGet)
	apiRouter.HandleFunc("/catalog/search", catalogHandler.Search).Methods(http.MethodGet)
	apiRouter.HandleFunc("/details", detailsHandler.GetDetailsBundle).Methods(http.MethodGet)

	// Mutating watchlist routes are rate limited per IP
	limiter := api.NewIPRateLimiter(rate.Every(time.Second), 10)
	limit := api.RateLimitMiddleware(limiter)
	apiRouter.HandleFunc("/watchlist", watchlistHandler.List).Methods(http.MethodGet)
	apiRouter.Handle("/watchlist", limit(http.HandlerFunc(watchlistHandler.Add))).Methods(http.MethodPost)
	apiRouter.Handle("/watchlist/{id}", limit(http.HandlerFunc(watchlistHandler.Remove))).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/watchlist/{id}/exists", watchlistHandler.Exists).Methods(http.MethodGet)
	apiRouter.HandleFunc("/watchlist", watchlistHandler.Options).Methods(http.MethodOptions)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[main] listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[main] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown error: %v", err)
	}
}
