package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"autoservice-backend/internal/config"
	"autoservice-backend/internal/es"
	"autoservice-backend/internal/events"
	"autoservice-backend/internal/handlers"
	"autoservice-backend/internal/logging"
	"autoservice-backend/internal/middleware/loggingmw"
	"autoservice-backend/internal/session"
	"autoservice-backend/internal/store"
	httpserver "autoservice-backend/internal/transport/http"
)

const partsIndex = "parts"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("Ошибка инициализации БД: %v", err)
	}

	st := store.New(db)
	if err := st.SeedParts(); err != nil {
		log.Fatalf("Ошибка заполнения каталога: %v", err)
	}

	sessions := &session.Manager{Secret: []byte(configuration.SESSION_SECRET)}

	var producer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
		logger.Info("kafka producer enabled", "address", configuration.KAFKA_ADDRESS)
	}

	searchHandler := &handlers.SearchHandler{Index: partsIndex}
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatalf("Ошибка подключения к Elasticsearch: %v", err)
		}
		searchHandler.ES = esClient

		parts, err := st.ListParts()
		if err != nil {
			log.Fatal(err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := es.IndexParts(ctx, esClient, partsIndex, parts); err != nil {
			logger.Error("index parts", "err", err)
		}
		cancel()
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		Store:              st,
		PartsHandler:       &handlers.PartsHandler{Store: st},
		UserHandler:        &handlers.UserHandler{Store: st, Sessions: sessions, Producer: producer},
		OrderHandler:       &handlers.OrderHandler{Store: st, Sessions: sessions, Producer: producer},
		AppointmentHandler: &handlers.AppointmentHandler{Store: st, Sessions: sessions, Producer: producer},
		CarHandler:         &handlers.CarHandler{Store: st, Sessions: sessions},
		ChatHandler:        &handlers.ChatHandler{Store: st, Sessions: sessions, Producer: producer},
		StatsHandler:       &handlers.StatsHandler{},
		SearchHandler:      searchHandler,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()
	logger.Info("server started", "port", configuration.PORT)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
