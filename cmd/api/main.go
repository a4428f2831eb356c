package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schedule-board/config"
	_ "schedule-board/docs" // Swagger docs
	"schedule-board/internal/httpserver"
	"schedule-board/internal/middleware"
	"schedule-board/internal/notify"
	"schedule-board/internal/schedule"
	scheduleUC "schedule-board/internal/schedule/usecase"
	"schedule-board/pkg/clock"
	"schedule-board/pkg/gcalendar"
	"schedule-board/pkg/gemini"
	"schedule-board/pkg/log"
)

// @title       Schedule Board API
// @description Office scheduling and task board: daily appointment views, intake, task tracking, and image-based schedule extraction.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Schedule Board...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini extraction client (optional)
	var llm scheduleUC.Extractor
	if cfg.Gemini.APIKey != "" {
		client := gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			client.SetModel(cfg.Gemini.Model)
		}
		llm = client
		logger.Infof(ctx, "Gemini extraction enabled with model %s", client.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, image extraction disabled")
	}

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Clock:            clock.Real(),
		Notifier:         notify.NewMockNotifier(logger),
		LLM:              llm,
		Calendar:         calendarClient,
		Timezone:         cfg.Schedule.Timezone,
		CalendarID:       cfg.GoogleCalendar.CalendarID,
		SeedAppointments: schedule.SeedData(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	mw := middleware.New(logger, cfg)
	if err := httpServer.Run(mw); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
