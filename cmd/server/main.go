package main

import (
	"log"
	"net/http"
	"time"

	"lessonreserve/config"
	_ "lessonreserve/docs"
	adapteremail "lessonreserve/internal/adapters/email"
	delivery "lessonreserve/internal/delivery/http"
	"lessonreserve/internal/delivery/http/middleware"
	"lessonreserve/internal/services"
)

// @title Lesson Reservation API
// @version 1.0
// @description Weekly lesson timetable and reservation intake. A submission notifies the facility staff (CC'ing the chosen instructors) and sends the applicant a confirmation; nothing is persisted.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v", cfg.Timezone, err)
	}

	mailer, err := adapteremail.NewMailer(adapteremail.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: adapteremail.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
		SendGrid: adapteremail.SendGridConfig{
			APIKey: cfg.SendGridAPIKey,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create mailer: %v", err)
	}

	reservationSvc := services.NewReservationService(
		mailer,
		adapteremail.NewTemplateRenderer(),
		services.DefaultInstructorDirectory(),
		cfg.StaffAddress,
		logger,
		cfg.DispatchTimeout,
	)
	timetableSvc := services.NewTimetableService(services.DefaultWeekScheduleRule())

	router := delivery.NewRouter(
		delivery.NewReservationController(reservationSvc, logger),
		delivery.NewTimetableController(timetableSvc, loc, logger),
	)
	handler := middleware.CORS(middleware.LoggingMiddleware(logger, router))

	logger.Info("server listening",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"mail_provider", cfg.MailProvider,
		"timezone", cfg.Timezone,
	)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
