package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"happenly/internal/adapters/auth"
	"happenly/internal/adapters/email"
	deliveryhttp "happenly/internal/delivery/http"
	"happenly/internal/delivery/http/controllers"
	"happenly/internal/repository/postgres"
	"happenly/internal/services"
	"happenly/internal/session"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
}

func runServe(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	if servePort != "" {
		a.cfg.Port = servePort
	}

	mailer, err := email.NewMailer(a.logger, email.MailerConfig{
		Provider:    a.cfg.Email.Provider,
		FromAddress: a.cfg.Email.FromAddress,
		FromName:    a.cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             a.cfg.Email.AWSRegion,
			AccessKeyID:        a.cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    a.cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: a.cfg.Email.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	emailService := services.NewEmailService(a.logger, mailer, email.NewTemplateRenderer())

	state := session.NewState()
	unsubscribe := state.Subscribe(func(snap session.Snapshot) {
		if snap.User == nil {
			a.logger.Info("auth state changed", "signed_in", false)
			return
		}
		a.logger.Info("auth state changed", "signed_in", true, "user_id", snap.User.ID)
	})
	defer unsubscribe()

	authService := services.NewAuthService(
		a.logger,
		postgres.NewUserRepository(a.db),
		postgres.NewAuthSessionRepository(a.db),
		auth.NewBcryptHasher(0),
		auth.NewJWTIssuer(a.cfg.JWTSecret),
		auth.NewJWTVerifier(a.cfg.JWTSecret),
		a.cfg.JWTExpiry,
		emailService,
		state,
	)
	eventService, _ := a.eventService()

	router := deliveryhttp.NewRouter(a.logger,
		controllers.NewEventController(a.logger, eventService),
		controllers.NewAuthController(a.logger, authService),
		authService,
	)
	srv := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      deliveryhttp.NewHandler(a.logger, a.cfg.CORSAllowedOrigins, router),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", "addr", srv.Addr, "env", a.cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
