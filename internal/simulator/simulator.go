// Package simulator runs an in-process wallet backend for development and
// tests. It speaks the same REST surface the client talks to, keeps all
// state in memory and delivers one-time codes through the log instead of
// SMS.
package simulator

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Config tunes the simulated backend.
type Config struct {
	// JWTSecret signs issued access tokens.
	JWTSecret string
	// TokenTTL bounds how long an issued token stays valid.
	TokenTTL time.Duration
	// Currency and Blockchain label every account the simulator creates.
	Currency   string
	Blockchain string
	// SeedBalance is the opening balance of newly registered accounts.
	SeedBalance float64
}

// DefaultConfig returns the settings used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		JWTSecret:   "dev-only-secret",
		TokenTTL:    24 * time.Hour,
		Currency:    "NGN",
		Blockchain:  "stellar",
		SeedBalance: 25000,
	}
}

// Server is the simulated wallet backend.
type Server struct {
	cfg    Config
	repo   *repository
	logger *slog.Logger
	app    *fiber.App
}

// New builds the simulator with its routes wired.
func New(cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		repo:   newRepository(),
		logger: logger,
	}

	app := fiber.New(fiber.Config{
		AppName:      "walletsim",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(s.requestLogger)

	// auth routes must be registered before the bearer middleware below so
	// they stay reachable without a token
	auth := app.Group("/api/auth")
	auth.Post("/send-otp", s.sendOTP)
	auth.Post("/verify-otp", s.verifyOTP)
	auth.Post("/register", s.register)
	auth.Post("/login", s.login)

	protected := app.Group("/api", s.bearerAuth)
	protected.Get("/user/dashboard/:phone", s.dashboard)
	protected.Get("/user-info/:phone", s.userInfo)
	protected.Post("/user-info/:phone", s.updateUserInfo)
	protected.Get("/transactions", s.transactions)
	protected.Get("/transactions/:address", s.transactionsByAddress)

	s.app = app
	return s
}

// App exposes the underlying fiber application, used by tests via app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the given address until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Listener serves on an already-bound listener; handy when the caller wants
// an ephemeral port.
func (s *Server) Listener(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// OTP reports the code most recently issued to a phone number. Tests use it
// in place of reading an SMS.
func (s *Server) OTP(phoneNumber string) string {
	return s.repo.otpCode(phoneNumber)
}

// requestLogger records one line per handled request.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.logger.Info("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)
	return err
}

// errorHandler renders every error as the {"error": ...} JSON shape the
// client expects.
func errorHandler(c *fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
