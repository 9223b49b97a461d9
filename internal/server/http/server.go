// Package http exposes the account service over a JSON HTTP API.
package http

import (
	"context"
	"time"

	"github.com/dmitrijs2005/orgkeeper/internal/logging"
	"github.com/dmitrijs2005/orgkeeper/internal/server/models"
	"github.com/dmitrijs2005/orgkeeper/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

// UserService is the part of the account workflows the transport needs.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

// OrganisationService is the tenancy surface behind the access gate.
type OrganisationService interface {
	List(ctx context.Context, ownerID string) ([]*models.Organisation, error)
	Create(ctx context.Context, ownerID, name, description string) (*models.Organisation, error)
}

type Server struct {
	app           *fiber.App
	address       string
	logger        logging.Logger
	users         UserService
	organisations OrganisationService
	jwtSecret     []byte
}

func NewServer(a string, l logging.Logger, us UserService, os OrganisationService, secretKey string) *Server {
	s := &Server{
		address:       a,
		logger:        l.With("module", "http_server"),
		users:         us,
		organisations: os,
		jwtSecret:     []byte(secretKey),
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Post("/auth/register", s.register)
	app.Post("/auth/login", s.login)

	api := app.Group("/api", s.accessTokenMiddleware)
	api.Get("/organisations", s.listOrganisations)
	api.Post("/organisations", s.createOrganisation)

	s.app = app
	return s
}

func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.ShutdownWithTimeout(5 * time.Second)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	// starts accepting incoming connections
	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	return nil
}
