package http

import (
	"errors"

	"github.com/dmitrijs2005/orgkeeper/internal/common"
	"github.com/dmitrijs2005/orgkeeper/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Registration unsuccessful")
	}

	s.logger.Info(c.UserContext(), "Registration request", "email", req.Email)

	result, err := s.users.Register(c.UserContext(), services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			return unprocessable(c, verr)
		case errors.Is(err, common.ErrorAlreadyExists):
			return unprocessable(c, &services.ValidationError{Fields: []services.FieldError{
				{Field: "email", Message: "Email already exists"},
			}})
		default:
			s.logger.Error(c.UserContext(), "registration failed", "error", err.Error())
			return badRequest(c, "Registration unsuccessful")
		}
	}

	s.logger.Info(c.UserContext(), "Registered", "userId", result.User.ID)

	return c.Status(fiber.StatusCreated).JSON(successResponse{
		Status:  "success",
		Message: "Registration successful",
		Data:    authData{AccessToken: result.AccessToken, User: toUserPayload(result.User)},
	})
}

func (s *Server) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Login unsuccessful")
	}

	result, err := s.users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return unauthorized(c)
		}
		s.logger.Error(c.UserContext(), "login failed", "error", err.Error())
		return badRequest(c, "Login unsuccessful")
	}

	return c.Status(fiber.StatusOK).JSON(successResponse{
		Status:  "success",
		Message: "Login successful",
		Data:    authData{AccessToken: result.AccessToken, User: toUserPayload(result.User)},
	})
}

func (s *Server) listOrganisations(c *fiber.Ctx) error {
	orgs, err := s.organisations.List(c.UserContext(), authenticatedUserID(c))
	if err != nil {
		s.logger.Error(c.UserContext(), "listing organisations failed", "error", err.Error())
		return badRequest(c, "Error fetching organisations")
	}

	payload := make([]organisationPayload, 0, len(orgs))
	for _, org := range orgs {
		payload = append(payload, toOrganisationPayload(org))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse{
		Status:  "success",
		Message: "Organisations fetched successfully",
		Data:    organisationListData{Organisations: payload},
	})
}

func (s *Server) createOrganisation(c *fiber.Ctx) error {
	var req createOrganisationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Organisation creation unsuccessful")
	}

	org, err := s.organisations.Create(c.UserContext(), authenticatedUserID(c), req.Name, req.Description)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return unprocessable(c, verr)
		}
		s.logger.Error(c.UserContext(), "organisation creation failed", "error", err.Error())
		return badRequest(c, "Organisation creation unsuccessful")
	}

	return c.Status(fiber.StatusCreated).JSON(successResponse{
		Status:  "success",
		Message: "Organisation created successfully",
		Data:    toOrganisationPayload(org),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
		Status:     "Bad request",
		Message:    message,
		StatusCode: fiber.StatusBadRequest,
	})
}

func unprocessable(c *fiber.Ctx, verr *services.ValidationError) error {
	fields := make([]fieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, fieldError{Field: f.Field, Message: f.Message})
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(validationResponse{Errors: fields})
}
