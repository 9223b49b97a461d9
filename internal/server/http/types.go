package http

import "github.com/dmitrijs2005/orgkeeper/internal/server/models"

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createOrganisationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type successResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type errorResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Errors []fieldError `json:"errors"`
}

type userPayload struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type authData struct {
	AccessToken string      `json:"accessToken"`
	User        userPayload `json:"user"`
}

type organisationPayload struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type organisationListData struct {
	Organisations []organisationPayload `json:"organisations"`
}

func toUserPayload(u *models.User) userPayload {
	return userPayload{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

func toOrganisationPayload(o *models.Organisation) organisationPayload {
	return organisationPayload{
		OrgID:       o.ID,
		Name:        o.Name,
		Description: o.Description,
	}
}
