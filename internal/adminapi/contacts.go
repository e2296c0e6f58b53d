package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afarenziya/smartdeals/internal/domain"
)

type contactPayload struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=1,max=500"`
	Message string `json:"message" validate:"required,min=1"`
}

// submitContact persists the inquiry and then notifies the site owner
// by mail. The mail send is best effort: its outcome is reported in
// the response but never fails the submission.
func (api *API) submitContact(c echo.Context) error {
	var payload contactPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid contact data", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid contact data", err.Error())
	}

	contact := domain.Contact{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	}
	if err := api.store.CreateContact(c.Request().Context(), &contact); err != nil {
		return serverError(c, "Failed to submit contact form", err)
	}

	emailSent := api.mailer.SendContactNotification(&contact)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Contact form submitted successfully",
		"emailSent": emailSent,
		"id":        contact.ID,
	})
}

func (api *API) listContacts(c echo.Context) error {
	contacts, err := api.store.ListContacts(c.Request().Context())
	if err != nil {
		return serverError(c, "Failed to fetch contacts", err)
	}
	return c.JSON(http.StatusOK, contacts)
}
