package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/core/domain"
	"github.com/homebase/household-api/internal/core/ports"
)

// AccountHandler serves the caller's own profile and credentials.
type AccountHandler struct {
	accounts ports.AccountService
	images   ImageStore
}

func NewAccountHandler(accounts ports.AccountService, images ImageStore) *AccountHandler {
	return &AccountHandler{accounts: accounts, images: images}
}

type profileRequest struct {
	FullName *string `json:"fullName"`
	Address  *string `json:"address"`
	Work     *string `json:"work"`
	Image    *string `json:"image"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required"`
}

type changeEmailRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email"`
}

// Me returns the authenticated user's profile.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	user, err := h.accounts.Me(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the caller's profile fields. The body may be JSON or
// multipart/form-data with an optional "image" file.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "User ID"
// @Param        body  body      profileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /user/{id} [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var update domain.ProfileUpdate
	if isMultipart(c) {
		update = domain.ProfileUpdate{
			FullName: formValue(c, "fullName"),
			Address:  formValue(c, "address"),
			Work:     formValue(c, "work"),
		}
		image, err := saveImage(c, h.images)
		if err != nil {
			return err
		}
		if image != "" {
			update.Image = &image
		}
	} else {
		var req profileRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		update = domain.ProfileUpdate{FullName: req.FullName, Address: req.Address, Work: req.Work, Image: req.Image}
	}

	user, err := h.accounts.UpdateProfile(c.Request().Context(), identity, c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword replaces the caller's password after verifying the current one.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "User ID"
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /user/{id}/password [put]
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accounts.ChangePassword(c.Request().Context(), identity, c.Param("id"), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Password updated successfully"})
}

// ChangeEmail moves the caller's account to a new address.
//
// @Summary      Change email
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "User ID"
// @Param        body  body      changeEmailRequest  true  "New email"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /user/{id}/email [put]
func (h *AccountHandler) ChangeEmail(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changeEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accounts.ChangeEmail(c.Request().Context(), identity, c.Param("id"), req.NewEmail)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
