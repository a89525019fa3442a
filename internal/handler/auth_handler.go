package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopgate/backend/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	token, err := h.auth.Login(c.Request().Context(), req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
