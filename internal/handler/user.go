package handler

import (
	"errors"
	"net/http"

	"team-membership-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы регистрации пользователей
// и обработки их заявок.
type UserHandler struct {
	*BaseHandler
	registrationUseCase domain.RegistrationUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(registrationUseCase domain.RegistrationUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler:         NewBaseHandler(logger),
		registrationUseCase: registrationUseCase,
	}
}

// PostRegister обрабатывает регистрацию нового пользователя.
func (h *UserHandler) PostRegister(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind register request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "register_user").WithField("email", req.Email)
	logEntry.Info("Registering user")

	result, err := h.registrationUseCase.RegisterUser(c.Request().Context(), domain.RegisterUserRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		TeamID:    req.TeamID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			logEntry.Info("Email already registered")
		} else {
			logEntry.WithError(err).Error("Failed to register user")
		}
		return h.respondError(c, err)
	}

	logEntry.WithField("user_id", result.User.ID).Info("User registered successfully")
	return c.JSON(http.StatusCreated, RegisterResponse{
		User:       toAPIUser(result.User),
		Assignment: toAPIAssignment(result.Assignment),
	})
}

// GetPendingUsers обрабатывает запрос пользователей с необработанной заявкой.
func (h *UserHandler) GetPendingUsers(c echo.Context) error {
	logEntry := h.logRequest(c, "get_pending_users")

	users, err := h.registrationUseCase.GetPendingUsers(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get pending users")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": toAPIUsers(users),
	})
}

// PostProcessUserRequest обрабатывает одобрение или отклонение заявки.
func (h *UserHandler) PostProcessUserRequest(c echo.Context) error {
	userID := c.Param("userId")

	var req ProcessUserRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind process request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "process_user_request").WithFields(logrus.Fields{
		"user_id": userID,
		"status":  req.Status,
	})
	logEntry.Info("Processing user request")

	result, err := h.registrationUseCase.ProcessUserRequest(c.Request().Context(), userID, req.Status)
	if err != nil {
		logEntry.WithError(err).Error("Failed to process user request")
		return h.respondError(c, err)
	}

	logEntry.Info("User request processed")
	return c.JSON(http.StatusOK, ProcessUserResponse{
		User:    toAPIUser(result.User),
		Message: result.Message,
	})
}
