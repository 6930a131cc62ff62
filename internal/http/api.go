package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"identity-server/internal/repository"
	"identity-server/internal/token"
	"identity-server/internal/usecase"
)

// Handler wires HTTP routes to the identity use cases.
type Handler struct {
	register *usecase.RegisterUser
	login    *usecase.LoginUser
	users    repository.UserRepository
	tokens   *token.JWTManager
	logger   *logrus.Logger
}

func NewHandler(register *usecase.RegisterUser, login *usecase.LoginUser, users repository.UserRepository, tokens *token.JWTManager, logger *logrus.Logger) *Handler {
	return &Handler{
		register: register,
		login:    login,
		users:    users,
		tokens:   tokens,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.registerUser)
			auth.POST("/login", h.loginUser)
			auth.GET("/me", h.authRequired(), h.currentUser)
		}
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// apiResponse is the JSON envelope shared by every auth endpoint.
type apiResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    any                  `json:"data,omitempty"`
	Errors  []usecase.FieldError `json:"errors,omitempty"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) registerUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  []usecase.FieldError{{Field: usecase.FieldGeneral, Message: "Request body must be valid JSON."}},
		})
		return
	}

	// Username and email are trimmed at this boundary; the password fields
	// pass through untouched so whitespace in passwords stays significant.
	outcome, err := h.register.Execute(c.Request.Context(), usecase.RegisterUserRequest{
		Username:        strings.TrimSpace(req.Username),
		Email:           strings.TrimSpace(req.Email),
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		h.serverError(c, "register user", err)
		return
	}

	if outcome.IsFailure() {
		c.JSON(http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  outcome.Err(),
		})
		return
	}

	c.JSON(http.StatusCreated, apiResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    outcome.Value(),
	})
}

func (h *Handler) loginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  []usecase.FieldError{{Field: usecase.FieldGeneral, Message: "Request body must be valid JSON."}},
		})
		return
	}

	outcome, err := h.login.Execute(c.Request.Context(), usecase.UserLoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.serverError(c, "login user", err)
		return
	}

	if outcome.IsFailure() {
		errs := outcome.Err()
		status := http.StatusBadRequest
		message := "Validation failed"
		if len(errs) == 1 && errs[0].Field == usecase.FieldGeneral {
			status = http.StatusUnauthorized
			message = "Authentication failed"
		}
		c.JSON(status, apiResponse{Success: false, Message: message, Errors: errs})
		return
	}

	c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Message: "Login successful",
		Data:    outcome.Value(),
	})
}

const ctxUserID = "userID"

func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		bearer, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(bearer) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiResponse{
				Success: false,
				Message: "Authentication required",
			})
			return
		}

		userID, err := h.tokens.Validate(strings.TrimSpace(bearer))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiResponse{
				Success: false,
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

func (h *Handler) currentUser(c *gin.Context) {
	userID := c.GetString(ctxUserID)

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		h.serverError(c, "find current user", err)
		return
	}
	if user == nil {
		// valid token for a user that no longer exists
		c.JSON(http.StatusUnauthorized, apiResponse{
			Success: false,
			Message: "Invalid or expired token",
		})
		return
	}

	c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Message: "OK",
		Data: usecase.RegisterUserResponse{
			ID:       user.ID(),
			Username: user.Username(),
			Email:    user.Email().String(),
		},
	})
}

func (h *Handler) serverError(c *gin.Context, action string, err error) {
	h.logger.WithError(err).Errorf("%s failed", action)
	c.JSON(http.StatusInternalServerError, apiResponse{
		Success: false,
		Message: "Internal server error",
		Errors:  []usecase.FieldError{{Field: usecase.FieldServer, Message: "An unexpected error occurred"}},
	})
}
