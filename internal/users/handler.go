package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masterchiefff/jobfit-server/internal/shared/server/middleware"
	"github.com/masterchiefff/jobfit-server/internal/shared/server/respond"
)

const maxProfileImageSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches auth and profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register/step1", h.registerStep1)
	rg.POST("/auth/register/step2", h.registerStep2)
	rg.POST("/auth/register/upload-profile-image/:userId", h.uploadProfileImage)
	rg.POST("/auth/login", h.login)
	rg.GET("/me", h.me)
}

type registerStep1Request struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *Handler) registerStep1(c *gin.Context) {
	var req registerStep1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	token, err := h.Svc.BeginRegistration(c.Request.Context(), req.Username, req.Email, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicate):
			respond.Error(c, http.StatusBadRequest, "duplicate", "Username already exists. Please choose another one.", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "username and a valid email are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start registration", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"message":           "Step 1 completed successfully",
		"registrationToken": token,
	})
}

type registerStep2Request struct {
	RegistrationToken string `json:"registrationToken"`
	PhoneNumber       string `json:"phoneNumber"`
	Country           string `json:"country"`
	ZipCode           string `json:"zipCode"`
	Password          string `json:"password"`
}

func (h *Handler) registerStep2(c *gin.Context) {
	var req registerStep2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.RegistrationToken == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No user data found for this session.", nil)
		return
	}

	user, err := h.Svc.CompleteRegistration(c.Request.Context(), req.RegistrationToken, req.PhoneNumber, req.Country, req.ZipCode, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicate):
			respond.Error(c, http.StatusBadRequest, "duplicate", "Username already exists. Please choose another one.", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create user", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"userId":  user.ID,
	})
}

func (h *Handler) uploadProfileImage(c *gin.Context) {
	userID := c.Param("userId")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxProfileImageSize)

	fileHeader, err := c.FormFile("profileImage")
	if err != nil {
		respond.JSON(c, http.StatusOK, gin.H{"message": "No profile image uploaded. Proceeding without it."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	storageKey, err := h.Svc.SaveProfileImage(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Error uploading file: "+err.Error(), nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"message":         "Profile image uploaded successfully",
		"profileImageKey": storageKey,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	user, token, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrBadCredentials):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "invalid username or password", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "username and password are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to log in", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
	})
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, user)
}
