package cvs

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/masterchiefff/jobfit-server/internal/extract"
	"github.com/masterchiefff/jobfit-server/internal/shared/server/middleware"
	"github.com/masterchiefff/jobfit-server/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

const mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches CV routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
	rg.GET("/cvs", h.list)
	rg.GET("/cvs/:id", h.get)
	rg.DELETE("/cvs/:id", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("cv")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file uploaded.", nil)
		return
	}

	mimeType := strings.ToLower(strings.TrimSpace(strings.Split(fileHeader.Header.Get("Content-Type"), ";")[0]))
	switch mimeType {
	case "text/plain", "application/pdf", mimeDOCX:
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "Only .docx, .txt, and .pdf files are allowed!", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	text, err := extract.Text(c.Request.Context(), data, mimeType, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Only .docx, .txt, and .pdf files are allowed!", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "processing_error", "Error processing file: "+err.Error(), nil)
		return
	}

	payload, err := h.Svc.Analyze(c.Request.Context(), userID, fileHeader.Filename, text)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "processing_error", "Error processing file: "+err.Error(), nil)
		return
	}

	respond.JSON(c, http.StatusOK, payload)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	records, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list cvs", nil)
		}
		return
	}

	resp := make([]CVResponse, 0, len(records))
	for _, cv := range records {
		resp = append(resp, toResponse(cv))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	cv, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "cv not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch cv", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"cvId":      cv.ID,
		"filename":  cv.Filename,
		"content":   cv.Content,
		"createdAt": cv.CreatedAt,
	})
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "cv not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete cv", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"message": "CV deleted."})
}
