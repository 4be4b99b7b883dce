package audits

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"seopulse-backend/internal/shared/server/middleware"
	"seopulse-backend/internal/shared/server/respond"
)

const (
	maxUploadSize = 20 << 20 // 20MB across the whole batch
	maxBatchFiles = 10
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches audit routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/audits", h.create)
	rg.POST("/audits/from-s3", h.createFromS3)
	rg.GET("/audits", h.list)
	rg.GET("/audits/compare", h.compare)
	rg.GET("/audits/:id", h.get)
	rg.GET("/audits/:id/export", h.export)
}

func (h *Handler) create(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart form is required", nil)
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		fileHeaders = form.File["file"]
	}
	if len(fileHeaders) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least one file is required", nil)
		return
	}
	if len(fileHeaders) > maxBatchFiles {
		respond.Error(c, http.StatusBadRequest, "validation_error", "too many files in one batch", nil)
		return
	}

	if len(fileHeaders) == 1 {
		file, err := fileHeaders[0].Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
			return
		}
		defer file.Close()

		audit, err := h.Svc.AnalyzeUpload(c.Request.Context(), ownerID, fileHeaders[0].Filename, file)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			case audit.Status == StatusFailed:
				respond.Error(c, http.StatusUnprocessableEntity, "unreadable_file", err.Error(), gin.H{"auditId": audit.ID})
			default:
				respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze upload", nil)
			}
			return
		}
		respond.JSON(c, http.StatusCreated, toResponse(audit))
		return
	}

	files := make([]BatchFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		fh := fh
		files = append(files, BatchFile{
			Name: fh.Filename,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		})
	}

	items := h.Svc.AnalyzeBatch(c.Request.Context(), ownerID, files)
	resp := make([]batchItemResponse, 0, len(items))
	for _, item := range items {
		out := batchItemResponse{FileName: item.FileName}
		if item.Err != nil {
			out.Error = item.Err.Error()
		}
		if item.Audit.ID != "" {
			audit := toResponse(item.Audit)
			out.Audit = &audit
		}
		resp = append(resp, out)
	}
	respond.JSON(c, http.StatusCreated, gin.H{"results": resp})
}

type createFromS3Request struct {
	S3Key    string `json:"s3Key"`
	FileName string `json:"fileName"`
}

func (h *Handler) createFromS3(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req createFromS3Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.S3Key = strings.TrimSpace(req.S3Key)
	req.FileName = strings.TrimSpace(req.FileName)

	if req.S3Key == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "s3Key is required", nil)
		return
	}
	if req.FileName == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "fileName is required", nil)
		return
	}

	audit, err := h.Svc.CreateFromS3(c.Request.Context(), ownerID, req.S3Key, req.FileName)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrQueueNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "queue_unavailable", "asynchronous audits are not configured", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create audit", nil)
		}
		return
	}

	respond.JSON(c, http.StatusAccepted, toResponse(audit))
}

func (h *Handler) get(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	audit, err := h.Svc.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "audit not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch audit", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(audit))
}

func (h *Handler) list(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), ownerID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list audits", nil)
		return
	}

	resp := make([]auditSummary, 0, len(list))
	for _, audit := range list {
		resp = append(resp, toSummary(audit))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) compare(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	ids := splitIDs(c.Query("ids"))
	if len(ids) < 2 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least two audit ids are required", nil)
		return
	}

	rows, err := h.Svc.Compare(c.Request.Context(), ownerID, ids)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "audit not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compare audits", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"ranking": rows})
}

func (h *Handler) export(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	audit, err := h.Svc.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "audit not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch audit", nil)
		}
		return
	}
	if audit.Report == nil {
		respond.Error(c, http.StatusConflict, "not_ready", "audit has no report to export", nil)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="seo_audit_report.csv"`)
	c.Status(http.StatusOK)
	if err := WriteCSV(c.Writer, []Audit{audit}); err != nil {
		// headers already sent, nothing sensible left to respond with
		_ = c.Error(err)
	}
}

func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
