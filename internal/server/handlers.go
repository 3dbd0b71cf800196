package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andriskumpel/combate-desinformacao/internal/config"
	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

// DocsURL is where the swagger UI is served.
const DocsURL = "/docs/index.html"

type Info struct {
	project config.ProjectConfig
}

func NewInfo(project config.ProjectConfig) Info {
	return Info{project: project}
}

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	DocsURL string `json:"docs_url"`
}

// Root godoc
// @Summary Service information
// @Tags Info
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (i Info) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message: "Bem-vindo à " + i.project.Name,
		Version: i.project.Version,
		DocsURL: DocsURL,
	})
}

func (i Info) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type Verifications struct {
	svc            VerificationService
	maxUploadBytes int64
}

func NewVerifications(svc VerificationService, maxUploadBytes int64) Verifications {
	return Verifications{svc: svc, maxUploadBytes: maxUploadBytes}
}

// VerifyRequest requires both keys. Content is a pointer so an empty string
// still counts as present.
type VerifyRequest struct {
	Content     *string `json:"content" binding:"required" example:"A vacina contra COVID-19 é segura e eficaz."`
	ContentType string  `json:"content_type" binding:"required" enums:"text,image,video"`
	SourceURL   *string `json:"source_url,omitempty"`
}

type StatusResponse struct {
	Status               domain.Status          `json:"status"`
	AnalysisResult       *domain.Analysis       `json:"analysis_result"`
	ClassificationResult *domain.Classification `json:"classification_result"`
}

type listQuery struct {
	Offset int `form:"offset,default=0" binding:"min=0"`
	Limit  int `form:"limit,default=100" binding:"min=1,max=1000"`
}

// Verify godoc
// @Summary Verify inline content
// @Description Text is analyzed as sent. Image and video content must be base64-encoded.
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Content to verify"
// @Success 200 {object} domain.Outcome
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /verify [post]
func (h Verifications) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusUnprocessableEntity, err)
		return
	}

	outcome, err := h.svc.Verify(c.Request.Context(), domain.Submission{
		Content:     []byte(*req.Content),
		ContentType: domain.ContentType(req.ContentType),
		SourceURL:   req.SourceURL,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// VerifyFile godoc
// @Summary Verify an uploaded image or video
// @Tags Verification
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image (jpg, jpeg, png, gif) or video (mp4, avi, mov)"
// @Param content_type formData string true "image or video"
// @Param source_url formData string false "Where the content was found"
// @Success 200 {object} domain.Outcome
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /verify/file [post]
func (h Verifications) VerifyFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithStatus(c, http.StatusRequestEntityTooLarge,
				fmt.Errorf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		abortWithStatus(c, http.StatusUnprocessableEntity, fmt.Errorf("file: %w", err))
		return
	}

	kind, ok := c.GetPostForm("content_type")
	if !ok {
		abortWithStatus(c, http.StatusUnprocessableEntity, errors.New("content_type: field required"))
		return
	}

	var sourceURL *string
	if v, ok := c.GetPostForm("source_url"); ok && v != "" {
		sourceURL = &v
	}

	f, err := header.Open()
	if err != nil {
		abortWithStatus(c, http.StatusInternalServerError, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		abortWithStatus(c, http.StatusInternalServerError, fmt.Errorf("read upload: %w", err))
		return
	}

	outcome, err := h.svc.Verify(c.Request.Context(), domain.Submission{
		Content:     content,
		ContentType: domain.ContentType(kind),
		SourceURL:   sourceURL,
		Filename:    header.Filename,
		FromFile:    true,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// Status godoc
// @Summary Verification status
// @Tags Verification
// @Produce json
// @Param verification_id path string true "Verification id"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /status/{verification_id} [get]
func (h Verifications) Status(c *gin.Context) {
	v, err := h.svc.Status(c.Request.Context(), c.Param("verification_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Status:               v.Status,
		AnalysisResult:       v.AnalysisResult,
		ClassificationResult: v.ClassificationResult,
	})
}

// List godoc
// @Summary List stored verifications in creation order
// @Tags Administration
// @Produce json
// @Param offset query int false "Records to skip" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} domain.Verification
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /verifications [get]
func (h Verifications) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithStatus(c, http.StatusUnprocessableEntity, err)
		return
	}

	list, err := h.svc.List(c.Request.Context(), q.Offset, q.Limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Delete godoc
// @Summary Delete a verification
// @Tags Administration
// @Param verification_id path string true "Verification id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /verifications/{verification_id} [delete]
func (h Verifications) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("verification_id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
