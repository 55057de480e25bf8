package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripfolio/internal/domain"
	"tripfolio/internal/service"
)

// ExtractHandler handles the booking document extraction endpoint.
type ExtractHandler struct {
	extractService service.ExtractService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractService service.ExtractService) *ExtractHandler {
	return &ExtractHandler{extractService: extractService}
}

// extractResponse is the tagged extraction result: a structured booking when
// Parsed is true, otherwise the model's cleaned raw text.
type extractResponse struct {
	Parsed  bool            `json:"parsed"`
	Booking *domain.Booking `json:"booking,omitempty"`
	Raw     string          `json:"raw,omitempty"`
}

// Extract handles POST /api/v1/extract
// Multipart body: "file" (image or PDF, max 10 MiB) and "credential" (the
// caller's extraction provider API key, held client-side only).
func (h *ExtractHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.ExtractDocumentInput{
		File:       file,
		Header:     header,
		Credential: c.PostForm("credential"),
	}

	outcome, err := h.extractService.Extract(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, extractResponse{
		Parsed:  outcome.Parsed,
		Booking: outcome.Booking,
		Raw:     outcome.Raw,
	})
}
