package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"tripfolio/internal/domain"
	"tripfolio/internal/logger"
	"tripfolio/internal/parser"
	"tripfolio/internal/port"
)

// ExtractDocumentInput is the DTO for one extraction attempt: exactly one
// file and one caller-supplied provider credential.
type ExtractDocumentInput struct {
	File       multipart.File
	Header     *multipart.FileHeader
	Credential string
}

// ExtractService validates an uploaded booking document and runs it through
// the extraction pipeline.
type ExtractService interface {
	Extract(ctx context.Context, input ExtractDocumentInput) (*parser.Outcome, error)
}

type extractService struct {
	extractor port.DocumentExtractor
}

// NewExtractService creates a new ExtractService implementation.
func NewExtractService(extractor port.DocumentExtractor) ExtractService {
	return &extractService{extractor: extractor}
}

func (s *extractService) Extract(ctx context.Context, input ExtractDocumentInput) (*parser.Outcome, error) {
	// Fail fast on a missing credential before touching the file or the
	// network.
	if strings.TrimSpace(input.Credential) == "" {
		return nil, domain.ErrCredentialRequired
	}

	if input.Header.Size > domain.MaxUploadBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Detect the content type from magic bytes rather than trusting the
	// client-declared header.
	head := make([]byte, 512)
	n, err := input.File.Read(head)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	contentType := http.DetectContentType(head[:n])
	if _, ok := domain.AllowedUploadTypes[contentType]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}
	fileBytes, err := io.ReadAll(io.LimitReader(input.File, domain.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if len(fileBytes) > domain.MaxUploadBytes {
		return nil, domain.ErrFileTooLarge
	}

	logger.Get().Infow("extracting booking document",
		"content_type", contentType, "size", len(fileBytes))

	text, err := s.extractor.Extract(ctx, port.ExtractInput{
		FileBytes:   fileBytes,
		ContentType: contentType,
		Credential:  input.Credential,
	})
	if err != nil {
		return nil, err
	}

	outcome := parser.Normalize(text)
	logger.Get().Infow("extraction complete", "parsed", outcome.Parsed)
	return &outcome, nil
}
