package handlers

import (
	"errors"
	"fmt"
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/web"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

const (
	MaxUploadSize = 10 << 20

	// multipart framing on top of the file itself
	uploadOverhead = 1 << 20
)

var (
	ErrFileTooLarge        = errors.New("upload exceeds maximum size")
	ErrUnsupportedFileType = errors.New("upload is not a pdf")
	ErrMissingFile         = errors.New("no file in upload")
)

const msgMissingInvoiceDetails = "Response missing invoice details"

// uploadRejection maps a readUpload error onto the user-facing message and
// response status.
func uploadRejection(err error) (string, int) {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return "File size must be less than 10MB", http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrUnsupportedFileType):
		return "Invalid file type. Only PDF files are supported.", http.StatusUnsupportedMediaType
	default:
		return "Please select a PDF file to upload", http.StatusBadRequest
	}
}

func GETUploadHandler(ctx *middlewares.AppContext) {
	renderUpload(ctx, http.StatusOK, web.UploadContent{})
}

func POSTUploadHandler(ctx *middlewares.AppContext) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Response, ctx.Request.Body, MaxUploadSize+uploadOverhead)

	file, header, err := readUpload(ctx.Request)
	if err != nil {
		message, status := uploadRejection(err)
		ctx.Logger.Debug("upload rejected", "error", err)
		renderUpload(ctx, status, web.UploadContent{Error: message})
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	result, err := ctx.Backend.UploadInvoice(ctx, filename, file)
	if err != nil {
		message, status := backendFailure(err, "Upload failed")
		ctx.Logger.Warn("invoice upload failed", "filename", filename, "error", err)
		renderUpload(ctx, status, web.UploadContent{Filename: filename, Error: message})
		return
	}

	if !result.HasInvoiceDetails() {
		ctx.Logger.Warn("extraction response missing invoice details", "filename", filename)
		renderUpload(ctx, http.StatusBadGateway, web.UploadContent{Filename: filename, Error: msgMissingInvoiceDetails})
		return
	}

	ctx.Logger.Info("invoice extracted",
		"filename", filename,
		"invoice_id", result.Data.InvoiceID,
		"vendor", result.Data.VendorName,
		"confidence", result.Confidence)

	page := newPage(ctx, "upload", web.UploadContent{
		Filename: filename,
		Result:   result,
		MaxSize:  "10MB",
	})
	page.Flash = &models.Flash{Level: models.FlashSuccess, Message: "Invoice extracted!"}
	ctx.Render(http.StatusOK, web.PageUpload, page)
}

func renderUpload(ctx *middlewares.AppContext, status int, content web.UploadContent) {
	content.MaxSize = "10MB"
	ctx.Render(status, web.PageUpload, newPage(ctx, "upload", content))
}

// readUpload extracts the "file" part and checks it is a PDF no larger than
// MaxUploadSize. The returned file is positioned at its start.
func readUpload(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, nil, ErrFileTooLarge
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, ErrMissingFile
	}

	if header.Size > MaxUploadSize {
		file.Close()
		return nil, nil, ErrFileTooLarge
	}

	if !isPDF(header, file) {
		file.Close()
		return nil, nil, ErrUnsupportedFileType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("failed to rewind upload: %w", err)
	}

	return file, header, nil
}

// isPDF accepts a part declared as application/pdf or whose content sniffs
// as a PDF.
func isPDF(header *multipart.FileHeader, file multipart.File) bool {
	if mediaType, _, err := mime.ParseMediaType(header.Header.Get("Content-Type")); err == nil && mediaType == "application/pdf" {
		return true
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false
	}

	return http.DetectContentType(head[:n]) == "application/pdf"
}
