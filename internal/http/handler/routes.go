package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"formpdf/internal/model"
	"formpdf/internal/service"
	"formpdf/internal/validation"
)

// CreateDocumentResponse is returned by POST /create.
type CreateDocumentResponse struct {
	Success      bool   `json:"success"`
	DocumentCode string `json:"document_code"`
}

// DocumentResponse is returned by GET /document/{code}.
type DocumentResponse struct {
	Success     bool   `json:"success"`
	DocumentB64 string `json:"document_b64"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// RegisterRoutes attaches the document API routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, docSvc service.DocumentService) {
	app.Get("/health", HealthCheck())
	app.Post("/create", CreateDocument(docSvc))
	app.Get("/document/:code", GetDocument(docSvc))
}

// HealthCheck godoc
// @Summary Service health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{Status: "ok"})
	}
}

// CreateDocument godoc
// @Summary Render a form into a PDF and store it
// @Tags documents
// @Accept json
// @Produce json
// @Param form body model.DocumentForm true "Form fields"
// @Success 200 {object} CreateDocumentResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /create [post]
func CreateDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form model.DocumentForm
		if err := json.Unmarshal(c.Body(), &form); err != nil {
			return &service.ValidationError{Fields: validation.InvalidBody()}
		}

		doc, err := docSvc.Create(c.UserContext(), form)
		if err != nil {
			return err
		}
		return c.JSON(CreateDocumentResponse{Success: true, DocumentCode: doc.Code})
	}
}

// GetDocument godoc
// @Summary Fetch a stored PDF as base64
// @Tags documents
// @Produce json
// @Param code path string true "10-character document code"
// @Success 200 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /document/{code} [get]
func GetDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Params point into the request buffer; the code outlives the handler in traces.
		code := utils.CopyString(c.Params("code"))
		encoded, err := docSvc.Fetch(c.UserContext(), code)
		if err != nil {
			return err
		}
		return c.JSON(DocumentResponse{Success: true, DocumentB64: encoded})
	}
}
