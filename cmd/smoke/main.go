// Command smoke exercises a running API end to end: health, create, then
// fetch the stored document twice and check it decodes to a PDF.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"formpdf/internal/codegen"
	"formpdf/internal/logger"
	"formpdf/internal/model"
	"formpdf/internal/otel"
	"formpdf/internal/pdf"
)

const requestTimeout = 10 * time.Second

func main() {
	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Warn("tracing disabled", zap.Error(err))
		shutdownTracing = func(context.Context) error { return nil }
	}

	err = run(ctx, newClient(), strings.TrimRight(baseURL, "/"), log)

	flushCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	_ = shutdownTracing(flushCtx)
	cancel()
	if err != nil {
		log.Error("smoke_failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	log.Info("smoke_passed", zap.String("base_url", baseURL))
}

// newClient returns an HTTP client that propagates trace context to the API.
func newClient() *http.Client {
	return &http.Client{
		Timeout:   requestTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// run performs each step in order and stops at the first failure.
func run(ctx context.Context, client *http.Client, baseURL string, log *zap.Logger) error {
	c := &caller{ctx: ctx, client: client, baseURL: baseURL}

	var health struct {
		Status string `json:"status"`
	}
	if err := c.call(http.MethodGet, "/health", nil, &health); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	if health.Status != "ok" {
		return fmt.Errorf("health: unexpected status %q", health.Status)
	}
	log.Info("smoke_step", zap.String("step", "health"))

	form := model.DocumentForm{
		Nombre:   "Smoke",
		Apellido: "Test",
		Edad:     "30",
		Telefono: "+1 555 0100",
		Correo:   "smoke@example.com",
	}
	var created struct {
		Success      bool   `json:"success"`
		DocumentCode string `json:"document_code"`
	}
	if err := c.call(http.MethodPost, "/create", form, &created); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	if !created.Success || !codegen.IsWellFormed(created.DocumentCode) {
		return fmt.Errorf("create: malformed response code %q", created.DocumentCode)
	}
	log.Info("smoke_step", zap.String("step", "create"), zap.String("code", created.DocumentCode))

	first, err := c.fetch(created.DocumentCode)
	if err != nil {
		return err
	}
	raw, err := base64.StdEncoding.DecodeString(first)
	if err != nil {
		return fmt.Errorf("fetch: decode base64: %w", err)
	}
	if !bytes.HasPrefix(raw, pdf.Signature) {
		return errors.New("fetch: content is not a PDF")
	}

	second, err := c.fetch(created.DocumentCode)
	if err != nil {
		return err
	}
	if first != second {
		return errors.New("fetch: repeated read returned different content")
	}
	log.Info("smoke_step", zap.String("step", "fetch"), zap.Int("pdf_bytes", len(raw)))
	return nil
}

type caller struct {
	ctx     context.Context
	client  *http.Client
	baseURL string
}

func (c *caller) fetch(code string) (string, error) {
	var doc struct {
		Success     bool   `json:"success"`
		DocumentB64 string `json:"document_b64"`
	}
	if err := c.call(http.MethodGet, "/document/"+code, nil, &doc); err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	if !doc.Success {
		return "", errors.New("fetch: success=false")
	}
	return doc.DocumentB64, nil
}

// call sends in as a JSON body when non-nil and decodes a 200 JSON response into out.
func (c *caller) call(method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(c.ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, raw)
	}
	return json.Unmarshal(raw, out)
}
