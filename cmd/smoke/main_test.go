package main

import (
	"context"
	"net"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"formpdf/internal/codegen"
	"formpdf/internal/http/server"
	"formpdf/internal/pdf"
	"formpdf/internal/service"
	"formpdf/internal/storage"
)

func startServer(t *testing.T) (string, storage.Storage) {
	t.Helper()
	store := storage.NewMemory()
	app := server.New(server.Options{
		Documents: service.NewDocumentService(store, pdf.NewRenderer(), codegen.New()),
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String(), store
}

func TestRun(t *testing.T) {
	baseURL, store := startServer(t)

	require.NoError(t, run(context.Background(), newClient(), baseURL, zap.NewNop()))
	assert.Equal(t, 1, store.Len())
}

func TestRun_FailsOnWrongServer(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "degraded"})
	})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	err = run(context.Background(), newClient(), "http://"+ln.Addr().String(), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health")
}
