package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/foliotype/resumate/internal/adapters/logging"
	"github.com/foliotype/resumate/internal/api"
	"github.com/foliotype/resumate/internal/typeset"
)

// ServeCommand runs the HTTP API: parsing, validation, rendering, and
// thumbnail endpoints over the fixed template catalogue.
type ServeCommand struct {
	port    int
	fontDir string
	apiKey  string
}

// NewServeCommand creates a serve command listening on port.
func NewServeCommand(port int) *ServeCommand {
	return &ServeCommand{port: port}
}

func (c *ServeCommand) WithFontDir(dir string) *ServeCommand {
	c.fontDir = dir
	return c
}

func (c *ServeCommand) WithAPIKey(key string) *ServeCommand {
	c.apiKey = key
	return c
}

// Execute starts the server and blocks until ctx is cancelled.
func (c *ServeCommand) Execute(ctx context.Context) error {
	bundled, err := loadBundledFonts(c.fontDir)
	if err != nil {
		return fmt.Errorf("failed to load fonts from %s: %w", c.fontDir, err)
	}

	logger := logging.GetLogger()
	engine := typeset.NewEngine(bundled)
	server := api.NewServer(engine, logger)
	handler := api.NewHandler(server, c.apiKey)

	addr := ":" + strconv.Itoa(c.port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
