package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/initializ/practicas/logging"
	"github.com/initializ/practicas/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mocked backends as a JSON HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port for the mock backend (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	rt, err := currentRuntime()
	if err != nil {
		return err
	}

	port := rt.cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	log := logging.NewJSONLogger(os.Stderr, verbose)
	srv := server.NewServer(server.Config{
		Port:     port,
		Registry: rt.registry,
		Emitter:  rt.emitter,
		Logger:   log,
	})

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down...")
		cancel()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Mock backend on http://localhost:%d/api\n", port)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
