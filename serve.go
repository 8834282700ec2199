package main

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// serveCommand exposes the game over SSH so players only need an ssh client.
func serveCommand() *cobra.Command {
	var (
		host    string
		port    string
		hostKey string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle over SSH",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port, hostKey)
		},
	}
	cmd.Flags().StringVar(&host, "host", getEnv("SLIDER_HOST", "localhost"), "address to listen on")
	cmd.Flags().StringVar(&port, "port", getEnv("SLIDER_PORT", "23234"), "port to listen on")
	cmd.Flags().StringVar(&hostKey, "host-key", getEnv("SLIDER_HOST_KEY", ".ssh/slider_ed25519"), "path to the server host key")
	return cmd
}

func runServe(host, port, hostKey string) error {
	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithHostKeyPath(hostKey),
		wish.WithMiddleware(
			bm.Middleware(teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return err
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "host", host, "port", port)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("could not start server", "error", err)
			done <- nil
		}
	}()

	<-done
	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer func() { cancel() }()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("could not stop server", "error", err)
		return err
	}
	return nil
}

// forceColorWriter is a custom writer that forces color output
type forceColorWriter struct {
	w io.Writer
}

func (fcw forceColorWriter) Write(p []byte) (n int, err error) {
	return fcw.w.Write(p)
}

func teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := s.Pty()

	// Force color output
	lipgloss.SetColorProfile(termenv.ANSI256)

	return NewGameModel(pty.Window.Width, pty.Window.Height, demoStart), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(forceColorWriter{s}),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
