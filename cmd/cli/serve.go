package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Priyankg101/content-moderator/internal/controllers"
	"github.com/Priyankg101/content-moderator/internal/initialization"
	"github.com/Priyankg101/content-moderator/internal/server"
)

func NewServeCommand(container *initialization.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the moderation API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(container)
		},
	}

	return cmd
}

func runServe(container *initialization.Container) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := container.Config()

	log.Info().Str("address", cfg.HTTPAddress).Msg("Starting moderation service")

	app := server.NewHTTPServer(server.HTTPServerDependencies{
		ModerationController: controllers.NewModerationController(container.Pipeline()),
	})

	if err := app.Listen(cfg.HTTPAddress, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}

	log.Info().Msg("Moderation service stopped")
	return nil
}
