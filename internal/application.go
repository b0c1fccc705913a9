package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/knucklebones-backend/internal/config"
	"github.com/rocketscienceinc/knucklebones-backend/internal/knucklebones"
	"github.com/rocketscienceinc/knucklebones-backend/internal/usecase"
	"github.com/rocketscienceinc/knucklebones-backend/transport/console"
)

// RunApp - runs one console game on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(logger, conf, os.Stdin, os.Stdout)
}

func Run(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var opts []knucklebones.Option
	if conf.Game.Seed != 0 {
		opts = append(opts, knucklebones.WithSeed(conf.Game.Seed))
	}

	engine := knucklebones.New(opts...)
	gameUseCase := usecase.NewGameUseCase(logger, engine)

	// run console game
	playErrCh := make(chan error, 1)
	go func() {
		result, err := console.New(logger, gameUseCase, in, out).Play(ctx)
		if err == nil {
			log.Info("Game over", "result", result.String())
		}
		playErrCh <- err
	}()

	select {
	case err := <-playErrCh:
		if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
			log.Info("Console closed before the game ended")
			return nil
		}
		if err != nil {
			return fmt.Errorf("console game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
