package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/deskline-inc/deskline/internal/infrastructure/config"
	"github.com/deskline-inc/deskline/internal/infrastructure/pubsub"
	"github.com/deskline-inc/deskline/internal/shared/constants"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

var (
	env     string
	channel string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Ticket event tools",
	}
	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print ticket events published on the redis channel",
		RunE:  runTail,
	}
	tail.Flags().StringVar(&channel, "channel", "", "Channel to follow (default: redis.channel)")
	cmd.AddCommand(tail)

	return cmd
}

func runTail(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadForMigrations(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if channel == "" {
		channel = cfg.Redis.Channel
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	pingCtx, cancelPing := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := json.NewEncoder(cmd.OutOrStdout())
	bus := pubsub.NewRedisTicketEventBus(client, channel, log)
	err = bus.Subscribe(ctx, func(_ context.Context, msg pubsub.TicketEventMessage) {
		if err := out.Encode(msg); err != nil {
			log.Warnw("failed to write event", "error", err, "event_id", msg.ID)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
