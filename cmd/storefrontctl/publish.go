package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/checkout"

	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
)

// Переходы, которые генератор выдаёт по порядку.
var shippingFlow = []struct {
	status      entities.OrderStatus
	trackingKey string
}{
	{entities.StatusProcessing, "packed"},
	{entities.StatusShipped, "in_transit"},
	{entities.StatusOutForDelivery, "out_for_delivery"},
	{entities.StatusDelivered, "delivered"},
}

func newPublishStatusCmd() *cobra.Command {
	var (
		flags   statusFlags
		brokers string
		topic   string
		every   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "publish-status ORDER_NUMBER...",
		Short: "Publish status updates to the status topic",
		Long: "With --status every order gets one update. Without it the orders are " +
			"walked through the shipping flow, one random update per --every tick, until interrupted.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := &kafka.Writer{
				Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
				Topic:                  topic,
				Balancer:               &kafka.Hash{},
				AllowAutoTopicCreation: true,
			}
			defer writer.Close()

			if flags.status != "" {
				msgs := make([]kafka.Message, 0, len(args))
				for _, number := range args {
					u, err := flags.update(number)
					if err != nil {
						return err
					}
					m, err := statusMessage(u)
					if err != nil {
						return err
					}
					msgs = append(msgs, m)
				}
				return writer.WriteMessages(cmd.Context(), msgs...)
			}

			return walkShippingFlow(cmd.Context(), writer, args, every)
		},
	}

	cmd.Flags().StringVar(&flags.status, "status", "", "status to publish, random shipping flow when empty")
	cmd.Flags().StringVar(&flags.trackingKey, "tracking-key", "", "tracking milestone to stamp")
	cmd.Flags().StringVar(&flags.date, "date", "", "milestone date, RFC3339")
	cmd.Flags().StringVar(&brokers, "brokers", envOr("KAFKA_BROKERS", "localhost:9092"), "comma separated broker list")
	cmd.Flags().StringVar(&topic, "topic", envOr("KAFKA_STATUS_TOPIC", "order-status"), "status topic")
	cmd.Flags().DurationVar(&every, "every", 2*time.Second, "interval between generated updates")
	return cmd
}

func walkShippingFlow(ctx context.Context, writer *kafka.Writer, orders []string, every time.Duration) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	step := make(map[string]int, len(orders))

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		pending := orders[:0:0]
		for _, o := range orders {
			if step[o] < len(shippingFlow) {
				pending = append(pending, o)
			}
		}
		if len(pending) == 0 {
			logger.Info("all orders delivered")
			return nil
		}

		number := pending[rand.Intn(len(pending))]
		next := shippingFlow[step[number]]
		now := time.Now().UTC()
		m, err := statusMessage(checkout.StatusUpdate{
			OrderNumber: number,
			Status:      string(next.status),
			TrackingKey: next.trackingKey,
			Date:        &now,
		})
		if err != nil {
			return err
		}
		if err := writer.WriteMessages(ctx, m); err != nil {
			logger.Error("failed to publish status", slog.String("order_number", number), slog.Any("error", err))
			continue
		}
		step[number]++
		logger.Info("status published", slog.String("order_number", number), slog.String("status", string(next.status)))
	}
}

// statusMessage keys the message by order number so updates of one order stay
// in one partition.
func statusMessage(u checkout.StatusUpdate) (kafka.Message, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode status update: %w", err)
	}
	return kafka.Message{Key: []byte(u.OrderNumber), Value: data}, nil
}
