package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, in service.UpdateStatusInput) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	updater  StatusUpdater
}

// NewKafkaHandler consumes order status updates from the status topic.
// Messages that cannot be applied are copied to "<topic>-dlq".
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, updater StatusUpdater) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.StatusTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, updater)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, updater StatusUpdater) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: utils.NewValidator(),
		updater:  updater,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	statusUpdatesInProgress.Inc()
	defer statusUpdatesInProgress.Dec()
	start := time.Now()
	defer func() {
		statusUpdateDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.handleStatusUpdate(ctx, m); err != nil {
		statusUpdatesFailed.Inc()
		h.logger.Error("failed to handle message", slog.Any("error", err))

		// В библиотеке уже есть retry
		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			// Не коммитим, сообщение придёт снова
			return
		}
		statusUpdatesDLQ.Inc()
	} else {
		statusUpdatesProcessed.Inc()
	}

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *kafkaHandler) handleStatusUpdate(ctx context.Context, m kafka.Message) error {
	var update StatusUpdate
	if err := json.Unmarshal(m.Value, &update); err != nil {
		return fmt.Errorf("failed to unmarshal status update: %w", err)
	}

	if err := h.validate.Struct(update); err != nil {
		return fmt.Errorf("invalid status update: %w", err)
	}

	return h.updater.UpdateStatus(ctx, update.toInput())
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	// Writer без Topic, поэтому топик задаётся в сообщении. Партиция и offset
	// исходного сообщения writer не принимает.
	dead := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dead)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
