package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jasonren05/learning-agent/internal/model"
	"github.com/jasonren05/learning-agent/internal/repository"
)

// NoteAccessWorker consumes note-access events and folds them into
// ProgressRecord rows, keeping the read path free of the extra write.
type NoteAccessWorker struct {
	conn      *amqp.Connection
	repo      *repository.ProgressRepository
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewNoteAccessWorker(conn *amqp.Connection, repo *repository.ProgressRepository, queueName string) *NoteAccessWorker {
	return &NoteAccessWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
	}
}

func (w *NoteAccessWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var event model.NoteAccess
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Printf("worker decode access event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				if err := w.repo.RecordAccess(event.UserID, event.NoteID, event.AccessedAt); err != nil {
					log.Printf("worker record access failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *NoteAccessWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
