package workflow

import (
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/mq"
	"github.com/irankiai/cinema-admin/internal/repository"

	amqp "github.com/rabbitmq/amqp091-go"
)

// stubScreeningRepo only answers DecrementTickets; the consumer never calls
// anything else.
type stubScreeningRepo struct {
	decrements   []uint
	decrementErr error
}

var _ repository.ScreeningRepo = (*stubScreeningRepo)(nil)

func (r *stubScreeningRepo) WithTx(tx *gorm.DB) repository.ScreeningRepo     { return r }
func (r *stubScreeningRepo) Create(screening *model.Screening) error         { return nil }
func (r *stubScreeningRepo) GetByID(id uint) (*model.Screening, error)       { return nil, gorm.ErrRecordNotFound }
func (r *stubScreeningRepo) ListAll() ([]model.Screening, error)             { return nil, nil }
func (r *stubScreeningRepo) Update(screening *model.Screening) error         { return nil }
func (r *stubScreeningRepo) Delete(id uint) error                            { return nil }
func (r *stubScreeningRepo) DeleteByCinemaID(cinemaID uint) error            { return nil }

func (r *stubScreeningRepo) DecrementTickets(id uint) error {
	if r.decrementErr != nil {
		return r.decrementErr
	}
	r.decrements = append(r.decrements, id)
	return nil
}

type recordingAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
}

var _ amqp.Acknowledger = (*recordingAcknowledger)(nil)

func (a *recordingAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return nil
}

func (a *recordingAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked = true
	a.requeue = requeue
	return nil
}

func (a *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	a.nacked = true
	a.requeue = requeue
	return nil
}

func TestHandleTicketSoldDecrementsAndAcks(t *testing.T) {
	repo := &stubScreeningRepo{}
	w := NewTicketWorkflow(repo, zap.NewNop())

	body, _ := json.Marshal(mq.TicketSoldMessage{ScreeningID: 7, SessionID: "cs_test_1"})
	ack := &recordingAcknowledger{}
	w.handleTicketSold(amqp.Delivery{Acknowledger: ack, Body: body})

	if len(repo.decrements) != 1 || repo.decrements[0] != 7 {
		t.Fatalf("decrements = %v, want [7]", repo.decrements)
	}
	if !ack.acked || ack.nacked {
		t.Errorf("acked=%v nacked=%v, want ack only", ack.acked, ack.nacked)
	}
}

func TestHandleTicketSoldMalformedBody(t *testing.T) {
	repo := &stubScreeningRepo{}
	w := NewTicketWorkflow(repo, zap.NewNop())

	ack := &recordingAcknowledger{}
	w.handleTicketSold(amqp.Delivery{Acknowledger: ack, Body: []byte("{not json")})

	if len(repo.decrements) != 0 {
		t.Fatalf("decrement called for malformed message")
	}
	if !ack.nacked || ack.requeue {
		t.Errorf("nacked=%v requeue=%v, want nack without requeue", ack.nacked, ack.requeue)
	}
}

func TestHandleTicketSoldStoreFailureRequeues(t *testing.T) {
	repo := &stubScreeningRepo{decrementErr: errors.New("connection reset")}
	w := NewTicketWorkflow(repo, zap.NewNop())

	body, _ := json.Marshal(mq.TicketSoldMessage{ScreeningID: 7, SessionID: "cs_test_1"})
	ack := &recordingAcknowledger{}
	w.handleTicketSold(amqp.Delivery{Acknowledger: ack, Body: body})

	if !ack.nacked || !ack.requeue {
		t.Errorf("nacked=%v requeue=%v, want nack with requeue", ack.nacked, ack.requeue)
	}
}
