// Package audit keeps a trail of admin operations. Handlers publish
// fire-and-forget events on an EventBus topic; the recorder persists
// them as operation-log rows so a deleted product still leaves a
// record of who removed it.
package audit

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/afarenziya/smartdeals/internal/domain"
	"github.com/afarenziya/smartdeals/internal/store"
)

const TopicAdminOperation = "admin.operation"

// Event is one admin operation.
type Event struct {
	Operator string
	Action   string
	Desc     string
}

// Recorder subscribes to the operation topic and writes audit rows.
type Recorder struct {
	bus   EventBus.Bus
	store store.Store
}

func NewRecorder(bus EventBus.Bus, s store.Store) (*Recorder, error) {
	r := &Recorder{bus: bus, store: s}
	if err := bus.SubscribeAsync(TopicAdminOperation, r.record, false); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Recorder) record(ev Event) {
	err := r.store.AddOprLog(context.Background(), &domain.SysOprLog{
		OprName:   ev.Operator,
		OptAction: ev.Action,
		OptDesc:   ev.Desc,
		OptTime:   time.Now(),
	})
	if err != nil {
		zap.L().Error("failed to record admin operation",
			zap.String("action", ev.Action), zap.Error(err))
	}
}

// Close detaches the recorder and drains in-flight events.
func (r *Recorder) Close() {
	_ = r.bus.Unsubscribe(TopicAdminOperation, r.record)
	r.bus.WaitAsync()
}

// Publish emits an operation event on the bus.
func Publish(bus EventBus.Bus, operator, action, desc string) {
	bus.Publish(TopicAdminOperation, Event{Operator: operator, Action: action, Desc: desc})
}
