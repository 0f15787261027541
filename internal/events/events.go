package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/nani-api/internal/domain"
)

// State is a stage of one generation request.
type State string

// Generation stages in the order a successful request visits them.
// MediaGenerating is skipped when no media is requested.
const (
	StateValidating      State = "validating"
	StateExtracting      State = "extracting"
	StatePrompting       State = "prompting"
	StateParsingResponse State = "parsing_response"
	StateMediaGenerating State = "media_generating"
	StateDone            State = "done"
	StateFailed          State = "failed"
)

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// StateEvent records that generation RequestID entered State.
type StateEvent struct {
	RequestID   uuid.UUID
	ContentType domain.ContentType
	State       State
	// Err is set on StateFailed.
	Err error
	At  time.Time
}

// NewStateEvent stamps a transition with the current time.
func NewStateEvent(id uuid.UUID, ct domain.ContentType, s State, err error) *StateEvent {
	return &StateEvent{RequestID: id, ContentType: ct, State: s, Err: err, At: time.Now()}
}

// EventHandler observes events.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *StateEvent) error
}

// EventEmitter publishes events to registered handlers.
type EventEmitter interface {
	EmitEvent(ctx context.Context, event *StateEvent) error
}
