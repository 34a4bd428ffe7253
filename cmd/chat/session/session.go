package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"solar-forecast/dto"
)

// MaxQuestions is how many questions a user may ask in one session.
const MaxQuestions = 5

// ErrQuestionLimit means the session already holds MaxQuestions user turns.
var ErrQuestionLimit = errors.New("question limit reached for this session")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation. User turns carry plain text;
// assistant turns carry a structured document, or raw fallback text when the
// reply could not be decoded.
type Turn struct {
	Role      Role
	Text      string
	Document  *dto.WeatherResponseDocument
	Timestamp string
}

// Manager owns the conversation state for one chat session: the ordered,
// append-only turn list, the question budget and the session-level error.
// It is not safe for concurrent use; the dispatcher's single in-flight
// request guarantee serializes all mutation.
type Manager struct {
	id        string
	turns     []Turn
	lastError string
	now       func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		id:  uuid.NewString(),
		now: time.Now,
	}
}

func (m *Manager) ID() string { return m.id }

// Turns returns a copy of the turn sequence in creation order.
func (m *Manager) Turns() []Turn {
	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// UserTurnCount is the enforcement counter for the question limit.
func (m *Manager) UserTurnCount() int {
	count := 0
	for _, turn := range m.turns {
		if turn.Role == RoleUser {
			count++
		}
	}
	return count
}

// Limited reports whether the session has exhausted its question budget.
// Only Reset leaves this state.
func (m *Manager) Limited() bool {
	return m.UserTurnCount() >= MaxQuestions
}

// AppendUserTurn adds the user's message as a new turn. It fails with
// ErrQuestionLimit once MaxQuestions user turns exist.
func (m *Manager) AppendUserTurn(text string) error {
	if m.Limited() {
		return ErrQuestionLimit
	}
	m.turns = append(m.turns, Turn{
		Role:      RoleUser,
		Text:      text,
		Timestamp: m.timestamp(),
	})
	return nil
}

// AppendAssistantTurn adds the assistant's reply. The question limit is only
// checked at the user-submission boundary, never here.
func (m *Manager) AppendAssistantTurn(document *dto.WeatherResponseDocument, raw string) {
	m.turns = append(m.turns, Turn{
		Role:      RoleAssistant,
		Text:      raw,
		Document:  document,
		Timestamp: m.timestamp(),
	})
}

// RemainingQuestions is the display value shown next to the input box.
// It intentionally uses a different formula than the limit enforcement
// (total turns halved rather than counted user turns); both behaviors are
// kept as-is.
func (m *Manager) RemainingQuestions() int {
	return MaxQuestions - len(m.turns)/2
}

// SetError records the session-level error shown to the user.
func (m *Manager) SetError(message string) {
	m.lastError = message
}

func (m *Manager) ClearError() {
	m.lastError = ""
}

// LastError returns the current session-level error, empty when none.
func (m *Manager) LastError() string {
	return m.lastError
}

// Reset clears the turn sequence and any held error state, restoring the
// full question budget.
func (m *Manager) Reset() {
	m.turns = nil
	m.lastError = ""
}

func (m *Manager) timestamp() string {
	return m.now().Format("15:04")
}
