package dispatcher

import (
	"context"
	"errors"
	"strings"

	"solar-forecast/cmd/chat/queryclient"
	"solar-forecast/cmd/chat/session"
)

// FallbackErrorMessage is shown when a failure carries no structured detail.
const FallbackErrorMessage = "Failed to get data. Please try again."

var (
	// ErrEmptyMessage means the message was empty after trimming.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrRequestInFlight means a request is already outstanding. There is no
	// queue and no cancellation; the caller simply may not submit again yet.
	ErrRequestInFlight = errors.New("a request is already in flight")
)

// QueryClient is the query service contract the dispatcher depends on.
type QueryClient interface {
	Chat(ctx context.Context, message string) (queryclient.ChatResult, error)
}

// Dispatcher sends user messages to the query service, one at a time, and
// applies the outcome to the session.
type Dispatcher struct {
	client   QueryClient
	session  *session.Manager
	inFlight bool
}

func New(client QueryClient, sess *session.Manager) *Dispatcher {
	return &Dispatcher{client: client, session: sess}
}

// InFlight reports whether a request is currently outstanding.
func (d *Dispatcher) InFlight() bool {
	return d.inFlight
}

// Submit sends one user message. The user's turn is appended before the
// network call starts so it is visible immediately. Transport and service
// failures do not propagate: they are converted to the session-level error,
// the user turn stays in place, and the session remains usable. Precondition
// violations (empty message, in-flight request, exhausted question budget)
// are returned to the caller and leave the session untouched.
func (d *Dispatcher) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}
	if d.inFlight {
		return ErrRequestInFlight
	}

	if err := d.session.AppendUserTurn(text); err != nil {
		return err
	}
	d.session.ClearError()

	d.inFlight = true
	defer func() { d.inFlight = false }()

	result, err := d.client.Chat(ctx, text)
	if err != nil {
		d.session.SetError(displayMessage(err))
		return nil
	}

	d.session.AppendAssistantTurn(result.Document, result.Raw)
	return nil
}

// displayMessage maps a failure to the user-facing error text. Structured
// service errors are surfaced verbatim (title, plus details when present);
// everything else gets the generic fallback.
func displayMessage(err error) string {
	var svcErr *queryclient.ServiceError
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		if svcErr.Details != "" {
			return svcErr.Message + ": " + svcErr.Details
		}
		return svcErr.Message
	}
	return FallbackErrorMessage
}
