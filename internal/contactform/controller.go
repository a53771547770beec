// Package contactform drives a contact form through one submit cycle:
// Idle → Submitting → (Success | Error) → Idle.
//
// Success returns to Idle when its message is auto-hidden. The error message
// has no auto-hide, so Error is held until the next Submit starts a new cycle
// from it. A Submit from Success before the hide fires does the same.
//
// The page is reached only through View, so the same controller can back a
// browser binding, a terminal, or a test double.
package contactform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/contactrelay/contactrelay/internal/logger"
	contactrelay "github.com/contactrelay/contactrelay/sdk/go"
)

// Texts shown by the form.
const (
	SendingLabel   = "Enviando..."
	SuccessMessage = "¡Mensaje enviado! Te contactaremos pronto."
	ErrorMessage   = "Hubo un error al enviar el mensaje. Por favor, intenta de nuevo."
)

// DefaultHideDelay is how long the success message stays visible.
const DefaultHideDelay = 5 * time.Second

// ErrSubmitInFlight is returned when Submit is called during another submission.
var ErrSubmitInFlight = errors.New("contactform: submission already in flight")

// State is the controller's position in the submit cycle. StateError is held
// until the next Submit.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StatusKind selects the styling of the status message.
type StatusKind int

const (
	StatusSuccess StatusKind = iota + 1
	StatusError
)

// View is the form as seen by the controller. Implementations must not call
// back into the Controller.
type View interface {
	Fields() contactrelay.Submission
	Reset()
	SetSubmitEnabled(enabled bool)
	SubmitLabel() string
	SetSubmitLabel(label string)
	ShowStatus(text string, kind StatusKind)
	HideStatus()
}

// Submitter delivers a submission to the relay. *contactrelay.Client satisfies it.
type Submitter interface {
	Send(ctx context.Context, s contactrelay.Submission) (*contactrelay.SendResult, error)
}

// Timer is a pending delayed call.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc is the default.
type AfterFunc func(d time.Duration, f func()) Timer

// Option configures a Controller.
type Option func(*Controller)

// WithAfterFunc replaces the timer factory.
func WithAfterFunc(fn AfterFunc) Option {
	return func(c *Controller) { c.afterFunc = fn }
}

// WithHideDelay changes how long the success message stays visible.
func WithHideDelay(d time.Duration) Option {
	return func(c *Controller) { c.hideDelay = d }
}

// WithLogger sets the logger used to report failed submissions.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) { c.log = log.WithComponent("contactform") }
}

// Controller mediates one request/response cycle per submit.
type Controller struct {
	view      View
	submitter Submitter
	log       *logger.Logger
	afterFunc AfterFunc
	hideDelay time.Duration

	mu        sync.Mutex
	state     State
	cycle     uint64
	hideTimer Timer
}

// New creates a Controller for view that sends through submitter.
func New(view View, submitter Submitter, opts ...Option) *Controller {
	c := &Controller{
		view:      view,
		submitter: submitter,
		log:       logger.Nop(),
		afterFunc: func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) },
		hideDelay: DefaultHideDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs one submission cycle and blocks until the relay answers.
// The submit control is re-enabled and its label restored on every path.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.state = StateSubmitting
	c.cycle++
	cycle := c.cycle
	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
	c.mu.Unlock()

	original := c.view.SubmitLabel()
	c.view.SetSubmitLabel(SendingLabel)
	c.view.SetSubmitEnabled(false)
	c.view.HideStatus()

	err := c.send(ctx, c.view.Fields())

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.restoreSubmit(original)

	if err != nil {
		c.view.ShowStatus(ErrorMessage, StatusError)
		c.state = StateError
		c.log.Error().Err(err).Uint64("cycle", cycle).Msg("form submission error")
		return err
	}

	c.view.ShowStatus(SuccessMessage, StatusSuccess)
	c.view.Reset()
	c.state = StateSuccess
	c.hideTimer = c.afterFunc(c.hideDelay, func() { c.hideStatus(cycle) })
	return nil
}

func (c *Controller) restoreSubmit(label string) {
	c.view.SetSubmitLabel(label)
	c.view.SetSubmitEnabled(true)
}

// Close cancels a pending auto-hide.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
}

// send turns every failure mode, including a panicking submitter and a
// success:false body, into an error.
func (c *Controller) send(ctx context.Context, s contactrelay.Submission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("contactform: submitter panicked: %v", r)
		}
	}()

	result, err := c.submitter.Send(ctx, s)
	if err != nil {
		return err
	}
	if result == nil || !result.Success {
		msg := "Error al enviar el mensaje"
		if result != nil && result.Error != "" {
			msg = result.Error
		}
		return errors.New(msg)
	}
	return nil
}

// hideStatus hides the success message unless a newer cycle has started.
func (c *Controller) hideStatus(cycle uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cycle != cycle {
		return
	}
	c.view.HideStatus()
	c.hideTimer = nil
	c.state = StateIdle
}
