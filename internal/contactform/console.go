package contactform

import (
	"fmt"
	"io"
	"sync"

	contactrelay "github.com/contactrelay/contactrelay/sdk/go"
)

// DefaultSubmitLabel is the label of an idle submit control.
const DefaultSubmitLabel = "Enviar mensaje"

// ConsoleView is a View that prints form updates to a terminal.
type ConsoleView struct {
	mu      sync.Mutex
	out     io.Writer
	fields  contactrelay.Submission
	label   string
	enabled bool
	status  string
	kind    StatusKind
	visible bool
}

// NewConsoleView creates a view pre-filled with fields.
func NewConsoleView(out io.Writer, fields contactrelay.Submission) *ConsoleView {
	return &ConsoleView{
		out:     out,
		fields:  fields,
		label:   DefaultSubmitLabel,
		enabled: true,
	}
}

func (v *ConsoleView) Fields() contactrelay.Submission {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fields
}

func (v *ConsoleView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fields = contactrelay.Submission{}
}

func (v *ConsoleView) SetSubmitEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enabled = enabled
}

func (v *ConsoleView) SubmitLabel() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.label
}

func (v *ConsoleView) SetSubmitLabel(label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if label != v.label {
		fmt.Fprintf(v.out, "[%s]\n", label)
	}
	v.label = label
}

func (v *ConsoleView) ShowStatus(text string, kind StatusKind) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status, v.kind, v.visible = text, kind, true

	prefix := "OK"
	if kind == StatusError {
		prefix = "ERROR"
	}
	fmt.Fprintf(v.out, "%s: %s\n", prefix, text)
}

func (v *ConsoleView) HideStatus() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = false
}

// Status returns the last status text and whether it is still visible.
func (v *ConsoleView) Status() (text string, kind StatusKind, visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status, v.kind, v.visible
}

// SubmitEnabled reports whether the submit control is enabled.
func (v *ConsoleView) SubmitEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.enabled
}
