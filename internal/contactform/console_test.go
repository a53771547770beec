package contactform

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	contactrelay "github.com/contactrelay/contactrelay/sdk/go"
)

func TestConsoleView(t *testing.T) {
	var out bytes.Buffer
	v := NewConsoleView(&out, contactrelay.Submission{Nombre: "Ana"})

	assert.Equal(t, DefaultSubmitLabel, v.SubmitLabel())
	assert.True(t, v.SubmitEnabled())

	v.SetSubmitLabel(SendingLabel)
	v.SetSubmitLabel(SendingLabel)
	v.SetSubmitEnabled(false)
	v.ShowStatus(ErrorMessage, StatusError)
	v.HideStatus()
	v.ShowStatus(SuccessMessage, StatusSuccess)
	v.Reset()

	assert.Equal(t, contactrelay.Submission{}, v.Fields())
	assert.False(t, v.SubmitEnabled())
	text, kind, visible := v.Status()
	assert.Equal(t, SuccessMessage, text)
	assert.Equal(t, StatusSuccess, kind)
	assert.True(t, visible)

	assert.Equal(t, "[Enviando...]\nERROR: "+ErrorMessage+"\nOK: "+SuccessMessage+"\n", out.String())
}
