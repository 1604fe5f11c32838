package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockMailer struct {
	WasCalled bool
	LastTo    string
	LastTitle string
}

func (m *MockMailer) SendPropertyPublishedEmail(to, propertyTitle string) error {
	m.WasCalled = true
	m.LastTo = to
	m.LastTitle = propertyTitle
	return nil
}

func TestSendPropertyPublishedEmail_Mock(t *testing.T) {
	mock := &MockMailer{}
	err := mock.SendPropertyPublishedEmail("owner@example.com", "Sunny apartment")

	assert.NoError(t, err)
	assert.True(t, mock.WasCalled)
	assert.Equal(t, "owner@example.com", mock.LastTo)
	assert.Equal(t, "Sunny apartment", mock.LastTitle)
}

func TestNew(t *testing.T) {
	m := New("smtp.example.com", 587, "noreply@example.com", "secret")
	assert.NotNil(t, m)
	assert.Equal(t, "noreply@example.com", m.from)
}
