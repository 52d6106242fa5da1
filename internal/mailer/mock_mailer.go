package mailer

import "sync"

// SentMessage records one email that a MockMailer would have delivered.
type SentMessage struct {
	Recipient    string
	TemplateFile string
	Data         any
}

// MockMailer implements Mailer for tests by recording messages instead of
// sending them.
type MockMailer struct {
	mu   sync.RWMutex
	sent []SentMessage
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, SentMessage{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}

// Sent returns a copy of every recorded message.
func (m *MockMailer) Sent() []SentMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sent := make([]SentMessage, len(m.sent))
	copy(sent, m.sent)

	return sent
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = nil
}
