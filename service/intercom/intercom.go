// Package intercom is a client for the per-account Intercom REST calls:
// fetching a conversation and posting an internal note back onto it. The
// workspace-level event analytics live in service/events instead.
package intercom

//go:generate mockgen -source=intercom.go -package=intercom -destination=intercom_mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Contact is a customer on a conversation.
type Contact struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	CustomAttributes struct {
		Plan string `json:"plan"`
	} `json:"custom_attributes"`
}

// Conversation is a support thread as returned by the conversations API.
type Conversation struct {
	ID                  string `json:"id"`
	ConversationMessage struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	} `json:"conversation_message"`
	Contacts struct {
		Contacts []Contact `json:"contacts"`
	} `json:"contacts"`
}

// Customer returns the first contact on the conversation, or a zero Contact
// when there is none.
func (c Conversation) Customer() Contact {
	if len(c.Contacts.Contacts) == 0 {
		return Contact{}
	}
	return c.Contacts.Contacts[0]
}

// Service is an Intercom conversations service. Tokens are per-account.
type Service interface {
	// GetConversation fetches the full conversation by id.
	GetConversation(ctx context.Context, token, conversationID string) (Conversation, error)
	// AddNote posts an admin note onto the conversation.
	AddNote(ctx context.Context, token, conversationID, body string) error
}

// ServiceConfig holds configuration for service.
type ServiceConfig struct {
	Endpoint string `env:"RELAY_INTERCOM_ENDPOINT" envDefault:"https://api.intercom.io"`
}

// New creates a new service with conf.
func New(conf ServiceConfig) Service {
	return &service{conf: conf, client: http.DefaultClient}
}

type service struct {
	conf   ServiceConfig
	client *http.Client
}

func (s *service) GetConversation(ctx context.Context, token, conversationID string) (Conversation, error) {
	url := fmt.Sprintf("%s/conversations/%s", s.conf.Endpoint, conversationID)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return Conversation{}, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Conversation{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Conversation{}, fmt.Errorf("conversation fetch returned status %d", resp.StatusCode)
	}

	var conversation Conversation
	if err := json.NewDecoder(resp.Body).Decode(&conversation); err != nil {
		return Conversation{}, err
	}
	return conversation, nil
}

type notePayload struct {
	MessageType string `json:"message_type"`
	Type        string `json:"type"`
	Body        string `json:"body"`
}

func (s *service) AddNote(ctx context.Context, token, conversationID, body string) error {
	payload, err := json.Marshal(notePayload{
		MessageType: "note",
		Type:        "admin",
		Body:        body,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/conversations/%s/reply", s.conf.Endpoint, conversationID)
	req, err := http.NewRequest("POST", url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("note create returned status %d", resp.StatusCode)
	}
	return nil
}
