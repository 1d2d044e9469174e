package intercom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const conversationPayload = `{
	"id": "C1",
	"conversation_message": {"subject": "Broken button", "body": "Button is broken"},
	"contacts": {"contacts": [{"name": "Ada", "email": "ada@x.com", "custom_attributes": {"plan": "startup"}}]}
}`

func TestGetConversation(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/conversations/C1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(conversationPayload))
	}))
	defer server.Close()

	s := New(ServiceConfig{Endpoint: server.URL})
	conversation, err := s.GetConversation(context.Background(), "ic-token", "C1")
	if err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer ic-token" {
		t.Errorf("Expected bearer auth found %q", gotAuth)
	}
	customer := conversation.Customer()
	if customer.Name != "Ada" || customer.Email != "ada@x.com" {
		t.Errorf("unexpected customer %+v", customer)
	}
	if customer.CustomAttributes.Plan != "startup" {
		t.Errorf("Expected plan startup found %q", customer.CustomAttributes.Plan)
	}
	if conversation.ConversationMessage.Body != "Button is broken" {
		t.Errorf("unexpected message %+v", conversation.ConversationMessage)
	}
}

func TestGetConversationUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(502)
	}))
	defer server.Close()

	s := New(ServiceConfig{Endpoint: server.URL})
	_, err := s.GetConversation(context.Background(), "t", "C1")
	if err == nil {
		t.Error("Expected error for 502 response")
	}
}

func TestCustomerEmpty(t *testing.T) {
	customer := Conversation{}.Customer()
	if customer.Name != "" || customer.Email != "" {
		t.Errorf("Expected zero contact found %+v", customer)
	}
}

func TestAddNote(t *testing.T) {
	var got notePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/conversations/C1/reply" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Error(err)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	s := New(ServiceConfig{Endpoint: server.URL})
	if err := s.AddNote(context.Background(), "t", "C1", "note body"); err != nil {
		t.Fatal(err)
	}
	if got.MessageType != "note" || got.Type != "admin" || got.Body != "note body" {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestAddNoteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
	}))
	defer server.Close()

	s := New(ServiceConfig{Endpoint: server.URL})
	if err := s.AddNote(context.Background(), "t", "C1", "body"); err == nil {
		t.Error("Expected error for 401 response")
	}
}
