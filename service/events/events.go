// Package events ships usage-analytics events to the product's own Intercom
// workspace. Posting is asynchronous and best-effort: a delivery never waits
// on, or fails because of, analytics.
package events

import (
	"time"

	log "github.com/sirupsen/logrus"
	intercomOfficial "gopkg.in/intercom/intercom-go.v2"
)

// Event is a single analytics event for an account.
type Event struct {
	AccountID string
	EventName string
	CreatedAt time.Time
	Metadata  map[string]interface{}
}

// EventService queues and posts analytics events.
type EventService interface {
	// EnqueueEvent adds an event to the queue.
	EnqueueEvent(event Event)
	// DrainEvents posts queued events until Close is called. Run it on its
	// own goroutine.
	DrainEvents()
	// Close stops the drain loop once the queue is empty.
	Close()
}

// IntercomConfig holds configuration for the Intercom event service.
type IntercomConfig struct {
	AccessToken string `env:"RELAY_INTERCOM_ACCESS_TOKEN"`
}

// NewIntercomEventService creates an EventService posting to Intercom, with
// a queue of the given depth.
func NewIntercomEventService(config IntercomConfig, depth int) EventService {
	return &intercomEventService{
		config: config,
		c:      make(chan Event, depth),
	}
}

type intercomEventService struct {
	config IntercomConfig
	c      chan Event
}

func (s *intercomEventService) EnqueueEvent(event Event) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	s.c <- event
}

func (s *intercomEventService) DrainEvents() {
	ic := intercomOfficial.NewClient(s.config.AccessToken, "")
	for event := range s.c {
		icEvent := intercomOfficial.Event{
			UserID:    event.AccountID,
			EventName: event.EventName,
			CreatedAt: event.CreatedAt.Unix(),
			Metadata:  event.Metadata,
		}
		err := ic.Events.Save(&icEvent)
		if err != nil {
			log.Printf("Intercom Error: %s", err)
		}
	}
}

func (s *intercomEventService) Close() {
	close(s.c)
}

// NewNopEventService creates an EventService that drops everything. Used
// when the Intercom events feature is disabled.
func NewNopEventService() EventService {
	return nopEventService{}
}

type nopEventService struct{}

func (nopEventService) EnqueueEvent(event Event) {}
func (nopEventService) DrainEvents()             {}
func (nopEventService) Close()                   {}
