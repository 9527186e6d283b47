package easyremote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/erbridge/internal/config"
	"github.com/wheelibin/erbridge/internal/models"
)

// EasyRemoteEventConsumer listens to object changes made by anything else driving the lighting software
type EasyRemoteEventConsumer struct {
	Logger *log.Logger

	url          string
	client       *sse.Client
	eventChannel chan *sse.Event
}

func NewEasyRemoteEventConsumer(cfg config.Config, logger *log.Logger) *EasyRemoteEventConsumer {
	return &EasyRemoteEventConsumer{
		Logger: logger,
		url:    BaseURL(cfg.Host) + "/api/events",
	}
}

// Subscribe starts delivering raw stream events to eventChannel until ctx is done
func (c *EasyRemoteEventConsumer) Subscribe(ctx context.Context, eventChannel chan *sse.Event) error {

	c.eventChannel = eventChannel
	c.client = sse.NewClient(c.url)
	c.client.Connection = &http.Client{}

	c.client.OnConnect(func(_ *sse.Client) {
		c.Logger.Info("Connected to lighting software, listening for events...")
	})
	c.client.OnDisconnect(func(_ *sse.Client) {
		c.Logger.Info("Disconnected from lighting software")
	})

	if err := c.client.SubscribeChanWithContext(ctx, "", c.eventChannel); err != nil {
		return fmt.Errorf("error subscribing to object updates: %w", err)
	}
	return nil
}

func (c *EasyRemoteEventConsumer) Unsubscribe() {
	if c.client == nil {
		return
	}
	c.Logger.Debug("Unsubscribe events")
	c.client.Unsubscribe(c.eventChannel)
}

// DecodeEvents parses the payload of a stream event, which may hold a single event or a batch
func DecodeEvents(data []byte) ([]models.ObjectEvent, error) {
	events := []models.ObjectEvent{}
	if err := json.Unmarshal(data, &events); err == nil {
		return events, nil
	}

	event := models.ObjectEvent{}
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("error parsing object event: %w", err)
	}
	return []models.ObjectEvent{event}, nil
}
