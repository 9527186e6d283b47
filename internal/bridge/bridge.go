package bridge

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/brutella/hap"
	"github.com/brutella/hap/accessory"
	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/samber/lo"
	"github.com/wheelibin/erbridge/internal/config"
	"github.com/wheelibin/erbridge/internal/constants"
	"github.com/wheelibin/erbridge/internal/easyremote"
	"github.com/wheelibin/erbridge/internal/homekit"
	"github.com/wheelibin/erbridge/internal/lights"
	"github.com/wheelibin/erbridge/internal/models"
)

type LightService interface {
	// discovers the objects of the lighting software and wraps them as lights
	Discover(ctx context.Context) ([]lights.Light, error)
}

type EventConsumer interface {
	Subscribe(ctx context.Context, eventChannel chan *sse.Event) error
	Unsubscribe()
}

type hapServer interface {
	ListenAndServe(ctx context.Context) error
}

type serverFactory func(accessories []*accessory.A) (hapServer, error)

type Bridge struct {
	cfg           config.Config
	logger        *log.Logger
	lightService  LightService
	eventConsumer EventConsumer
	newServer     serverFactory

	accessories map[models.ObjectKey]*homekit.Lightbulb
}

// NewBridge wires the lights to a HomeKit bridge, eventConsumer may be nil to run without remote events
func NewBridge(cfg config.Config, logger *log.Logger, lightService LightService, eventConsumer EventConsumer) *Bridge {
	b := &Bridge{
		cfg:           cfg,
		logger:        logger,
		lightService:  lightService,
		eventConsumer: eventConsumer,
	}
	b.newServer = b.newHAPServer
	return b
}

func (b *Bridge) Initialise(ctx context.Context) error {
	b.logger.Debug("Bridge.Initialise")

	found, err := b.lightService.Discover(ctx)
	if err != nil {
		return fmt.Errorf("error discovering lights: %w", err)
	}

	b.accessories = make(map[models.ObjectKey]*homekit.Lightbulb, len(found))
	ids := map[uint64]models.ObjectKey{}
	for _, l := range found {
		key := l.Key()
		if _, exists := b.accessories[key]; exists {
			b.logger.Warn("duplicate object, skipping", "object", key, "name", l.Name())
			continue
		}
		id := homekit.AccessoryID(key)
		if other, taken := ids[id]; taken || id <= homekit.BridgeAccessoryID {
			b.logger.Warn("object maps to an accessory id already in use, skipping", "object", key, "name", l.Name(), "id", id, "other", other)
			continue
		}
		ids[id] = key
		b.accessories[key] = homekit.NewLightbulb(l, b.logger)
	}

	b.logger.Info("Lights ready", "total", len(b.accessories))
	return nil
}

// Accessories returns the lightbulb accessories ordered by accessory id
func (b *Bridge) Accessories() []*homekit.Lightbulb {
	accs := lo.Values(b.accessories)
	sort.Slice(accs, func(i, j int) bool { return accs[i].Id < accs[j].Id })
	return accs
}

func (b *Bridge) Run(ctx context.Context) error {
	b.logger.Debug("Bridge.Run")

	if b.accessories == nil {
		return errors.New("bridge not initialised")
	}

	accs := lo.Map(b.Accessories(), func(a *homekit.Lightbulb, _ int) *accessory.A { return a.A })
	server, err := b.newServer(accs)
	if err != nil {
		return fmt.Errorf("error creating homekit server: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe(ctx)
	}()
	b.logger.Info("HomeKit bridge running", "name", b.cfg.Bridge.Name, "pin", b.cfg.Bridge.Pin)

	// start listening to lighting software events
	eventChannel := make(chan *sse.Event)
	if b.eventConsumer != nil {
		if err := b.eventConsumer.Subscribe(ctx, eventChannel); err != nil {
			// the bridge still works without events, the cached state just goes stale
			b.logger.Error(err)
		} else {
			defer b.eventConsumer.Unsubscribe()
		}
	}

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Bridge.Run: stop signal received")
			return serverStopped(ctx, <-serverErr)

		case err := <-serverErr:
			return serverStopped(ctx, err)

		case event := <-eventChannel:
			b.logger.Debug("Bridge.Run: received lighting software event")
			b.HandleEvent(event)
		}
	}
}

// serverStopped reports a server error unless the server stopped because ctx ended
func serverStopped(ctx context.Context, err error) error {
	if err == nil || ctx.Err() != nil {
		return nil
	}
	return fmt.Errorf("homekit server stopped: %w", err)
}

// HandleEvent updates the cached state of the lights named in the event
func (b *Bridge) HandleEvent(event *sse.Event) {
	if event == nil || len(event.Data) == 0 {
		return
	}

	events, err := easyremote.DecodeEvents(event.Data)
	if err != nil {
		b.logger.Error(err)
		return
	}

	for _, evt := range events {
		if evt.Type != constants.EventTypeUpdate {
			continue
		}
		acc, found := b.accessories[evt.Key()]
		if !found {
			b.logger.Debug("event received for an unknown object, ignoring", "object", evt.Key())
			continue
		}
		acc.Light().Sync(evt)
		acc.Refresh()
	}
}

func (b *Bridge) newHAPServer(accessories []*accessory.A) (hapServer, error) {
	bridge := accessory.NewBridge(accessory.Info{
		Name:         b.cfg.Bridge.Name,
		Manufacturer: constants.Manufacturer,
	})

	server, err := hap.NewServer(hap.NewFsStore(b.cfg.Bridge.StoragePath), bridge.A, accessories...)
	if err != nil {
		return nil, err
	}
	server.Pin = b.cfg.Bridge.Pin
	server.Addr = b.cfg.Bridge.Addr

	return server, nil
}
