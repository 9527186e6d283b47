package lights

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/erbridge/internal/config"
	"github.com/wheelibin/erbridge/internal/easyremote"
	"github.com/wheelibin/erbridge/internal/models"
)

type objectLister interface {
	Objects(ctx context.Context) (map[string]*easyremote.Object, error)
}

// AddLightsCallback receives the lights created during set up
type AddLightsCallback func(lights ...Light)

type LightService struct {
	logger  *log.Logger
	cfg     config.Config
	objects objectLister
}

func NewLightService(cfg config.Config, logger *log.Logger, objects objectLister) *LightService {
	return &LightService{logger: logger, cfg: cfg, objects: objects}
}

// Setup enumerates the objects of the lighting software and hands one light per object to add
func (s *LightService) Setup(ctx context.Context, add AddLightsCallback) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	s.logger.Info("Reading objects from lighting software...", "host", s.cfg.Host)
	objects, err := s.objects.Objects(ctx)
	if err != nil {
		return err
	}

	mode := ColorMode(s.cfg.Mode)
	lights := lo.Map(easyremote.SortedObjects(objects), func(o *easyremote.Object, _ int) Light {
		return NewLight(mode, o)
	})
	s.logger.Info("Found objects", "total", len(lights), "mode", mode)

	add(lights...)
	return nil
}

// Discover is Setup collecting the lights into a slice
func (s *LightService) Discover(ctx context.Context) ([]Light, error) {
	var found []Light
	err := s.Setup(ctx, func(lights ...Light) {
		found = append(found, lights...)
	})
	return found, err
}

// FindLight returns the light for the given object key
func FindLight(lights []Light, key models.ObjectKey) (Light, error) {
	light, found := lo.Find(lights, func(l Light) bool { return l.Key() == key })
	if !found {
		return nil, fmt.Errorf("no light for object %s: %w", key, easyremote.ErrObjectNotFound)
	}
	return light, nil
}
