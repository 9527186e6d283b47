package lights

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"github.com/wheelibin/erbridge/internal/constants"
	"github.com/wheelibin/erbridge/internal/models"
)

var defaultHS = models.HS{Hue: constants.DefaultHue, Saturation: constants.DefaultSaturation}

// HSLight drives its object with hsv values, brightness becomes the value component
type HSLight struct {
	obj  remoteObject
	name string

	mu         sync.Mutex
	brightness *int
	hs         *models.HS
}

func NewHSLight(obj remoteObject) *HSLight {
	return &HSLight{obj: obj, name: obj.ObjectName()}
}

func (l *HSLight) Name() string {
	return l.name
}

func (l *HSLight) Key() models.ObjectKey {
	return l.obj.ObjectKey()
}

func (l *HSLight) ColorMode() ColorMode {
	return ColorModeHS
}

func (l *HSLight) IsOn() *bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.brightness == nil {
		return nil
	}
	return lo.ToPtr(*l.brightness != 0)
}

func (l *HSLight) Brightness() *int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.brightness == nil {
		return nil
	}
	return lo.ToPtr(*l.brightness)
}

func (l *HSLight) HSColor() *models.HS {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.hs == nil {
		return nil
	}
	return lo.ToPtr(*l.hs)
}

func (l *HSLight) RGBColor() *models.RGB {
	hs := l.HSColor()
	if hs == nil {
		return nil
	}
	return lo.ToPtr(hsToRGB(*hs))
}

func (l *HSLight) TurnOn(ctx context.Context, opts TurnOnOptions) error {
	brightness := constants.MaxBrightness
	if opts.Brightness != nil {
		brightness = clampBrightness(*opts.Brightness)
	}

	hs := defaultHS
	switch {
	case opts.HS != nil:
		hs = *opts.HS
	case opts.RGB != nil:
		hs, _ = rgbToHS(*opts.RGB)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.obj.SetHSV(ctx, hs.Hue, hs.Saturation, float64(brightness)/constants.MaxBrightness)
	if err != nil {
		return err
	}

	l.brightness = &brightness
	l.hs = &hs
	return nil
}

// TurnOff sets the value to zero but keeps the colour, so it comes back on the same
func (l *HSLight) TurnOff(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	hs := defaultHS
	if l.hs != nil {
		hs = *l.hs
	}

	if err := l.obj.SetHSV(ctx, hs.Hue, hs.Saturation, 0); err != nil {
		return err
	}

	l.brightness = lo.ToPtr(0)
	l.hs = &hs
	return nil
}

func (l *HSLight) Sync(event models.ObjectEvent) {
	var (
		hs models.HS
		v  float64
	)
	switch {
	case event.HSV != nil:
		hs = models.HS{Hue: event.HSV[0], Saturation: event.HSV[1]}
		v = event.HSV[2]
	case event.RGB != nil:
		hs, v = rgbToHS(models.RGB{R: clampChannel(event.RGB[0]), G: clampChannel(event.RGB[1]), B: clampChannel(event.RGB[2])})
	default:
		return
	}

	brightness := brightnessFromValue(v)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.brightness = &brightness
	// a black rgb report carries no hue, keep the one we have
	if v > 0 || l.hs == nil || event.HSV != nil {
		l.hs = &hs
	}
}
