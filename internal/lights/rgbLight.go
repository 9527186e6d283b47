package lights

import (
	"context"
	"math"
	"sync"

	"github.com/samber/lo"
	"github.com/wheelibin/erbridge/internal/constants"
	"github.com/wheelibin/erbridge/internal/models"
)

var white = models.RGB{R: 255, G: 255, B: 255}

// RGBLight drives its object with rgb values pre-scaled by brightness
type RGBLight struct {
	obj  remoteObject
	name string

	mu         sync.Mutex
	brightness *int
	rgb        *models.RGB
}

func NewRGBLight(obj remoteObject) *RGBLight {
	return &RGBLight{obj: obj, name: obj.ObjectName()}
}

func (l *RGBLight) Name() string {
	return l.name
}

func (l *RGBLight) Key() models.ObjectKey {
	return l.obj.ObjectKey()
}

func (l *RGBLight) ColorMode() ColorMode {
	return ColorModeRGB
}

func (l *RGBLight) IsOn() *bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.rgb == nil {
		return nil
	}
	return lo.ToPtr(!l.rgb.IsBlack())
}

func (l *RGBLight) Brightness() *int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.brightness == nil {
		return nil
	}
	return lo.ToPtr(*l.brightness)
}

func (l *RGBLight) RGBColor() *models.RGB {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.rgb == nil {
		return nil
	}
	return lo.ToPtr(*l.rgb)
}

func (l *RGBLight) HSColor() *models.HS {
	rgb := l.RGBColor()
	if rgb == nil {
		return nil
	}
	hs, _ := rgbToHS(*rgb)
	return &hs
}

// TurnOn uses the given brightness and colour, falling back to full brightness and white
func (l *RGBLight) TurnOn(ctx context.Context, opts TurnOnOptions) error {
	brightness := constants.MaxBrightness
	if opts.Brightness != nil {
		brightness = clampBrightness(*opts.Brightness)
	}

	rgb := white
	switch {
	case opts.RGB != nil:
		rgb = models.RGB{R: clampChannel(opts.RGB.R), G: clampChannel(opts.RGB.G), B: clampChannel(opts.RGB.B)}
	case opts.HS != nil:
		rgb = hsToRGB(*opts.HS)
	}

	bm := float64(brightness) / constants.MaxBrightness

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.obj.SetRGB(ctx, int(float64(rgb.R)*bm), int(float64(rgb.G)*bm), int(float64(rgb.B)*bm))
	if err != nil {
		return err
	}

	l.brightness = &brightness
	l.rgb = &rgb
	return nil
}

func (l *RGBLight) TurnOff(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.obj.SetRGB(ctx, 0, 0, 0); err != nil {
		return err
	}

	l.brightness = lo.ToPtr(0)
	l.rgb = &models.RGB{}
	return nil
}

func (l *RGBLight) Sync(event models.ObjectEvent) {
	var output models.RGB
	switch {
	case event.RGB != nil:
		output = models.RGB{R: clampChannel(event.RGB[0]), G: clampChannel(event.RGB[1]), B: clampChannel(event.RGB[2])}
	case event.HSV != nil:
		rgb := hsToRGB(models.HS{Hue: event.HSV[0], Saturation: event.HSV[1]})
		v := math.Max(0, math.Min(1, event.HSV[2]))
		output = models.RGB{
			R: int(math.Round(float64(rgb.R) * v)),
			G: int(math.Round(float64(rgb.G) * v)),
			B: int(math.Round(float64(rgb.B) * v)),
		}
	default:
		return
	}

	// the brightest channel carries the brightness, the colour is stored unscaled
	brightness := max(output.R, output.G, output.B)
	rgb := models.RGB{}
	if brightness > 0 {
		scale := float64(constants.MaxBrightness) / float64(brightness)
		rgb = models.RGB{
			R: clampChannel(int(math.Round(float64(output.R) * scale))),
			G: clampChannel(int(math.Round(float64(output.G) * scale))),
			B: clampChannel(int(math.Round(float64(output.B) * scale))),
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.brightness = &brightness
	l.rgb = &rgb
}
