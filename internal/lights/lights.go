// Package lights wraps remote lighting objects in adapters that turn platform
// light commands (on/off, brightness 0-255, RGB or hue/saturation) into calls
// on the lighting software, keeping the last known state in memory.
package lights

import (
	"context"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wheelibin/erbridge/internal/constants"
	"github.com/wheelibin/erbridge/internal/models"
)

type ColorMode string

const (
	ColorModeRGB ColorMode = constants.ModeRGB
	ColorModeHS  ColorMode = constants.ModeHS
)

type remoteObject interface {
	ObjectName() string
	ObjectKey() models.ObjectKey
	SetRGB(ctx context.Context, r, g, b int) error
	SetHSV(ctx context.Context, h, s, v float64) error
}

// TurnOnOptions holds the optional attributes of a turn on command, nil means not given
type TurnOnOptions struct {
	Brightness *int
	RGB        *models.RGB
	HS         *models.HS
}

// Light is a platform light entity backed by a remote lighting object.
// State getters return nil until the state is known.
type Light interface {
	Name() string
	Key() models.ObjectKey
	ColorMode() ColorMode
	IsOn() *bool
	Brightness() *int
	RGBColor() *models.RGB
	HSColor() *models.HS
	TurnOn(ctx context.Context, opts TurnOnOptions) error
	TurnOff(ctx context.Context) error
	// Sync folds a state change reported by the lighting software into the cached state
	Sync(event models.ObjectEvent)
}

func NewLight(mode ColorMode, obj remoteObject) Light {
	if mode == ColorModeHS {
		return NewHSLight(obj)
	}
	return NewRGBLight(obj)
}

func clampBrightness(b int) int {
	return max(0, min(constants.MaxBrightness, b))
}

func clampChannel(c int) int {
	return max(0, min(255, c))
}

func brightnessFromValue(v float64) int {
	return clampBrightness(int(math.Round(v * constants.MaxBrightness)))
}

// hsToRGB converts a platform hue (0-360) / saturation (0-100) pair to a full value rgb colour
func hsToRGB(hs models.HS) models.RGB {
	r, g, b := colorful.Hsv(math.Mod(hs.Hue, 360), math.Max(0, math.Min(1, hs.Saturation/100)), 1).RGB255()
	return models.RGB{R: int(r), G: int(g), B: int(b)}
}

// rgbToHS is the inverse of hsToRGB, the value component is returned separately (0-1)
func rgbToHS(rgb models.RGB) (models.HS, float64) {
	c := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	h, s, v := c.Hsv()
	return models.HS{Hue: h, Saturation: s * 100}, v
}
