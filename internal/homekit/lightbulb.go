package homekit

import (
	"context"
	"math"
	"time"

	"github.com/brutella/hap/accessory"
	"github.com/brutella/hap/characteristic"
	"github.com/brutella/hap/service"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/wheelibin/erbridge/internal/constants"
	"github.com/wheelibin/erbridge/internal/lights"
	"github.com/wheelibin/erbridge/internal/models"
)

const commandTimeout = 5 * time.Second

type LightbulbService struct {
	*service.S

	On         *characteristic.On
	Brightness *characteristic.Brightness
	Hue        *characteristic.Hue
	Saturation *characteristic.Saturation
}

func NewLightbulbService() *LightbulbService {
	svc := LightbulbService{}
	svc.S = service.New(service.TypeLightbulb)

	svc.On = characteristic.NewOn()
	svc.AddC(svc.On.C)

	svc.Brightness = characteristic.NewBrightness()
	svc.AddC(svc.Brightness.C)

	svc.Hue = characteristic.NewHue()
	svc.AddC(svc.Hue.C)

	svc.Saturation = characteristic.NewSaturation()
	svc.AddC(svc.Saturation.C)

	return &svc
}

// Lightbulb exposes one light to HomeKit
type Lightbulb struct {
	*accessory.A
	Lightbulb *LightbulbService

	light  lights.Light
	logger *log.Logger
}

func NewLightbulb(light lights.Light, logger *log.Logger) *Lightbulb {
	key := light.Key()
	info := accessory.Info{
		Name:         light.Name(),
		SerialNumber: SerialNumber(key),
		Manufacturer: constants.Manufacturer,
		Model:        string(light.ColorMode()),
	}

	acc := Lightbulb{light: light, logger: logger.With("light", light.Name())}
	acc.A = accessory.New(info, accessory.TypeLightbulb)
	acc.Id = AccessoryID(key)
	acc.Lightbulb = NewLightbulbService()

	acc.Lightbulb.On.SetValue(false)
	acc.Lightbulb.Brightness.SetValue(100)

	acc.AddS(acc.Lightbulb.S)
	acc.attachHandlers()

	return &acc
}

// BridgeAccessoryID is the id hap gives the bridge accessory
const BridgeAccessoryID uint64 = 1

// AccessoryID maps an object to a stable accessory id, ids 0 and 1 are taken by the bridge
func AccessoryID(key models.ObjectKey) uint64 {
	return (uint64(uint32(key.Page))<<32 | uint64(uint32(key.ID))) + 2
}

// SerialNumber is a name based uuid so the same object always gets the same serial
func SerialNumber(key models.ObjectKey) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("erbridge/"+key.String())).String()
}

func (a *Lightbulb) Light() lights.Light {
	return a.light
}

func (a *Lightbulb) attachHandlers() {
	a.Lightbulb.On.OnValueRemoteUpdate(func(on bool) {
		a.logger.Info("Light state", "on", on)
		a.handleOn(on)
	})
	a.Lightbulb.Brightness.OnValueRemoteUpdate(func(brightness int) {
		a.logger.Info("Light brightness", "brightness", brightness)
		a.handleChange(lo.ToPtr(brightness), nil, nil)
	})
	a.Lightbulb.Hue.OnValueRemoteUpdate(func(hue float64) {
		a.logger.Info("Light hue", "hue", hue)
		a.handleChange(nil, lo.ToPtr(hue), nil)
	})
	a.Lightbulb.Saturation.OnValueRemoteUpdate(func(sat float64) {
		a.logger.Info("Light saturation", "saturation", sat)
		a.handleChange(nil, nil, lo.ToPtr(sat))
	})
}

func (a *Lightbulb) handleOn(on bool) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var err error
	if on {
		err = a.light.TurnOn(ctx, a.turnOnOptions(nil, nil, nil))
	} else {
		err = a.light.TurnOff(ctx)
	}
	if err != nil {
		a.logger.Error("error switching light", "on", on, "err", err)
	}
}

// handleChange sends the new colour/brightness, the light is only commanded when it is on
func (a *Lightbulb) handleChange(brightness *int, hue *float64, sat *float64) {
	if !a.Lightbulb.On.Value() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	// dimming to zero switches the light off
	if brightness != nil && *brightness <= 0 {
		if err := a.light.TurnOff(ctx); err != nil {
			a.logger.Error("error switching light", "on", false, "err", err)
			return
		}
		a.Lightbulb.On.SetValue(false)
		return
	}

	if err := a.light.TurnOn(ctx, a.turnOnOptions(brightness, hue, sat)); err != nil {
		a.logger.Error("error updating light", "err", err)
	}
}

// turnOnOptions combines the given values with the current characteristic values
func (a *Lightbulb) turnOnOptions(brightness *int, hue *float64, sat *float64) lights.TurnOnOptions {
	pct := a.Lightbulb.Brightness.Value()
	if brightness != nil {
		pct = *brightness
	}
	hs := models.HS{Hue: a.Lightbulb.Hue.Value(), Saturation: a.Lightbulb.Saturation.Value()}
	if hue != nil {
		hs.Hue = *hue
	}
	if sat != nil {
		hs.Saturation = *sat
	}

	return lights.TurnOnOptions{
		Brightness: lo.ToPtr(BrightnessFromPercent(pct)),
		HS:         &hs,
	}
}

// Refresh copies the cached light state into the characteristics
func (a *Lightbulb) Refresh() {
	if on := a.light.IsOn(); on != nil {
		a.Lightbulb.On.SetValue(*on)
	}
	// a light that is off keeps showing its last brightness in the home app
	if b := a.light.Brightness(); b != nil && *b > 0 {
		a.Lightbulb.Brightness.SetValue(BrightnessToPercent(*b))
	}
	if hs := a.light.HSColor(); hs != nil {
		a.Lightbulb.Hue.SetValue(math.Max(0, math.Min(360, hs.Hue)))
		a.Lightbulb.Saturation.SetValue(math.Max(0, math.Min(100, hs.Saturation)))
	}
}

// BrightnessFromPercent converts homekit brightness (0-100) to the 0-255 range
func BrightnessFromPercent(pct int) int {
	pct = max(0, min(100, pct))
	return int(math.Round(float64(pct) * constants.MaxBrightness / 100))
}

func BrightnessToPercent(b int) int {
	b = max(0, min(constants.MaxBrightness, b))
	return int(math.Round(float64(b) * 100 / constants.MaxBrightness))
}
