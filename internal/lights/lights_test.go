package lights_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/erbridge/internal/lights"
	"github.com/wheelibin/erbridge/internal/models"
	"github.com/wheelibin/erbridge/mocks"
)

var objectKey = models.ObjectKey{Page: 1, ID: 3}

func newMockObject(t *testing.T) *mocks.MockLightsRemoteObject {
	obj := mocks.NewMockLightsRemoteObject(t)
	obj.On("ObjectName").Return("Stage Left")
	obj.On("ObjectKey").Return(objectKey).Maybe()
	return obj
}

func Test_RGBLight_InitialState(t *testing.T) {

	t.Run("should report unknown state until commanded", func(t *testing.T) {
		// arrange
		obj := newMockObject(t)

		// act
		light := lights.NewRGBLight(obj)

		// assert
		assert.Equal(t, "Stage Left", light.Name())
		assert.Equal(t, objectKey, light.Key())
		assert.Equal(t, lights.ColorModeRGB, light.ColorMode())
		assert.Nil(t, light.IsOn())
		assert.Nil(t, light.Brightness())
		assert.Nil(t, light.RGBColor())
		assert.Nil(t, light.HSColor())
	})
}

func Test_RGBLight_TurnOn(t *testing.T) {

	t.Run("no attributes: should turn on white at full brightness", func(t *testing.T) {
		// arrange
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, 255, 255, 255).Return(nil)
		light := lights.NewRGBLight(obj)

		// act
		err := light.TurnOn(context.Background(), lights.TurnOnOptions{})

		// assert
		require.NoError(t, err)
		assert.Equal(t, lo.ToPtr(true), light.IsOn())
		assert.Equal(t, lo.ToPtr(255), light.Brightness())
		assert.Equal(t, &models.RGB{R: 255, G: 255, B: 255}, light.RGBColor())
	})

	t.Run("should scale the colour channels by brightness", func(t *testing.T) {
		// arrange
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, 128, 50, 0).Return(nil)
		light := lights.NewRGBLight(obj)

		// act
		err := light.TurnOn(context.Background(), lights.TurnOnOptions{
			Brightness: lo.ToPtr(128),
			RGB:        &models.RGB{R: 255, G: 100, B: 0},
		})

		// assert
		require.NoError(t, err)
		assert.Equal(t, lo.ToPtr(128), light.Brightness())
		// the cached colour is the unscaled one
		assert.Equal(t, &models.RGB{R: 255, G: 100, B: 0}, light.RGBColor())
	})

	t.Run("brightness only: should use white", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, 64, 64, 64).Return(nil)
		light := lights.NewRGBLight(obj)

		err := light.TurnOn(context.Background(), lights.TurnOnOptions{Brightness: lo.ToPtr(64)})

		require.NoError(t, err)
		assert.Equal(t, &models.RGB{R: 255, G: 255, B: 255}, light.RGBColor())
	})

	t.Run("hue/saturation given: should convert to rgb", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, 255, 0, 0).Return(nil)
		light := lights.NewRGBLight(obj)

		err := light.TurnOn(context.Background(), lights.TurnOnOptions{HS: &models.HS{Hue: 0, Saturation: 100}})

		require.NoError(t, err)
		assert.Equal(t, &models.RGB{R: 255, G: 0, B: 0}, light.RGBColor())
		hs := light.HSColor()
		require.NotNil(t, hs)
		assert.InDelta(t, 0, hs.Hue, 0.001)
		assert.InDelta(t, 100, hs.Saturation, 0.001)
	})

	t.Run("out of range brightness: should be clamped", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, 255, 255, 255).Return(nil)
		light := lights.NewRGBLight(obj)

		err := light.TurnOn(context.Background(), lights.TurnOnOptions{Brightness: lo.ToPtr(300)})

		require.NoError(t, err)
		assert.Equal(t, lo.ToPtr(255), light.Brightness())
	})

	t.Run("black colour: should be reported as off", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, 0, 0, 0).Return(nil)
		light := lights.NewRGBLight(obj)

		err := light.TurnOn(context.Background(), lights.TurnOnOptions{RGB: &models.RGB{}})

		require.NoError(t, err)
		assert.Equal(t, lo.ToPtr(false), light.IsOn())
	})

	t.Run("remote error: should return the error and keep the cached state", func(t *testing.T) {
		// arrange
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, 255, 255, 255).Return(fmt.Errorf("an error"))
		light := lights.NewRGBLight(obj)

		// act
		err := light.TurnOn(context.Background(), lights.TurnOnOptions{})

		// assert
		assert.Equal(t, "an error", err.Error())
		assert.Nil(t, light.IsOn())
		assert.Nil(t, light.Brightness())
	})
}

func Test_RGBLight_TurnOff(t *testing.T) {

	t.Run("should send black and forget the colour", func(t *testing.T) {
		// arrange
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, 128, 50, 0).Return(nil).Once()
		obj.On("SetRGB", mock.Anything, 0, 0, 0).Return(nil).Once()
		light := lights.NewRGBLight(obj)
		require.NoError(t, light.TurnOn(context.Background(), lights.TurnOnOptions{
			Brightness: lo.ToPtr(128),
			RGB:        &models.RGB{R: 255, G: 100, B: 0},
		}))

		// act
		err := light.TurnOff(context.Background())

		// assert
		require.NoError(t, err)
		assert.Equal(t, lo.ToPtr(false), light.IsOn())
		assert.Equal(t, lo.ToPtr(0), light.Brightness())
		assert.Equal(t, &models.RGB{}, light.RGBColor())
	})

	t.Run("turned on again without a colour: should come back white", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, 255, 0, 0).Return(nil).Once()
		obj.On("SetRGB", mock.Anything, 0, 0, 0).Return(nil).Once()
		obj.On("SetRGB", mock.Anything, 255, 255, 255).Return(nil).Once()
		light := lights.NewRGBLight(obj)

		require.NoError(t, light.TurnOn(context.Background(), lights.TurnOnOptions{RGB: &models.RGB{R: 255}}))
		require.NoError(t, light.TurnOff(context.Background()))
		require.NoError(t, light.TurnOn(context.Background(), lights.TurnOnOptions{}))

		assert.Equal(t, &models.RGB{R: 255, G: 255, B: 255}, light.RGBColor())
	})

	t.Run("remote error: should return the error", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, 0, 0, 0).Return(fmt.Errorf("an error"))
		light := lights.NewRGBLight(obj)

		err := light.TurnOff(context.Background())

		assert.Error(t, err)
		assert.Nil(t, light.IsOn())
	})
}

func Test_RGBLight_Sync(t *testing.T) {

	t.Run("rgb report: should split out brightness from the colour", func(t *testing.T) {
		light := lights.NewRGBLight(newMockObject(t))

		light.Sync(models.ObjectEvent{Page: 1, ID: 3, RGB: &[3]int{128, 50, 0}})

		assert.Equal(t, lo.ToPtr(128), light.Brightness())
		assert.Equal(t, &models.RGB{R: 255, G: 100, B: 0}, light.RGBColor())
		assert.Equal(t, lo.ToPtr(true), light.IsOn())
	})

	t.Run("black report: should be off", func(t *testing.T) {
		light := lights.NewRGBLight(newMockObject(t))

		light.Sync(models.ObjectEvent{RGB: &[3]int{0, 0, 0}})

		assert.Equal(t, lo.ToPtr(false), light.IsOn())
		assert.Equal(t, lo.ToPtr(0), light.Brightness())
	})

	t.Run("hsv report: should convert to rgb", func(t *testing.T) {
		light := lights.NewRGBLight(newMockObject(t))

		light.Sync(models.ObjectEvent{HSV: &[3]float64{0, 100, 1}})

		assert.Equal(t, lo.ToPtr(255), light.Brightness())
		assert.Equal(t, &models.RGB{R: 255, G: 0, B: 0}, light.RGBColor())
	})

	t.Run("report without colour: should be ignored", func(t *testing.T) {
		light := lights.NewRGBLight(newMockObject(t))

		light.Sync(models.ObjectEvent{Page: 1, ID: 3})

		assert.Nil(t, light.IsOn())
	})
}

func Test_HSLight_TurnOn(t *testing.T) {

	t.Run("should report unknown state until commanded", func(t *testing.T) {
		light := lights.NewHSLight(newMockObject(t))

		assert.Equal(t, lights.ColorModeHS, light.ColorMode())
		assert.Nil(t, light.IsOn())
		assert.Nil(t, light.Brightness())
		assert.Nil(t, light.HSColor())
		assert.Nil(t, light.RGBColor())
	})

	t.Run("no attributes: should use the default colour at full value", func(t *testing.T) {
		// arrange
		obj := newMockObject(t)
		obj.On("SetHSV", mock.Anything, 255.0, 255.0, 1.0).Return(nil)
		light := lights.NewHSLight(obj)

		// act
		err := light.TurnOn(context.Background(), lights.TurnOnOptions{})

		// assert
		require.NoError(t, err)
		assert.Equal(t, lo.ToPtr(true), light.IsOn())
		assert.Equal(t, lo.ToPtr(255), light.Brightness())
		assert.Equal(t, &models.HS{Hue: 255, Saturation: 255}, light.HSColor())
	})

	t.Run("should pass hue/saturation through and scale brightness to 0-1", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetHSV", mock.Anything, 120.0, 50.0, 0.2).Return(nil)
		light := lights.NewHSLight(obj)

		err := light.TurnOn(context.Background(), lights.TurnOnOptions{
			Brightness: lo.ToPtr(51),
			HS:         &models.HS{Hue: 120, Saturation: 50},
		})

		require.NoError(t, err)
		assert.Equal(t, lo.ToPtr(51), light.Brightness())
		assert.Equal(t, &models.HS{Hue: 120, Saturation: 50}, light.HSColor())
	})

	t.Run("zero brightness: should be reported as off", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetHSV", mock.Anything, 255.0, 255.0, 0.0).Return(nil)
		light := lights.NewHSLight(obj)

		err := light.TurnOn(context.Background(), lights.TurnOnOptions{Brightness: lo.ToPtr(0)})

		require.NoError(t, err)
		assert.Equal(t, lo.ToPtr(false), light.IsOn())
	})

	t.Run("remote error: should return the error and keep the cached state", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetHSV", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("an error"))
		light := lights.NewHSLight(obj)

		err := light.TurnOn(context.Background(), lights.TurnOnOptions{})

		assert.Equal(t, "an error", err.Error())
		assert.Nil(t, light.IsOn())
		assert.Nil(t, light.HSColor())
	})
}

func Test_HSLight_TurnOff(t *testing.T) {

	t.Run("should keep the colour and send zero value", func(t *testing.T) {
		// arrange
		obj := newMockObject(t)
		obj.On("SetHSV", mock.Anything, 120.0, 50.0, 1.0).Return(nil).Once()
		obj.On("SetHSV", mock.Anything, 120.0, 50.0, 0.0).Return(nil).Once()
		light := lights.NewHSLight(obj)
		require.NoError(t, light.TurnOn(context.Background(), lights.TurnOnOptions{HS: &models.HS{Hue: 120, Saturation: 50}}))

		// act
		err := light.TurnOff(context.Background())

		// assert
		require.NoError(t, err)
		assert.Equal(t, lo.ToPtr(false), light.IsOn())
		assert.Equal(t, lo.ToPtr(0), light.Brightness())
		assert.Equal(t, &models.HS{Hue: 120, Saturation: 50}, light.HSColor())
	})

	t.Run("never turned on: should use the default colour", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetHSV", mock.Anything, 255.0, 255.0, 0.0).Return(nil)
		light := lights.NewHSLight(obj)

		err := light.TurnOff(context.Background())

		require.NoError(t, err)
		assert.Equal(t, lo.ToPtr(false), light.IsOn())
	})
}

func Test_HSLight_Sync(t *testing.T) {

	t.Run("hsv report: should cache colour and brightness", func(t *testing.T) {
		light := lights.NewHSLight(newMockObject(t))

		light.Sync(models.ObjectEvent{HSV: &[3]float64{120, 50, 0.2}})

		assert.Equal(t, lo.ToPtr(51), light.Brightness())
		assert.Equal(t, &models.HS{Hue: 120, Saturation: 50}, light.HSColor())
	})

	t.Run("rgb report: should convert to hue/saturation", func(t *testing.T) {
		light := lights.NewHSLight(newMockObject(t))

		light.Sync(models.ObjectEvent{RGB: &[3]int{255, 0, 0}})

		assert.Equal(t, lo.ToPtr(255), light.Brightness())
		hs := light.HSColor()
		require.NotNil(t, hs)
		assert.InDelta(t, 0, hs.Hue, 0.001)
		assert.InDelta(t, 100, hs.Saturation, 0.001)
	})

	t.Run("black rgb report: should keep the known colour", func(t *testing.T) {
		light := lights.NewHSLight(newMockObject(t))
		light.Sync(models.ObjectEvent{HSV: &[3]float64{120, 50, 1}})

		light.Sync(models.ObjectEvent{RGB: &[3]int{0, 0, 0}})

		assert.Equal(t, lo.ToPtr(false), light.IsOn())
		assert.Equal(t, &models.HS{Hue: 120, Saturation: 50}, light.HSColor())
	})
}

func Test_NewLight(t *testing.T) {
	assert.IsType(t, &lights.RGBLight{}, lights.NewLight(lights.ColorModeRGB, newMockObject(t)))
	assert.IsType(t, &lights.HSLight{}, lights.NewLight(lights.ColorModeHS, newMockObject(t)))
}

func Test_ConcurrentCommands(t *testing.T) {

	t.Run("should be safe to command a light from many goroutines", func(t *testing.T) {
		obj := newMockObject(t)
		obj.On("SetRGB", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		light := lights.NewRGBLight(obj)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if i%2 == 0 {
					_ = light.TurnOff(context.Background())
				} else {
					_ = light.TurnOn(context.Background(), lights.TurnOnOptions{Brightness: lo.ToPtr(i)})
				}
				_ = light.IsOn()
			}(i)
		}
		wg.Wait()

		assert.NotNil(t, light.IsOn())
	})
}
