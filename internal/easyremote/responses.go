package easyremote

import (
	"context"

	"github.com/wheelibin/erbridge/internal/models"
)

type RemoteObject struct {
	Page int    `json:"page"`
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ObjectsResponse struct {
	Objects []RemoteObject `json:"objects"`
}

type rgbRequest struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

type hsvRequest struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// Object is a handle to a single remote lighting object (e.g. a colour wheel)
type Object struct {
	Key  models.ObjectKey
	Name string

	api *EasyRemoteAPIService
}

func (o *Object) ObjectName() string {
	return o.Name
}

func (o *Object) ObjectKey() models.ObjectKey {
	return o.Key
}

func (o *Object) SetRGB(ctx context.Context, r, g, b int) error {
	return o.api.setRGB(ctx, o.Key, r, g, b)
}

// SetHSV sets the colour, v is 0-1
func (o *Object) SetHSV(ctx context.Context, h, s, v float64) error {
	return o.api.setHSV(ctx, o.Key, h, s, v)
}
