package models

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB colour, each channel 0-255
type RGB struct {
	R int
	G int
	B int
}

func (c RGB) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// HS is a hue/saturation pair as sent by the platform
type HS struct {
	Hue        float64
	Saturation float64
}

// HSV as understood by the lighting software, V is 0-1
type HSV struct {
	H float64
	S float64
	V float64
}

// ObjectKey identifies a remote lighting object by its page and id
type ObjectKey struct {
	Page int
	ID   int
}

func (k ObjectKey) String() string {
	return fmt.Sprintf("%d/%d", k.Page, k.ID)
}

// ParseObjectKey parses the "page/id" form produced by ObjectKey.String
func ParseObjectKey(s string) (ObjectKey, error) {
	page, id, found := strings.Cut(strings.TrimSpace(s), "/")
	if !found {
		return ObjectKey{}, fmt.Errorf("invalid object key %q, expected page/id", s)
	}
	p, err := strconv.Atoi(page)
	if err != nil {
		return ObjectKey{}, fmt.Errorf("invalid page in object key %q: %w", s, err)
	}
	i, err := strconv.Atoi(id)
	if err != nil {
		return ObjectKey{}, fmt.Errorf("invalid id in object key %q: %w", s, err)
	}
	key := ObjectKey{Page: p, ID: i}
	if !key.Valid() {
		return ObjectKey{}, fmt.Errorf("invalid object key %q, page and id must not be negative", s)
	}
	return key, nil
}

// Valid reports whether page and id are both non negative
func (k ObjectKey) Valid() bool {
	return k.Page >= 0 && k.ID >= 0
}

// an event received from the lighting software event stream
type ObjectEvent struct {
	Type string `json:"type"`
	Page int    `json:"page"`
	ID   int    `json:"id"`
	// the colour currently output by the object, only one of these is set
	RGB *[3]int     `json:"rgb,omitempty"`
	HSV *[3]float64 `json:"hsv,omitempty"`
}

func (e ObjectEvent) Key() ObjectKey {
	return ObjectKey{Page: e.Page, ID: e.ID}
}
