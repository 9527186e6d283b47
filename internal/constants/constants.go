package constants

import "time"

// light modes
const ModeRGB = "rgb"
const ModeHS = "hs"

// platform brightness range
const MaxBrightness = 255

// default hue/saturation used when turning on an hs light with no colour given
const DefaultHue = 255.0
const DefaultSaturation = 255.0

// remote client
const DefaultClientTimeout = 10 * time.Second
const DefaultRateLimit = 20.0

// remote events
const EventTypeUpdate = "update"

// homekit bridge
const DefaultBridgeName = "Easy Remote"
const DefaultBridgePin = "00102003"
const DefaultStoragePath = "./db"
const DefaultBridgeAddr = ":0"
const Manufacturer = "Easy Remote"
