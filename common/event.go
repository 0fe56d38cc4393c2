package common

// EventNewDevice is emitted by a Client when a device is added
type EventNewDevice struct {
	Device Device
}

// EventExpiredDevice is emitted by a Client when a device is removed
type EventExpiredDevice struct {
	Device Device
}

// EventUpdateAvailability is emitted by a Device when a liveness probe or
// command outcome changes its availability
type EventUpdateAvailability struct {
	Available bool
}

// EventUpdatePower is emitted by a Device when it's power state is updated
type EventUpdatePower struct {
	Power bool
}

// EventUpdateBrightness is emitted by a Device when it's brightness is
// updated
type EventUpdateBrightness struct {
	Brightness int
}

// EventUpdateTemperature is emitted by a Device when it's color
// temperature is updated
type EventUpdateTemperature struct {
	Kelvin int
}

// EventUpdateColor is emitted by a Device when it's color is updated
type EventUpdateColor struct {
	Color RGB
}

// EventUpdateEffect is emitted by a Device when it's effect is updated
type EventUpdateEffect struct {
	Effect string
}

// EventUpdateState is emitted by a state store when the state of an
// endpoint is published
type EventUpdateState struct {
	IP    string
	State State
}
