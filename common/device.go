package common

// State is a snapshot of the last known state of a bulb.  Apart from
// Available, which reflects the most recent liveness probe, fields are only
// updated after a command exchange reports success.
type State struct {
	// Available is true if the bulb answered the last liveness probe
	Available bool
	// On is the last known power state
	On bool
	// Brightness is the logical brightness, range 0 to 255
	Brightness int
	// Kelvin is the color temperature, range 2700 (warm) to 6500 (cool)
	Kelvin int
	// RGB is the last color set on the bulb
	RGB RGB
	// Effect is the name of the running effect, empty when none is active
	Effect string
}

// Device represents an iHomma SML bulb.  Operations return a success
// boolean rather than an error - transport failures are swallowed at the
// protocol boundary, and a false result means the caller must not assume
// the bulb changed state.  Every operation is independently retryable.
type Device interface {
	// IP returns the bulb's address
	IP() string

	// IsAvailable probes the bulb over UDP and returns whether it answered
	IsAvailable() bool
	// TurnOn powers the bulb on
	TurnOn() bool
	// TurnOff powers the bulb off
	TurnOff() bool
	// SetBrightness sets the brightness, range 0 to 255
	SetBrightness(brightness int) bool
	// SetTemperature sets the white color temperature in Kelvin, range
	// 2700 to 6500
	SetTemperature(kelvin int) bool
	// SetColor sets the bulb color
	SetColor(color RGB) bool
	// SetEffect starts the effect identified by code, recording name as
	// the current effect
	SetEffect(code byte, name string) bool
	// QueryStatus asks the bulb for its raw status block, returning the
	// response bytes and whether the exchange succeeded
	QueryStatus() ([]byte, bool)

	// State re-probes availability and returns a snapshot merging the
	// fresh result with the cached fields
	State() State
	// CachedState returns the last known state without touching the
	// network
	CachedState() State

	// Close releases the device's network resources
	Close() error

	// Device is a SubscriptionTarget
	SubscriptionTarget
}
