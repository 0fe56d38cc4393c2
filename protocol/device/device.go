// Package device implements an iHomma SML protocol bulb client.
//
// Each Device owns a single broadcast-enabled UDP socket, reused for
// liveness probes, and opens a fresh TCP connection for every command.
// Operations are serialized per device: the socket and the cached state
// are shared mutable resources and are not safe for concurrent use.
// Distinct devices are fully independent and may be driven in parallel.
package device

import (
	"net"
	"strconv"
	"sync"

	"github.com/gawindx/goihomma/common"
	"github.com/gawindx/goihomma/protocol"
	"github.com/gawindx/goihomma/protocol/packet"
	"github.com/gawindx/goihomma/state"
)

// Default ports for the two transports.
const (
	// UDPPort is the discovery / liveness port
	UDPPort = 988
	// TCPPort is the command port
	TCPPort = 8080
)

// Defaults for a freshly constructed device, matching the bulb's power-on
// state assumptions.
const (
	defaultBrightness = 255
	defaultKelvin     = 4000
)

// Device drives a single bulb.  Construct with New or NewEndpoint, and
// Close when done to release the UDP socket.
type Device struct {
	ip      string
	udpAddr *net.UDPAddr
	tcpAddr string
	udpConn *net.UDPConn

	available  bool
	on         bool
	brightness int
	kelvin     int
	rgb        common.RGB
	effect     string

	store         *state.Store
	subscriptions map[string]*common.Subscription
	closed        bool
	sync.RWMutex
}

// New returns a Device for the bulb at ip using the standard iHomma ports.
// store may be nil when no cross-entity state sharing is needed.
func New(ip string, store *state.Store) (*Device, error) {
	return NewEndpoint(ip, UDPPort, TCPPort, store)
}

// NewEndpoint returns a Device for an explicit endpoint.  The endpoint is
// immutable once constructed.
func NewEndpoint(ip string, udpPort, tcpPort int, store *state.Store) (*Device, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, common.ErrInvalidAddress
	}

	udpConn, err := listenBroadcastUDP()
	if err != nil {
		return nil, err
	}

	d := &Device{
		ip:            ip,
		udpAddr:       &net.UDPAddr{IP: parsed, Port: udpPort},
		tcpAddr:       net.JoinHostPort(ip, strconv.Itoa(tcpPort)),
		udpConn:       udpConn,
		brightness:    defaultBrightness,
		kelvin:        defaultKelvin,
		rgb:           common.White,
		store:         store,
		subscriptions: make(map[string]*common.Subscription),
	}

	return d, nil
}

// IP returns the bulb's address.
func (d *Device) IP() string {
	return d.ip
}

// IsAvailable sends a liveness probe and returns whether the bulb
// answered.  The cached availability is updated either way.
func (d *Device) IsAvailable() bool {
	d.Lock()
	available, changed := d.refreshAvailability()
	st := d.snapshot()
	d.Unlock()

	if changed {
		d.notify(st, common.EventUpdateAvailability{Available: available})
	}
	return available
}

// TurnOn powers the bulb on.
func (d *Device) TurnOn() bool {
	return d.setPower(true)
}

// TurnOff powers the bulb off.
func (d *Device) TurnOff() bool {
	return d.setPower(false)
}

func (d *Device) setPower(on bool) bool {
	value := packet.PowerOff
	if on {
		value = packet.PowerOn
	}
	pkt := packet.Forge(packet.InstructionPower, packet.WriteSwitchWrite, []byte{value}, 0)

	common.Log.Debugf(`setting power on %v: %v`, d.ip, on)
	d.Lock()
	res := d.command(pkt, false)
	if !res.OK() {
		d.fail(res)
		d.Unlock()
		return false
	}
	d.on = on
	d.available = true
	st := d.snapshot()
	d.Unlock()

	d.notify(st, common.EventUpdatePower{Power: on})
	return true
}

// SetBrightness sets the brightness.  The logical value is clamped to
// [0, 255], converted to the firmware's 0-200 scale for the wire, and
// cached unconverted on success.
func (d *Device) SetBrightness(brightness int) bool {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 255 {
		brightness = 255
	}
	converted := packet.ScaleBrightness(brightness)
	pkt := packet.Forge(packet.InstructionBrightness, packet.WriteSwitchWrite, []byte{byte(converted)}, 0)

	common.Log.Debugf(`setting brightness on %v: %v (wire %v)`, d.ip, brightness, converted)
	d.Lock()
	res := d.command(pkt, false)
	if !res.OK() {
		d.fail(res)
		d.Unlock()
		return false
	}
	d.brightness = brightness
	d.available = true
	st := d.snapshot()
	d.Unlock()

	d.notify(st, common.EventUpdateBrightness{Brightness: brightness})
	return true
}

// SetTemperature sets the white color temperature in Kelvin.  The value is
// clamped to [2700, 6500], converted to the firmware's inverted 0-200
// warmth scale, and cached unconverted on success.  Full-spectrum warmth
// commands carry the terminal marker.
func (d *Device) SetTemperature(kelvin int) bool {
	if kelvin < packet.MinKelvin {
		kelvin = packet.MinKelvin
	}
	if kelvin > packet.MaxKelvin {
		kelvin = packet.MaxKelvin
	}
	converted := packet.ScaleKelvin(kelvin)
	pkt := packet.Forge(packet.InstructionColor, packet.WriteSwitchWrite, []byte{byte(converted)}, packet.Terminal)

	common.Log.Debugf(`setting temperature on %v: %vK (wire %v)`, d.ip, kelvin, converted)
	d.Lock()
	res := d.command(pkt, false)
	if !res.OK() {
		d.fail(res)
		d.Unlock()
		return false
	}
	d.kelvin = kelvin
	d.available = true
	st := d.snapshot()
	d.Unlock()

	d.notify(st, common.EventUpdateTemperature{Kelvin: kelvin})
	return true
}

// SetColor sets the bulb color.  Pure primary colors carry the terminal
// marker, every other color does not.
func (d *Device) SetColor(color common.RGB) bool {
	var terminal byte
	if color.IsPrimary() {
		terminal = packet.Terminal
	}
	pkt := packet.Forge(packet.InstructionColor, packet.WriteSwitchWrite, []byte{color.R, color.G, color.B}, terminal)

	common.Log.Debugf(`setting color on %v: %+v`, d.ip, color)
	d.Lock()
	res := d.command(pkt, false)
	if !res.OK() {
		d.fail(res)
		d.Unlock()
		return false
	}
	d.rgb = color
	d.available = true
	st := d.snapshot()
	d.Unlock()

	d.notify(st, common.EventUpdateColor{Color: color})
	return true
}

// SetEffect starts the effect identified by code, recording name as the
// current effect on success.
func (d *Device) SetEffect(code byte, name string) bool {
	pkt := packet.Forge(packet.InstructionEffect, packet.WriteSwitchWrite, []byte{code}, 0)

	common.Log.Debugf(`setting effect on %v: %v (%#x)`, d.ip, name, code)
	d.Lock()
	res := d.command(pkt, false)
	if !res.OK() {
		d.fail(res)
		d.Unlock()
		return false
	}
	d.effect = name
	d.available = true
	st := d.snapshot()
	d.Unlock()

	d.notify(st, common.EventUpdateEffect{Effect: name})
	return true
}

// QueryStatus asks the bulb for its raw status block.  The response bytes
// are returned uninterpreted, reading them is the host's concern.
func (d *Device) QueryStatus() ([]byte, bool) {
	pkt := packet.Forge(packet.InstructionStatus, packet.WriteSwitchRead, []byte{packet.StatusAll}, 0)

	common.Log.Debugf(`querying status on %v`, d.ip)
	d.Lock()
	res := d.command(pkt, true)
	if !res.OK() {
		d.fail(res)
		d.Unlock()
		return nil, false
	}
	d.available = true
	d.Unlock()

	return res.Data, true
}

// State re-probes availability over UDP and returns a snapshot merging the
// fresh result with the cached fields.
func (d *Device) State() common.State {
	d.Lock()
	available, changed := d.refreshAvailability()
	st := d.snapshot()
	d.Unlock()

	if changed {
		d.notify(st, common.EventUpdateAvailability{Available: available})
	}
	return st
}

// CachedState returns the last known state without touching the network.
func (d *Device) CachedState() common.State {
	d.RLock()
	st := d.snapshot()
	d.RUnlock()
	return st
}

// Close releases the UDP socket.  Further operations on the device will
// report failure.
func (d *Device) Close() error {
	d.Lock()
	defer d.Unlock()
	if d.closed {
		return common.ErrClosed
	}
	d.closed = true
	common.Log.Debugf(`closing device %v`, d.ip)
	return d.udpConn.Close()
}

// NewSubscription returns a new *common.Subscription for receiving events
// from this device.
func (d *Device) NewSubscription() (*common.Subscription, error) {
	sub := common.NewSubscription(d)
	d.Lock()
	d.subscriptions[sub.ID()] = sub
	d.Unlock()
	return sub, nil
}

// CloseSubscription is a callback for handling the closing of
// subscriptions.
func (d *Device) CloseSubscription(sub *common.Subscription) error {
	d.RLock()
	_, ok := d.subscriptions[sub.ID()]
	d.RUnlock()
	if !ok {
		return common.ErrNotFound
	}
	d.Lock()
	delete(d.subscriptions, sub.ID())
	d.Unlock()

	return nil
}

// refreshAvailability probes the bulb and updates the cached flag.
// Callers must hold the write lock.  Returns the fresh value and whether
// it changed.
func (d *Device) refreshAvailability() (available, changed bool) {
	res := d.probe()
	available = res.OK()
	changed = d.available != available
	d.available = available
	return available, changed
}

// fail records a failed command exchange.  Callers must hold the write
// lock.  Cached state is left untouched except availability: a TCP failure
// means the bulb can not be reached.
func (d *Device) fail(res protocol.Result) {
	common.Log.Errorf(`command failed for %v: %v`, d.ip, res.Err)
	d.available = false
}

// snapshot copies the cached fields.  Callers must hold at least the read
// lock.
func (d *Device) snapshot() common.State {
	return common.State{
		Available:  d.available,
		On:         d.on,
		Brightness: d.brightness,
		Kelvin:     d.kelvin,
		RGB:        d.rgb,
		Effect:     d.effect,
	}
}

// notify publishes an event to subscribers and pushes the snapshot into
// the shared state store.  Called without the lock held.
func (d *Device) notify(st common.State, event interface{}) {
	d.RLock()
	subs := make([]*common.Subscription, 0, len(d.subscriptions))
	for _, sub := range d.subscriptions {
		subs = append(subs, sub)
	}
	d.RUnlock()

	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf(`dropping event for %v: %v`, d.ip, err)
		}
	}

	if d.store != nil {
		d.store.Update(d.ip, st)
	}
}
