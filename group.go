package goihomma

import (
	"sync"

	"github.com/gawindx/goihomma/common"
)

// Group drives several bulbs as one logical light.  Commands fan out to
// all members in parallel - one goroutine per device, since each device
// serializes its own socket access - and succeed only when every member
// succeeds.
type Group struct {
	devices map[string]common.Device
	sync.RWMutex
}

// NewGroup returns a Group over the given devices.
func NewGroup(devices ...common.Device) (*Group, error) {
	group := &Group{devices: make(map[string]common.Device)}
	for _, dev := range devices {
		if err := group.AddDevice(dev); err != nil {
			return nil, err
		}
	}
	return group, nil
}

// AddDevice adds a bulb to the group.  Returns common.ErrDuplicate if it
// is already a member.
func (g *Group) AddDevice(dev common.Device) error {
	g.RLock()
	_, ok := g.devices[dev.IP()]
	g.RUnlock()
	if ok {
		return common.ErrDuplicate
	}

	g.Lock()
	g.devices[dev.IP()] = dev
	g.Unlock()

	return nil
}

// RemoveDevice removes a bulb from the group.  Returns common.ErrNotFound
// if it is not a member.
func (g *Group) RemoveDevice(dev common.Device) error {
	g.RLock()
	_, ok := g.devices[dev.IP()]
	g.RUnlock()
	if !ok {
		return common.ErrNotFound
	}

	g.Lock()
	delete(g.devices, dev.IP())
	g.Unlock()

	return nil
}

// Devices returns the group members.
func (g *Group) Devices() (devices []common.Device) {
	g.RLock()
	for _, dev := range g.devices {
		devices = append(devices, dev)
	}
	g.RUnlock()

	return devices
}

// TurnOn powers every member on.
func (g *Group) TurnOn() bool {
	return g.each(func(dev common.Device) bool { return dev.TurnOn() })
}

// TurnOff powers every member off.
func (g *Group) TurnOff() bool {
	return g.each(func(dev common.Device) bool { return dev.TurnOff() })
}

// SetBrightness sets the brightness on every member.
func (g *Group) SetBrightness(brightness int) bool {
	return g.each(func(dev common.Device) bool { return dev.SetBrightness(brightness) })
}

// SetTemperature sets the color temperature on every member.
func (g *Group) SetTemperature(kelvin int) bool {
	return g.each(func(dev common.Device) bool { return dev.SetTemperature(kelvin) })
}

// SetColor sets the color on every member.
func (g *Group) SetColor(color common.RGB) bool {
	return g.each(func(dev common.Device) bool { return dev.SetColor(color) })
}

// SetEffect starts an effect on every member.
func (g *Group) SetEffect(code byte, name string) bool {
	return g.each(func(dev common.Device) bool { return dev.SetEffect(code, name) })
}

// State aggregates the member states: the group is available only when
// every member answers its probe, and on when any member is on.
// Brightness and temperature are averaged, color and effect are taken
// from the first member.
//
// I doubt averaging is accurate as color theory, but it's good enough for
// this use-case.
func (g *Group) State() common.State {
	devices := g.Devices()
	if len(devices) == 0 {
		return common.State{}
	}

	states := make([]common.State, len(devices))
	var wg sync.WaitGroup
	for i, dev := range devices {
		wg.Add(1)
		go func(i int, dev common.Device) {
			states[i] = dev.State()
			wg.Done()
		}(i, dev)
	}
	wg.Wait()

	aggregate := common.State{
		Available: true,
		RGB:       states[0].RGB,
		Effect:    states[0].Effect,
	}
	var brightness, kelvin int
	for _, st := range states {
		if !st.Available {
			aggregate.Available = false
		}
		if st.On {
			aggregate.On = true
		}
		brightness += st.Brightness
		kelvin += st.Kelvin
	}
	aggregate.Brightness = brightness / len(states)
	aggregate.Kelvin = kelvin / len(states)

	return aggregate
}

// each runs op against every member in parallel and reports whether all of
// them succeeded.  An empty group always fails.
func (g *Group) each(op func(common.Device) bool) bool {
	devices := g.Devices()
	if len(devices) == 0 {
		return false
	}

	var (
		wg      sync.WaitGroup
		ok      = true
		okMutex sync.Mutex
	)
	for _, dev := range devices {
		wg.Add(1)
		go func(dev common.Device) {
			if !op(dev) {
				okMutex.Lock()
				ok = false
				okMutex.Unlock()
			}
			wg.Done()
		}(dev)
	}
	wg.Wait()

	return ok
}
