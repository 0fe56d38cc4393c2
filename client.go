package goihomma

import (
	"sync"
	"time"

	"github.com/gawindx/goihomma/common"
	"github.com/gawindx/goihomma/protocol/device"
	"github.com/gawindx/goihomma/state"
)

// Client manages a registry of bulbs sharing one state store, and can run
// a periodic liveness poll over all of them.  Client can not be
// instantiated manually or it will not function - always use NewClient()
// to obtain a Client instance.
type Client struct {
	livenessInterval time.Duration
	quitChan         chan bool
	devices          map[string]common.Device
	store            *state.Store
	subscriptions    map[string]*common.Subscription
	closed           bool
	sync.RWMutex
}

// AddDevice constructs a device handle for the bulb at ip, wires it to the
// client's shared state store, and adds it to the registry.  Returns
// common.ErrDuplicate if the address is already registered.
func (c *Client) AddDevice(ip string) (common.Device, error) {
	c.RLock()
	_, ok := c.devices[ip]
	c.RUnlock()
	if ok {
		return nil, common.ErrDuplicate
	}

	dev, err := device.New(ip, c.store)
	if err != nil {
		return nil, err
	}

	c.Lock()
	c.devices[ip] = dev
	c.Unlock()

	c.publish(common.EventNewDevice{Device: dev})
	return dev, nil
}

// RemoveDeviceByIP removes a bulb from the registry and closes its handle,
// or returns common.ErrNotFound if the address is not known.
func (c *Client) RemoveDeviceByIP(ip string) error {
	c.RLock()
	dev, ok := c.devices[ip]
	c.RUnlock()
	if !ok {
		return common.ErrNotFound
	}

	c.Lock()
	delete(c.devices, ip)
	c.Unlock()

	c.publish(common.EventExpiredDevice{Device: dev})
	return dev.Close()
}

// GetDevices returns a slice of all devices known to the client, or
// common.ErrNotFound if no devices are currently known.
func (c *Client) GetDevices() ([]common.Device, error) {
	c.RLock()
	devices := make([]common.Device, 0, len(c.devices))
	for _, dev := range c.devices {
		devices = append(devices, dev)
	}
	c.RUnlock()
	if len(devices) == 0 {
		return devices, common.ErrNotFound
	}
	return devices, nil
}

// GetDeviceByIP looks up a device by address, or returns common.ErrNotFound
// if the address is not known.
func (c *Client) GetDeviceByIP(ip string) (common.Device, error) {
	c.RLock()
	dev, ok := c.devices[ip]
	c.RUnlock()
	if !ok {
		return nil, common.ErrNotFound
	}
	return dev, nil
}

// NewGroup returns a Group over the registered bulbs at the given
// addresses.  Every address must already be known to the client.
func (c *Client) NewGroup(ips ...string) (*Group, error) {
	if len(ips) == 0 {
		return nil, common.ErrEmptyGroup
	}
	devices := make([]common.Device, 0, len(ips))
	for _, ip := range ips {
		dev, err := c.GetDeviceByIP(ip)
		if err != nil {
			return nil, err
		}
		devices = append(devices, dev)
	}
	return NewGroup(devices...)
}

// Store returns the client's shared state store, for hosts that want to
// observe state updates across entities.
func (c *Client) Store() *state.Store {
	return c.store
}

// SetLivenessInterval causes the client to probe every registered bulb for
// liveness on the given interval.  You should set this to a non-zero value
// for any long-running process, otherwise availability is only refreshed
// when operations run.
func (c *Client) SetLivenessInterval(interval time.Duration) {
	c.Lock()
	if c.livenessInterval != 0 {
		c.quitChan <- true
	}
	c.livenessInterval = interval
	c.Unlock()
	common.Log.Infof(`starting liveness polling with interval %v`, interval)
	c.poll()
}

// NewSubscription returns a new *common.Subscription for receiving
// registry events from this client.
func (c *Client) NewSubscription() (*common.Subscription, error) {
	sub := common.NewSubscription(c)
	c.Lock()
	c.subscriptions[sub.ID()] = sub
	c.Unlock()
	return sub, nil
}

// CloseSubscription is a callback for handling the closing of
// subscriptions.
func (c *Client) CloseSubscription(sub *common.Subscription) error {
	c.RLock()
	_, ok := c.subscriptions[sub.ID()]
	c.RUnlock()
	if !ok {
		return common.ErrNotFound
	}
	c.Lock()
	delete(c.subscriptions, sub.ID())
	c.Unlock()

	return nil
}

// Close signals the termination of this client, and closes every
// registered device.  Returns common.ErrClosed on double close.
func (c *Client) Close() error {
	c.Lock()
	defer c.Unlock()
	if c.closed {
		return common.ErrClosed
	}
	c.closed = true

	if c.livenessInterval != 0 {
		c.quitChan <- true
	}
	for ip, dev := range c.devices {
		if err := dev.Close(); err != nil {
			common.Log.Errorf(`failed closing device %v: %v`, ip, err)
		}
	}
	return nil
}

func (c *Client) poll() {
	c.RLock()
	interval := c.livenessInterval
	c.RUnlock()
	if interval == 0 {
		common.Log.Debugf(`liveness interval is zero, polling disabled`)
		return
	}

	go func() {
		tick := time.Tick(interval)
		for {
			select {
			case <-c.quitChan:
				common.Log.Debugf(`quitting liveness loop`)
				return
			case <-tick:
				devices, err := c.GetDevices()
				if err != nil {
					continue
				}
				for _, dev := range devices {
					common.Log.Debugf(`probing %v for liveness`, dev.IP())
					dev.IsAvailable()
				}
			}
		}
	}()
}

// publish pushes a registry event to subscribers.
func (c *Client) publish(event interface{}) {
	c.RLock()
	subs := make([]*common.Subscription, 0, len(c.subscriptions))
	for _, sub := range c.subscriptions {
		subs = append(subs, sub)
	}
	c.RUnlock()

	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf(`dropping client event: %v`, err)
		}
	}
}
