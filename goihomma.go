// Copyright 2019 gawindx
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file

// Package goihomma provides a simple Go interface to iHomma SmartLight
// (SML) bulbs over the LAN.
//
// Bulbs are driven through a small binary instruction protocol: liveness
// probes travel over UDP, commands over TCP.  Also included in cmd/ihomma
// is a small CLI utility that allows interacting with your bulbs on the
// LAN.
package goihomma

import (
	"github.com/gawindx/goihomma/common"
	"github.com/gawindx/goihomma/protocol/device"
	"github.com/gawindx/goihomma/state"
)

const (
	// VERSION of this library
	VERSION = `0.0.1`
)

// NewClient returns a pointer to a new Client with an empty device
// registry and a fresh shared state store.
func NewClient() *Client {
	return &Client{
		devices:       make(map[string]common.Device),
		store:         state.NewStore(),
		subscriptions: make(map[string]*common.Subscription),
		quitChan:      make(chan bool, 1),
	}
}

// NewDevice returns a standalone device handle for the bulb at ip, using
// the standard iHomma ports and no shared state store.  For several bulbs
// that should share state, use a Client instead.
func NewDevice(ip string) (*device.Device, error) {
	return device.New(ip, nil)
}

// SetLogger allows assigning a custom levelled logger that conforms to the
// common.Logger interface.  To capture logs generated during client
// creation, this should be called before creating a Client.  Defaults to
// common.StubLogger, which does no logging at all.
func SetLogger(logger common.Logger) {
	common.SetLogger(logger)
}
