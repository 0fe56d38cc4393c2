package mocks

import "github.com/gawindx/goihomma/common"

type Device struct {
	SubscriptionTarget
}

func (_m *Device) IP() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}
func (_m *Device) IsAvailable() bool {
	ret := _m.Called()

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}
func (_m *Device) TurnOn() bool {
	ret := _m.Called()

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}
func (_m *Device) TurnOff() bool {
	ret := _m.Called()

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}
func (_m *Device) SetBrightness(brightness int) bool {
	ret := _m.Called(brightness)

	var r0 bool
	if rf, ok := ret.Get(0).(func(int) bool); ok {
		r0 = rf(brightness)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}
func (_m *Device) SetTemperature(kelvin int) bool {
	ret := _m.Called(kelvin)

	var r0 bool
	if rf, ok := ret.Get(0).(func(int) bool); ok {
		r0 = rf(kelvin)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}
func (_m *Device) SetColor(color common.RGB) bool {
	ret := _m.Called(color)

	var r0 bool
	if rf, ok := ret.Get(0).(func(common.RGB) bool); ok {
		r0 = rf(color)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}
func (_m *Device) SetEffect(code byte, name string) bool {
	ret := _m.Called(code, name)

	var r0 bool
	if rf, ok := ret.Get(0).(func(byte, string) bool); ok {
		r0 = rf(code, name)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}
func (_m *Device) QueryStatus() ([]byte, bool) {
	ret := _m.Called()

	var r0 []byte
	if rf, ok := ret.Get(0).(func() []byte); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	var r1 bool
	if rf, ok := ret.Get(1).(func() bool); ok {
		r1 = rf()
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}
func (_m *Device) State() common.State {
	ret := _m.Called()

	var r0 common.State
	if rf, ok := ret.Get(0).(func() common.State); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.State)
	}

	return r0
}
func (_m *Device) CachedState() common.State {
	ret := _m.Called()

	var r0 common.State
	if rf, ok := ret.Get(0).(func() common.State); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.State)
	}

	return r0
}
func (_m *Device) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
