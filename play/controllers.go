package play

import (
	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/systems/factory"
)

// Controllers holds one InputDevice per connected gamepad, in the order
// they connected. A pad that disconnects leaves the list and its device
// stops reporting; reconnecting it adds a new device at the end.
type Controllers struct {
	p       *P
	hub     components.GamepadHub
	ids     []int
	devices []*InputDevice
}

// Len is the number of connected gamepads.
func (c *Controllers) Len() int {
	return len(c.devices)
}

// Get returns the i-th connected gamepad, or nil.
func (c *Controllers) Get(i int) *InputDevice {
	if i < 0 || i >= len(c.devices) {
		return nil
	}
	return c.devices[i]
}

func (c *Controllers) All() []*InputDevice {
	return append([]*InputDevice(nil), c.devices...)
}

// sync adds devices for new pads and drops the ones that went away.
func (c *Controllers) sync() {
	list := c.hub.Connected()
	connected := make(map[int]bool, len(list))
	for _, id := range list {
		connected[id] = true
	}

	ids, devices := c.ids[:0], c.devices[:0]
	for i, id := range c.ids {
		if connected[id] {
			ids = append(ids, id)
			devices = append(devices, c.devices[i])
			delete(connected, id)
			continue
		}
		c.p.ecs.World.Remove(c.devices[i].entry.Entity())
	}
	c.ids, c.devices = ids, devices

	// keep the hub's order for pads that connected on the same frame
	for _, id := range list {
		if !connected[id] {
			continue
		}
		entry := factory.CreateInputDevice(c.p.ecs, "gamepad", c.hub.Source(id))
		c.ids = append(c.ids, id)
		c.devices = append(c.devices, &InputDevice{entry: entry})
	}
}
