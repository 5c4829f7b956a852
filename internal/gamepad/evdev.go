package gamepad

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/holoplot/go-evdev"
)

// eventBuffer smooths bursts from devices that report many axes per
// kernel sync.
const eventBuffer = 64

// Poller reads kernel input events from every attached gamepad and
// publishes them as one merged event stream. Devices are discovered
// once; a device that disappears ends its readers with a Disconnected
// event and is not reopened.
type Poller struct {
	devices []DeviceInfo

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup

	handles   []*evdev.InputDevice
	closeOnce sync.Once
}

type device struct {
	id   uuid.UUID
	info DeviceInfo
	dev  *evdev.InputDevice
	conv *converter
}

// Discover opens every gamepad attached to the system and starts
// reading from it. A system with no gamepads yields a Poller whose
// stream stays silent.
func Discover() (*Poller, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	p := &Poller{
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}

	for _, ip := range paths {
		dev, err := evdev.Open(ip.Path)
		if err != nil {
			slog.Debug("skipping input device", "path", ip.Path, "error", err)
			continue
		}
		if !isGamepad(dev) {
			dev.Close()
			continue
		}

		name, err := dev.Name()
		if err != nil {
			name = ip.Name
		}
		abs, err := dev.AbsInfos()
		if err != nil {
			slog.Warn("failed to read axis ranges", "device", name, "error", err)
			abs = map[evdev.EvCode]evdev.AbsInfo{}
		}

		d := &device{
			id:   uuid.New(),
			dev:  dev,
			conv: newConverter(abs),
		}
		d.info = DeviceInfo{ID: d.id, Name: name, Path: ip.Path}

		p.handles = append(p.handles, dev)
		p.devices = append(p.devices, d.info)
		p.wg.Add(1)
		go p.readDevice(d)
	}

	go func() {
		<-p.done
		p.wg.Wait()
		close(p.events)
	}()

	return p, nil
}

// Devices returns the gamepads found at discovery.
func (p *Poller) Devices() []DeviceInfo {
	return p.devices
}

// Events returns the merged event stream. Receiving blocks until the
// next event; the channel closes after Close once every reader has
// stopped.
func (p *Poller) Events() <-chan Event {
	return p.events
}

// Close stops all readers and releases the devices.
func (p *Poller) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
		for _, dev := range p.handles {
			dev.Close()
		}
	})
}

func (p *Poller) readDevice(d *device) {
	defer p.wg.Done()

	p.emit(Event{Device: d.id, Kind: Connected, Time: time.Now()})
	for {
		ie, err := d.dev.ReadOne()
		if err != nil {
			slog.Debug("gamepad reader stopped", "device", d.info.Name, "error", err)
			p.emit(Event{Device: d.id, Kind: Disconnected, Time: time.Now()})
			return
		}
		for _, ev := range d.conv.convert(ie) {
			ev.Device = d.id
			p.emit(ev)
		}
	}
}

func (p *Poller) emit(ev Event) {
	select {
	case p.events <- ev:
	case <-p.done:
	}
}

// isGamepad reports whether the device advertises the gamepad button
// group. BTN_SOUTH is BTN_GAMEPAD in the kernel's nomenclature.
func isGamepad(dev *evdev.InputDevice) bool {
	for _, code := range dev.CapableEvents(evdev.EV_KEY) {
		if code == evdev.BTN_SOUTH {
			return true
		}
	}
	return false
}
