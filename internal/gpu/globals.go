package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"golang.org/x/image/math/f32"

	"github.com/tathyagarg/harbor/shading"
)

// GlobalsBuffer owns the screen-size uniform at group 0, binding 0.
// The buffer is written once at creation and rewritten whenever the
// render target is resized; it is never touched from the GPU side.
//
// Stale contents after a missed resize produce spatially scaled output
// but no crash, so Resize is the host's responsibility on every
// surface reconfiguration.
type GlobalsBuffer struct {
	device hal.Device
	queue  hal.Queue

	layout    hal.BindGroupLayout
	buffer    hal.Buffer
	bindGroup hal.BindGroup

	width  float32
	height float32
}

// NewGlobalsBuffer creates the uniform buffer, its bind group layout,
// and the bind group, and uploads the initial screen size.
func NewGlobalsBuffer(device hal.Device, queue hal.Queue, width, height float32) (*GlobalsBuffer, error) {
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidScreenSize, width, height)
	}

	g := &GlobalsBuffer{device: device, queue: queue}

	layout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "harbor_globals_layout",
		Entries: shading.GlobalsBindGroupLayoutEntries(),
	})
	if err != nil {
		return nil, fmt.Errorf("create globals layout: %w", err)
	}
	g.layout = layout

	buffer, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "harbor_globals",
		Size:  shading.GlobalsSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		g.Destroy()
		return nil, fmt.Errorf("create globals buffer: %w", err)
	}
	g.buffer = buffer

	bindGroup, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "harbor_globals_bind",
		Layout: g.layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: shading.GlobalsBinding, Resource: gputypes.BufferBinding{
				Buffer: buffer.NativeHandle(), Offset: 0, Size: shading.GlobalsSize,
			}},
		},
	})
	if err != nil {
		g.Destroy()
		return nil, fmt.Errorf("create globals bind group: %w", err)
	}
	g.bindGroup = bindGroup

	g.write(width, height)
	return g, nil
}

// Resize rewrites the uniform with the new render-target dimensions.
func (g *GlobalsBuffer) Resize(width, height float32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidScreenSize, width, height)
	}
	g.write(width, height)
	return nil
}

func (g *GlobalsBuffer) write(width, height float32) {
	globals := shading.Globals{ScreenSize: f32.Vec2{width, height}}
	g.queue.WriteBuffer(g.buffer, 0, globals.Bytes())
	g.width = width
	g.height = height
}

// Layout returns the bind group layout for pipeline construction.
func (g *GlobalsBuffer) Layout() hal.BindGroupLayout {
	return g.layout
}

// BindGroup returns the bind group to set at group 0 when drawing.
func (g *GlobalsBuffer) BindGroup() hal.BindGroup {
	return g.bindGroup
}

// Size returns the currently uploaded screen dimensions.
func (g *GlobalsBuffer) Size() (float32, float32) {
	return g.width, g.height
}

// Destroy releases the buffer, bind group, and layout. Safe to call
// multiple times or on a partially constructed value.
func (g *GlobalsBuffer) Destroy() {
	if g.device == nil {
		return
	}
	if g.bindGroup != nil {
		g.device.DestroyBindGroup(g.bindGroup)
		g.bindGroup = nil
	}
	if g.buffer != nil {
		g.device.DestroyBuffer(g.buffer)
		g.buffer = nil
	}
	if g.layout != nil {
		g.device.DestroyBindGroupLayout(g.layout)
		g.layout = nil
	}
}
