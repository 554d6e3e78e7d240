package harbor

import (
	"github.com/gogpu/gpucontext"
)

// DeviceHandle provides GPU device access from the host application.
//
// Harbor receives the device from the host, it does not create one:
// the host owns the surface, swapchain, and frame pacing, and shares
// its device so pipelines and buffers live alongside the host's own
// resources.
//
// The handle should additionally implement HalDevice() any and
// HalQueue() any (returning hal.Device and hal.Queue) for direct HAL
// access; render.NewSession requires it, and hosts without a device
// of their own use render.NewStandaloneSession instead.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, keeping a
// harbor-specific name while staying compatible with the gpucontext
// ecosystem.
type DeviceHandle = gpucontext.DeviceProvider
