// Package gpu wires the harbor shading core into render pipelines on
// the gogpu/wgpu HAL.
//
// The package owns three kinds of GPU state:
//
//   - GlobalsBuffer: the frame-scoped screen-size uniform at group 0,
//     binding 0, rewritten by the host on resize
//   - GlyphPipeline and FillPipeline: the two render pipelines built
//     from the shared shader module (glyph_vs_main + fs_main and
//     vs_main + fs_main respectively)
//   - RenderSession: per-frame vertex/instance buffers and draw
//     recording into a host-owned render pass
//
// The device either comes from the host through a provider exposing
// HalDevice()/HalQueue() (shared-device mode, nothing is destroyed on
// Close) or is created here through the Vulkan backend.
package gpu
