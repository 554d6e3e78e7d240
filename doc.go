// Package harbor provides the host-side toolkit around the harbor 2D
// shading core.
//
// The shading contract itself (WGSL source, stage semantics, buffer
// layouts, CPU reference stages) lives in the shading package. This
// package supplies what a hosting renderer feeds into it: an RGBA
// color type, vertex builders for rectangles and circles, and glyph
// instance batching for text draws.
//
// GPU pipeline construction on top of gogpu/wgpu is exposed through
// the render package and is driven through a host-provided device;
// see render.NewSession and DeviceHandle.
package harbor
