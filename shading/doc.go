// Package shading holds the WGSL shading core of the harbor renderer
// and its host-side contract.
//
// The core is a single shader module with two vertex entry points and
// one shared fragment entry point:
//
//   - glyph_vs_main transforms pixel-space glyph geometry with a
//     per-instance placement offset into clip space
//   - vs_main passes already-normalized geometry through unchanged
//   - fs_main applies a gamma decoding curve to the interpolated color
//
// The package exposes the embedded WGSL source, the vertex and uniform
// buffer layouts a host pipeline must use, Go mirror types with
// little-endian serializers for GPU upload, and a pure CPU reference
// implementation of each stage used by tests and software paths.
//
// All stages are pure functions of their inputs. The only shared state
// is the Globals uniform (screen size) at group 0, binding 0, which is
// immutable for the duration of a draw call. Preconditions are the
// host's responsibility: both screen size components must be strictly
// positive, and buffer strides must match the layouts declared here.
// The stages perform no defensive checks.
package shading
