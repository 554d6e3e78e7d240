package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/tathyagarg/harbor"
	"github.com/tathyagarg/harbor/shading"
)

// RenderSession owns the GPU state needed to drive the shading core
// for one render target: the globals uniform, the glyph and fill
// pipelines, and the per-frame geometry buffers.
//
// Frame flow: the host uploads geometry with UploadFill/UploadGlyphs,
// records draws into its own render pass with RecordDraws, submits,
// then calls EndFrame to release the frame's buffers. The session
// never encodes or submits command buffers itself; draw-call issuance
// stays with the host.
type RenderSession struct {
	device hal.Device
	queue  hal.Queue

	// instance is non-nil only when the session opened its own device.
	instance       hal.Instance
	externalDevice bool

	globals       *GlobalsBuffer
	glyphPipeline *GlyphPipeline
	fillPipeline  *FillPipeline

	frameGlyphs []*glyphFrameResources
	frameFill   *fillFrameResources
}

// NewRenderSession creates a session on a shared device obtained from
// the host's DeviceHandle. Nothing device-level is destroyed on Close.
func NewRenderSession(provider any, width, height float32) (*RenderSession, error) {
	device, queue, err := DeviceFromProvider(provider)
	if err != nil {
		return nil, err
	}
	s := &RenderSession{
		device:         device,
		queue:          queue,
		externalDevice: true,
	}
	if err := s.init(width, height); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// NewStandaloneSession creates a session on its own Vulkan device.
// Intended for hosts without a device of their own and for headless
// use; the session owns and destroys the device on Close.
func NewStandaloneSession(width, height float32) (*RenderSession, error) {
	instance, device, queue, err := OpenDevice()
	if err != nil {
		return nil, err
	}
	s := &RenderSession{
		device:   device,
		queue:    queue,
		instance: instance,
	}
	if err := s.init(width, height); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *RenderSession) init(width, height float32) error {
	globals, err := NewGlobalsBuffer(s.device, s.queue, width, height)
	if err != nil {
		return err
	}
	s.globals = globals

	s.glyphPipeline = NewGlyphPipeline(s.device, s.queue)
	if err := s.glyphPipeline.ensurePipeline(globals.Layout()); err != nil {
		return fmt.Errorf("glyph pipeline: %w", err)
	}

	s.fillPipeline = NewFillPipeline(s.device, s.queue)
	if err := s.fillPipeline.ensurePipeline(); err != nil {
		return fmt.Errorf("fill pipeline: %w", err)
	}

	return nil
}

// Resize rewrites the globals uniform for a new render-target size.
// Must be called on every surface reconfiguration; the glyph vertex
// stage scales by whatever was last written.
func (s *RenderSession) Resize(width, height float32) error {
	return s.globals.Resize(width, height)
}

// UploadFill serializes generic NDC geometry and uploads it as this
// frame's fill vertex buffer, replacing any previous upload.
func (s *RenderSession) UploadFill(verts []shading.Vertex) error {
	if len(verts) == 0 {
		return ErrNoGeometry
	}
	if s.frameFill != nil {
		s.frameFill.destroy(s.device)
		s.frameFill = nil
	}

	vertBuf, err := s.createAndUploadBuffer("harbor_fill_verts",
		shading.BuildVertexData(verts),
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("create fill vertex buffer: %w", err)
	}

	s.frameFill = &fillFrameResources{
		vertBuf:     vertBuf,
		vertexCount: uint32(len(verts)),
	}
	return nil
}

// UploadGlyphs resolves each distinct rune in the batch to its outline
// and uploads one vertex/instance buffer pair per glyph for this
// frame's text draws. Runes without an outline are skipped; layout
// already advanced past them.
func (s *RenderSession) UploadGlyphs(batch *harbor.InstanceBatch, source harbor.GlyphSource) error {
	if batch == nil || batch.Len() == 0 {
		return ErrNoGeometry
	}

	for _, r := range batch.Runes() {
		outline, ok := source.Outline(r)
		if !ok || len(outline.Vertices) == 0 {
			continue
		}
		instances := batch.Instances(r)
		if len(instances) == 0 {
			continue
		}

		vertBuf, err := s.createAndUploadBuffer("harbor_glyph_verts",
			shading.BuildGlyphVertexData(outline.Vertices),
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return fmt.Errorf("glyph %q vertex buffer: %w", r, err)
		}

		instBuf, err := s.createAndUploadBuffer("harbor_glyph_instances",
			shading.BuildGlyphInstanceData(instances),
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			s.device.DestroyBuffer(vertBuf)
			return fmt.Errorf("glyph %q instance buffer: %w", r, err)
		}

		s.frameGlyphs = append(s.frameGlyphs, &glyphFrameResources{
			vertBuf:       vertBuf,
			instBuf:       instBuf,
			vertexCount:   uint32(len(outline.Vertices)),
			instanceCount: uint32(len(instances)),
		})
	}

	return nil
}

// RecordDraws records all uploaded geometry into a host-owned render
// pass: fill geometry first, then text on top.
func (s *RenderSession) RecordDraws(rp hal.RenderPassEncoder) {
	s.fillPipeline.RecordDraws(rp, s.frameFill)
	s.glyphPipeline.RecordDraws(rp, s.globals.BindGroup(), s.frameGlyphs)
}

// EndFrame releases the frame's geometry buffers. Call after the
// host has submitted the command buffer that references them.
func (s *RenderSession) EndFrame() {
	for _, r := range s.frameGlyphs {
		r.destroy(s.device)
	}
	s.frameGlyphs = nil
	if s.frameFill != nil {
		s.frameFill.destroy(s.device)
		s.frameFill = nil
	}
}

// GlobalsRef returns the session's globals buffer.
func (s *RenderSession) GlobalsRef() *GlobalsBuffer {
	return s.globals
}

// Close releases all GPU resources. The device and instance are only
// destroyed when the session created them itself.
func (s *RenderSession) Close() {
	s.EndFrame()
	if s.fillPipeline != nil {
		s.fillPipeline.Destroy()
		s.fillPipeline = nil
	}
	if s.glyphPipeline != nil {
		s.glyphPipeline.Destroy()
		s.glyphPipeline = nil
	}
	if s.globals != nil {
		s.globals.Destroy()
		s.globals = nil
	}
	if !s.externalDevice {
		if s.device != nil {
			s.device.Destroy()
		}
		if s.instance != nil {
			s.instance.Destroy()
		}
	}
	s.device = nil
	s.queue = nil
	s.instance = nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (s *RenderSession) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	s.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
