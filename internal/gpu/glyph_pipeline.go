package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/tathyagarg/harbor/shading"
)

// GlyphPipeline renders batched text: glyph outlines drawn as a line
// list, one instanced draw per distinct glyph. Buffer slot 0 carries
// the glyph-local outline vertices, slot 1 the per-instance placement
// offsets and colors. The vertex stage reads the screen size from the
// globals uniform, so the pipeline layout carries the globals bind
// group layout at group 0.
type GlyphPipeline struct {
	device hal.Device
	queue  hal.Queue
	config PipelineConfig

	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
}

// NewGlyphPipeline creates a new glyph pipeline with the given device,
// queue, and default configuration. GPU objects are not created until
// ensurePipeline.
func NewGlyphPipeline(device hal.Device, queue hal.Queue) *GlyphPipeline {
	return &GlyphPipeline{
		device: device,
		queue:  queue,
		config: DefaultPipelineConfig(),
	}
}

// Destroy releases all GPU resources held by the pipeline. Safe to
// call multiple times or on a pipeline with no allocated resources.
func (p *GlyphPipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// ensurePipeline creates the shader module, pipeline layout, and
// render pipeline if they don't already exist. The globals layout is
// owned by the caller's GlobalsBuffer.
func (p *GlyphPipeline) ensurePipeline(globalsLayout hal.BindGroupLayout) error {
	if p.pipeline != nil {
		return nil
	}
	return p.createPipeline(globalsLayout)
}

// createPipeline compiles the shading core and creates the glyph
// render pipeline with premultiplied alpha blending and MSAA.
func (p *GlyphPipeline) createPipeline(globalsLayout hal.BindGroupLayout) error {
	if shading.ShaderSource() == "" {
		return fmt.Errorf("shading core source is empty")
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "harbor_shading",
		Source: hal.ShaderSource{WGSL: shading.ShaderSource()},
	})
	if err != nil {
		return fmt.Errorf("compile shading core: %w", err)
	}
	p.shader = shader

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "harbor_glyph_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{globalsLayout},
	})
	if err != nil {
		return fmt.Errorf("create glyph pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "harbor_glyph_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: shading.GlyphVertexEntryPoint,
			Buffers:    shading.GlyphVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: shading.FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.config.TargetFormat,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyLineList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: p.config.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create glyph pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

// RecordDraws records one instanced draw per glyph into an existing
// render pass. The render pass and the globals bind group are owned by
// the caller. This is a no-op if the pipeline has not been created or
// resources is nil or empty.
func (p *GlyphPipeline) RecordDraws(rp hal.RenderPassEncoder, globals hal.BindGroup, resources []*glyphFrameResources) {
	if p.pipeline == nil || len(resources) == 0 {
		return
	}
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(shading.GlobalsBindGroup, globals, nil)
	for _, r := range resources {
		if r == nil || r.vertexCount == 0 || r.instanceCount == 0 {
			continue
		}
		rp.SetVertexBuffer(0, r.vertBuf, 0)
		rp.SetVertexBuffer(1, r.instBuf, 0)
		rp.Draw(r.vertexCount, r.instanceCount, 0, 0)
	}
}

// glyphFrameResources holds per-frame GPU buffers for one distinct
// glyph: its shared outline vertices and every placement instance.
type glyphFrameResources struct {
	vertBuf       hal.Buffer
	instBuf       hal.Buffer
	vertexCount   uint32
	instanceCount uint32
}

func (r *glyphFrameResources) destroy(device hal.Device) {
	if r.instBuf != nil {
		device.DestroyBuffer(r.instBuf)
	}
	if r.vertBuf != nil {
		device.DestroyBuffer(r.vertBuf)
	}
}
