package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/tathyagarg/harbor/shading"
)

// FillPipeline renders generic colored primitives whose coordinates
// the host has already normalized: rectangles, circle fans, and any
// other triangle-list geometry. The pass-through vertex stage has no
// dependency on the globals uniform, so the pipeline layout is empty.
type FillPipeline struct {
	device hal.Device
	queue  hal.Queue
	config PipelineConfig

	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
}

// NewFillPipeline creates a new fill pipeline with the given device,
// queue, and default configuration. GPU objects are not created until
// ensurePipeline.
func NewFillPipeline(device hal.Device, queue hal.Queue) *FillPipeline {
	return &FillPipeline{
		device: device,
		queue:  queue,
		config: DefaultPipelineConfig(),
	}
}

// Destroy releases all GPU resources held by the pipeline. Safe to
// call multiple times or on a pipeline with no allocated resources.
func (p *FillPipeline) Destroy() {
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
// render pipeline if they don't already exist.
func (p *FillPipeline) ensurePipeline() error {
	if p.pipeline != nil {
		return nil
	}
	return p.createPipeline()
}

// createPipeline compiles the shading core and creates the fill render
// pipeline with premultiplied alpha blending and MSAA.
func (p *FillPipeline) createPipeline() error {
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
		Label:            "harbor_fill_pipe_layout",
		BindGroupLayouts: nil,
	})
	if err != nil {
		return fmt.Errorf("create fill pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "harbor_fill_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: shading.VertexEntryPoint,
			Buffers:    shading.FillVertexLayout(),
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
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: p.config.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create fill pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

// RecordDraws records fill geometry into an existing render pass.
// This is a no-op if the pipeline has not been created or resources
// is nil or empty.
func (p *FillPipeline) RecordDraws(rp hal.RenderPassEncoder, resources *fillFrameResources) {
	if p.pipeline == nil || resources == nil || resources.vertexCount == 0 {
		return
	}
	rp.SetPipeline(p.pipeline)
	rp.SetVertexBuffer(0, resources.vertBuf, 0)
	rp.Draw(resources.vertexCount, 1, 0, 0)
}

// fillFrameResources holds the per-frame vertex buffer for fill draws.
type fillFrameResources struct {
	vertBuf     hal.Buffer
	vertexCount uint32
}

func (r *fillFrameResources) destroy(device hal.Device) {
	if r.vertBuf != nil {
		device.DestroyBuffer(r.vertBuf)
	}
}
