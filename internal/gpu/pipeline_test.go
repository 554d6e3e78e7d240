package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultPipelineConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()
	if cfg.TargetFormat != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("expected BGRA8Unorm target, got %v", cfg.TargetFormat)
	}
	if cfg.SampleCount != 4 {
		t.Errorf("expected sample count 4, got %d", cfg.SampleCount)
	}
}

func TestGlyphPipelineNew(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p := NewGlyphPipeline(device, queue)
	if p == nil {
		t.Fatal("expected non-nil GlyphPipeline")
	}
	if p.device != device {
		t.Error("device not stored correctly")
	}
	if p.queue != queue {
		t.Error("queue not stored correctly")
	}
	if p.config != DefaultPipelineConfig() {
		t.Error("expected default pipeline config")
	}
	if p.pipeline != nil {
		t.Error("expected nil pipeline before ensurePipeline")
	}
}

func TestGlyphPipelineCreation(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	g, err := NewGlobalsBuffer(device, queue, 800, 600)
	if err != nil {
		t.Fatalf("NewGlobalsBuffer failed: %v", err)
	}
	defer g.Destroy()

	p := NewGlyphPipeline(device, queue)
	defer p.Destroy()

	if err := p.ensurePipeline(g.Layout()); err != nil {
		t.Fatalf("ensurePipeline failed: %v", err)
	}

	if p.shader == nil {
		t.Error("expected non-nil shader")
	}
	if p.pipeLayout == nil {
		t.Error("expected non-nil pipeLayout")
	}
	if p.pipeline == nil {
		t.Error("expected non-nil pipeline")
	}
}

func TestGlyphPipelineEnsureIdempotent(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	g, err := NewGlobalsBuffer(device, queue, 800, 600)
	if err != nil {
		t.Fatalf("NewGlobalsBuffer failed: %v", err)
	}
	defer g.Destroy()

	p := NewGlyphPipeline(device, queue)
	defer p.Destroy()

	if err := p.ensurePipeline(g.Layout()); err != nil {
		t.Fatalf("first ensurePipeline failed: %v", err)
	}
	orig := p.pipeline

	if err := p.ensurePipeline(g.Layout()); err != nil {
		t.Fatalf("second ensurePipeline failed: %v", err)
	}
	if p.pipeline != orig {
		t.Error("pipeline was recreated unnecessarily")
	}
}

func TestGlyphPipelineDestroy(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	g, err := NewGlobalsBuffer(device, queue, 800, 600)
	if err != nil {
		t.Fatalf("NewGlobalsBuffer failed: %v", err)
	}
	defer g.Destroy()

	p := NewGlyphPipeline(device, queue)
	if err := p.ensurePipeline(g.Layout()); err != nil {
		t.Fatalf("ensurePipeline failed: %v", err)
	}

	p.Destroy()

	if p.pipeline != nil {
		t.Error("expected nil pipeline after Destroy")
	}
	if p.pipeLayout != nil {
		t.Error("expected nil pipeLayout after Destroy")
	}
	if p.shader != nil {
		t.Error("expected nil shader after Destroy")
	}

	// Double-destroy should be safe.
	p.Destroy()
}

func TestGlyphPipelineRecordDrawsBeforeCreate(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p := NewGlyphPipeline(device, queue)
	defer p.Destroy()

	// Non-empty resources with no pipeline must be a no-op, not a
	// nil-pipeline draw.
	p.RecordDraws(nil, nil, []*glyphFrameResources{
		{vertexCount: 2, instanceCount: 1},
	})
}

func TestFillPipelineCreation(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p := NewFillPipeline(device, queue)
	defer p.Destroy()

	if err := p.ensurePipeline(); err != nil {
		t.Fatalf("ensurePipeline failed: %v", err)
	}

	if p.shader == nil {
		t.Error("expected non-nil shader")
	}
	if p.pipeLayout == nil {
		t.Error("expected non-nil pipeLayout")
	}
	if p.pipeline == nil {
		t.Error("expected non-nil pipeline")
	}
}

func TestFillPipelineEnsureIdempotent(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p := NewFillPipeline(device, queue)
	defer p.Destroy()

	if err := p.ensurePipeline(); err != nil {
		t.Fatalf("first ensurePipeline failed: %v", err)
	}
	orig := p.pipeline

	if err := p.ensurePipeline(); err != nil {
		t.Fatalf("second ensurePipeline failed: %v", err)
	}
	if p.pipeline != orig {
		t.Error("pipeline was recreated unnecessarily")
	}
}

func TestFillPipelineDestroy(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p := NewFillPipeline(device, queue)
	if err := p.ensurePipeline(); err != nil {
		t.Fatalf("ensurePipeline failed: %v", err)
	}

	p.Destroy()

	if p.pipeline != nil {
		t.Error("expected nil pipeline after Destroy")
	}
	if p.pipeLayout != nil {
		t.Error("expected nil pipeLayout after Destroy")
	}
	if p.shader != nil {
		t.Error("expected nil shader after Destroy")
	}

	// Destroy without ever creating — should not panic.
	fresh := NewFillPipeline(device, queue)
	fresh.Destroy()
}

func TestFillPipelineRecordDrawsBeforeCreate(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p := NewFillPipeline(device, queue)
	defer p.Destroy()

	p.RecordDraws(nil, &fillFrameResources{vertexCount: 3})
}
