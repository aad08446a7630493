package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

// gpuMesh holds the vertex and index buffers of one ModelID.
type gpuMesh struct {
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   uint32
}

// gpuLayer holds the camera uniform, instance storage buffer and bind group of one Layer.
type gpuLayer struct {
	cameraBuffer   *wgpu.Buffer
	instanceBuffer *wgpu.Buffer
	bindGroup      *wgpu.BindGroup
}

// wgpuRendererBackendImpl is the WebGPU implementation of RendererBackend.
type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat    *wgpu.TextureFormat
	depthTexture     *wgpu.Texture
	depthTextureView *wgpu.TextureView

	presentMode wgpu.PresentMode // defaults to PresentModeImmediate (Uncapped)

	meshes          map[model.ModelID]*gpuMesh
	layers          [layerCount]*gpuLayer
	bindGroupLayout *wgpu.BindGroupLayout
	pipelineLayout  *wgpu.PipelineLayout
	skyboxLayout    *wgpu.PipelineLayout
	worldPipeline   *wgpu.RenderPipeline
	uiPipeline      *wgpu.RenderPipeline
	skyboxPipeline  *wgpu.RenderPipeline

	// Per-frame state (set by BeginFrame, cleared by EndFrame/Present)
	frameEncoder *wgpu.CommandEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
	frameCleared bool
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, capacity [layerCount]int) (*wgpuRendererBackendImpl, error) {
	runtime.LockOSThread()
	b := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeImmediate,
		meshes:      make(map[model.ModelID]*gpuMesh),
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}
	b.device = d
	b.queue = d.GetQueue()

	for id, mesh := range model.BuiltinMeshes() {
		if err := b.initMesh(id, mesh); err != nil {
			return nil, fmt.Errorf("upload %s mesh: %w", id, err)
		}
	}
	if err := b.initLayers(capacity); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *wgpuRendererBackendImpl) initMesh(id model.ModelID, mesh *model.Mesh) error {
	vertexData := mesh.VertexData()
	vb, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            id.String() + " Vertex Buffer",
		Size:             uint64(len(vertexData)),
		Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(vb, 0, vertexData)

	indexData := mesh.IndexData()
	ib, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            id.String() + " Index Buffer",
		Size:             uint64(len(indexData)),
		Usage:            wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(ib, 0, indexData)

	b.meshes[id] = &gpuMesh{vertexBuffer: vb, indexBuffer: ib, indexCount: uint32(mesh.IndexCount())}
	return nil
}

// initLayers creates the shared bind group layout and one camera/instance buffer pair per Layer.
func (b *wgpuRendererBackendImpl) initLayers(capacity [layerCount]int) error {
	cameraEntry := wgpu.BindGroupLayoutEntry{Binding: 0, Visibility: wgpu.ShaderStageVertex}
	cameraEntry.Buffer.Type = wgpu.BufferBindingTypeUniform
	instanceEntry := wgpu.BindGroupLayoutEntry{Binding: 1, Visibility: wgpu.ShaderStageVertex}
	instanceEntry.Buffer.Type = wgpu.BufferBindingTypeReadOnlyStorage

	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Instanced Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{cameraEntry, instanceEntry},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	b.bindGroupLayout = layout

	b.pipelineLayout, err = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Instanced Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	b.skyboxLayout, err = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "Skybox Pipeline Layout",
	})
	if err != nil {
		return fmt.Errorf("create skybox pipeline layout: %w", err)
	}

	var uniform camera.GPUCameraUniform
	for l := range layerCount {
		label := l.String()
		cameraBuffer, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: label + " Camera Buffer",
			Size:  uint64(uniform.Size()),
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create %s camera buffer: %w", label, err)
		}
		instanceBuffer, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: label + " Instance Buffer",
			Size:  uint64(capacity[l] * model.GPUInstanceSize),
			Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create %s instance buffer: %w", label, err)
		}
		bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  label + " Bind Group",
			Layout: layout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: cameraBuffer, Offset: 0, Size: wgpu.WholeSize},
				{Binding: 1, Buffer: instanceBuffer, Offset: 0, Size: wgpu.WholeSize},
			},
		})
		if err != nil {
			return fmt.Errorf("create %s bind group: %w", label, err)
		}
		b.layers[l] = &gpuLayer{cameraBuffer: cameraBuffer, instanceBuffer: instanceBuffer, bindGroup: bindGroup}
	}
	return nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	formatChanged := b.surfaceFormat == nil || *b.surfaceFormat != capabilities.Formats[0]
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTexture.Release()
	}
	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	b.depthTexture = depthTexture
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	// Pipelines target the surface format, so they are (re)built once it is known.
	if formatChanged {
		if err := b.createPipelines(); err != nil {
			panic(err)
		}
	}
}

func (b *wgpuRendererBackendImpl) createPipelines() error {
	world, err := b.createPipeline("World", worldShaderSource, b.pipelineLayout, true, nil)
	if err != nil {
		return err
	}
	ui, err := b.createPipeline("UI", uiShaderSource, b.pipelineLayout, false, &wgpu.BlendState{
		Color: wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorSrcAlpha,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		},
		Alpha: wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		},
	})
	if err != nil {
		return err
	}
	skybox, err := b.createPipeline("Skybox", skyboxShaderSource, b.skyboxLayout, false, nil)
	if err != nil {
		return err
	}
	b.worldPipeline, b.uiPipeline, b.skyboxPipeline = world, ui, skybox
	return nil
}

func (b *wgpuRendererBackendImpl) createPipeline(label, source string, layout *wgpu.PipelineLayout, depth bool, blend *wgpu.BlendState) (*wgpu.RenderPipeline, error) {
	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: label + " Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: source,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s shader: %w", label, err)
	}

	var buffers []wgpu.VertexBufferLayout
	if layout == b.pipelineLayout {
		var v model.GPUVertex
		buffers = []wgpu.VertexBufferLayout{{
			ArrayStride: uint64(v.Size()),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
				{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
			},
		}}
	}

	var depthStencil *wgpu.DepthStencilState
	if depth {
		depthStencil = &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		}
	}

	p, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  label + " Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    *b.surfaceFormat,
				Blend:     blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: depthStencil,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s pipeline: %w", label, err)
	}
	return p, nil
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeVSync:
		b.presentMode = wgpu.PresentModeFifo
	case PresentModeUncapped:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeImmediate
	}
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface != nil {
		return ErrSurfaceBusy
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	b.frameEncoder = encoder
	b.frameSurface = surfaceTexture
	b.frameView = view
	b.frameCleared = false
	return nil
}

func (b *wgpuRendererBackendImpl) WriteCamera(layer Layer, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue.WriteBuffer(b.layers[layer].cameraBuffer, 0, data)
}

func (b *wgpuRendererBackendImpl) WriteInstances(layer Layer, slot int, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue.WriteBuffer(b.layers[layer].instanceBuffer, uint64(slot*model.GPUInstanceSize), data)
}

// colorAttachment loads the frame unless nothing has cleared it yet, in which case it clears to clear.
func (b *wgpuRendererBackendImpl) colorAttachment(clear *Color) wgpu.RenderPassColorAttachment {
	attachment := wgpu.RenderPassColorAttachment{
		View:    b.frameView,
		LoadOp:  wgpu.LoadOpLoad,
		StoreOp: wgpu.StoreOpStore,
	}
	if clear == nil && !b.frameCleared {
		clear = Black()
	}
	if clear != nil {
		attachment.LoadOp = wgpu.LoadOpClear
		attachment.ClearValue = wgpu.Color{R: clear.R, G: clear.G, B: clear.B, A: 1.0}
		b.frameCleared = true
	}
	return attachment
}

func (b *wgpuRendererBackendImpl) DrawSkybox() {
	b.mu.Lock()
	defer b.mu.Unlock()

	pass := b.frameEncoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{b.colorAttachment(Black())},
	})
	pass.SetPipeline(b.skyboxPipeline)
	pass.Draw(3, 1, 0, 0)
	pass.End()
}

func (b *wgpuRendererBackendImpl) DrawWorld(ranges []WorldRange) {
	b.mu.Lock()
	defer b.mu.Unlock()

	pass := b.frameEncoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{b.colorAttachment(nil)},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})
	pass.SetPipeline(b.worldPipeline)
	pass.SetBindGroup(0, b.layers[LayerWorld].bindGroup, nil)
	for _, r := range ranges {
		mesh, ok := b.meshes[r.Model]
		if !ok {
			continue
		}
		pass.SetVertexBuffer(0, mesh.vertexBuffer, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(mesh.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(mesh.indexCount, r.End-r.Start, 0, 0, r.Start)
	}
	pass.End()
}

func (b *wgpuRendererBackendImpl) DrawUi(clear *Color, ranges []UiRange) {
	b.mu.Lock()
	defer b.mu.Unlock()

	pass := b.frameEncoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{b.colorAttachment(clear)},
	})
	mesh := b.meshes[model.ModelRectangle]
	pass.SetPipeline(b.uiPipeline)
	pass.SetBindGroup(0, b.layers[LayerUi].bindGroup, nil)
	pass.SetVertexBuffer(0, mesh.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(mesh.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	for _, r := range ranges {
		pass.DrawIndexed(mesh.indexCount, r.End-r.Start, 0, 0, r.Start)
	}
	pass.End()
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameEncoder == nil {
		return
	}

	// A frame with no passes still has to clear the acquired texture before it is presented.
	if !b.frameCleared {
		pass := b.frameEncoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
			ColorAttachments: []wgpu.RenderPassColorAttachment{b.colorAttachment(Black())},
		})
		pass.End()
	}

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	// If no frame surface is held, nothing to present.
	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}
