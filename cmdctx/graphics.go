package cmdctx

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/cmdkit/native"
	"github.com/vkngwrapper/cmdkit/pipeline"
	"github.com/vkngwrapper/cmdkit/resource"
)

// GraphicsContext records draw work. It is a view of a direct or bundle CommandContext obtained
// through AsGraphics or Manager.BeginGraphics.
type GraphicsContext struct {
	*CommandContext
}

// SetRootSignature binds signature for draws and rebuilds the dynamic descriptor layout from it.
// Binding a signature whose native root signature is already bound does nothing.
func (g *GraphicsContext) SetRootSignature(signature *pipeline.RootSignature) {
	if signature == nil {
		panic("attempted to bind a nil graphics root signature")
	}
	if sameRootSignature(g.graphicsRootSignature, signature) {
		return
	}

	g.graphicsRootSignature = signature
	g.list.SetGraphicsRootSignature(signature.Native())

	g.viewHeap.ParseGraphicsRootSignature(signature)
	g.samplerHeap.ParseGraphicsRootSignature(signature)
}

// SetPipelineState binds pso. Rebinding the pipeline state that is already bound does nothing.
func (g *GraphicsContext) SetPipelineState(pso *pipeline.GraphicsPSO) {
	nativePSO := pso.Native()
	if nativePSO == g.pipelineState {
		return
	}

	g.pipelineState = nativePSO
	g.list.SetPipelineState(nativePSO)
}

func (g *GraphicsContext) SetViewport(viewport native.Viewport) {
	g.list.RSSetViewports([]native.Viewport{viewport})
}

func (g *GraphicsContext) SetViewports(viewports []native.Viewport) {
	g.list.RSSetViewports(viewports)
}

func (g *GraphicsContext) SetScissor(rect native.Rect) {
	g.list.RSSetScissorRects([]native.Rect{rect})
}

func (g *GraphicsContext) SetScissors(rects []native.Rect) {
	g.list.RSSetScissorRects(rects)
}

// SetViewportAndScissor binds a full-depth viewport and a scissor rect covering the same area
func (g *GraphicsContext) SetViewportAndScissor(x, y, width, height int) {
	g.SetViewport(native.Viewport{
		TopLeftX: float32(x),
		TopLeftY: float32(y),
		Width:    float32(width),
		Height:   float32(height),
		MinDepth: 0,
		MaxDepth: 1,
	})
	g.SetScissor(native.Rect{
		Left:   int32(x),
		Top:    int32(y),
		Right:  int32(x + width),
		Bottom: int32(y + height),
	})
}

// SetConstantBuffer binds the constant buffer at address to a root CBV parameter
func (g *GraphicsContext) SetConstantBuffer(rootIndex int, address native.GPUVirtualAddress) {
	g.list.SetGraphicsRootConstantBufferView(rootIndex, address)
}

// SetDescriptorTable binds a table that already lives in a bound shader-visible heap
func (g *GraphicsContext) SetDescriptorTable(rootIndex int, baseDescriptor native.GPUDescriptorHandle) {
	g.list.SetGraphicsRootDescriptorTable(rootIndex, baseDescriptor)
}

// SetDynamicDescriptor stages a single CBV, SRV or UAV into the descriptor table at rootIndex. It is
// uploaded by the next draw.
func (g *GraphicsContext) SetDynamicDescriptor(rootIndex, offset int, handle native.CPUDescriptorHandle) {
	g.SetDynamicDescriptors(rootIndex, offset, []native.CPUDescriptorHandle{handle})
}

// SetDynamicDescriptors stages CBVs, SRVs or UAVs into the descriptor table at rootIndex. They are
// uploaded by the next draw.
func (g *GraphicsContext) SetDynamicDescriptors(rootIndex, offset int, handles []native.CPUDescriptorHandle) {
	g.viewHeap.SetGraphicsDescriptorHandles(rootIndex, offset, handles)
}

func (g *GraphicsContext) SetDynamicSampler(rootIndex, offset int, handle native.CPUDescriptorHandle) {
	g.SetDynamicSamplers(rootIndex, offset, []native.CPUDescriptorHandle{handle})
}

// SetDynamicSamplers stages samplers into the sampler table at rootIndex. They are uploaded by the
// next draw.
func (g *GraphicsContext) SetDynamicSamplers(rootIndex, offset int, handles []native.CPUDescriptorHandle) {
	g.samplerHeap.SetGraphicsDescriptorHandles(rootIndex, offset, handles)
}

// SetDynamicConstantBufferView copies data into upload memory and binds it to a root CBV parameter
func (g *GraphicsContext) SetDynamicConstantBufferView(rootIndex int, data []byte) error {
	alloc, err := g.ReserveUploadMemory(len(data))
	if err != nil {
		return err
	}
	copy(alloc.Bytes(), data)

	g.list.SetGraphicsRootConstantBufferView(rootIndex, alloc.GPUAddress)
	return nil
}

// SetDynamicVertexBuffer copies numVertices vertices of vertexStride bytes into upload memory and
// binds them to slot
func (g *GraphicsContext) SetDynamicVertexBuffer(slot, numVertices, vertexStride int, data []byte) error {
	size := numVertices * vertexStride
	if len(data) < size {
		return errors.Newf("%d vertices of %d bytes need %d bytes of data, got %d", numVertices, vertexStride, size, len(data))
	}

	alloc, err := g.cpuAllocator.Allocate(size, 16)
	if err != nil {
		return err
	}
	copy(alloc.Bytes(), data[:size])

	g.list.IASetVertexBuffers(slot, []native.VertexBufferView{{
		BufferLocation: alloc.GPUAddress,
		SizeInBytes:    uint32(size),
		StrideInBytes:  uint32(vertexStride),
	}})
	return nil
}

// SetDynamicIndexBuffer copies 16-bit indices into upload memory and binds them
func (g *GraphicsContext) SetDynamicIndexBuffer(indices []uint16) error {
	size := len(indices) * 2
	alloc, err := g.cpuAllocator.Allocate(size, 16)
	if err != nil {
		return err
	}

	data := alloc.Bytes()
	for i, index := range indices {
		binary.LittleEndian.PutUint16(data[i*2:], index)
	}

	g.list.IASetIndexBuffer(&native.IndexBufferView{
		BufferLocation: alloc.GPUAddress,
		SizeInBytes:    uint32(size),
		Format:         native.IndexFormatUint16,
	})
	return nil
}

func (g *GraphicsContext) SetRoot32BitConstant(rootIndex int, value uint32, destOffset int) {
	g.list.SetGraphicsRoot32BitConstants(rootIndex, []uint32{value}, destOffset)
}

func (g *GraphicsContext) SetRoot32BitConstants(rootIndex int, values []uint32, destOffset int) {
	g.list.SetGraphicsRoot32BitConstants(rootIndex, values, destOffset)
}

// ClearColor clears target to its clear color. Pending barriers are flushed first.
func (g *GraphicsContext) ClearColor(target *resource.ColorBuffer, rects ...native.Rect) {
	g.FlushResourceBarriers()
	g.list.ClearRenderTargetView(target.RTV, target.ClearColor, rects)
}

// ClearColorValue clears target to color
func (g *GraphicsContext) ClearColorValue(target *resource.ColorBuffer, color [4]float32, rects ...native.Rect) {
	g.FlushResourceBarriers()
	g.list.ClearRenderTargetView(target.RTV, color, rects)
}

func (g *GraphicsContext) clearDepthStencil(target *resource.DepthBuffer, flags native.ClearFlags) {
	g.FlushResourceBarriers()
	g.list.ClearDepthStencilView(target.DSV, flags, target.ClearDepth, target.ClearStencil, nil)
}

func (g *GraphicsContext) ClearDepth(target *resource.DepthBuffer) {
	g.clearDepthStencil(target, native.ClearFlagDepth)
}

func (g *GraphicsContext) ClearStencil(target *resource.DepthBuffer) {
	g.clearDepthStencil(target, native.ClearFlagStencil)
}

func (g *GraphicsContext) ClearDepthAndStencil(target *resource.DepthBuffer) {
	g.clearDepthStencil(target, native.ClearFlagDepth|native.ClearFlagStencil)
}

// SetRenderTargets binds rtvs and dsv. A null dsv binds no depth-stencil view.
func (g *GraphicsContext) SetRenderTargets(rtvs []native.CPUDescriptorHandle, dsv native.CPUDescriptorHandle) {
	if dsv.IsNull() {
		g.list.OMSetRenderTargets(rtvs, nil)
		return
	}
	g.list.OMSetRenderTargets(rtvs, &dsv)
}

func (g *GraphicsContext) SetRenderTarget(rtv, dsv native.CPUDescriptorHandle) {
	g.SetRenderTargets([]native.CPUDescriptorHandle{rtv}, dsv)
}

// SetDepthStencilTarget binds dsv with no render targets
func (g *GraphicsContext) SetDepthStencilTarget(dsv native.CPUDescriptorHandle) {
	g.SetRenderTargets(nil, dsv)
}

func (g *GraphicsContext) SetIndexBuffer(view native.IndexBufferView) {
	g.list.IASetIndexBuffer(&view)
}

func (g *GraphicsContext) SetNullIndexBuffer() {
	g.list.IASetIndexBuffer(nil)
}

func (g *GraphicsContext) SetVertexBuffer(slot int, view native.VertexBufferView) {
	g.list.IASetVertexBuffers(slot, []native.VertexBufferView{view})
}

func (g *GraphicsContext) SetVertexBuffers(startSlot int, views []native.VertexBufferView) {
	g.list.IASetVertexBuffers(startSlot, views)
}

func (g *GraphicsContext) SetPrimitiveTopology(topology native.PrimitiveTopology) {
	g.list.IASetPrimitiveTopology(topology)
}

// commitDraw records pending barriers and then the stale view and sampler tables
func (g *GraphicsContext) commitDraw() error {
	g.FlushResourceBarriers()

	err := g.viewHeap.CommitGraphicsRootDescriptorTables(g.list)
	if err != nil {
		return err
	}
	return g.samplerHeap.CommitGraphicsRootDescriptorTables(g.list)
}

func (g *GraphicsContext) Draw(vertexCount, vertexStartOffset int) error {
	return g.DrawInstanced(vertexCount, 1, vertexStartOffset, 0)
}

func (g *GraphicsContext) DrawIndexed(indexCount, startIndexLocation, baseVertexLocation int) error {
	return g.DrawIndexedInstanced(indexCount, 1, startIndexLocation, baseVertexLocation, 0)
}

// DrawInstanced records pending barriers, uploads stale descriptor tables, and records the draw.
// It returns descriptor.ErrDescriptorHeapExhausted if the tables do not fit in the context's heap.
func (g *GraphicsContext) DrawInstanced(vertexCountPerInstance, instanceCount, startVertexLocation, startInstanceLocation int) error {
	err := g.commitDraw()
	if err != nil {
		return err
	}

	g.list.DrawInstanced(vertexCountPerInstance, instanceCount, startVertexLocation, startInstanceLocation)
	return nil
}

// DrawIndexedInstanced records pending barriers, uploads stale descriptor tables, and records the
// draw. It returns descriptor.ErrDescriptorHeapExhausted if the tables do not fit in the context's
// heap.
func (g *GraphicsContext) DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation int) error {
	err := g.commitDraw()
	if err != nil {
		return err
	}

	g.list.DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation)
	return nil
}
