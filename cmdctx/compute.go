package cmdctx

import (
	"github.com/vkngwrapper/cmdkit/memutils"
	"github.com/vkngwrapper/cmdkit/native"
	"github.com/vkngwrapper/cmdkit/pipeline"
)

// ComputeContext records dispatches. It is a view of a direct or compute CommandContext obtained
// through AsCompute or Manager.BeginCompute.
type ComputeContext struct {
	*CommandContext
}

// SetRootSignature binds signature for dispatches and rebuilds the dynamic descriptor layout from
// it. Binding a signature whose native root signature is already bound does nothing.
func (c *ComputeContext) SetRootSignature(signature *pipeline.RootSignature) {
	if signature == nil {
		panic("attempted to bind a nil compute root signature")
	}
	if sameRootSignature(c.computeRootSignature, signature) {
		return
	}

	c.computeRootSignature = signature
	c.list.SetComputeRootSignature(signature.Native())

	c.viewHeap.ParseComputeRootSignature(signature)
	c.samplerHeap.ParseComputeRootSignature(signature)
}

// SetPipelineState binds pso. Rebinding the pipeline state that is already bound does nothing.
func (c *ComputeContext) SetPipelineState(pso *pipeline.ComputePSO) {
	nativePSO := pso.Native()
	if nativePSO == c.pipelineState {
		return
	}

	c.pipelineState = nativePSO
	c.list.SetPipelineState(nativePSO)
}

func (c *ComputeContext) SetConstantBuffer(rootIndex int, address native.GPUVirtualAddress) {
	c.list.SetComputeRootConstantBufferView(rootIndex, address)
}

func (c *ComputeContext) SetDescriptorTable(rootIndex int, baseDescriptor native.GPUDescriptorHandle) {
	c.list.SetComputeRootDescriptorTable(rootIndex, baseDescriptor)
}

func (c *ComputeContext) SetDynamicDescriptor(rootIndex, offset int, handle native.CPUDescriptorHandle) {
	c.SetDynamicDescriptors(rootIndex, offset, []native.CPUDescriptorHandle{handle})
}

// SetDynamicDescriptors stages CBVs, SRVs or UAVs into the descriptor table at rootIndex. They are
// uploaded by the next dispatch.
func (c *ComputeContext) SetDynamicDescriptors(rootIndex, offset int, handles []native.CPUDescriptorHandle) {
	c.viewHeap.SetComputeDescriptorHandles(rootIndex, offset, handles)
}

func (c *ComputeContext) SetDynamicSampler(rootIndex, offset int, handle native.CPUDescriptorHandle) {
	c.SetDynamicSamplers(rootIndex, offset, []native.CPUDescriptorHandle{handle})
}

func (c *ComputeContext) SetDynamicSamplers(rootIndex, offset int, handles []native.CPUDescriptorHandle) {
	c.samplerHeap.SetComputeDescriptorHandles(rootIndex, offset, handles)
}

// SetDynamicConstantBufferView copies data into upload memory and binds it to a root CBV parameter
func (c *ComputeContext) SetDynamicConstantBufferView(rootIndex int, data []byte) error {
	alloc, err := c.ReserveUploadMemory(len(data))
	if err != nil {
		return err
	}
	copy(alloc.Bytes(), data)

	c.list.SetComputeRootConstantBufferView(rootIndex, alloc.GPUAddress)
	return nil
}

func (c *ComputeContext) SetRoot32BitConstant(rootIndex int, value uint32, destOffset int) {
	c.list.SetComputeRoot32BitConstants(rootIndex, []uint32{value}, destOffset)
}

func (c *ComputeContext) SetRoot32BitConstants(rootIndex int, values []uint32, destOffset int) {
	c.list.SetComputeRoot32BitConstants(rootIndex, values, destOffset)
}

// Dispatch records pending barriers, uploads stale descriptor tables, and records the dispatch. It
// returns descriptor.ErrDescriptorHeapExhausted if the tables do not fit in the context's heap.
func (c *ComputeContext) Dispatch(groupCountX, groupCountY, groupCountZ int) error {
	c.FlushResourceBarriers()

	err := c.viewHeap.CommitComputeRootDescriptorTables(c.list)
	if err != nil {
		return err
	}
	err = c.samplerHeap.CommitComputeRootDescriptorTables(c.list)
	if err != nil {
		return err
	}

	c.list.Dispatch(groupCountX, groupCountY, groupCountZ)
	return nil
}

// Dispatch1D dispatches enough groups of groupSizeX threads to cover threadCountX threads
func (c *ComputeContext) Dispatch1D(threadCountX, groupSizeX int) error {
	return c.Dispatch(memutils.DivideRoundUp(threadCountX, groupSizeX), 1, 1)
}

func (c *ComputeContext) Dispatch2D(threadCountX, threadCountY, groupSizeX, groupSizeY int) error {
	return c.Dispatch(
		memutils.DivideRoundUp(threadCountX, groupSizeX),
		memutils.DivideRoundUp(threadCountY, groupSizeY),
		1)
}

func (c *ComputeContext) Dispatch3D(threadCountX, threadCountY, threadCountZ, groupSizeX, groupSizeY, groupSizeZ int) error {
	return c.Dispatch(
		memutils.DivideRoundUp(threadCountX, groupSizeX),
		memutils.DivideRoundUp(threadCountY, groupSizeY),
		memutils.DivideRoundUp(threadCountZ, groupSizeZ))
}
