package native

import (
	"context"
	"unsafe"
)

//go:generate mockgen -source interfaces.go -destination ./mocks/mocks.go -package mock_native

// Resource is a GPU memory object: a buffer or a texture
type Resource interface {
	// GPUVirtualAddress returns the base address of a buffer resource. Textures return 0.
	GPUVirtualAddress() GPUVirtualAddress
	// Map makes the resource's memory visible to the CPU. Only upload memory can be mapped.
	Map() (unsafe.Pointer, error)
	Unmap()
	SetName(name string)
	Release()
}

// CommandAllocator backs the memory of the commands recorded into a CommandList. It must not be
// reset while the GPU may still be executing commands recorded into it.
type CommandAllocator interface {
	Reset() error
	Release()
}

// RootSignature is an opaque compiled root signature. It is compared by identity only.
type RootSignature interface {
	Release()
}

// PipelineState is an opaque compiled pipeline state object. It is compared by identity only.
type PipelineState interface {
	Release()
}

// DescriptorHeap is a contiguous array of descriptors of a single type
type DescriptorHeap interface {
	Type() DescriptorHeapType
	NumDescriptors() int
	CPUStart() CPUDescriptorHandle
	// GPUStart returns the first shader-visible handle of the heap. Heaps that are not shader visible
	// return 0.
	GPUStart() GPUDescriptorHandle
	Release()
}

// CommandList is a sequential recorder of GPU commands
type CommandList interface {
	Type() CommandListType
	SetName(name string)
	// Reset reopens a closed command list for recording into the provided allocator
	Reset(allocator CommandAllocator, initialState PipelineState) error
	// Close ends recording. A closed command list may be submitted to a CommandQueue.
	Close() error
	Release()

	ResourceBarrier(barriers []ResourceBarrier)
	CopyResource(dest, source Resource)
	CopyBufferRegion(dest Resource, destOffset int, source Resource, sourceOffset int, numBytes int)

	SetDescriptorHeaps(heaps []DescriptorHeap)
	SetPipelineState(pso PipelineState)

	SetGraphicsRootSignature(signature RootSignature)
	SetGraphicsRootDescriptorTable(rootIndex int, baseDescriptor GPUDescriptorHandle)
	SetGraphicsRootConstantBufferView(rootIndex int, address GPUVirtualAddress)
	SetGraphicsRoot32BitConstants(rootIndex int, data []uint32, destOffset int)

	SetComputeRootSignature(signature RootSignature)
	SetComputeRootDescriptorTable(rootIndex int, baseDescriptor GPUDescriptorHandle)
	SetComputeRootConstantBufferView(rootIndex int, address GPUVirtualAddress)
	SetComputeRoot32BitConstants(rootIndex int, data []uint32, destOffset int)

	ClearRenderTargetView(rtv CPUDescriptorHandle, color [4]float32, rects []Rect)
	ClearDepthStencilView(dsv CPUDescriptorHandle, flags ClearFlags, depth float32, stencil uint8, rects []Rect)
	// OMSetRenderTargets binds render targets. A nil dsv binds no depth-stencil view.
	OMSetRenderTargets(rtvs []CPUDescriptorHandle, dsv *CPUDescriptorHandle)
	RSSetViewports(viewports []Viewport)
	RSSetScissorRects(rects []Rect)
	// IASetIndexBuffer binds an index buffer. A nil view unbinds the current index buffer.
	IASetIndexBuffer(view *IndexBufferView)
	IASetVertexBuffers(startSlot int, views []VertexBufferView)
	IASetPrimitiveTopology(topology PrimitiveTopology)

	DrawInstanced(vertexCountPerInstance, instanceCount, startVertexLocation, startInstanceLocation int)
	DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation int)
	Dispatch(threadGroupCountX, threadGroupCountY, threadGroupCountZ int)
}

// Fence is a monotonically increasing counter signaled from a CommandQueue
type Fence interface {
	CompletedValue() uint64
	// Wait blocks until the fence has reached value or ctx is done
	Wait(ctx context.Context, value uint64) error
	Release()
}

// CommandQueue executes closed command lists of a single CommandListType in submission order
type CommandQueue interface {
	Type() CommandListType
	ExecuteCommandLists(lists []CommandList)
	// Signal sets fence to value once all previously submitted work has completed
	Signal(fence Fence, value uint64) error
	Release()
}

// Device creates native objects
type Device interface {
	CreateCommandQueue(listType CommandListType) (CommandQueue, error)
	CreateFence(initialValue uint64) (Fence, error)
	CreateCommandAllocator(listType CommandListType) (CommandAllocator, error)
	// CreateCommandList creates a command list in the recording state
	CreateCommandList(listType CommandListType, allocator CommandAllocator, initialState PipelineState) (CommandList, error)
	CreateDescriptorHeap(heapType DescriptorHeapType, numDescriptors int, shaderVisible bool) (DescriptorHeap, error)
	CreateCommittedBuffer(kind MemoryKind, size int, initialState ResourceStates, allowUnorderedAccess bool) (Resource, error)

	DescriptorHandleIncrementSize(heapType DescriptorHeapType) int
	// CopyDescriptors copies len(sources) descriptors, each from its own source location, into a
	// contiguous range starting at destStart
	CopyDescriptors(destStart CPUDescriptorHandle, sources []CPUDescriptorHandle, heapType DescriptorHeapType)
}
