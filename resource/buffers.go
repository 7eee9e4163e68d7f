package resource

import (
	"github.com/vkngwrapper/cmdkit/native"
)

// ColorBuffer is a render target texture with its views
type ColorBuffer struct {
	GpuResource

	RTV native.CPUDescriptorHandle
	SRV native.CPUDescriptorHandle
	UAV native.CPUDescriptorHandle

	ClearColor [4]float32
}

func NewColorBuffer(nativeResource native.Resource, initialState native.ResourceStates, rtv, srv, uav native.CPUDescriptorHandle) *ColorBuffer {
	buffer := &ColorBuffer{RTV: rtv, SRV: srv, UAV: uav}
	buffer.Init(nativeResource, initialState)
	return buffer
}

// DepthBuffer is a depth-stencil texture with its views
type DepthBuffer struct {
	GpuResource

	DSV         native.CPUDescriptorHandle
	DSVReadOnly native.CPUDescriptorHandle
	DepthSRV    native.CPUDescriptorHandle
	StencilSRV  native.CPUDescriptorHandle

	ClearDepth   float32
	ClearStencil uint8
}

func NewDepthBuffer(nativeResource native.Resource, initialState native.ResourceStates, dsv native.CPUDescriptorHandle) *DepthBuffer {
	buffer := &DepthBuffer{DSV: dsv, ClearDepth: 1}
	buffer.Init(nativeResource, initialState)
	return buffer
}

// Buffer is a linear GPU buffer of ElementCount elements of ElementSize bytes
type Buffer struct {
	GpuResource

	SRV native.CPUDescriptorHandle
	UAV native.CPUDescriptorHandle

	ElementCount int
	ElementSize  int
}

func NewBuffer(nativeResource native.Resource, initialState native.ResourceStates, elementCount, elementSize int) *Buffer {
	buffer := &Buffer{ElementCount: elementCount, ElementSize: elementSize}
	buffer.Init(nativeResource, initialState)
	return buffer
}

// Size returns the size of the buffer in bytes
func (b *Buffer) Size() int {
	return b.ElementCount * b.ElementSize
}

// VertexBufferView describes elements [baseElement, ElementCount) as vertices of ElementSize bytes
func (b *Buffer) VertexBufferView(baseElement int) native.VertexBufferView {
	offset := baseElement * b.ElementSize
	return native.VertexBufferView{
		BufferLocation: b.GPUVirtualAddress().Offset(offset),
		SizeInBytes:    uint32(b.Size() - offset),
		StrideInBytes:  uint32(b.ElementSize),
	}
}

// IndexBufferView describes elements [baseElement, ElementCount) as indices. ElementSize
// selects 16 or 32 bit indices.
func (b *Buffer) IndexBufferView(baseElement int) native.IndexBufferView {
	offset := baseElement * b.ElementSize
	format := native.IndexFormatUint16
	if b.ElementSize == 4 {
		format = native.IndexFormatUint32
	}
	return native.IndexBufferView{
		BufferLocation: b.GPUVirtualAddress().Offset(offset),
		SizeInBytes:    uint32(b.Size() - offset),
		Format:         format,
	}
}
