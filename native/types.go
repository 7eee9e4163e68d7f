package native

import "fmt"

// CommandListType identifies the kind of queue a command list is recorded for
type CommandListType uint32

const (
	CommandListTypeDirect CommandListType = iota
	CommandListTypeBundle
	CommandListTypeCompute
	CommandListTypeCopy

	// CommandListTypeCount is the number of distinct command list types
	CommandListTypeCount = 4
)

var commandListTypeMapping = map[CommandListType]string{
	CommandListTypeDirect:  "Direct",
	CommandListTypeBundle:  "Bundle",
	CommandListTypeCompute: "Compute",
	CommandListTypeCopy:    "Copy",
}

func (t CommandListType) String() string {
	str, ok := commandListTypeMapping[t]
	if !ok {
		return fmt.Sprintf("CommandListType(%d)", uint32(t))
	}
	return str
}

// DescriptorHeapType identifies the kind of descriptors a heap holds
type DescriptorHeapType uint32

const (
	DescriptorHeapTypeCBVSRVUAV DescriptorHeapType = iota
	DescriptorHeapTypeSampler
	DescriptorHeapTypeRTV
	DescriptorHeapTypeDSV

	// DescriptorHeapTypeCount is the number of distinct descriptor heap types
	DescriptorHeapTypeCount = 4
)

var descriptorHeapTypeMapping = map[DescriptorHeapType]string{
	DescriptorHeapTypeCBVSRVUAV: "CBVSRVUAV",
	DescriptorHeapTypeSampler:   "Sampler",
	DescriptorHeapTypeRTV:       "RTV",
	DescriptorHeapTypeDSV:       "DSV",
}

func (t DescriptorHeapType) String() string {
	str, ok := descriptorHeapTypeMapping[t]
	if !ok {
		return fmt.Sprintf("DescriptorHeapType(%d)", uint32(t))
	}
	return str
}

// ShaderVisible returns true for heap types that can be bound to a command list
func (t DescriptorHeapType) ShaderVisible() bool {
	return t == DescriptorHeapTypeCBVSRVUAV || t == DescriptorHeapTypeSampler
}

// MemoryKind selects the memory pool a committed buffer is created in
type MemoryKind uint32

const (
	// MemoryKindDefault is device-local memory that the CPU cannot map
	MemoryKindDefault MemoryKind = iota
	// MemoryKindUpload is CPU-writable memory that the GPU reads across the bus
	MemoryKindUpload
)

var memoryKindMapping = map[MemoryKind]string{
	MemoryKindDefault: "Default",
	MemoryKindUpload:  "Upload",
}

func (k MemoryKind) String() string {
	return memoryKindMapping[k]
}

type PrimitiveTopology uint32

const (
	PrimitiveTopologyUndefined PrimitiveTopology = iota
	PrimitiveTopologyPointList
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
)

type IndexFormat uint32

const (
	IndexFormatUint16 IndexFormat = iota
	IndexFormatUint32
)

// Size returns the number of bytes in a single index of this format
func (f IndexFormat) Size() int {
	if f == IndexFormatUint32 {
		return 4
	}
	return 2
}

type Viewport struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type VertexBufferView struct {
	BufferLocation GPUVirtualAddress
	SizeInBytes    uint32
	StrideInBytes  uint32
}

type IndexBufferView struct {
	BufferLocation GPUVirtualAddress
	SizeInBytes    uint32
	Format         IndexFormat
}
