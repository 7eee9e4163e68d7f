package native

// CPUDescriptorHandle addresses a descriptor in CPU-visible descriptor memory
type CPUDescriptorHandle uint64

// NullCPUDescriptorHandle is the zero handle, which never addresses a descriptor
const NullCPUDescriptorHandle CPUDescriptorHandle = 0

// Offset returns the handle count descriptors past this one, where increment is the
// device's descriptor handle increment size for the heap type
func (h CPUDescriptorHandle) Offset(count, increment int) CPUDescriptorHandle {
	return h + CPUDescriptorHandle(count*increment)
}

// IsNull returns true if the handle is the zero handle
func (h CPUDescriptorHandle) IsNull() bool {
	return h == NullCPUDescriptorHandle
}

// GPUDescriptorHandle addresses a descriptor in a shader-visible descriptor heap
type GPUDescriptorHandle uint64

// Offset returns the handle count descriptors past this one, where increment is the
// device's descriptor handle increment size for the heap type
func (h GPUDescriptorHandle) Offset(count, increment int) GPUDescriptorHandle {
	return h + GPUDescriptorHandle(count*increment)
}

// GPUVirtualAddress is an address in the GPU's virtual address space
type GPUVirtualAddress uint64

func (a GPUVirtualAddress) Offset(bytes int) GPUVirtualAddress {
	return a + GPUVirtualAddress(bytes)
}
