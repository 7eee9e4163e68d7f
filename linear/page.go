package linear

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/cmdkit/native"
)

// AllocatorKind selects which memory the pages of a PageManager live in
type AllocatorKind uint32

const (
	// KindGPUExclusive pages live in device-local memory and are kept in the unordered-access
	// state. The CPU cannot write to them.
	KindGPUExclusive AllocatorKind = iota
	// KindCPUWritable pages live in upload memory and stay mapped for their whole lifetime
	KindCPUWritable
)

var allocatorKindMapping = map[AllocatorKind]string{
	KindGPUExclusive: "GPUExclusive",
	KindCPUWritable:  "CPUWritable",
}

func (k AllocatorKind) String() string {
	return allocatorKindMapping[k]
}

const (
	// GPUAllocatorPageSize is the default page size of KindGPUExclusive page managers
	GPUAllocatorPageSize int = 64 * 1024
	// CPUAllocatorPageSize is the default page size of KindCPUWritable page managers
	CPUAllocatorPageSize int = 2 * 1024 * 1024
	// DefaultAlignment satisfies constant buffer placement on every supported device
	DefaultAlignment uint = 256
)

// Page is a single committed buffer that allocators carve DynAllocs out of
type Page struct {
	resource   native.Resource
	kind       AllocatorKind
	size       int
	cpuAddress unsafe.Pointer
	gpuAddress native.GPUVirtualAddress
}

func createPage(device native.Device, kind AllocatorKind, size int) (*Page, error) {
	memoryKind := native.MemoryKindDefault
	state := native.ResourceStateUnorderedAccess
	if kind == KindCPUWritable {
		memoryKind = native.MemoryKindUpload
		state = native.ResourceStateGenericRead
	}

	res, err := device.CreateCommittedBuffer(memoryKind, size, state, kind == KindGPUExclusive)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %d byte %s page", size, kind)
	}
	res.SetName("LinearAllocator Page")

	page := &Page{
		resource:   res,
		kind:       kind,
		size:       size,
		gpuAddress: res.GPUVirtualAddress(),
	}

	if kind == KindCPUWritable {
		page.cpuAddress, err = res.Map()
		if err != nil {
			res.Release()
			return nil, errors.Wrap(err, "failed to map upload page")
		}
	}

	return page, nil
}

func (p *Page) Resource() native.Resource { return p.resource }

func (p *Page) Size() int { return p.size }

func (p *Page) destroy() {
	if p.cpuAddress != nil {
		p.resource.Unmap()
		p.cpuAddress = nil
	}
	p.resource.Release()
}

// DynAlloc is a transient region of a page. It is valid until the command context that reserved it
// is finished and the GPU has passed the resulting fence.
type DynAlloc struct {
	// Resource is the buffer the region lives in
	Resource native.Resource
	// Offset is the offset in bytes of the region within Resource
	Offset int
	// Size is the aligned size in bytes of the region
	Size int
	// Data is the CPU address of the region. It is nil for KindGPUExclusive allocations.
	Data unsafe.Pointer
	// GPUAddress is the GPU virtual address of the region
	GPUAddress native.GPUVirtualAddress
}

// Bytes returns the CPU-writable contents of the region, or nil for KindGPUExclusive allocations
func (a DynAlloc) Bytes() []byte {
	if a.Data == nil {
		return nil
	}
	return unsafe.Slice((*byte)(a.Data), a.Size)
}
