package linear

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/cmdkit/memutils"
)

// Allocator is a bump allocator over pages from a PageManager. It is owned by a single command
// context and is not safe for concurrent use.
type Allocator struct {
	manager  *PageManager
	pageSize int

	currentPage   *Page
	currentOffset int
	retiredPages  []*Page
	largePages    []*Page

	stats memutils.DetailedStatistics
}

func NewAllocator(manager *PageManager) *Allocator {
	a := &Allocator{
		manager:  manager,
		pageSize: manager.PageSize(),
	}
	a.stats.Clear()
	return a
}

func (a *Allocator) Kind() AllocatorKind { return a.manager.Kind() }

// Offset returns the number of bytes used in the current page
func (a *Allocator) Offset() int { return a.currentOffset }

// Allocate reserves size bytes aligned to alignment, which must be a power of two. Allocations larger
// than the page size receive a dedicated page.
func (a *Allocator) Allocate(size int, alignment uint) (DynAlloc, error) {
	err := memutils.CheckPow2(alignment, "alignment")
	if err != nil {
		return DynAlloc{}, err
	}

	alignedSize := memutils.AlignUp(size, alignment)
	if alignedSize > a.pageSize {
		return a.allocateLarge(alignedSize)
	}

	a.currentOffset = memutils.AlignUp(a.currentOffset, alignment)

	if a.currentPage != nil && a.currentOffset+alignedSize > a.pageSize {
		a.retiredPages = append(a.retiredPages, a.currentPage)
		a.currentPage = nil
	}

	if a.currentPage == nil {
		a.currentPage, err = a.manager.RequestPage()
		if err != nil {
			return DynAlloc{}, err
		}
		a.currentOffset = 0
	}

	alloc := a.carve(a.currentPage, a.currentOffset, alignedSize)
	a.currentOffset += alignedSize
	a.stats.AddAllocation(alignedSize)
	memutils.DebugValidate(a)

	return alloc, nil
}

func (a *Allocator) allocateLarge(size int) (DynAlloc, error) {
	page, err := a.manager.CreateLargePage(size)
	if err != nil {
		return DynAlloc{}, err
	}
	a.largePages = append(a.largePages, page)
	a.stats.AddAllocation(size)

	return a.carve(page, 0, size), nil
}

func (a *Allocator) carve(page *Page, offset, size int) DynAlloc {
	alloc := DynAlloc{
		Resource:   page.resource,
		Offset:     offset,
		Size:       size,
		GPUAddress: page.gpuAddress.Offset(offset),
	}
	if page.cpuAddress != nil {
		alloc.Data = unsafe.Add(page.cpuAddress, offset)
	}
	return alloc
}

// CleanupUsedPages hands every page used since the last cleanup back to the PageManager, to be
// reused once the GPU passes fenceValue, and rewinds the allocator to offset 0
func (a *Allocator) CleanupUsedPages(fenceValue uint64) {
	if a.currentPage != nil {
		a.retiredPages = append(a.retiredPages, a.currentPage)
		a.currentPage = nil
	}
	a.currentOffset = 0

	if len(a.retiredPages) > 0 {
		a.manager.DiscardPages(fenceValue, a.retiredPages)
		a.retiredPages = nil
	}

	a.manager.FreeLargePages(fenceValue, a.largePages)
	a.largePages = nil

	a.stats.Clear()
}

// AddDetailedStatistics sums the allocations made since the last cleanup into stats
func (a *Allocator) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	stats.AddDetailedStatistics(&a.stats)
}

// Validate checks that the allocator's bookkeeping is consistent
func (a *Allocator) Validate() error {
	if a.currentOffset < 0 || a.currentOffset > a.pageSize {
		return errors.Newf("offset %d is outside of the %d byte page", a.currentOffset, a.pageSize)
	}
	if a.currentPage == nil && a.currentOffset != 0 {
		return errors.Newf("offset %d is set without a current page", a.currentOffset)
	}
	for _, page := range a.largePages {
		if page.size <= a.pageSize {
			return errors.Newf("large page of %d bytes fits in a %d byte page", page.size, a.pageSize)
		}
	}
	return nil
}
