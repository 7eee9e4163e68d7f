package descriptor

import (
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/cmdkit/native"
	"github.com/vkngwrapper/cmdkit/pipeline"
	"golang.org/x/exp/slog"
)

// HeapBinder is the command context that owns a DynamicHeap. The DynamicHeap asks it to bind the
// current GPU-visible heap before any table in that heap is bound to a root parameter.
type HeapBinder interface {
	SetDescriptorHeap(heapType native.DescriptorHeapType, heap native.DescriptorHeap)
}

// DynamicHeap stages descriptor handles for the descriptor tables of the bound root signatures and
// copies the tables that changed into a GPU-visible heap segment when a draw or dispatch commits
// them. Each command context owns one DynamicHeap per shader-visible heap type. It is not safe for
// concurrent use.
type DynamicHeap struct {
	logger *slog.Logger
	device native.Device
	pool   *HeapPool
	owner  HeapBinder

	heapType      native.DescriptorHeapType
	incrementSize int

	currentHeap   native.DescriptorHeap
	currentOffset int

	graphicsCache handleCache
	computeCache  handleCache
}

func NewDynamicHeap(logger *slog.Logger, device native.Device, pool *HeapPool, owner HeapBinder) *DynamicHeap {
	return &DynamicHeap{
		logger:        logger,
		device:        device,
		pool:          pool,
		owner:         owner,
		heapType:      pool.Type(),
		incrementSize: pool.IncrementSize(),
		graphicsCache: handleCache{heapType: pool.Type()},
		computeCache:  handleCache{heapType: pool.Type()},
	}
}

func (h *DynamicHeap) Type() native.DescriptorHeapType { return h.heapType }

// CurrentHeap returns the GPU-visible heap descriptors are currently committed to, or nil if no
// descriptors have been committed since the last cleanup
func (h *DynamicHeap) CurrentHeap() native.DescriptorHeap { return h.currentHeap }

// UsedDescriptors returns the number of descriptors committed to the current heap
func (h *DynamicHeap) UsedDescriptors() int { return h.currentOffset }

// ParseGraphicsRootSignature rebuilds the graphics staging layout from signature. Every handle
// staged against the previous layout is dropped.
func (h *DynamicHeap) ParseGraphicsRootSignature(signature *pipeline.RootSignature) {
	h.graphicsCache.parse(signature)
}

// ParseComputeRootSignature rebuilds the compute staging layout from signature. Every handle
// staged against the previous layout is dropped.
func (h *DynamicHeap) ParseComputeRootSignature(signature *pipeline.RootSignature) {
	h.computeCache.parse(signature)
}

// SetGraphicsDescriptorHandles stages handles at offset within the graphics descriptor table at
// rootIndex. It panics if rootIndex is not a table of this heap's type or the handles overrun it.
func (h *DynamicHeap) SetGraphicsDescriptorHandles(rootIndex, offset int, handles []native.CPUDescriptorHandle) {
	h.graphicsCache.stage(rootIndex, offset, handles)
}

// SetComputeDescriptorHandles stages handles at offset within the compute descriptor table at
// rootIndex. It panics if rootIndex is not a table of this heap's type or the handles overrun it.
func (h *DynamicHeap) SetComputeDescriptorHandles(rootIndex, offset int, handles []native.CPUDescriptorHandle) {
	h.computeCache.stage(rootIndex, offset, handles)
}

// CommitGraphicsRootDescriptorTables copies every stale graphics table into the GPU-visible heap
// and binds it to its root parameter on list
func (h *DynamicHeap) CommitGraphicsRootDescriptorTables(list native.CommandList) error {
	return h.commit(&h.graphicsCache, list.SetGraphicsRootDescriptorTable)
}

// CommitComputeRootDescriptorTables copies every stale compute table into the GPU-visible heap
// and binds it to its root parameter on list
func (h *DynamicHeap) CommitComputeRootDescriptorTables(list native.CommandList) error {
	return h.commit(&h.computeCache, list.SetComputeRootDescriptorTable)
}

func (h *DynamicHeap) commit(cache *handleCache, bindTable func(rootIndex int, baseDescriptor native.GPUDescriptorHandle)) error {
	if cache.staleBitMap == 0 {
		return nil
	}

	err := h.reserve(cache.staleSize())
	if err != nil {
		return err
	}
	h.owner.SetDescriptorHeap(h.heapType, h.currentHeap)

	cpuStart := h.currentHeap.CPUStart()
	gpuStart := h.currentHeap.GPUStart()

	stale := cache.staleBitMap
	for stale != 0 {
		rootIndex := bits.TrailingZeros64(stale)
		stale &^= 1 << uint(rootIndex)

		tableStart := h.currentOffset
		h.currentOffset += cache.tables[rootIndex].size

		cache.runs(rootIndex, func(tableOffset int, handles []native.CPUDescriptorHandle) {
			h.device.CopyDescriptors(cpuStart.Offset(tableStart+tableOffset, h.incrementSize), handles, h.heapType)
		})
		bindTable(rootIndex, gpuStart.Offset(tableStart, h.incrementSize))
	}
	cache.staleBitMap = 0

	return nil
}

// reserve makes sure the current heap has room for count more descriptors
func (h *DynamicHeap) reserve(count int) error {
	if h.currentHeap == nil {
		heap, err := h.pool.RequestHeap()
		if err != nil {
			return err
		}
		h.currentHeap = heap
		h.currentOffset = 0
	}

	capacity := h.pool.DescriptorsPerHeap()
	if h.currentOffset+count > capacity {
		h.logger.Error("DynamicHeap::reserve heap exhausted",
			slog.String("HeapType", h.heapType.String()),
			slog.Int("Needed", count),
			slog.Int("Used", h.currentOffset),
			slog.Int("Capacity", capacity),
		)
		return errors.Wrapf(ErrDescriptorHeapExhausted, "%s heap needs %d descriptors but only %d of %d are free",
			h.heapType, count, capacity-h.currentOffset, capacity)
	}

	return nil
}

// UploadDirect copies a single descriptor into the GPU-visible heap and returns its GPU handle
func (h *DynamicHeap) UploadDirect(handle native.CPUDescriptorHandle) (native.GPUDescriptorHandle, error) {
	err := h.reserve(1)
	if err != nil {
		return 0, err
	}
	h.owner.SetDescriptorHeap(h.heapType, h.currentHeap)

	offset := h.currentOffset
	h.currentOffset++

	h.device.CopyDescriptors(h.currentHeap.CPUStart().Offset(offset, h.incrementSize), []native.CPUDescriptorHandle{handle}, h.heapType)
	return h.currentHeap.GPUStart().Offset(offset, h.incrementSize), nil
}

// MarkAllStale marks every table with staged handles for commit. Command lists forget their root
// arguments when they are reset, so the tables must be bound again.
func (h *DynamicHeap) MarkAllStale() {
	h.graphicsCache.markAllStale()
	h.computeCache.markAllStale()
}

// CleanupUsedHeaps hands the current heap back to the pool, to be reused once the GPU passes
// fenceValue, and drops every staged handle
func (h *DynamicHeap) CleanupUsedHeaps(fenceValue uint64) {
	if h.currentHeap != nil {
		h.pool.DiscardHeaps(fenceValue, []native.DescriptorHeap{h.currentHeap})
		h.currentHeap = nil
	}
	h.currentOffset = 0

	h.graphicsCache.clear()
	h.computeCache.clear()
}
