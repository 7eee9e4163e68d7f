package descriptor

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/cmdkit/internal/utils"
	"github.com/vkngwrapper/cmdkit/memutils"
	"github.com/vkngwrapper/cmdkit/native"
	"golang.org/x/exp/slog"
)

// DefaultDescriptorsPerHeap is the size of each GPU-visible heap created by a HeapPool when no
// size is requested
const DefaultDescriptorsPerHeap int = 1024

// FenceTracker reports whether the GPU has passed a fence value
type FenceTracker interface {
	IsFenceComplete(fenceValue uint64) bool
}

type retiredHeap struct {
	fenceValue uint64
	heap       native.DescriptorHeap
}

// HeapPool owns the shader-visible descriptor heaps of a single heap type. DynamicHeaps take one
// heap at a time from the pool and hand it back with a fence value when their context finishes.
type HeapPool struct {
	logger             *slog.Logger
	device             native.Device
	fences             FenceTracker
	heapType           native.DescriptorHeapType
	descriptorsPerHeap int
	incrementSize      int

	mutex          utils.OptionalMutex
	heapPool       []native.DescriptorHeap
	availableHeaps utils.Queue[native.DescriptorHeap]
	retiredHeaps   utils.Queue[retiredHeap]
	requestCount   int
}

// NewHeapPool creates a HeapPool for heapType, which must be a shader-visible heap type. A
// descriptorsPerHeap of 0 selects DefaultDescriptorsPerHeap.
func NewHeapPool(logger *slog.Logger, device native.Device, fences FenceTracker, heapType native.DescriptorHeapType, descriptorsPerHeap int, useMutex bool) (*HeapPool, error) {
	if !heapType.ShaderVisible() {
		return nil, errors.Newf("descriptor heaps of type %s cannot be shader visible", heapType)
	}
	if descriptorsPerHeap < 0 {
		return nil, errors.Newf("invalid descriptor heap size %d", descriptorsPerHeap)
	}
	if descriptorsPerHeap == 0 {
		descriptorsPerHeap = DefaultDescriptorsPerHeap
	}

	return &HeapPool{
		logger:             logger,
		device:             device,
		fences:             fences,
		heapType:           heapType,
		descriptorsPerHeap: descriptorsPerHeap,
		incrementSize:      device.DescriptorHandleIncrementSize(heapType),
		mutex:              utils.OptionalMutex{UseMutex: useMutex},
	}, nil
}

func (p *HeapPool) Type() native.DescriptorHeapType { return p.heapType }

func (p *HeapPool) DescriptorsPerHeap() int { return p.descriptorsPerHeap }

func (p *HeapPool) IncrementSize() int { return p.incrementSize }

// RequestHeap returns a heap that no in-flight GPU work references, creating one if none is free
func (p *HeapPool) RequestHeap() (native.DescriptorHeap, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.requestCount++

	for {
		retired, ok := p.retiredHeaps.Front()
		if !ok || !p.fences.IsFenceComplete(retired.fenceValue) {
			break
		}
		_, _ = p.retiredHeaps.Pop()
		p.availableHeaps.Push(retired.heap)
	}

	heap, ok := p.availableHeaps.Pop()
	if ok {
		return heap, nil
	}

	p.logger.Debug("HeapPool::RequestHeap creating heap",
		slog.String("HeapType", p.heapType.String()),
		slog.Int("NumDescriptors", p.descriptorsPerHeap),
		slog.Int("HeapCount", len(p.heapPool)+1),
	)

	heap, err := p.device.CreateDescriptorHeap(p.heapType, p.descriptorsPerHeap, true)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create shader-visible %s heap", p.heapType)
	}
	p.heapPool = append(p.heapPool, heap)

	return heap, nil
}

// DiscardHeaps returns heaps for reuse once the GPU has passed fenceValue
func (p *HeapPool) DiscardHeaps(fenceValue uint64, heaps []native.DescriptorHeap) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	for _, heap := range heaps {
		p.retiredHeaps.Push(retiredHeap{fenceValue: fenceValue, heap: heap})
	}
}

// Destroy releases every heap. The caller must guarantee the GPU is idle.
func (p *HeapPool) Destroy() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	for _, heap := range p.heapPool {
		heap.Release()
	}
	p.heapPool = nil
	p.availableHeaps.Clear()
	p.retiredHeaps.Clear()
}

// AddStatistics sums the heaps held by this pool into stats. Block bytes are counted in
// descriptor handle increments.
func (p *HeapPool) AddStatistics(stats *memutils.Statistics) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	stats.BlockCount += len(p.heapPool)
	stats.BlockBytes += len(p.heapPool) * p.descriptorsPerHeap * p.incrementSize
}

// PrintDetailedMap writes the heap counts of this pool as a json object
func (p *HeapPool) PrintDetailedMap(json *jwriter.ObjectState) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	json.Name("HeapType").String(p.heapType.String())
	json.Name("DescriptorsPerHeap").Int(p.descriptorsPerHeap)
	json.Name("Heaps").Int(len(p.heapPool))
	json.Name("AvailableHeaps").Int(p.availableHeaps.Len())
	json.Name("RetiredHeaps").Int(p.retiredHeaps.Len())
	json.Name("Requests").Int(p.requestCount)
}
