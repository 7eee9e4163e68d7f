package cmdctx

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/cmdkit/descriptor"
	"github.com/vkngwrapper/cmdkit/internal/utils"
	"github.com/vkngwrapper/cmdkit/linear"
	"github.com/vkngwrapper/cmdkit/memutils"
	"github.com/vkngwrapper/cmdkit/native"
	"github.com/vkngwrapper/cmdkit/queue"
	"github.com/vkngwrapper/cmdkit/resource"
	"golang.org/x/exp/slog"
)

// Manager pools command contexts by list type. Contexts are handed out by Allocate, or one of the
// Begin methods, and come back through Finish. A finished context is reused once the GPU has passed
// the fence of its last submission. The pool never shrinks and has no upper bound: it grows to the
// largest number of contexts of each type that were ever open at once.
type Manager struct {
	logger *slog.Logger
	device native.Device
	queues *queue.Manager

	mutex             utils.OptionalRWMutex
	contextPool       [native.CommandListTypeCount][]*CommandContext
	availableContexts [native.CommandListTypeCount]utils.Queue[*CommandContext]
	inUse             *swiss.Map[uint64, *CommandContext]
	nextContextID     uint64

	cpuPages     *linear.PageManager
	gpuPages     *linear.PageManager
	viewHeaps    *descriptor.HeapPool
	samplerHeaps *descriptor.HeapPool
}

// New creates a new Manager
//
// device - The Device command lists, allocators, pages and descriptor heaps are created from
//
// queues - The queues contexts are submitted to. Fence values from these queues decide when
// finished contexts, pages and descriptor heaps may be reused.
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, device native.Device, queues *queue.Manager, options CreateOptions) (*Manager, error) {
	err := options.validate()
	if err != nil {
		return nil, err
	}

	useMutex := options.Flags&ManagerCreateExternallySynchronized == 0

	m := &Manager{
		logger:        logger,
		device:        device,
		queues:        queues,
		mutex:         utils.OptionalRWMutex{UseMutex: useMutex},
		inUse:         swiss.NewMap[uint64, *CommandContext](16),
		nextContextID: 1,
		cpuPages:      linear.NewPageManager(logger, device, queues, linear.KindCPUWritable, options.CPUPageSize, useMutex),
		gpuPages:      linear.NewPageManager(logger, device, queues, linear.KindGPUExclusive, options.GPUPageSize, useMutex),
	}

	m.viewHeaps, err = descriptor.NewHeapPool(logger, device, queues, native.DescriptorHeapTypeCBVSRVUAV, options.ViewDescriptorsPerHeap, useMutex)
	if err != nil {
		return nil, err
	}

	m.samplerHeaps, err = descriptor.NewHeapPool(logger, device, queues, native.DescriptorHeapTypeSampler, options.SamplerDescriptorsPerHeap, useMutex)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Allocate checks out a context of listType. The oldest available context of that type is reused
// if the GPU has finished its last submission; otherwise a new context is created. Allocate never
// waits on the GPU.
func (m *Manager) Allocate(listType native.CommandListType) (*CommandContext, error) {
	if listType >= native.CommandListTypeCount {
		return nil, errors.Newf("invalid command list type %s", listType)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	available := &m.availableContexts[listType]
	candidate, ok := available.Front()
	if ok && m.isFenceComplete(candidate.fenceValue) {
		_, _ = available.Pop()

		err := candidate.reset()
		if err != nil {
			available.Push(candidate)
			return nil, err
		}

		m.inUse.Put(candidate.id, candidate)
		m.logger.Debug("Manager::Allocate reusing context",
			slog.String("Type", listType.String()),
			slog.Uint64("ID", candidate.id),
		)
		return candidate, nil
	}

	ctx := newCommandContext(m, listType, m.nextContextID)
	err := ctx.initialize()
	if err != nil {
		return nil, err
	}
	m.nextContextID++

	m.contextPool[listType] = append(m.contextPool[listType], ctx)
	m.inUse.Put(ctx.id, ctx)

	m.logger.Debug("Manager::Allocate creating context",
		slog.String("Type", listType.String()),
		slog.Uint64("ID", ctx.id),
		slog.Int("PoolSize", len(m.contextPool[listType])),
	)

	return ctx, nil
}

func (m *Manager) isFenceComplete(fenceValue uint64) bool {
	return fenceValue == 0 || m.queues.IsFenceComplete(fenceValue)
}

// Free returns a checked-out context to the pool. It will not be handed out again until the GPU
// has passed fenceValue, and the upload memory and descriptor heaps it used are retired behind the
// same fence. Finish calls Free; it only needs to be called directly for contexts that are
// abandoned without being finished. Commands recorded into an abandoned context are discarded.
//
// The context goes back to the pool even when Free returns an error.
func (m *Manager) Free(ctx *CommandContext, fenceValue uint64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if !m.inUse.Has(ctx.id) {
		return errors.Wrapf(ErrContextNotInUse, "context %d (%s)", ctx.id, ctx.name)
	}
	m.inUse.Delete(ctx.id)

	err := ctx.release(fenceValue)
	ctx.fenceValue = fenceValue
	m.availableContexts[ctx.listType].Push(ctx)

	return err
}

// Begin checks out a direct context and names it for graphics debuggers
func (m *Manager) Begin(name string) (*CommandContext, error) {
	return m.begin(native.CommandListTypeDirect, name)
}

func (m *Manager) begin(listType native.CommandListType, name string) (*CommandContext, error) {
	ctx, err := m.Allocate(listType)
	if err != nil {
		return nil, err
	}
	ctx.SetName(name)
	return ctx, nil
}

// BeginGraphics checks out a direct context and returns its graphics view
func (m *Manager) BeginGraphics(name string) (*GraphicsContext, error) {
	ctx, err := m.Begin(name)
	if err != nil {
		return nil, err
	}
	return ctx.AsGraphics()
}

// BeginCompute checks out a context for compute work. Async contexts record to a compute list and
// are submitted to the compute queue; the others record to a direct list.
func (m *Manager) BeginCompute(name string, async bool) (*ComputeContext, error) {
	listType := native.CommandListTypeDirect
	if async {
		listType = native.CommandListTypeCompute
	}

	ctx, err := m.begin(listType, name)
	if err != nil {
		return nil, err
	}
	return ctx.AsCompute()
}

// InitializeBuffer uploads data into dest at destOffset and blocks until the copy has executed.
// dest is left in the generic read state.
func (m *Manager) InitializeBuffer(ctx context.Context, dest resource.Tracked, data []byte, destOffset int) error {
	initContext, err := m.Begin("InitializeBuffer")
	if err != nil {
		return err
	}

	upload, err := initContext.ReserveUploadMemory(len(data))
	if err != nil {
		_, finishErr := initContext.Finish(ctx, false)
		return errors.CombineErrors(err, finishErr)
	}
	copy(upload.Bytes(), data)

	initContext.TransitionResource(dest, native.ResourceStateCopyDest, true)
	initContext.CopyBufferRegionFromUpload(dest, destOffset, upload, len(data))
	initContext.TransitionResource(dest, native.ResourceStateGenericRead, true)

	_, err = initContext.Finish(ctx, true)
	return err
}

// ContextCount returns the number of contexts of listType the pool has created
func (m *Manager) ContextCount(listType native.CommandListType) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.contextPool[listType])
}

// AvailableCount returns the number of contexts of listType waiting in the pool
func (m *Manager) AvailableCount(listType native.CommandListType) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.availableContexts[listType].Len()
}

// InUseCount returns the number of contexts of any type that are checked out
func (m *Manager) InUseCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inUse.Count()
}

// CalculateStatistics sums the pages and descriptor heaps held by the manager
func (m *Manager) CalculateStatistics(stats *memutils.Statistics) {
	stats.Clear()
	m.cpuPages.AddStatistics(stats)
	m.gpuPages.AddStatistics(stats)
	m.viewHeaps.AddStatistics(stats)
	m.samplerHeaps.AddStatistics(stats)
}

// BuildStatsString returns a json document describing the context pool, the pages of the linear
// allocators, and the shader-visible descriptor heaps
func (m *Manager) BuildStatsString() string {
	writer := jwriter.NewWriter()

	root := writer.Object()

	m.mutex.RLock()
	contexts := root.Name("Contexts").Object()
	for listType := native.CommandListType(0); listType < native.CommandListTypeCount; listType++ {
		typeStats := contexts.Name(listType.String()).Object()
		typeStats.Name("Total").Int(len(m.contextPool[listType]))
		typeStats.Name("Available").Int(m.availableContexts[listType].Len())
		typeStats.End()
	}
	contexts.End()
	root.Name("InUse").Int(m.inUse.Count())
	m.mutex.RUnlock()

	var stats memutils.Statistics
	m.CalculateStatistics(&stats)
	total := root.Name("Total").Object()
	total.Name("BlockCount").Int(stats.BlockCount)
	total.Name("BlockBytes").Int(stats.BlockBytes)
	total.End()

	cpuPages := root.Name("CPUPages").Object()
	m.cpuPages.PrintDetailedMap(&cpuPages)
	cpuPages.End()

	gpuPages := root.Name("GPUPages").Object()
	m.gpuPages.PrintDetailedMap(&gpuPages)
	gpuPages.End()

	viewHeaps := root.Name("ViewHeaps").Object()
	m.viewHeaps.PrintDetailedMap(&viewHeaps)
	viewHeaps.End()

	samplerHeaps := root.Name("SamplerHeaps").Object()
	m.samplerHeaps.PrintDetailedMap(&samplerHeaps)
	samplerHeaps.End()

	root.End()

	return string(writer.Bytes())
}

// Destroy releases every context, page and descriptor heap. The caller must guarantee the GPU is
// idle, usually by calling queue.Manager.IdleGPU first.
func (m *Manager) Destroy() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.inUse.Count() > 0 {
		m.logger.Error("Manager::Destroy destroying contexts that are still checked out", slog.Int("InUse", m.inUse.Count()))
	}

	for listType := range m.contextPool {
		for _, ctx := range m.contextPool[listType] {
			ctx.destroy()
		}
		m.contextPool[listType] = nil
		m.availableContexts[listType].Clear()
	}
	m.inUse = swiss.NewMap[uint64, *CommandContext](16)

	m.cpuPages.Destroy()
	m.gpuPages.Destroy()
	m.viewHeaps.Destroy()
	m.samplerHeaps.Destroy()
}
