package cmdctx

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/cmdkit/descriptor"
	"github.com/vkngwrapper/cmdkit/linear"
	"github.com/vkngwrapper/cmdkit/memutils"
	"github.com/vkngwrapper/cmdkit/native"
	"github.com/vkngwrapper/cmdkit/pipeline"
	"github.com/vkngwrapper/cmdkit/resource"
	"golang.org/x/exp/slog"
)

// BarrierBufferCapacity is the number of resource barriers a context batches before it flushes
// them to the command list on its own
const BarrierBufferCapacity = 16

// CommandContext records into a single native command list. A context is checked out of a Manager,
// owned by one goroutine until it is finished, and then returned to the Manager.
//
// Resource barriers are batched and only recorded when a command that depends on them is recorded,
// when the batch is full, or when the caller asks for an immediate flush.
type CommandContext struct {
	manager *Manager
	logger  *slog.Logger
	device  native.Device

	listType   native.CommandListType
	id         uint64
	name       string
	fenceValue uint64

	list      native.CommandList
	allocator native.CommandAllocator
	recording bool

	barrierBuffer      [BarrierBufferCapacity]native.ResourceBarrier
	numBarriersToFlush int

	cpuAllocator *linear.Allocator
	gpuAllocator *linear.Allocator
	viewHeap     *descriptor.DynamicHeap
	samplerHeap  *descriptor.DynamicHeap

	graphicsRootSignature *pipeline.RootSignature
	computeRootSignature  *pipeline.RootSignature
	pipelineState         native.PipelineState
	descriptorHeaps       [native.DescriptorHeapTypeCount]native.DescriptorHeap

	graphics *GraphicsContext
	compute  *ComputeContext
}

var _ descriptor.HeapBinder = &CommandContext{}

func newCommandContext(manager *Manager, listType native.CommandListType, id uint64) *CommandContext {
	c := &CommandContext{
		manager:      manager,
		logger:       manager.logger,
		device:       manager.device,
		listType:     listType,
		id:           id,
		cpuAllocator: linear.NewAllocator(manager.cpuPages),
		gpuAllocator: linear.NewAllocator(manager.gpuPages),
	}
	c.viewHeap = descriptor.NewDynamicHeap(manager.logger, manager.device, manager.viewHeaps, c)
	c.samplerHeap = descriptor.NewDynamicHeap(manager.logger, manager.device, manager.samplerHeaps, c)
	c.graphics = &GraphicsContext{CommandContext: c}
	c.compute = &ComputeContext{CommandContext: c}

	return c
}

func (c *CommandContext) initialize() error {
	var err error
	c.allocator, err = c.device.CreateCommandAllocator(c.listType)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s command allocator", c.listType)
	}

	c.list, err = c.device.CreateCommandList(c.listType, c.allocator, nil)
	if err != nil {
		c.allocator.Release()
		c.allocator = nil
		return errors.Wrapf(err, "failed to create %s command list", c.listType)
	}
	c.recording = true

	return nil
}

// reset prepares a returned context for reuse. The GPU must have passed the context's last fence.
// A context whose command list cannot be reset gets a fresh list and allocator.
func (c *CommandContext) reset() error {
	memutils.DebugAssert(c.numBarriersToFlush == 0, "context %d was returned to the pool with %d unflushed barriers", c.id, c.numBarriersToFlush)

	if c.list != nil {
		err := c.resetList()
		if err != nil {
			c.logger.Error("CommandContext::reset recreating command list",
				slog.Uint64("ID", c.id),
				slog.String("Type", c.listType.String()),
				slog.String("Error", err.Error()),
			)
			c.destroy()
		}
	}

	if c.list == nil {
		err := c.initialize()
		if err != nil {
			return err
		}
	}

	c.graphicsRootSignature = nil
	c.computeRootSignature = nil
	c.pipelineState = nil
	c.descriptorHeaps = [native.DescriptorHeapTypeCount]native.DescriptorHeap{}
	c.numBarriersToFlush = 0
	c.name = ""

	return nil
}

func (c *CommandContext) resetList() error {
	err := c.allocator.Reset()
	if err != nil {
		return errors.Wrapf(err, "failed to reset %s command allocator", c.listType)
	}

	err = c.list.Reset(c.allocator, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to reset %s command list", c.listType)
	}
	c.recording = true

	return nil
}

// release retires everything the context used since its last release behind fenceValue. A list
// that is still recording is closed without being submitted and its batched barriers are dropped.
func (c *CommandContext) release(fenceValue uint64) error {
	var err error
	if c.recording {
		c.recording = false
		err = c.list.Close()
		if err != nil {
			err = errors.Wrapf(err, "failed to close abandoned command list of context %d (%s)", c.id, c.name)
			c.destroy()
		}
	}
	c.numBarriersToFlush = 0

	c.cpuAllocator.CleanupUsedPages(fenceValue)
	c.gpuAllocator.CleanupUsedPages(fenceValue)
	c.viewHeap.CleanupUsedHeaps(fenceValue)
	c.samplerHeap.CleanupUsedHeaps(fenceValue)

	return err
}

func (c *CommandContext) destroy() {
	c.recording = false
	if c.list != nil {
		c.list.Release()
		c.list = nil
	}
	if c.allocator != nil {
		c.allocator.Release()
		c.allocator = nil
	}
}

// ID returns an identifier that is unique among the contexts of a Manager
func (c *CommandContext) ID() uint64 { return c.id }

func (c *CommandContext) Name() string { return c.name }

func (c *CommandContext) ListType() native.CommandListType { return c.listType }

// FenceValue returns the fence value of the context's last submission, or 0 if it has never
// been submitted
func (c *CommandContext) FenceValue() uint64 { return c.fenceValue }

// Native returns the command list the context records into
func (c *CommandContext) Native() native.CommandList { return c.list }

// SetName labels the command list for graphics debuggers
func (c *CommandContext) SetName(name string) {
	c.name = name
	c.list.SetName(name)
}

// AsGraphics returns the graphics view of a direct or bundle context
func (c *CommandContext) AsGraphics() (*GraphicsContext, error) {
	if c.listType != native.CommandListTypeDirect && c.listType != native.CommandListTypeBundle {
		return nil, errors.Wrapf(ErrWrongListType, "a %s context cannot record graphics commands", c.listType)
	}
	return c.graphics, nil
}

// AsCompute returns the compute view of a direct or compute context
func (c *CommandContext) AsCompute() (*ComputeContext, error) {
	if c.listType != native.CommandListTypeDirect && c.listType != native.CommandListTypeCompute {
		return nil, errors.Wrapf(ErrWrongListType, "a %s context cannot record compute commands", c.listType)
	}
	return c.compute, nil
}

func sameRootSignature(bound, signature *pipeline.RootSignature) bool {
	return bound != nil && bound.Native() == signature.Native()
}

// PendingBarrierCount returns the number of barriers batched but not yet recorded
func (c *CommandContext) PendingBarrierCount() int { return c.numBarriersToFlush }

func (c *CommandContext) pushBarrier(barrier native.ResourceBarrier, flushImmediate bool) {
	c.barrierBuffer[c.numBarriersToFlush] = barrier
	c.numBarriersToFlush++

	if flushImmediate || c.numBarriersToFlush == BarrierBufferCapacity {
		c.FlushResourceBarriers()
	}
}

// TransitionResource batches a transition of res into newState and records newState as the
// resource's usage state. Nothing is batched if the resource is already in newState.
func (c *CommandContext) TransitionResource(res resource.Tracked, newState native.ResourceStates, flushImmediate bool) {
	tracked := res.Tracked()
	oldState := tracked.UsageState()

	if c.listType == native.CommandListTypeCompute {
		memutils.DebugAssert(oldState&native.ValidComputeQueueResourceStates == oldState, "compute contexts cannot transition resources out of %s", oldState)
		memutils.DebugAssert(newState&native.ValidComputeQueueResourceStates == newState, "compute contexts cannot transition resources into %s", newState)
	}

	if oldState == newState {
		if flushImmediate {
			c.FlushResourceBarriers()
		}
		return
	}

	tracked.SetUsageState(newState)
	c.pushBarrier(native.ResourceBarrier{
		Type:        native.BarrierTypeTransition,
		Resource:    tracked.Native(),
		Subresource: native.AllSubresources,
		StateBefore: oldState,
		StateAfter:  newState,
	}, flushImmediate)
}

// InsertUAVBarrier batches a barrier between unordered-access writes to res and the commands that
// follow. A nil res waits on every unordered-access write.
func (c *CommandContext) InsertUAVBarrier(res resource.Tracked, flushImmediate bool) {
	var nativeResource native.Resource
	if res != nil {
		nativeResource = res.Tracked().Native()
	}

	c.pushBarrier(native.ResourceBarrier{
		Type:     native.BarrierTypeUAV,
		Resource: nativeResource,
	}, flushImmediate)
}

// InsertAliasBarrier batches a barrier that hands the memory shared by before and after over to after
func (c *CommandContext) InsertAliasBarrier(before, after resource.Tracked, flushImmediate bool) {
	c.pushBarrier(native.ResourceBarrier{
		Type:           native.BarrierTypeAliasing,
		ResourceBefore: before.Tracked().Native(),
		Resource:       after.Tracked().Native(),
	}, flushImmediate)
}

// FlushResourceBarriers records every batched barrier
func (c *CommandContext) FlushResourceBarriers() {
	if c.numBarriersToFlush == 0 {
		return
	}

	c.list.ResourceBarrier(c.barrierBuffer[:c.numBarriersToFlush])
	c.numBarriersToFlush = 0
}

// CopyBuffer copies the whole of src into dest
func (c *CommandContext) CopyBuffer(dest, src resource.Tracked) {
	c.TransitionResource(dest, native.ResourceStateCopyDest, true)
	c.TransitionResource(src, native.ResourceStateCopySource, true)
	c.FlushResourceBarriers()
	c.list.CopyResource(dest.Tracked().Native(), src.Tracked().Native())
}

// CopyBufferRegion copies numBytes from src at srcOffset into dest at destOffset
func (c *CommandContext) CopyBufferRegion(dest resource.Tracked, destOffset int, src resource.Tracked, srcOffset int, numBytes int) {
	c.TransitionResource(dest, native.ResourceStateCopyDest, true)
	c.TransitionResource(src, native.ResourceStateCopySource, true)
	c.FlushResourceBarriers()
	c.list.CopyBufferRegion(dest.Tracked().Native(), destOffset, src.Tracked().Native(), srcOffset, numBytes)
}

// CopyBufferRegionFromUpload copies the first numBytes of an upload allocation into dest at
// destOffset. Upload pages never leave the generic read state, so only dest is transitioned.
func (c *CommandContext) CopyBufferRegionFromUpload(dest resource.Tracked, destOffset int, src linear.DynAlloc, numBytes int) {
	memutils.DebugAssert(numBytes <= src.Size, "copying %d bytes out of a %d byte upload allocation", numBytes, src.Size)

	c.TransitionResource(dest, native.ResourceStateCopyDest, true)
	c.list.CopyBufferRegion(dest.Tracked().Native(), destOffset, src.Resource, src.Offset, numBytes)
}

// ReserveUploadMemory returns CPU-writable memory that stays valid until the GPU has executed the
// context's final submission
func (c *CommandContext) ReserveUploadMemory(size int) (linear.DynAlloc, error) {
	return c.cpuAllocator.Allocate(size, linear.DefaultAlignment)
}

// ReserveScratchMemory returns device-local memory in the unordered-access state that stays valid
// until the GPU has executed the context's final submission
func (c *CommandContext) ReserveScratchMemory(size int) (linear.DynAlloc, error) {
	return c.gpuAllocator.Allocate(size, linear.DefaultAlignment)
}

// SetDescriptorHeap binds heap as the heap of heapType. The command list is only updated if the
// heap changed.
func (c *CommandContext) SetDescriptorHeap(heapType native.DescriptorHeapType, heap native.DescriptorHeap) {
	if c.descriptorHeaps[heapType] == heap {
		return
	}

	c.descriptorHeaps[heapType] = heap
	c.bindDescriptorHeaps()
}

// SetDescriptorHeaps binds each heap as the heap of its own type. The command list is only updated
// if at least one heap changed.
func (c *CommandContext) SetDescriptorHeaps(heaps ...native.DescriptorHeap) {
	changed := false
	for _, heap := range heaps {
		heapType := heap.Type()
		if c.descriptorHeaps[heapType] != heap {
			c.descriptorHeaps[heapType] = heap
			changed = true
		}
	}

	if changed {
		c.bindDescriptorHeaps()
	}
}

func (c *CommandContext) bindDescriptorHeaps() {
	heaps := make([]native.DescriptorHeap, 0, native.DescriptorHeapTypeCount)
	for _, heap := range c.descriptorHeaps {
		if heap != nil {
			heaps = append(heaps, heap)
		}
	}

	if len(heaps) > 0 {
		c.list.SetDescriptorHeaps(heaps)
	}
}

func (c *CommandContext) submit(ctx context.Context, waitForCompletion bool) (uint64, error) {
	c.FlushResourceBarriers()

	err := c.list.Close()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to close command list of context %d (%s)", c.id, c.name)
	}
	c.recording = false

	fenceValue, err := c.manager.queues.Queue(c.listType).ExecuteCommandList(c.list)
	if err != nil {
		return 0, err
	}
	c.fenceValue = fenceValue

	if waitForCompletion {
		err = c.manager.queues.WaitForFence(ctx, fenceValue)
		if err != nil {
			return fenceValue, err
		}
	}

	return fenceValue, nil
}

// Flush submits everything recorded so far and keeps the context open. The bound root signatures,
// pipeline state and descriptor heaps carry over to the commands recorded next. When
// waitForCompletion is set, Flush blocks until the GPU has executed the submission or ctx is done.
func (c *CommandContext) Flush(ctx context.Context, waitForCompletion bool) (uint64, error) {
	fenceValue, err := c.submit(ctx, waitForCompletion)
	if err != nil {
		return fenceValue, err
	}

	c.logger.Debug("CommandContext::Flush",
		slog.String("Name", c.name),
		slog.String("Type", c.listType.String()),
		slog.Uint64("FenceValue", fenceValue),
	)

	err = c.list.Reset(c.allocator, nil)
	if err != nil {
		return fenceValue, errors.Wrapf(err, "failed to reset command list of context %d (%s)", c.id, c.name)
	}
	c.recording = true

	if c.graphicsRootSignature != nil {
		c.list.SetGraphicsRootSignature(c.graphicsRootSignature.Native())
	}
	if c.computeRootSignature != nil {
		c.list.SetComputeRootSignature(c.computeRootSignature.Native())
	}
	if c.pipelineState != nil {
		c.list.SetPipelineState(c.pipelineState)
	}
	c.bindDescriptorHeaps()
	c.viewHeap.MarkAllStale()
	c.samplerHeap.MarkAllStale()

	return fenceValue, nil
}

// Finish submits everything recorded so far and returns the context to its Manager. Upload memory
// and descriptor heaps used by the context are released once the GPU passes the returned fence
// value. When waitForCompletion is set, Finish blocks until that happens or ctx is done.
//
// The context must not be used after Finish returns, even if it returns an error.
func (c *CommandContext) Finish(ctx context.Context, waitForCompletion bool) (uint64, error) {
	memutils.DebugAssert(c.listType != native.CommandListTypeBundle, "bundles are executed from direct lists and cannot be finished")

	fenceValue, err := c.submit(ctx, false)
	if err != nil {
		freeErr := c.manager.Free(c, c.fenceValue)
		return 0, errors.CombineErrors(err, freeErr)
	}

	c.logger.Debug("CommandContext::Finish",
		slog.String("Name", c.name),
		slog.String("Type", c.listType.String()),
		slog.Uint64("FenceValue", fenceValue),
	)

	var waitErr error
	if waitForCompletion {
		waitErr = c.manager.queues.WaitForFence(ctx, fenceValue)
	}

	freeErr := c.manager.Free(c, fenceValue)
	return fenceValue, errors.CombineErrors(waitErr, freeErr)
}
