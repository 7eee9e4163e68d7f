package queue

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/cmdkit/native"
	"golang.org/x/exp/slog"
)

// fenceTypeShift is the bit offset of the command list type within a fence value. Fence values from
// different queues never collide, and the owning queue of any fence value can be recovered from it.
const fenceTypeShift = 56

// Queue submits closed command lists to a native queue and signals a fence after each submission
type Queue struct {
	logger   *slog.Logger
	listType native.CommandListType
	queue    native.CommandQueue
	fence    native.Fence

	submitMutex             sync.Mutex
	nextFenceValue          uint64
	lastCompletedFenceValue atomic.Uint64
}

// New creates a native queue of listType and the fence used to track its progress
func New(logger *slog.Logger, device native.Device, listType native.CommandListType) (*Queue, error) {
	if listType == native.CommandListTypeBundle {
		return nil, errors.New("bundles cannot be submitted to a queue")
	}

	nativeQueue, err := device.CreateCommandQueue(listType)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s command queue", listType)
	}

	baseValue := uint64(listType) << fenceTypeShift
	fence, err := device.CreateFence(baseValue)
	if err != nil {
		nativeQueue.Release()
		return nil, errors.Wrapf(err, "failed to create fence for %s command queue", listType)
	}

	q := &Queue{
		logger:         logger,
		listType:       listType,
		queue:          nativeQueue,
		fence:          fence,
		nextFenceValue: baseValue + 1,
	}
	q.lastCompletedFenceValue.Store(baseValue)

	return q, nil
}

func (q *Queue) Type() native.CommandListType { return q.listType }

func (q *Queue) Native() native.CommandQueue { return q.queue }

// NextFenceValue returns the fence value the next submission will signal
func (q *Queue) NextFenceValue() uint64 {
	q.submitMutex.Lock()
	defer q.submitMutex.Unlock()

	return q.nextFenceValue
}

// ExecuteCommandList submits a closed command list and returns the fence value that will be reached
// once the GPU has finished executing it
func (q *Queue) ExecuteCommandList(list native.CommandList) (uint64, error) {
	q.submitMutex.Lock()
	defer q.submitMutex.Unlock()

	q.queue.ExecuteCommandLists([]native.CommandList{list})

	return q.signalAfterLock()
}

// IncrementFence signals a new fence value behind all work submitted so far and returns it
func (q *Queue) IncrementFence() (uint64, error) {
	q.submitMutex.Lock()
	defer q.submitMutex.Unlock()

	return q.signalAfterLock()
}

func (q *Queue) signalAfterLock() (uint64, error) {
	fenceValue := q.nextFenceValue
	err := q.queue.Signal(q.fence, fenceValue)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to signal fence value %d on %s queue", fenceValue, q.listType)
	}

	q.nextFenceValue++
	return fenceValue, nil
}

// IsFenceComplete returns true if the GPU has reached fenceValue. It only queries the native fence
// when the cached completed value is not recent enough.
func (q *Queue) IsFenceComplete(fenceValue uint64) bool {
	if fenceValue <= q.lastCompletedFenceValue.Load() {
		return true
	}

	q.observeCompleted(q.fence.CompletedValue())
	return fenceValue <= q.lastCompletedFenceValue.Load()
}

func (q *Queue) observeCompleted(value uint64) {
	for {
		last := q.lastCompletedFenceValue.Load()
		if value <= last || q.lastCompletedFenceValue.CompareAndSwap(last, value) {
			return
		}
	}
}

// WaitForFence blocks the calling goroutine until the GPU has reached fenceValue or ctx is done
func (q *Queue) WaitForFence(ctx context.Context, fenceValue uint64) error {
	if q.IsFenceComplete(fenceValue) {
		return nil
	}

	q.logger.Debug("Queue::WaitForFence", slog.String("Type", q.listType.String()), slog.Uint64("FenceValue", fenceValue))

	err := q.fence.Wait(ctx, fenceValue)
	if err != nil {
		return errors.Wrapf(err, "failed waiting for fence value %d on %s queue", fenceValue, q.listType)
	}

	q.observeCompleted(fenceValue)
	return nil
}

// WaitForIdle blocks until all work submitted to this queue so far has completed
func (q *Queue) WaitForIdle(ctx context.Context) error {
	fenceValue, err := q.IncrementFence()
	if err != nil {
		return err
	}

	return q.WaitForFence(ctx, fenceValue)
}

func (q *Queue) Destroy() {
	q.fence.Release()
	q.queue.Release()
}
