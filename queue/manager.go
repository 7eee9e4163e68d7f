package queue

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/cmdkit/native"
	"golang.org/x/exp/slog"
)

// Manager owns one Queue for each command list type that can be submitted
type Manager struct {
	logger *slog.Logger
	queues [native.CommandListTypeCount]*Queue
}

var submittableTypes = []native.CommandListType{
	native.CommandListTypeDirect,
	native.CommandListTypeCompute,
	native.CommandListTypeCopy,
}

func NewManager(logger *slog.Logger, device native.Device) (*Manager, error) {
	m := &Manager{logger: logger}

	for _, listType := range submittableTypes {
		q, err := New(logger, device, listType)
		if err != nil {
			m.Destroy()
			return nil, err
		}
		m.queues[listType] = q
	}

	return m, nil
}

// Queue returns the queue that executes command lists of listType. Bundles are executed from
// direct command lists, so they share the direct queue.
func (m *Manager) Queue(listType native.CommandListType) *Queue {
	if listType == native.CommandListTypeBundle {
		listType = native.CommandListTypeDirect
	}
	return m.queues[listType]
}

func (m *Manager) queueForFence(fenceValue uint64) (*Queue, error) {
	listType := native.CommandListType(fenceValue >> fenceTypeShift)
	if listType >= native.CommandListTypeCount || m.queues[listType] == nil {
		return nil, errors.Newf("fence value %#x does not belong to any queue", fenceValue)
	}
	return m.queues[listType], nil
}

// IsFenceComplete returns true if the fence value, which may come from any queue, has been reached
func (m *Manager) IsFenceComplete(fenceValue uint64) bool {
	q, err := m.queueForFence(fenceValue)
	if err != nil {
		panic(err)
	}
	return q.IsFenceComplete(fenceValue)
}

// WaitForFence blocks until the fence value, which may come from any queue, has been reached
func (m *Manager) WaitForFence(ctx context.Context, fenceValue uint64) error {
	q, err := m.queueForFence(fenceValue)
	if err != nil {
		return err
	}
	return q.WaitForFence(ctx, fenceValue)
}

// IdleGPU blocks until every queue has drained
func (m *Manager) IdleGPU(ctx context.Context) error {
	m.logger.Debug("Manager::IdleGPU")

	for _, listType := range submittableTypes {
		err := m.queues[listType].WaitForIdle(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) Destroy() {
	for i, q := range m.queues {
		if q != nil {
			q.Destroy()
			m.queues[i] = nil
		}
	}
}
