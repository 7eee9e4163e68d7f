package cmdctx

import (
	"context"
	"io"
	"sync"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/cmdkit/native"
	mock_native "github.com/vkngwrapper/cmdkit/native/mocks"
	"github.com/vkngwrapper/cmdkit/pipeline"
	"github.com/vkngwrapper/cmdkit/queue"
	"github.com/vkngwrapper/cmdkit/resource"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

type listEvent struct {
	method string
	args   []any
}

// recordingList is a command list that remembers every command recorded into it
type recordingList struct {
	listType native.CommandListType
	name     string
	closed   bool
	released bool
	events   []listEvent
}

var _ native.CommandList = &recordingList{}

func (l *recordingList) record(method string, args ...any) {
	l.events = append(l.events, listEvent{method: method, args: args})
}

func (l *recordingList) methods() []string {
	methods := make([]string, 0, len(l.events))
	for _, event := range l.events {
		methods = append(methods, event.method)
	}
	return methods
}

func (l *recordingList) eventsOf(method string) []listEvent {
	var events []listEvent
	for _, event := range l.events {
		if event.method == method {
			events = append(events, event)
		}
	}
	return events
}

func (l *recordingList) barrierBatches() [][]native.ResourceBarrier {
	var batches [][]native.ResourceBarrier
	for _, event := range l.eventsOf("ResourceBarrier") {
		batches = append(batches, event.args[0].([]native.ResourceBarrier))
	}
	return batches
}

func (l *recordingList) clearEvents() { l.events = nil }

func (l *recordingList) Type() native.CommandListType { return l.listType }
func (l *recordingList) SetName(name string)          { l.name = name }

func (l *recordingList) Reset(allocator native.CommandAllocator, initialState native.PipelineState) error {
	if !l.closed {
		return errors.New("command list reset while recording")
	}
	l.closed = false
	l.record("Reset")
	return nil
}

func (l *recordingList) Close() error {
	if l.closed {
		return errors.New("command list closed twice")
	}
	l.closed = true
	l.record("Close")
	return nil
}

func (l *recordingList) Release() { l.released = true }

func (l *recordingList) ResourceBarrier(barriers []native.ResourceBarrier) {
	l.record("ResourceBarrier", append([]native.ResourceBarrier(nil), barriers...))
}
func (l *recordingList) CopyResource(dest, source native.Resource) {
	l.record("CopyResource", dest, source)
}
func (l *recordingList) CopyBufferRegion(dest native.Resource, destOffset int, source native.Resource, sourceOffset int, numBytes int) {
	l.record("CopyBufferRegion", dest, destOffset, source, sourceOffset, numBytes)
}
func (l *recordingList) SetDescriptorHeaps(heaps []native.DescriptorHeap) {
	l.record("SetDescriptorHeaps", append([]native.DescriptorHeap(nil), heaps...))
}
func (l *recordingList) SetPipelineState(pso native.PipelineState) {
	l.record("SetPipelineState", pso)
}
func (l *recordingList) SetGraphicsRootSignature(signature native.RootSignature) {
	l.record("SetGraphicsRootSignature", signature)
}
func (l *recordingList) SetGraphicsRootDescriptorTable(rootIndex int, baseDescriptor native.GPUDescriptorHandle) {
	l.record("SetGraphicsRootDescriptorTable", rootIndex, baseDescriptor)
}
func (l *recordingList) SetGraphicsRootConstantBufferView(rootIndex int, address native.GPUVirtualAddress) {
	l.record("SetGraphicsRootConstantBufferView", rootIndex, address)
}
func (l *recordingList) SetGraphicsRoot32BitConstants(rootIndex int, data []uint32, destOffset int) {
	l.record("SetGraphicsRoot32BitConstants", rootIndex, append([]uint32(nil), data...), destOffset)
}
func (l *recordingList) SetComputeRootSignature(signature native.RootSignature) {
	l.record("SetComputeRootSignature", signature)
}
func (l *recordingList) SetComputeRootDescriptorTable(rootIndex int, baseDescriptor native.GPUDescriptorHandle) {
	l.record("SetComputeRootDescriptorTable", rootIndex, baseDescriptor)
}
func (l *recordingList) SetComputeRootConstantBufferView(rootIndex int, address native.GPUVirtualAddress) {
	l.record("SetComputeRootConstantBufferView", rootIndex, address)
}
func (l *recordingList) SetComputeRoot32BitConstants(rootIndex int, data []uint32, destOffset int) {
	l.record("SetComputeRoot32BitConstants", rootIndex, append([]uint32(nil), data...), destOffset)
}
func (l *recordingList) ClearRenderTargetView(rtv native.CPUDescriptorHandle, color [4]float32, rects []native.Rect) {
	l.record("ClearRenderTargetView", rtv, color, rects)
}
func (l *recordingList) ClearDepthStencilView(dsv native.CPUDescriptorHandle, flags native.ClearFlags, depth float32, stencil uint8, rects []native.Rect) {
	l.record("ClearDepthStencilView", dsv, flags, depth, stencil, rects)
}
func (l *recordingList) OMSetRenderTargets(rtvs []native.CPUDescriptorHandle, dsv *native.CPUDescriptorHandle) {
	l.record("OMSetRenderTargets", append([]native.CPUDescriptorHandle(nil), rtvs...), dsv)
}
func (l *recordingList) RSSetViewports(viewports []native.Viewport) {
	l.record("RSSetViewports", append([]native.Viewport(nil), viewports...))
}
func (l *recordingList) RSSetScissorRects(rects []native.Rect) {
	l.record("RSSetScissorRects", append([]native.Rect(nil), rects...))
}
func (l *recordingList) IASetIndexBuffer(view *native.IndexBufferView) {
	l.record("IASetIndexBuffer", view)
}
func (l *recordingList) IASetVertexBuffers(startSlot int, views []native.VertexBufferView) {
	l.record("IASetVertexBuffers", startSlot, append([]native.VertexBufferView(nil), views...))
}
func (l *recordingList) IASetPrimitiveTopology(topology native.PrimitiveTopology) {
	l.record("IASetPrimitiveTopology", topology)
}
func (l *recordingList) DrawInstanced(vertexCountPerInstance, instanceCount, startVertexLocation, startInstanceLocation int) {
	l.record("DrawInstanced", vertexCountPerInstance, instanceCount, startVertexLocation, startInstanceLocation)
}
func (l *recordingList) DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation int) {
	l.record("DrawIndexedInstanced", indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation)
}
func (l *recordingList) Dispatch(threadGroupCountX, threadGroupCountY, threadGroupCountZ int) {
	l.record("Dispatch", threadGroupCountX, threadGroupCountY, threadGroupCountZ)
}

type queueState struct {
	signaled  uint64
	completed uint64
	executed  int
}

type fixture struct {
	t    *testing.T
	ctrl *gomock.Controller

	device  *mock_native.MockDevice

	// mutex guards the state below that mock callbacks update
	mutex   sync.Mutex
	states  map[native.CommandListType]*queueState
	queues  *queue.Manager
	manager *Manager

	lists        []*recordingList
	pendingLists []native.CommandList
	heaps        []*mock_native.MockDescriptorHeap
	pages        map[native.Resource][]byte
}

const descriptorIncrement = 32

func readyFixture(t *testing.T, options CreateOptions) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		t:      t,
		ctrl:   ctrl,
		device: mock_native.NewMockDevice(ctrl),
		states: make(map[native.CommandListType]*queueState),
		pages:  make(map[native.Resource][]byte),
	}

	f.device.EXPECT().CreateCommandQueue(gomock.Any()).DoAndReturn(func(listType native.CommandListType) (native.CommandQueue, error) {
		state := &queueState{}
		f.states[listType] = state

		q := mock_native.NewMockCommandQueue(ctrl)
		q.EXPECT().Type().Return(listType).AnyTimes()
		q.EXPECT().ExecuteCommandLists(gomock.Any()).Do(func(lists []native.CommandList) {
			f.mutex.Lock()
			defer f.mutex.Unlock()
			state.executed += len(lists)
		}).AnyTimes()
		q.EXPECT().Signal(gomock.Any(), gomock.Any()).DoAndReturn(func(fence native.Fence, value uint64) error {
			f.mutex.Lock()
			defer f.mutex.Unlock()
			state.signaled = value
			return nil
		}).AnyTimes()
		q.EXPECT().Release().AnyTimes()
		return q, nil
	}).Times(3)

	f.device.EXPECT().CreateFence(gomock.Any()).DoAndReturn(func(initial uint64) (native.Fence, error) {
		state := f.states[native.CommandListType(initial>>56)]
		state.completed = initial
		state.signaled = initial

		fence := mock_native.NewMockFence(ctrl)
		fence.EXPECT().CompletedValue().DoAndReturn(func() uint64 {
			f.mutex.Lock()
			defer f.mutex.Unlock()
			return state.completed
		}).AnyTimes()
		fence.EXPECT().Wait(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, value uint64) error {
			f.mutex.Lock()
			defer f.mutex.Unlock()
			if value > state.completed {
				state.completed = value
			}
			return nil
		}).AnyTimes()
		fence.EXPECT().Release().AnyTimes()
		return fence, nil
	}).Times(3)

	f.device.EXPECT().CreateCommandAllocator(gomock.Any()).DoAndReturn(func(listType native.CommandListType) (native.CommandAllocator, error) {
		allocator := mock_native.NewMockCommandAllocator(ctrl)
		allocator.EXPECT().Reset().Return(nil).AnyTimes()
		allocator.EXPECT().Release().AnyTimes()
		return allocator, nil
	}).AnyTimes()

	f.device.EXPECT().CreateCommandList(gomock.Any(), gomock.Any(), nil).DoAndReturn(
		func(listType native.CommandListType, allocator native.CommandAllocator, initialState native.PipelineState) (native.CommandList, error) {
			f.mutex.Lock()
			defer f.mutex.Unlock()
			if len(f.pendingLists) > 0 {
				list := f.pendingLists[0]
				f.pendingLists = f.pendingLists[1:]
				return list, nil
			}

			list := &recordingList{listType: listType}
			f.lists = append(f.lists, list)
			return list, nil
		}).AnyTimes()

	f.device.EXPECT().DescriptorHandleIncrementSize(gomock.Any()).Return(descriptorIncrement).AnyTimes()
	f.device.EXPECT().CreateDescriptorHeap(gomock.Any(), gomock.Any(), true).DoAndReturn(
		func(heapType native.DescriptorHeapType, numDescriptors int, shaderVisible bool) (native.DescriptorHeap, error) {
			f.mutex.Lock()
			defer f.mutex.Unlock()
			base := uint64(len(f.heaps)+1) << 32
			heap := mock_native.NewMockDescriptorHeap(ctrl)
			heap.EXPECT().Type().Return(heapType).AnyTimes()
			heap.EXPECT().NumDescriptors().Return(numDescriptors).AnyTimes()
			heap.EXPECT().CPUStart().Return(native.CPUDescriptorHandle(base)).AnyTimes()
			heap.EXPECT().GPUStart().Return(native.GPUDescriptorHandle(base)).AnyTimes()
			heap.EXPECT().Release().AnyTimes()
			f.heaps = append(f.heaps, heap)
			return heap, nil
		}).AnyTimes()
	f.device.EXPECT().CopyDescriptors(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	f.device.EXPECT().CreateCommittedBuffer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(memoryKind native.MemoryKind, size int, state native.ResourceStates, uav bool) (native.Resource, error) {
			f.mutex.Lock()
			defer f.mutex.Unlock()
			backing := make([]byte, size)
			res := mock_native.NewMockResource(ctrl)
			res.EXPECT().SetName(gomock.Any()).AnyTimes()
			res.EXPECT().GPUVirtualAddress().Return(native.GPUVirtualAddress(0x10000000 * (len(f.pages) + 1))).AnyTimes()
			res.EXPECT().Map().Return(unsafe.Pointer(&backing[0]), nil).AnyTimes()
			res.EXPECT().Unmap().AnyTimes()
			res.EXPECT().Release().AnyTimes()
			f.pages[res] = backing
			return res, nil
		}).AnyTimes()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var err error
	f.queues, err = queue.NewManager(logger, f.device)
	require.NoError(t, err)

	f.manager, err = New(logger, f.device, f.queues, options)
	require.NoError(t, err)

	return f
}

// completeAll lets the GPU catch up with every submission
func (f *fixture) completeAll() {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	for _, state := range f.states {
		state.completed = state.signaled
	}
}

func (f *fixture) nativeResource() *mock_native.MockResource {
	res := mock_native.NewMockResource(f.ctrl)
	res.EXPECT().GPUVirtualAddress().Return(native.GPUVirtualAddress(0xF0000000)).AnyTimes()
	return res
}

func (f *fixture) colorBuffer(state native.ResourceStates) *resource.ColorBuffer {
	return resource.NewColorBuffer(f.nativeResource(), state, 0x100, 0x200, 0x300)
}

func (f *fixture) depthBuffer() *resource.DepthBuffer {
	return resource.NewDepthBuffer(f.nativeResource(), native.ResourceStateCommon, 0x800)
}

func (f *fixture) buffer(state native.ResourceStates) *resource.Buffer {
	return resource.NewBuffer(f.nativeResource(), state, 16, 4)
}

func (f *fixture) rootSignature(parameters ...pipeline.RootParameter) *pipeline.RootSignature {
	signature, err := pipeline.NewRootSignature(mock_native.NewMockRootSignature(f.ctrl), parameters)
	require.NoError(f.t, err)
	return signature
}

func (f *fixture) graphicsPSO(signature *pipeline.RootSignature) *pipeline.GraphicsPSO {
	pso, err := pipeline.NewGraphicsPSO(mock_native.NewMockPipelineState(f.ctrl), signature)
	require.NoError(f.t, err)
	return pso
}

func (f *fixture) computePSO(signature *pipeline.RootSignature) *pipeline.ComputePSO {
	pso, err := pipeline.NewComputePSO(mock_native.NewMockPipelineState(f.ctrl), signature)
	require.NoError(f.t, err)
	return pso
}

func srvTable(count int) pipeline.RootParameter {
	return pipeline.RootParameter{
		Type:   pipeline.RootParameterDescriptorTable,
		Ranges: []pipeline.DescriptorRange{{Type: pipeline.DescriptorRangeSRV, Count: count}},
	}
}

func samplerTable(count int) pipeline.RootParameter {
	return pipeline.RootParameter{
		Type:   pipeline.RootParameterDescriptorTable,
		Ranges: []pipeline.DescriptorRange{{Type: pipeline.DescriptorRangeSampler, Count: count}},
	}
}

func rootCBV() pipeline.RootParameter {
	return pipeline.RootParameter{Type: pipeline.RootParameterCBV}
}

func listOf(t *testing.T, ctx *CommandContext) *recordingList {
	list, ok := ctx.Native().(*recordingList)
	require.True(t, ok)
	return list
}
