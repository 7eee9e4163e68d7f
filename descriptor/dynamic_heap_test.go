package descriptor

import (
	"io"
	"testing"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/cmdkit/memutils"
	"github.com/vkngwrapper/cmdkit/native"
	mock_native "github.com/vkngwrapper/cmdkit/native/mocks"
	"github.com/vkngwrapper/cmdkit/pipeline"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

const (
	testIncrement = 32
	cpuBase       = native.CPUDescriptorHandle(0x1000)
	gpuBase       = native.GPUDescriptorHandle(0x90000000)
)

type fakeFences struct {
	completed uint64
}

func (f *fakeFences) IsFenceComplete(fenceValue uint64) bool {
	return fenceValue <= f.completed
}

type boundHeap struct {
	heapType native.DescriptorHeapType
	heap     native.DescriptorHeap
}

type recordingBinder struct {
	bound []boundHeap
}

func (b *recordingBinder) SetDescriptorHeap(heapType native.DescriptorHeapType, heap native.DescriptorHeap) {
	b.bound = append(b.bound, boundHeap{heapType: heapType, heap: heap})
}

type heapFixture struct {
	device  *mock_native.MockDevice
	list    *mock_native.MockCommandList
	fences  *fakeFences
	binder  *recordingBinder
	pool    *HeapPool
	dynamic *DynamicHeap
	heaps   []*mock_native.MockDescriptorHeap
}

func readyDynamicHeap(t *testing.T, ctrl *gomock.Controller, heapType native.DescriptorHeapType, descriptorsPerHeap int) *heapFixture {
	fixture := &heapFixture{
		device: mock_native.NewMockDevice(ctrl),
		list:   mock_native.NewMockCommandList(ctrl),
		fences: &fakeFences{},
		binder: &recordingBinder{},
	}

	fixture.device.EXPECT().DescriptorHandleIncrementSize(heapType).Return(testIncrement)
	fixture.device.EXPECT().CreateDescriptorHeap(heapType, gomock.Any(), true).DoAndReturn(
		func(heapType native.DescriptorHeapType, numDescriptors int, shaderVisible bool) (native.DescriptorHeap, error) {
			index := len(fixture.heaps)
			heap := mock_native.NewMockDescriptorHeap(ctrl)
			heap.EXPECT().CPUStart().Return(cpuBase + native.CPUDescriptorHandle(index*0x100000)).AnyTimes()
			heap.EXPECT().GPUStart().Return(gpuBase + native.GPUDescriptorHandle(index*0x100000)).AnyTimes()
			heap.EXPECT().Type().Return(heapType).AnyTimes()
			heap.EXPECT().NumDescriptors().Return(numDescriptors).AnyTimes()
			heap.EXPECT().Release().AnyTimes()
			fixture.heaps = append(fixture.heaps, heap)
			return heap, nil
		}).AnyTimes()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	pool, err := NewHeapPool(logger, fixture.device, fixture.fences, heapType, descriptorsPerHeap, false)
	require.NoError(t, err)
	fixture.pool = pool
	fixture.dynamic = NewDynamicHeap(logger, fixture.device, pool, fixture.binder)

	return fixture
}

// layoutA has a 4 descriptor SRV table at 0, constants at 1, a 2 sampler table at 2 and a 2 UAV
// table at 3
func layoutA(t *testing.T, ctrl *gomock.Controller) *pipeline.RootSignature {
	signature, err := pipeline.NewRootSignature(mock_native.NewMockRootSignature(ctrl), []pipeline.RootParameter{
		{Type: pipeline.RootParameterDescriptorTable, Ranges: []pipeline.DescriptorRange{{Type: pipeline.DescriptorRangeSRV, Count: 4}}},
		{Type: pipeline.RootParameter32BitConstants, Num32BitValues: 4},
		{Type: pipeline.RootParameterDescriptorTable, Ranges: []pipeline.DescriptorRange{{Type: pipeline.DescriptorRangeSampler, Count: 2}}},
		{Type: pipeline.RootParameterDescriptorTable, Ranges: []pipeline.DescriptorRange{{Type: pipeline.DescriptorRangeUAV, Count: 2}}},
	})
	require.NoError(t, err)
	return signature
}

// layoutB has a root CBV at 0 and a 3 descriptor SRV table at 1
func layoutB(t *testing.T, ctrl *gomock.Controller) *pipeline.RootSignature {
	signature, err := pipeline.NewRootSignature(mock_native.NewMockRootSignature(ctrl), []pipeline.RootParameter{
		{Type: pipeline.RootParameterCBV},
		{Type: pipeline.RootParameterDescriptorTable, Ranges: []pipeline.DescriptorRange{{Type: pipeline.DescriptorRangeSRV, Count: 3}}},
	})
	require.NoError(t, err)
	return signature
}

func cpuAt(index int) native.CPUDescriptorHandle {
	return cpuBase.Offset(index, testIncrement)
}

func gpuAt(index int) native.GPUDescriptorHandle {
	return gpuBase.Offset(index, testIncrement)
}

func TestCommitCopiesAssignedRunsAndBindsTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := readyDynamicHeap(t, ctrl, native.DescriptorHeapTypeCBVSRVUAV, 0)

	fixture.dynamic.ParseGraphicsRootSignature(layoutA(t, ctrl))
	fixture.dynamic.SetGraphicsDescriptorHandles(0, 0, []native.CPUDescriptorHandle{0xA1, 0xA2})
	fixture.dynamic.SetGraphicsDescriptorHandles(0, 3, []native.CPUDescriptorHandle{0xA4})
	fixture.dynamic.SetGraphicsDescriptorHandles(3, 1, []native.CPUDescriptorHandle{0xB2})

	fixture.device.EXPECT().CopyDescriptors(cpuAt(0), []native.CPUDescriptorHandle{0xA1, 0xA2}, native.DescriptorHeapTypeCBVSRVUAV)
	fixture.device.EXPECT().CopyDescriptors(cpuAt(3), []native.CPUDescriptorHandle{0xA4}, native.DescriptorHeapTypeCBVSRVUAV)
	fixture.device.EXPECT().CopyDescriptors(cpuAt(5), []native.CPUDescriptorHandle{0xB2}, native.DescriptorHeapTypeCBVSRVUAV)
	fixture.list.EXPECT().SetGraphicsRootDescriptorTable(0, gpuAt(0))
	fixture.list.EXPECT().SetGraphicsRootDescriptorTable(3, gpuAt(4))

	require.NoError(t, fixture.dynamic.CommitGraphicsRootDescriptorTables(fixture.list))
	require.Equal(t, 6, fixture.dynamic.UsedDescriptors())
	require.Len(t, fixture.binder.bound, 1)
	require.Equal(t, native.DescriptorHeapTypeCBVSRVUAV, fixture.binder.bound[0].heapType)
	require.Same(t, fixture.heaps[0], fixture.binder.bound[0].heap)

	// nothing is stale, so the previously bound tables stay in place
	require.NoError(t, fixture.dynamic.CommitGraphicsRootDescriptorTables(fixture.list))
	require.Equal(t, 6, fixture.dynamic.UsedDescriptors())
	require.Len(t, fixture.binder.bound, 1)
}

func TestCommitOnlyUploadsStaleTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := readyDynamicHeap(t, ctrl, native.DescriptorHeapTypeCBVSRVUAV, 0)

	fixture.dynamic.ParseComputeRootSignature(layoutA(t, ctrl))
	fixture.dynamic.SetComputeDescriptorHandles(0, 0, []native.CPUDescriptorHandle{0xA1})
	fixture.dynamic.SetComputeDescriptorHandles(3, 0, []native.CPUDescriptorHandle{0xB1, 0xB2})

	fixture.device.EXPECT().CopyDescriptors(cpuAt(0), []native.CPUDescriptorHandle{0xA1}, native.DescriptorHeapTypeCBVSRVUAV)
	fixture.device.EXPECT().CopyDescriptors(cpuAt(4), []native.CPUDescriptorHandle{0xB1, 0xB2}, native.DescriptorHeapTypeCBVSRVUAV)
	fixture.list.EXPECT().SetComputeRootDescriptorTable(0, gpuAt(0))
	fixture.list.EXPECT().SetComputeRootDescriptorTable(3, gpuAt(4))
	require.NoError(t, fixture.dynamic.CommitComputeRootDescriptorTables(fixture.list))

	fixture.dynamic.SetComputeDescriptorHandles(3, 1, []native.CPUDescriptorHandle{0xB3})

	fixture.device.EXPECT().CopyDescriptors(cpuAt(6), []native.CPUDescriptorHandle{0xB1, 0xB3}, native.DescriptorHeapTypeCBVSRVUAV)
	fixture.list.EXPECT().SetComputeRootDescriptorTable(3, gpuAt(6))
	require.NoError(t, fixture.dynamic.CommitComputeRootDescriptorTables(fixture.list))
	require.Equal(t, 8, fixture.dynamic.UsedDescriptors())
}

func TestGraphicsAndComputeLayoutsAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := readyDynamicHeap(t, ctrl, native.DescriptorHeapTypeCBVSRVUAV, 0)

	fixture.dynamic.ParseGraphicsRootSignature(layoutA(t, ctrl))
	fixture.dynamic.ParseComputeRootSignature(layoutB(t, ctrl))
	fixture.dynamic.SetGraphicsDescriptorHandles(0, 0, []native.CPUDescriptorHandle{0xA1})

	// the compute layout has no stale tables
	require.NoError(t, fixture.dynamic.CommitComputeRootDescriptorTables(fixture.list))
	require.Nil(t, fixture.dynamic.CurrentHeap())

	require.Panics(t, func() {
		fixture.dynamic.SetComputeDescriptorHandles(0, 0, []native.CPUDescriptorHandle{0xA1})
	})
}

func TestRootSignatureChangeInvalidatesLayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := readyDynamicHeap(t, ctrl, native.DescriptorHeapTypeCBVSRVUAV, 0)

	fixture.dynamic.ParseGraphicsRootSignature(layoutA(t, ctrl))
	fixture.dynamic.SetGraphicsDescriptorHandles(0, 2, []native.CPUDescriptorHandle{0xA3})
	fixture.dynamic.SetGraphicsDescriptorHandles(3, 0, []native.CPUDescriptorHandle{0xB1})

	fixture.dynamic.ParseGraphicsRootSignature(layoutB(t, ctrl))

	// handles staged against the old layout are gone
	require.NoError(t, fixture.dynamic.CommitGraphicsRootDescriptorTables(fixture.list))
	require.Equal(t, 0, fixture.dynamic.UsedDescriptors())

	require.Panics(t, func() {
		fixture.dynamic.SetGraphicsDescriptorHandles(0, 0, []native.CPUDescriptorHandle{0xA1})
	})
	require.Panics(t, func() {
		fixture.dynamic.SetGraphicsDescriptorHandles(3, 0, []native.CPUDescriptorHandle{0xB1})
	})

	fixture.dynamic.SetGraphicsDescriptorHandles(1, 2, []native.CPUDescriptorHandle{0xC3})

	fixture.device.EXPECT().CopyDescriptors(cpuAt(2), []native.CPUDescriptorHandle{0xC3}, native.DescriptorHeapTypeCBVSRVUAV)
	fixture.list.EXPECT().SetGraphicsRootDescriptorTable(1, gpuAt(0))
	require.NoError(t, fixture.dynamic.CommitGraphicsRootDescriptorTables(fixture.list))
	require.Equal(t, 3, fixture.dynamic.UsedDescriptors())
}

func TestStagingOutsideTablePanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := readyDynamicHeap(t, ctrl, native.DescriptorHeapTypeCBVSRVUAV, 0)
	fixture.dynamic.ParseGraphicsRootSignature(layoutA(t, ctrl))

	// constants
	require.Panics(t, func() {
		fixture.dynamic.SetGraphicsDescriptorHandles(1, 0, []native.CPUDescriptorHandle{0xA1})
	})
	// sampler table on the view heap
	require.Panics(t, func() {
		fixture.dynamic.SetGraphicsDescriptorHandles(2, 0, []native.CPUDescriptorHandle{0xA1})
	})
	require.Panics(t, func() {
		fixture.dynamic.SetGraphicsDescriptorHandles(0, 3, []native.CPUDescriptorHandle{0xA1, 0xA2})
	})
	require.Panics(t, func() {
		fixture.dynamic.SetGraphicsDescriptorHandles(64, 0, []native.CPUDescriptorHandle{0xA1})
	})
}

func TestSamplerHeapOnlyStagesSamplerTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := readyDynamicHeap(t, ctrl, native.DescriptorHeapTypeSampler, 0)
	fixture.dynamic.ParseGraphicsRootSignature(layoutA(t, ctrl))

	require.Panics(t, func() {
		fixture.dynamic.SetGraphicsDescriptorHandles(0, 0, []native.CPUDescriptorHandle{0xA1})
	})

	fixture.dynamic.SetGraphicsDescriptorHandles(2, 0, []native.CPUDescriptorHandle{0x51, 0x52})
	fixture.device.EXPECT().CopyDescriptors(cpuAt(0), []native.CPUDescriptorHandle{0x51, 0x52}, native.DescriptorHeapTypeSampler)
	fixture.list.EXPECT().SetGraphicsRootDescriptorTable(2, gpuAt(0))
	require.NoError(t, fixture.dynamic.CommitGraphicsRootDescriptorTables(fixture.list))

	require.Equal(t, native.DescriptorHeapTypeSampler, fixture.binder.bound[0].heapType)
}

func TestCommitReportsExhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := readyDynamicHeap(t, ctrl, native.DescriptorHeapTypeCBVSRVUAV, 4)

	fixture.dynamic.ParseGraphicsRootSignature(layoutA(t, ctrl))
	fixture.dynamic.SetGraphicsDescriptorHandles(0, 0, []native.CPUDescriptorHandle{0xA1})
	fixture.dynamic.SetGraphicsDescriptorHandles(3, 0, []native.CPUDescriptorHandle{0xB1})

	err := fixture.dynamic.CommitGraphicsRootDescriptorTables(fixture.list)
	require.ErrorIs(t, err, ErrDescriptorHeapExhausted)
	require.Empty(t, fixture.binder.bound)
	require.Equal(t, 0, fixture.dynamic.UsedDescriptors())
}

func TestMarkAllStaleRebindsStagedTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := readyDynamicHeap(t, ctrl, native.DescriptorHeapTypeCBVSRVUAV, 0)

	fixture.dynamic.ParseGraphicsRootSignature(layoutA(t, ctrl))
	fixture.dynamic.SetGraphicsDescriptorHandles(3, 0, []native.CPUDescriptorHandle{0xB1})

	gomock.InOrder(
		fixture.device.EXPECT().CopyDescriptors(cpuAt(0), []native.CPUDescriptorHandle{0xB1}, native.DescriptorHeapTypeCBVSRVUAV),
		fixture.list.EXPECT().SetGraphicsRootDescriptorTable(3, gpuAt(0)),
		fixture.device.EXPECT().CopyDescriptors(cpuAt(2), []native.CPUDescriptorHandle{0xB1}, native.DescriptorHeapTypeCBVSRVUAV),
		fixture.list.EXPECT().SetGraphicsRootDescriptorTable(3, gpuAt(2)),
	)

	require.NoError(t, fixture.dynamic.CommitGraphicsRootDescriptorTables(fixture.list))
	fixture.dynamic.MarkAllStale()
	require.NoError(t, fixture.dynamic.CommitGraphicsRootDescriptorTables(fixture.list))
}

func TestUploadDirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := readyDynamicHeap(t, ctrl, native.DescriptorHeapTypeCBVSRVUAV, 0)

	fixture.device.EXPECT().CopyDescriptors(cpuAt(0), []native.CPUDescriptorHandle{0xD1}, native.DescriptorHeapTypeCBVSRVUAV)
	fixture.device.EXPECT().CopyDescriptors(cpuAt(1), []native.CPUDescriptorHandle{0xD2}, native.DescriptorHeapTypeCBVSRVUAV)

	first, err := fixture.dynamic.UploadDirect(0xD1)
	require.NoError(t, err)
	second, err := fixture.dynamic.UploadDirect(0xD2)
	require.NoError(t, err)

	require.Equal(t, gpuAt(0), first)
	require.Equal(t, gpuAt(1), second)
	require.Len(t, fixture.binder.bound, 2)
}

func TestCleanupRetiresHeapUntilFence(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := readyDynamicHeap(t, ctrl, native.DescriptorHeapTypeCBVSRVUAV, 0)
	fixture.device.EXPECT().CopyDescriptors(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	_, err := fixture.dynamic.UploadDirect(0xD1)
	require.NoError(t, err)
	fixture.dynamic.CleanupUsedHeaps(7)
	require.Nil(t, fixture.dynamic.CurrentHeap())
	require.Equal(t, 0, fixture.dynamic.UsedDescriptors())

	_, err = fixture.dynamic.UploadDirect(0xD1)
	require.NoError(t, err)
	require.Same(t, fixture.heaps[1], fixture.dynamic.CurrentHeap())
	fixture.dynamic.CleanupUsedHeaps(8)

	fixture.fences.completed = 7
	_, err = fixture.dynamic.UploadDirect(0xD1)
	require.NoError(t, err)
	require.Same(t, fixture.heaps[0], fixture.dynamic.CurrentHeap())
	require.Len(t, fixture.heaps, 2)

	var stats memutils.Statistics
	fixture.pool.AddStatistics(&stats)
	require.Equal(t, 2, stats.BlockCount)
	require.Equal(t, 2*DefaultDescriptorsPerHeap*testIncrement, stats.BlockBytes)

	writer := jwriter.NewWriter()
	obj := writer.Object()
	fixture.pool.PrintDetailedMap(&obj)
	obj.End()
	require.JSONEq(t, `{
		"HeapType": "CBVSRVUAV",
		"DescriptorsPerHeap": 1024,
		"Heaps": 2,
		"AvailableHeaps": 0,
		"RetiredHeaps": 1,
		"Requests": 3
	}`, string(writer.Bytes()))
}

func TestHeapPoolRejectsCPUOnlyHeapTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mock_native.NewMockDevice(ctrl)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	_, err := NewHeapPool(logger, device, &fakeFences{}, native.DescriptorHeapTypeRTV, 0, false)
	require.Error(t, err)
}
