package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/cmdkit/native"
	mock_native "github.com/vkngwrapper/cmdkit/native/mocks"
	"github.com/vkngwrapper/cmdkit/pipeline"
	"go.uber.org/mock/gomock"
)

func TestRootSignatureTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	nativeSig := mock_native.NewMockRootSignature(ctrl)

	sig, err := pipeline.NewRootSignature(nativeSig, []pipeline.RootParameter{
		{Type: pipeline.RootParameterCBV},
		{Type: pipeline.RootParameterDescriptorTable, Ranges: []pipeline.DescriptorRange{
			{Type: pipeline.DescriptorRangeSRV, Count: 4},
			{Type: pipeline.DescriptorRangeUAV, Count: 2},
		}},
		{Type: pipeline.RootParameterDescriptorTable, Ranges: []pipeline.DescriptorRange{
			{Type: pipeline.DescriptorRangeSampler, Count: 3},
		}},
		{Type: pipeline.RootParameter32BitConstants, Num32BitValues: 4},
	})
	require.NoError(t, err)

	require.Same(t, nativeSig, sig.Native())
	require.Equal(t, 4, sig.ParameterCount())
	require.Equal(t, uint64(0b0010), sig.DescriptorTableBitMap(native.DescriptorHeapTypeCBVSRVUAV))
	require.Equal(t, uint64(0b0100), sig.DescriptorTableBitMap(native.DescriptorHeapTypeSampler))
	require.Equal(t, 0, sig.DescriptorTableSize(0))
	require.Equal(t, 6, sig.DescriptorTableSize(1))
	require.Equal(t, 3, sig.DescriptorTableSize(2))
	require.Equal(t, 0, sig.DescriptorTableSize(3))
}

func TestRootSignatureRejectsMixedTables(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := pipeline.NewRootSignature(mock_native.NewMockRootSignature(ctrl), []pipeline.RootParameter{
		{Type: pipeline.RootParameterDescriptorTable, Ranges: []pipeline.DescriptorRange{
			{Type: pipeline.DescriptorRangeSRV, Count: 1},
			{Type: pipeline.DescriptorRangeSampler, Count: 1},
		}},
	})
	require.Error(t, err)

	_, err = pipeline.NewRootSignature(mock_native.NewMockRootSignature(ctrl), []pipeline.RootParameter{
		{Type: pipeline.RootParameterDescriptorTable},
	})
	require.Error(t, err)

	_, err = pipeline.NewRootSignature(nil, nil)
	require.Error(t, err)
}

func TestPSOKeepsRootSignature(t *testing.T) {
	ctrl := gomock.NewController(t)

	sig, err := pipeline.NewRootSignature(mock_native.NewMockRootSignature(ctrl), nil)
	require.NoError(t, err)

	nativePSO := mock_native.NewMockPipelineState(ctrl)
	graphics, err := pipeline.NewGraphicsPSO(nativePSO, sig)
	require.NoError(t, err)
	require.Same(t, sig, graphics.RootSignature())
	require.Same(t, nativePSO, graphics.Native())

	_, err = pipeline.NewComputePSO(nativePSO, nil)
	require.Error(t, err)
}
