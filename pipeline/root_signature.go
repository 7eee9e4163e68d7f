package pipeline

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/cmdkit/native"
)

// MaxRootParameters is the largest number of root parameters a RootSignature can describe
const MaxRootParameters = 64

type RootParameterType uint32

const (
	RootParameterDescriptorTable RootParameterType = iota
	RootParameter32BitConstants
	RootParameterCBV
	RootParameterSRV
	RootParameterUAV
)

var rootParameterTypeMapping = map[RootParameterType]string{
	RootParameterDescriptorTable: "DescriptorTable",
	RootParameter32BitConstants:  "32BitConstants",
	RootParameterCBV:             "CBV",
	RootParameterSRV:             "SRV",
	RootParameterUAV:             "UAV",
}

func (t RootParameterType) String() string {
	return rootParameterTypeMapping[t]
}

type DescriptorRangeType uint32

const (
	DescriptorRangeSRV DescriptorRangeType = iota
	DescriptorRangeUAV
	DescriptorRangeCBV
	DescriptorRangeSampler
)

// HeapType returns the descriptor heap type that descriptors of this range live in
func (t DescriptorRangeType) HeapType() native.DescriptorHeapType {
	if t == DescriptorRangeSampler {
		return native.DescriptorHeapTypeSampler
	}
	return native.DescriptorHeapTypeCBVSRVUAV
}

// DescriptorRange is a run of Count descriptors of a single type within a descriptor table
type DescriptorRange struct {
	Type               DescriptorRangeType
	Count              int
	BaseShaderRegister int
	RegisterSpace      int
}

// RootParameter describes one slot of a root signature. Ranges is only used by
// RootParameterDescriptorTable and Num32BitValues only by RootParameter32BitConstants.
type RootParameter struct {
	Type           RootParameterType
	Ranges         []DescriptorRange
	Num32BitValues int
	ShaderRegister int
	RegisterSpace  int
}

// RootSignature pairs a compiled native root signature with the layout it was compiled from.
// Command contexts compare root signatures by the identity of the native object.
type RootSignature struct {
	native     native.RootSignature
	parameters []RootParameter

	descriptorTableBitMap [native.DescriptorHeapTypeCount]uint64
	descriptorTableSize   [MaxRootParameters]int
}

// NewRootSignature builds a RootSignature from a compiled native root signature and the parameters
// it was compiled from. Each descriptor table must hold only samplers or only non-sampler ranges.
func NewRootSignature(nativeSignature native.RootSignature, parameters []RootParameter) (*RootSignature, error) {
	if nativeSignature == nil {
		return nil, errors.New("a root signature requires a compiled native root signature")
	}
	if len(parameters) > MaxRootParameters {
		return nil, errors.Newf("root signature has %d parameters, but at most %d are supported", len(parameters), MaxRootParameters)
	}

	signature := &RootSignature{
		native:     nativeSignature,
		parameters: append([]RootParameter(nil), parameters...),
	}

	for rootIndex, param := range parameters {
		if param.Type != RootParameterDescriptorTable {
			continue
		}

		if len(param.Ranges) == 0 {
			return nil, errors.Newf("descriptor table at root index %d has no ranges", rootIndex)
		}

		heapType := param.Ranges[0].Type.HeapType()
		tableSize := 0
		for rangeIndex, descRange := range param.Ranges {
			if descRange.Type.HeapType() != heapType {
				return nil, errors.Newf("descriptor table at root index %d mixes %s and %s ranges (range %d)",
					rootIndex, heapType, descRange.Type.HeapType(), rangeIndex)
			}
			if descRange.Count <= 0 {
				return nil, errors.Newf("descriptor range %d at root index %d has a count of %d", rangeIndex, rootIndex, descRange.Count)
			}
			tableSize += descRange.Count
		}

		signature.descriptorTableBitMap[heapType] |= 1 << uint(rootIndex)
		signature.descriptorTableSize[rootIndex] = tableSize
	}

	return signature, nil
}

// Native returns the compiled root signature
func (s *RootSignature) Native() native.RootSignature { return s.native }

func (s *RootSignature) ParameterCount() int { return len(s.parameters) }

func (s *RootSignature) Parameter(rootIndex int) RootParameter { return s.parameters[rootIndex] }

// DescriptorTableBitMap returns a bitmask with bit i set when root parameter i is a descriptor
// table of descriptors in heapType
func (s *RootSignature) DescriptorTableBitMap(heapType native.DescriptorHeapType) uint64 {
	return s.descriptorTableBitMap[heapType]
}

// DescriptorTableSize returns the number of descriptors in the table at rootIndex, or 0 if that
// parameter is not a descriptor table
func (s *RootSignature) DescriptorTableSize(rootIndex int) int {
	if rootIndex < 0 || rootIndex >= MaxRootParameters {
		return 0
	}
	return s.descriptorTableSize[rootIndex]
}
