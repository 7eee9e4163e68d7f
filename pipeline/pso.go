package pipeline

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/cmdkit/native"
)

type pso struct {
	native        native.PipelineState
	rootSignature *RootSignature
}

// Native returns the compiled pipeline state object
func (p *pso) Native() native.PipelineState { return p.native }

// RootSignature returns the root signature this pipeline was compiled against
func (p *pso) RootSignature() *RootSignature { return p.rootSignature }

func newPSO(nativePSO native.PipelineState, rootSignature *RootSignature) (pso, error) {
	if nativePSO == nil {
		return pso{}, errors.New("a pipeline requires a compiled native pipeline state object")
	}
	if rootSignature == nil {
		return pso{}, errors.New("a pipeline requires the root signature it was compiled against")
	}

	return pso{native: nativePSO, rootSignature: rootSignature}, nil
}

// GraphicsPSO is a compiled graphics pipeline
type GraphicsPSO struct {
	pso
}

func NewGraphicsPSO(nativePSO native.PipelineState, rootSignature *RootSignature) (*GraphicsPSO, error) {
	p, err := newPSO(nativePSO, rootSignature)
	if err != nil {
		return nil, err
	}
	return &GraphicsPSO{pso: p}, nil
}

// ComputePSO is a compiled compute pipeline
type ComputePSO struct {
	pso
}

func NewComputePSO(nativePSO native.PipelineState, rootSignature *RootSignature) (*ComputePSO, error) {
	p, err := newPSO(nativePSO, rootSignature)
	if err != nil {
		return nil, err
	}
	return &ComputePSO{pso: p}, nil
}
