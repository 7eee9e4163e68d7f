package native

import "fmt"

type BarrierType uint32

const (
	BarrierTypeTransition BarrierType = iota
	BarrierTypeAliasing
	BarrierTypeUAV
)

var barrierTypeMapping = map[BarrierType]string{
	BarrierTypeTransition: "Transition",
	BarrierTypeAliasing:   "Aliasing",
	BarrierTypeUAV:        "UAV",
}

func (t BarrierType) String() string {
	return barrierTypeMapping[t]
}

// AllSubresources targets every subresource of a resource in a transition barrier
const AllSubresources uint32 = 0xffffffff

// ResourceBarrier describes a single synchronization event recorded with CommandList.ResourceBarrier.
//
// Transition barriers use Resource, Subresource, StateBefore and StateAfter. UAV barriers use Resource
// only; a nil Resource waits on all unordered-access writes. Aliasing barriers use ResourceBefore and
// Resource (the resource becoming active).
type ResourceBarrier struct {
	Type BarrierType

	Resource       Resource
	ResourceBefore Resource
	Subresource    uint32
	StateBefore    ResourceStates
	StateAfter     ResourceStates
}

func (b ResourceBarrier) String() string {
	switch b.Type {
	case BarrierTypeTransition:
		return fmt.Sprintf("Transition(%s -> %s)", b.StateBefore, b.StateAfter)
	default:
		return b.Type.String()
	}
}
