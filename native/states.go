package native

import "github.com/vkngwrapper/core/v2/common"

// ResourceStates is a set of usage states a resource can be in on the GPU timeline
type ResourceStates int32

var resourceStatesMapping = common.NewFlagStringMapping[ResourceStates]()

func (f ResourceStates) Register(str string) {
	resourceStatesMapping.Register(f, str)
}
func (f ResourceStates) String() string {
	if f == ResourceStateCommon {
		return "ResourceStateCommon"
	}
	return resourceStatesMapping.FlagsToString(f)
}

const (
	ResourceStateVertexAndConstantBuffer ResourceStates = 1 << iota
	ResourceStateIndexBuffer
	ResourceStateRenderTarget
	ResourceStateUnorderedAccess
	ResourceStateDepthWrite
	ResourceStateDepthRead
	ResourceStateNonPixelShaderResource
	ResourceStatePixelShaderResource
	ResourceStateStreamOut
	ResourceStateIndirectArgument
	ResourceStateCopyDest
	ResourceStateCopySource
	ResourceStateResolveDest
	ResourceStateResolveSource

	// ResourceStateCommon is the state resources decay to, and the state a swap chain buffer
	// must be in to be presented
	ResourceStateCommon ResourceStates = 0
	// ResourceStatePresent is an alias of ResourceStateCommon
	ResourceStatePresent = ResourceStateCommon

	ResourceStateGenericRead = ResourceStateVertexAndConstantBuffer | ResourceStateIndexBuffer |
		ResourceStateNonPixelShaderResource | ResourceStatePixelShaderResource |
		ResourceStateIndirectArgument | ResourceStateCopySource

	// ValidComputeQueueResourceStates is the set of states a compute queue is able to transition
	// resources into
	ValidComputeQueueResourceStates = ResourceStateUnorderedAccess | ResourceStateNonPixelShaderResource |
		ResourceStateCopyDest | ResourceStateCopySource
)

func init() {
	ResourceStateVertexAndConstantBuffer.Register("ResourceStateVertexAndConstantBuffer")
	ResourceStateIndexBuffer.Register("ResourceStateIndexBuffer")
	ResourceStateRenderTarget.Register("ResourceStateRenderTarget")
	ResourceStateUnorderedAccess.Register("ResourceStateUnorderedAccess")
	ResourceStateDepthWrite.Register("ResourceStateDepthWrite")
	ResourceStateDepthRead.Register("ResourceStateDepthRead")
	ResourceStateNonPixelShaderResource.Register("ResourceStateNonPixelShaderResource")
	ResourceStatePixelShaderResource.Register("ResourceStatePixelShaderResource")
	ResourceStateStreamOut.Register("ResourceStateStreamOut")
	ResourceStateIndirectArgument.Register("ResourceStateIndirectArgument")
	ResourceStateCopyDest.Register("ResourceStateCopyDest")
	ResourceStateCopySource.Register("ResourceStateCopySource")
	ResourceStateResolveDest.Register("ResourceStateResolveDest")
	ResourceStateResolveSource.Register("ResourceStateResolveSource")
}

// ClearFlags selects the aspects of a depth-stencil view that are cleared
type ClearFlags int32

var clearFlagsMapping = common.NewFlagStringMapping[ClearFlags]()

func (f ClearFlags) Register(str string) {
	clearFlagsMapping.Register(f, str)
}
func (f ClearFlags) String() string {
	return clearFlagsMapping.FlagsToString(f)
}

const (
	ClearFlagDepth ClearFlags = 1 << iota
	ClearFlagStencil
)

func init() {
	ClearFlagDepth.Register("ClearFlagDepth")
	ClearFlagStencil.Register("ClearFlagStencil")
}
