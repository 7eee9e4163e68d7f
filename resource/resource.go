// Package resource wraps native GPU resources with the usage state that command contexts
// track while recording barriers.
//
// A resource's usage state belongs to whichever command context currently has exclusive
// recording rights over the resource. Command contexts update the state optimistically at
// record time, so two contexts transitioning the same resource without a fence between them
// (or a scheduling discipline that keeps them apart) race on the state. No lock guards it.
package resource

import (
	"github.com/vkngwrapper/cmdkit/native"
)

// Tracked is implemented by every type that embeds a GpuResource, and lets them be passed
// directly to barrier and copy operations
type Tracked interface {
	Tracked() *GpuResource
}

// GpuResource is a native resource plus the usage state it will be in on the GPU timeline
// once every barrier recorded so far has executed
type GpuResource struct {
	native     native.Resource
	usageState native.ResourceStates
	gpuAddress native.GPUVirtualAddress
}

var _ Tracked = &GpuResource{}

// NewGpuResource wraps a native resource that is currently in initialState
func NewGpuResource(nativeResource native.Resource, initialState native.ResourceStates) *GpuResource {
	r := &GpuResource{}
	r.Init(nativeResource, initialState)
	return r
}

// Init points the GpuResource at a native resource that is currently in initialState
func (r *GpuResource) Init(nativeResource native.Resource, initialState native.ResourceStates) {
	r.native = nativeResource
	r.usageState = initialState
	if nativeResource != nil {
		r.gpuAddress = nativeResource.GPUVirtualAddress()
	}
}

func (r *GpuResource) Tracked() *GpuResource { return r }

func (r *GpuResource) Native() native.Resource { return r.native }

func (r *GpuResource) GPUVirtualAddress() native.GPUVirtualAddress { return r.gpuAddress }

func (r *GpuResource) UsageState() native.ResourceStates { return r.usageState }

// SetUsageState records the state the resource will be in after the barriers recorded so far.
// Only the command context recording barriers for this resource should call it.
func (r *GpuResource) SetUsageState(state native.ResourceStates) { r.usageState = state }

// Destroy releases the native resource
func (r *GpuResource) Destroy() {
	if r.native != nil {
		r.native.Release()
		r.native = nil
	}
	r.gpuAddress = 0
}
