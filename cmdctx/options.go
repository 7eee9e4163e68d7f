package cmdctx

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/vkngwrapper/core/v2/common"
)

// CreateFlags indicate specific manager behaviors to activate or deactivate
type CreateFlags int32

var managerCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	managerCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return managerCreateFlagsMapping.FlagsToString(f)
}

const (
	// ManagerCreateExternallySynchronized ensures that the manager and the page managers and heap
	// pools it owns will not be synchronized internally. The consumer must guarantee that contexts are
	// allocated, finished and freed from only one goroutine at a time.
	ManagerCreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	ManagerCreateExternallySynchronized.Register("ManagerCreateExternallySynchronized")
}

// CreateOptions contains optional settings when creating a Manager. It is valid to leave all the
// fields blank.
type CreateOptions struct {
	// Flags indicates specific manager behaviors to activate or deactivate
	Flags CreateFlags
	// CPUPageSize is the size of the upload pages dynamic constant, vertex and index data is
	// written to. Defaults to linear.CPUAllocatorPageSize.
	CPUPageSize int
	// GPUPageSize is the size of the device-local scratch pages. Defaults to
	// linear.GPUAllocatorPageSize.
	GPUPageSize int
	// ViewDescriptorsPerHeap is the size of each shader-visible CBV/SRV/UAV heap segment a context
	// commits descriptor tables to. Defaults to descriptor.DefaultDescriptorsPerHeap.
	ViewDescriptorsPerHeap int
	// SamplerDescriptorsPerHeap is the size of each shader-visible sampler heap segment. Defaults
	// to descriptor.DefaultDescriptorsPerHeap.
	SamplerDescriptorsPerHeap int
}

type fileOptions struct {
	ExternallySynchronized    bool `toml:"externally_synchronized"`
	CPUPageSize               int  `toml:"cpu_page_size"`
	GPUPageSize               int  `toml:"gpu_page_size"`
	ViewDescriptorsPerHeap    int  `toml:"view_descriptors_per_heap"`
	SamplerDescriptorsPerHeap int  `toml:"sampler_descriptors_per_heap"`
}

// LoadOptions reads CreateOptions from a TOML document. Unknown keys are rejected.
//
//	externally_synchronized = false
//	cpu_page_size = 2097152
//	gpu_page_size = 65536
//	view_descriptors_per_heap = 1024
//	sampler_descriptors_per_heap = 1024
func LoadOptions(r io.Reader) (CreateOptions, error) {
	var file fileOptions
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file)
	if err != nil {
		return CreateOptions{}, errors.Wrap(err, "failed to decode command context options")
	}

	options := CreateOptions{
		CPUPageSize:               file.CPUPageSize,
		GPUPageSize:               file.GPUPageSize,
		ViewDescriptorsPerHeap:    file.ViewDescriptorsPerHeap,
		SamplerDescriptorsPerHeap: file.SamplerDescriptorsPerHeap,
	}
	if file.ExternallySynchronized {
		options.Flags |= ManagerCreateExternallySynchronized
	}

	return options, options.validate()
}

func (o CreateOptions) validate() error {
	if o.CPUPageSize < 0 || o.GPUPageSize < 0 {
		return errors.Newf("page sizes must not be negative (cpu %d, gpu %d)", o.CPUPageSize, o.GPUPageSize)
	}
	if o.ViewDescriptorsPerHeap < 0 || o.SamplerDescriptorsPerHeap < 0 {
		return errors.Newf("descriptor heap sizes must not be negative (view %d, sampler %d)",
			o.ViewDescriptorsPerHeap, o.SamplerDescriptorsPerHeap)
	}
	return nil
}
