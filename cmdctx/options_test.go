package cmdctx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	options, err := LoadOptions(strings.NewReader(`
externally_synchronized = true
cpu_page_size = 4194304
view_descriptors_per_heap = 4096
`))
	require.NoError(t, err)
	require.Equal(t, CreateOptions{
		Flags:                  ManagerCreateExternallySynchronized,
		CPUPageSize:            4194304,
		ViewDescriptorsPerHeap: 4096,
	}, options)
	require.Equal(t, "ManagerCreateExternallySynchronized", options.Flags.String())
}

func TestLoadOptionsRejectsUnknownKeys(t *testing.T) {
	_, err := LoadOptions(strings.NewReader(`cpu_page_bytes = 12`))
	require.Error(t, err)
}

func TestLoadOptionsRejectsNegativeSizes(t *testing.T) {
	_, err := LoadOptions(strings.NewReader(`gpu_page_size = -1`))
	require.Error(t, err)

	_, err = LoadOptions(strings.NewReader(`sampler_descriptors_per_heap = -8`))
	require.Error(t, err)
}

func TestEmptyOptionsUseDefaults(t *testing.T) {
	options, err := LoadOptions(strings.NewReader(``))
	require.NoError(t, err)
	require.Equal(t, CreateOptions{}, options)

	f := readyFixture(t, options)
	require.Equal(t, 2*1024*1024, f.manager.cpuPages.PageSize())
	require.Equal(t, 64*1024, f.manager.gpuPages.PageSize())
	require.Equal(t, 1024, f.manager.viewHeaps.DescriptorsPerHeap())
	require.Equal(t, 1024, f.manager.samplerHeaps.DescriptorsPerHeap())
}
