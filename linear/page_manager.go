package linear

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/cmdkit/internal/utils"
	"github.com/vkngwrapper/cmdkit/memutils"
	"github.com/vkngwrapper/cmdkit/native"
	"golang.org/x/exp/slog"
)

// FenceTracker reports whether the GPU has passed a fence value
type FenceTracker interface {
	IsFenceComplete(fenceValue uint64) bool
}

type retiredPage struct {
	fenceValue uint64
	page       *Page
}

// PageManager owns every page of one AllocatorKind. Pages handed back with a fence value are only
// reused, or destroyed in the case of large pages, once the GPU has passed that fence.
type PageManager struct {
	logger   *slog.Logger
	device   native.Device
	fences   FenceTracker
	kind     AllocatorKind
	pageSize int

	mutex          utils.OptionalMutex
	pagePool       []*Page
	availablePages utils.Queue[*Page]
	retiredPages   utils.Queue[retiredPage]
	deletionQueue  utils.Queue[retiredPage]
	largePageCount int
	largePageBytes int
}

// NewPageManager creates a PageManager for pages of pageSize bytes. A pageSize of 0 selects the
// default size for the kind.
func NewPageManager(logger *slog.Logger, device native.Device, fences FenceTracker, kind AllocatorKind, pageSize int, useMutex bool) *PageManager {
	if pageSize == 0 {
		pageSize = GPUAllocatorPageSize
		if kind == KindCPUWritable {
			pageSize = CPUAllocatorPageSize
		}
	}

	return &PageManager{
		logger:   logger,
		device:   device,
		fences:   fences,
		kind:     kind,
		pageSize: pageSize,
		mutex:    utils.OptionalMutex{UseMutex: useMutex},
	}
}

func (m *PageManager) Kind() AllocatorKind { return m.kind }

func (m *PageManager) PageSize() int { return m.pageSize }

// RequestPage returns a page that no in-flight GPU work references, creating one if none is free
func (m *PageManager) RequestPage() (*Page, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for {
		retired, ok := m.retiredPages.Front()
		if !ok || !m.fences.IsFenceComplete(retired.fenceValue) {
			break
		}
		_, _ = m.retiredPages.Pop()
		m.availablePages.Push(retired.page)
	}

	page, ok := m.availablePages.Pop()
	if ok {
		return page, nil
	}

	m.logger.Debug("PageManager::RequestPage creating page",
		slog.String("Kind", m.kind.String()),
		slog.Int("PageSize", m.pageSize),
		slog.Int("PageCount", len(m.pagePool)+1),
	)

	page, err := createPage(m.device, m.kind, m.pageSize)
	if err != nil {
		return nil, err
	}
	m.pagePool = append(m.pagePool, page)

	return page, nil
}

// CreateLargePage creates a dedicated page for an allocation that does not fit in a standard page
func (m *PageManager) CreateLargePage(size int) (*Page, error) {
	m.logger.Debug("PageManager::CreateLargePage", slog.String("Kind", m.kind.String()), slog.Int("Size", size))

	page, err := createPage(m.device, m.kind, size)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.largePageCount++
	m.largePageBytes += size

	return page, nil
}

// DiscardPages returns standard pages for reuse once the GPU has passed fenceValue
func (m *PageManager) DiscardPages(fenceValue uint64, pages []*Page) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, page := range pages {
		m.retiredPages.Push(retiredPage{fenceValue: fenceValue, page: page})
	}
}

// FreeLargePages destroys large pages once the GPU has passed fenceValue. Large pages handed back
// earlier whose fences have completed are destroyed immediately.
func (m *PageManager) FreeLargePages(fenceValue uint64, pages []*Page) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for {
		retired, ok := m.deletionQueue.Front()
		if !ok || !m.fences.IsFenceComplete(retired.fenceValue) {
			break
		}
		_, _ = m.deletionQueue.Pop()
		m.destroyLargePageAfterLock(retired.page)
	}

	for _, page := range pages {
		m.deletionQueue.Push(retiredPage{fenceValue: fenceValue, page: page})
	}
}

func (m *PageManager) destroyLargePageAfterLock(page *Page) {
	m.largePageCount--
	m.largePageBytes -= page.size
	page.destroy()
}

// Destroy releases every page. The caller must guarantee the GPU is idle.
func (m *PageManager) Destroy() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, page := range m.pagePool {
		page.destroy()
	}
	m.pagePool = nil
	m.availablePages.Clear()
	m.retiredPages.Clear()

	m.deletionQueue.Each(func(retired retiredPage) {
		m.destroyLargePageAfterLock(retired.page)
	})
	m.deletionQueue.Clear()
}

// AddStatistics sums the pages held by this manager into stats
func (m *PageManager) AddStatistics(stats *memutils.Statistics) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	stats.BlockCount += len(m.pagePool) + m.largePageCount
	stats.BlockBytes += len(m.pagePool)*m.pageSize + m.largePageBytes
}

// PrintDetailedMap writes the page counts of this manager as a json object
func (m *PageManager) PrintDetailedMap(json *jwriter.ObjectState) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	json.Name("Kind").String(m.kind.String())
	json.Name("PageSize").Int(m.pageSize)
	json.Name("Pages").Int(len(m.pagePool))
	json.Name("AvailablePages").Int(m.availablePages.Len())
	json.Name("RetiredPages").Int(m.retiredPages.Len())
	json.Name("LargePages").Int(m.largePageCount)
	json.Name("LargePageBytes").Int(m.largePageBytes)
}
