package descriptor

import (
	"fmt"
	"math/bits"

	"github.com/vkngwrapper/cmdkit/native"
	"github.com/vkngwrapper/cmdkit/pipeline"
)

type tableCache struct {
	assigned []uint64
	start    int
	size     int
}

func (t *tableCache) isAssigned(index int) bool {
	return t.assigned[index/64]&(1<<uint(index%64)) != 0
}

func (t *tableCache) hasAssigned() bool {
	for _, word := range t.assigned {
		if word != 0 {
			return true
		}
	}
	return false
}

// handleCache stages the CPU descriptor handles of every descriptor table of one heap type in the
// bound root signature
type handleCache struct {
	heapType native.DescriptorHeapType

	tableBitMap uint64
	staleBitMap uint64
	tables      [pipeline.MaxRootParameters]tableCache
	handles     []native.CPUDescriptorHandle
}

func (c *handleCache) clear() {
	c.tableBitMap = 0
	c.staleBitMap = 0
	c.tables = [pipeline.MaxRootParameters]tableCache{}
	c.handles = c.handles[:0]
}

func (c *handleCache) parse(signature *pipeline.RootSignature) {
	c.clear()
	if signature == nil {
		return
	}

	c.tableBitMap = signature.DescriptorTableBitMap(c.heapType)

	offset := 0
	tableBitMap := c.tableBitMap
	for tableBitMap != 0 {
		rootIndex := bits.TrailingZeros64(tableBitMap)
		tableBitMap &^= 1 << uint(rootIndex)

		size := signature.DescriptorTableSize(rootIndex)
		c.tables[rootIndex] = tableCache{
			assigned: make([]uint64, (size+63)/64),
			start:    offset,
			size:     size,
		}
		offset += size
	}

	if cap(c.handles) < offset {
		c.handles = make([]native.CPUDescriptorHandle, offset)
	} else {
		c.handles = c.handles[:offset]
		for i := range c.handles {
			c.handles[i] = native.NullCPUDescriptorHandle
		}
	}
}

func (c *handleCache) stage(rootIndex, offset int, handles []native.CPUDescriptorHandle) {
	if rootIndex < 0 || rootIndex >= pipeline.MaxRootParameters || c.tableBitMap&(1<<uint(rootIndex)) == 0 {
		panic(fmt.Sprintf("root index %d is not a %s descriptor table in the bound root signature", rootIndex, c.heapType))
	}

	table := &c.tables[rootIndex]
	if offset < 0 || offset+len(handles) > table.size {
		panic(fmt.Sprintf("staging %d descriptors at offset %d overruns the %d descriptor table at root index %d",
			len(handles), offset, table.size, rootIndex))
	}

	if len(handles) == 0 {
		return
	}

	copy(c.handles[table.start+offset:], handles)
	for i := offset; i < offset+len(handles); i++ {
		table.assigned[i/64] |= 1 << uint(i%64)
	}
	c.staleBitMap |= 1 << uint(rootIndex)
}

// staleSize returns the number of descriptors a commit of every stale table needs
func (c *handleCache) staleSize() int {
	size := 0
	stale := c.staleBitMap
	for stale != 0 {
		rootIndex := bits.TrailingZeros64(stale)
		stale &^= 1 << uint(rootIndex)
		size += c.tables[rootIndex].size
	}
	return size
}

// runs calls copyRun once per contiguous run of assigned handles in the table at rootIndex
func (c *handleCache) runs(rootIndex int, copyRun func(tableOffset int, handles []native.CPUDescriptorHandle)) {
	table := &c.tables[rootIndex]

	i := 0
	for i < table.size {
		if !table.isAssigned(i) {
			i++
			continue
		}

		runStart := i
		for i < table.size && table.isAssigned(i) {
			i++
		}
		copyRun(runStart, c.handles[table.start+runStart:table.start+i])
	}
}

func (c *handleCache) markAllStale() {
	c.staleBitMap = 0
	tableBitMap := c.tableBitMap
	for tableBitMap != 0 {
		rootIndex := bits.TrailingZeros64(tableBitMap)
		tableBitMap &^= 1 << uint(rootIndex)
		if c.tables[rootIndex].hasAssigned() {
			c.staleBitMap |= 1 << uint(rootIndex)
		}
	}
}
