package cache

// SetHeapReaderForTest replaces the heap probe used by the supervisor.
func (c *Cache) SetHeapReaderForTest(f func() uint64) {
	c.readHeap = f
}

// CheckPressureForTest runs one supervisor iteration synchronously.
func (c *Cache) CheckPressureForTest() {
	c.checkPressure()
}
