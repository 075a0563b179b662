// Package cache implements the category-budgeted response cache. Five fixed
// categories each hold a bounded number of items; a background supervisor
// watches the total byte budget and process heap and clears categories in
// priority order under pressure.
package cache

import (
	"container/list"
	"runtime"
	"sync"
	"time"

	"roteiro/backend/pkg/logger"
)

// Category names. Critical entries survive emergency clears the longest.
const (
	CategoryCritical  = "critical"
	CategorySession   = "session"
	CategoryAPI       = "api"
	CategoryStatic    = "static"
	CategoryTemporary = "temporary"
)

// Default per-category item ceilings.
var defaultCeilings = map[string]int{
	CategoryCritical:  100,
	CategorySession:   300,
	CategoryAPI:       500,
	CategoryStatic:    200,
	CategoryTemporary: 300,
}

// budgetThreshold triggers an emergency clear when total size crosses this
// fraction of the byte budget.
const budgetThreshold = 0.8

const defaultSupervisorInterval = 5 * time.Second

// perEntryOverhead approximates bookkeeping cost beyond key and value bytes.
const perEntryOverhead = 64

type entry struct {
	key        string
	value      string
	size       int64
	lastAccess time.Time
}

type category struct {
	items   map[string]*list.Element
	order   *list.List // front = oldest insertion
	ceiling int
	size    int64
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits            int64
	Misses          int64
	Evictions       int64
	EmergencyClears int64
	Items           map[string]int
	Sizes           map[string]int64
	TotalSize       int64
}

// Options configures the cache.
type Options struct {
	// BudgetBytes caps the approximate total size across categories.
	BudgetBytes int64
	// HeapPressureBytes triggers an emergency clear when the process heap
	// exceeds it. Zero disables the heap check.
	HeapPressureBytes int64
	// SupervisorInterval is how often the background check runs.
	SupervisorInterval time.Duration
	// Ceilings overrides per-category item limits.
	Ceilings map[string]int
}

// Cache is the category-budgeted store. Eviction at a category's ceiling is
// by insertion order (FIFO) even though Get refreshes an item's position;
// this mirrors the historical behavior and is intentionally left as-is.
type Cache struct {
	mu         sync.Mutex
	categories map[string]*category
	budget     int64
	pressure   int64
	interval   time.Duration
	readHeap   func() uint64

	hits            int64
	misses          int64
	evictions       int64
	emergencyClears int64

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a cache; call Start to run the supervisor.
func New(opts Options) *Cache {
	if opts.SupervisorInterval <= 0 {
		opts.SupervisorInterval = defaultSupervisorInterval
	}

	categories := make(map[string]*category, len(defaultCeilings))
	for name, ceiling := range defaultCeilings {
		if override, ok := opts.Ceilings[name]; ok && override > 0 {
			ceiling = override
		}
		categories[name] = &category{
			items:   make(map[string]*list.Element),
			order:   list.New(),
			ceiling: ceiling,
		}
	}

	return &Cache{
		categories: categories,
		budget:     opts.BudgetBytes,
		pressure:   opts.HeapPressureBytes,
		interval:   opts.SupervisorInterval,
		readHeap:   readHeapAlloc,
		stopCh:     make(chan struct{}),
	}
}

func readHeapAlloc() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapAlloc
}

// Set stores value under (categoryName, key). Unknown categories are
// ignored. At the ceiling the single oldest-inserted item is evicted first.
func (c *Cache) Set(categoryName, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cat, ok := c.categories[categoryName]
	if !ok {
		return
	}

	if elem, exists := cat.items[key]; exists {
		old := elem.Value.(*entry)
		cat.size -= old.size
		cat.order.Remove(elem)
		delete(cat.items, key)
	}

	if cat.order.Len() >= cat.ceiling {
		c.evictOldest(cat)
	}

	e := &entry{
		key:        key,
		value:      value,
		size:       int64(len(key)+len(value)) + perEntryOverhead,
		lastAccess: time.Now(),
	}
	cat.items[key] = cat.order.PushBack(e)
	cat.size += e.size
}

// Get returns the cached value and refreshes the item's position, moving it
// to the back of the order list.
func (c *Cache) Get(categoryName, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cat, ok := c.categories[categoryName]
	if !ok {
		c.misses++
		return "", false
	}

	elem, exists := cat.items[key]
	if !exists {
		c.misses++
		return "", false
	}

	e := elem.Value.(*entry)
	e.lastAccess = time.Now()
	cat.order.MoveToBack(elem)
	c.hits++
	return e.value, true
}

// Delete removes one item.
func (c *Cache) Delete(categoryName, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cat, ok := c.categories[categoryName]
	if !ok {
		return
	}
	if elem, exists := cat.items[key]; exists {
		cat.size -= elem.Value.(*entry).size
		cat.order.Remove(elem)
		delete(cat.items, key)
	}
}

// Clear empties one category.
func (c *Cache) Clear(categoryName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked(categoryName)
}

func (c *Cache) clearLocked(categoryName string) {
	cat, ok := c.categories[categoryName]
	if !ok {
		return
	}
	cat.items = make(map[string]*list.Element)
	cat.order.Init()
	cat.size = 0
}

func (c *Cache) evictOldest(cat *category) {
	front := cat.order.Front()
	if front == nil {
		return
	}
	e := front.Value.(*entry)
	cat.size -= e.size
	cat.order.Remove(front)
	delete(cat.items, e.key)
	c.evictions++
}

// Stats returns a snapshot of counters and sizes.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Hits:            c.hits,
		Misses:          c.misses,
		Evictions:       c.evictions,
		EmergencyClears: c.emergencyClears,
		Items:           make(map[string]int, len(c.categories)),
		Sizes:           make(map[string]int64, len(c.categories)),
	}
	for name, cat := range c.categories {
		s.Items[name] = cat.order.Len()
		s.Sizes[name] = cat.size
		s.TotalSize += cat.size
	}
	return s
}

// Start launches the background supervisor.
func (c *Cache) Start() {
	c.wg.Add(1)
	go c.supervise()
	logger.Info("cache supervisor started", "interval", c.interval, "budget_bytes", c.budget)
}

// Stop terminates the supervisor and waits for it to exit.
func (c *Cache) Stop() {
	close(c.stopCh)
	c.wg.Wait()
	logger.Info("cache supervisor stopped")
}

func (c *Cache) supervise() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.checkPressure()
		case <-c.stopCh:
			return
		}
	}
}

func (c *Cache) checkPressure() {
	c.mu.Lock()
	var total int64
	for _, cat := range c.categories {
		total += cat.size
	}
	overBudget := c.budget > 0 && float64(total) > float64(c.budget)*budgetThreshold
	c.mu.Unlock()

	heapPressure := c.pressure > 0 && c.readHeap() > uint64(c.pressure)

	if overBudget || heapPressure {
		logger.Warn("cache memory pressure, running emergency clear",
			"total_size", total, "over_budget", overBudget, "heap_pressure", heapPressure)
		c.EmergencyClear()
	}
}

// EmergencyClear frees memory in strict priority order: the non-critical
// categories first, then session data, then the older half of the critical
// category (the most recently accessed items are kept).
func (c *Cache) EmergencyClear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearLocked(CategoryTemporary)
	c.clearLocked(CategoryStatic)
	c.clearLocked(CategoryAPI)
	c.clearLocked(CategorySession)

	critical := c.categories[CategoryCritical]
	drop := critical.order.Len() / 2
	// Get moves accessed items to the back, so the front half is the least
	// recently touched.
	for i := 0; i < drop; i++ {
		c.evictOldest(critical)
	}

	c.emergencyClears++
}
