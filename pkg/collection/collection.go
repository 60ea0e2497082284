// Package collection implements the paginated list controller shared by
// every admin screen: page/sort/filter state, debounced search and
// stale-response protection around a remote list endpoint.
package collection

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultPageSize = 10
	DefaultDebounce = 500 * time.Millisecond
)

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

type PageQuery struct {
	PageIndex     int
	PageSize      int
	SortField     string
	SortDirection SortDirection
	SearchTerm    string
	Filters       map[string]string
}

func (q PageQuery) Clone() PageQuery {
	clone := q
	if q.Filters != nil {
		clone.Filters = make(map[string]string, len(q.Filters))
		for k, v := range q.Filters {
			clone.Filters[k] = v
		}
	}
	return clone
}

// PageResult is replaced wholesale after every successful fetch. The
// pagination metadata comes from the server and is never recomputed
// client-side.
type PageResult[T any] struct {
	Items         []T
	PageIndex     int
	TotalPages    int
	TotalElements int
	HasNext       bool
	HasPrevious   bool
}

type Fetcher[T any] func(ctx context.Context, query PageQuery) (*PageResult[T], error)

type Option func(*settings)

type settings struct {
	pageSize int
	debounce time.Duration
}

func WithPageSize(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

func WithDebounce(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// Controller owns the list state of a single screen. All state-changing
// methods are safe for concurrent use; completions of superseded fetches
// are dropped so a slow early response can never overwrite a later one.
type Controller[T any] struct {
	mu       sync.Mutex
	fetch    Fetcher[T]
	debounce time.Duration

	query  PageQuery
	result *PageResult[T]
	// page size of the query that produced result; the live query may
	// already differ while a resize fetch is in flight
	resultPageSize int
	lastErr        error
	fetching       bool

	seq    uint64
	cancel context.CancelFunc
	timer  *time.Timer
	closed bool
}

func New[T any](fetch Fetcher[T], opts ...Option) *Controller[T] {
	s := settings{
		pageSize: DefaultPageSize,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return &Controller[T]{
		fetch:    fetch,
		debounce: s.debounce,
		query: PageQuery{
			PageSize:      s.pageSize,
			SortDirection: SortAsc,
		},
	}
}

// SetSearchTerm defers the fetch until typing has settled. A pending
// debounce timer is replaced whenever the term changes again.
func (c *Controller[T]) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.query.SearchTerm = term
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.query.PageIndex = 0
		c.startFetchLocked()
	})
}

func (c *Controller[T]) SetSort(field string, direction SortDirection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.SortField = field
	c.query.SortDirection = direction
	c.query.PageIndex = 0
	c.startFetchLocked()
}

func (c *Controller[T]) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.PageSize = size
	c.query.PageIndex = 0
	c.startFetchLocked()
}

func (c *Controller[T]) SetFilter(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.Filters == nil {
		c.query.Filters = make(map[string]string)
	}
	c.query.Filters[key] = value
	c.query.PageIndex = 0
	c.startFetchLocked()
}

func (c *Controller[T]) ClearFilter(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.query.Filters[key]; !ok {
		return
	}
	delete(c.query.Filters, key)
	c.query.PageIndex = 0
	c.startFetchLocked()
}

// SetPageIndex navigates without touching search, sort or filters.
func (c *Controller[T]) SetPageIndex(index int) {
	if index < 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.PageIndex = index
	c.startFetchLocked()
}

func (c *Controller[T]) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result != nil && !c.result.HasNext {
		return
	}
	c.query.PageIndex++
	c.startFetchLocked()
}

func (c *Controller[T]) PreviousPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.PageIndex == 0 {
		return
	}
	c.query.PageIndex--
	c.startFetchLocked()
}

func (c *Controller[T]) FirstPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.PageIndex = 0
	c.startFetchLocked()
}

func (c *Controller[T]) LastPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil || c.result.TotalPages == 0 {
		return
	}
	c.query.PageIndex = c.result.TotalPages - 1
	c.startFetchLocked()
}

// Refresh replays the current query, e.g. after a confirmed mutation.
func (c *Controller[T]) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startFetchLocked()
}

// Retry replays the last query after a failed fetch.
func (c *Controller[T]) Retry() {
	c.Refresh()
}

func (c *Controller[T]) startFetchLocked() {
	if c.closed {
		return
	}
	if c.cancel != nil {
		c.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.seq++
	seq := c.seq
	query := c.query.Clone()
	c.fetching = true

	go func() {
		result, err := c.fetch(ctx, query)
		cancel()

		c.mu.Lock()
		defer c.mu.Unlock()
		if seq != c.seq {
			// superseded by a newer request
			return
		}
		c.fetching = false
		if err != nil {
			// keep the previously displayed page intact
			c.lastErr = err
			return
		}
		c.lastErr = nil
		c.result = result
		c.resultPageSize = query.PageSize
	}()
}

func (c *Controller[T]) Result() *PageResult[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller[T]) Query() PageQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.Clone()
}

func (c *Controller[T]) IsFetching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetching
}

// DisplayRange returns the 1-based "showing X to Y of Z" bounds for the
// current result.
func (c *Controller[T]) DisplayRange() (from, to, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil || c.result.TotalElements == 0 {
		return 0, 0, 0
	}

	total = c.result.TotalElements
	from = c.result.PageIndex*c.resultPageSize + 1
	to = (c.result.PageIndex + 1) * c.resultPageSize
	if to > total {
		to = total
	}
	return from, to, total
}

// Close stops the debounce timer and cancels any in-flight fetch. Used on
// screen unmount.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.cancel != nil {
		c.cancel()
	}
}
