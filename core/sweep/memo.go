package sweep

import (
	"container/list"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"propulsion-estimator/core/metrics"

	"golang.org/x/sync/singleflight"
)

// Memo stores the outcome of one evaluation per key.
// Concurrent callers asking for the same key share a single evaluation.
// A memo with a positive capacity evicts its least recently used keys.
type Memo[V any] struct {
	mu       sync.Mutex
	results  map[string]*list.Element
	order    *list.List
	capacity int
	sf       singleflight.Group
}

type result[V any] struct {
	key   string
	value V
	err   error
}

// New creates an empty, unbounded memo.
func New[V any]() *Memo[V] {
	return NewBounded[V](0)
}

// NewBounded creates an empty memo holding at most capacity keys.
// A capacity of zero or less means unbounded.
func NewBounded[V any](capacity int) *Memo[V] {
	return &Memo[V]{
		results:  make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
	}
}

// Get returns the memoized outcome for key, running eval only if the key is
// not held. Errors are memoized like values.
func (m *Memo[V]) Get(key string, eval func() (V, error)) (V, error) {
	// Fast path
	if r, ok := m.lookup(key); ok {
		metrics.SweepEvaluations.WithLabelValues("hit").Inc()
		return r.value, r.err
	}

	out, _, _ := m.sf.Do(key, func() (interface{}, error) {
		// Double-check once inside the flight
		if r, ok := m.lookup(key); ok {
			return r, nil
		}

		metrics.SweepEvaluations.WithLabelValues("miss").Inc()
		v, err := eval()
		r := result[V]{key: key, value: v, err: err}
		m.store(r)
		return r, nil
	})

	r := out.(result[V])
	return r.value, r.err
}

func (m *Memo[V]) lookup(key string) (result[V], bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	el, ok := m.results[key]
	if !ok {
		return result[V]{}, false
	}
	m.order.MoveToFront(el)
	return el.Value.(result[V]), true
}

func (m *Memo[V]) store(r result[V]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if el, ok := m.results[r.key]; ok {
		el.Value = r
		m.order.MoveToFront(el)
		return
	}
	m.results[r.key] = m.order.PushFront(r)
	for m.capacity > 0 && m.order.Len() > m.capacity {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.results, oldest.Value.(result[V]).key)
		metrics.SweepEvaluations.WithLabelValues("evicted").Inc()
	}
}

// Len returns the number of memoized keys.
func (m *Memo[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.results)
}

// Invalidate forgets the outcome for key.
func (m *Memo[V]) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if el, ok := m.results[key]; ok {
		m.order.Remove(el)
		delete(m.results, key)
	}
}

// Reset forgets every outcome.
func (m *Memo[V]) Reset() {
	m.mu.Lock()
	m.results = make(map[string]*list.Element)
	m.order.Init()
	m.mu.Unlock()
}

// Key builds a memo key from the parts of a configuration.
// Floats are formatted with full precision so distinct values never collide.
func Key(parts ...any) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('|')
		}
		switch v := p.(type) {
		case float64:
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		case float32:
			b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		case nil:
			b.WriteString("-")
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}
