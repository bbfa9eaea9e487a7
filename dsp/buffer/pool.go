package buffer

import "sync"

// Pool recycles Buffers through a sync.Pool so per-frame scratch in
// processing loops does not churn the garbage collector.
//
// Unlike New, Get does not guarantee zeroed contents: the engine's
// frame loop overwrites every sample of its scratch on each pass, so
// the pool skips the redundant clear. Callers that read before writing
// must call Zero themselves.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a Buffer of the requested length with unspecified
// contents. Return it via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)

	return b
}

// Put returns a Buffer to the pool. The caller must not touch the
// buffer afterwards. Putting nil is a no-op.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}

	p.pool.Put(b)
}
