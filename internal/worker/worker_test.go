package worker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3, 8)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		ok := p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
		require.True(t, ok)
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolFullQueue(t *testing.T) {
	started := make(chan struct{})
	block := make(chan struct{})
	p := NewPool(1, 1)

	require.True(t, p.Submit(func() { close(started); <-block }))
	<-started

	// worker 被第一個工作佔住，佇列容量 1，之後只會接受一件
	accepted := 0
	for i := 0; i < 10; i++ {
		if p.Submit(func() {}) {
			accepted++
		}
	}
	require.Equal(t, 1, accepted)

	close(block)
	p.Stop()
}
