package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool 定義具背壓的 worker pool
// Submit 不阻塞，佇列滿時回傳 false 由呼叫端決定丟棄策略
type Pool interface {
	Submit(Task) bool
	Stop()
}

// NewPool 建立 n 個 worker 與容量 queueSize 的佇列
// n<=0 時預設 1，queueSize<0 時預設 0（無緩衝）
func NewPool(n, queueSize int) Pool {
	if n <= 0 {
		n = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	p := &pool{jobs: make(chan Task, queueSize)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) bool {
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

// Stop 關閉佇列並等待已接受的工作執行完畢
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
