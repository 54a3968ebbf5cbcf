package algo_test

import (
	"container/heap"
	"testing"

	"git.fiblab.net/sim/routeplanner/router/algo"
	"github.com/stretchr/testify/assert"
)

func TestPriorityQueue(t *testing.T) {
	pq := make(algo.PriorityQueue, 0)
	heap.Push(&pq, &algo.Item{Value: 4, Priority: 40})
	heap.Push(&pq, &algo.Item{Value: 2, Priority: 20})
	heap.Push(&pq, &algo.Item{Value: 1, Priority: 10})
	heap.Push(&pq, &algo.Item{Value: 3, Priority: 30})

	item := heap.Pop(&pq).(*algo.Item)
	assert.Equal(t, 1, item.Value)
	assert.Equal(t, int64(10), item.Priority)
	assert.Equal(t, -1, item.Index)
	item = heap.Pop(&pq).(*algo.Item)
	assert.Equal(t, 2, item.Value)
	assert.Equal(t, 2, pq.Len())
}

func TestPriorityQueueDuplicates(t *testing.T) {
	// 同一节点以不同距离多次入堆，应先弹出较小者
	pq := make(algo.PriorityQueue, 0)
	heap.Push(&pq, &algo.Item{Value: 7, Priority: 70})
	heap.Push(&pq, &algo.Item{Value: 8, Priority: 50})
	heap.Push(&pq, &algo.Item{Value: 7, Priority: 30})

	values := make([]int, 0)
	priorities := make([]int64, 0)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*algo.Item)
		values = append(values, item.Value)
		priorities = append(priorities, item.Priority)
	}
	assert.Equal(t, []int{7, 8, 7}, values)
	assert.Equal(t, []int64{30, 50, 70}, priorities)
}

func TestPriorityQueueIndex(t *testing.T) {
	pq := make(algo.PriorityQueue, 0)
	for i := 5; i > 0; i-- {
		heap.Push(&pq, &algo.Item{Value: i, Priority: int64(i)})
	}
	for i, item := range pq {
		assert.Equal(t, i, item.Index)
	}
}
