package mazerun

// priorityQueueItem is a frontier entry. IndexInQueue is maintained by the
// heap so that a queued state can be re-prioritized with heap.Fix.
type priorityQueueItem struct {
	State        State
	Cost         int
	IndexInQueue int
}

// priorityQueue is a min-heap on Cost for use with container/heap.
type priorityQueue []*priorityQueueItem

func (queue priorityQueue) Len() int           { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool { return queue[i].Cost < queue[j].Cost }
func (queue priorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityQueue) Push(x any) {
	item := x.(*priorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
