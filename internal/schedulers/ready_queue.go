package schedulers

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"cpusched/internal/core"
)

// queueKey orders the ready queue. rank is the policy's primary selection
// criterion (burst time, remaining time, or priority); arrival time and pid
// are the deterministic tie-breaks.
type queueKey struct {
	rank        int
	arrivalTime int
	pid         int
}

func compareQueueKeys(a, b any) int {
	ka, kb := a.(queueKey), b.(queueKey)
	switch {
	case ka.rank != kb.rank:
		return ka.rank - kb.rank
	case ka.arrivalTime != kb.arrivalTime:
		return ka.arrivalTime - kb.arrivalTime
	default:
		return ka.pid - kb.pid
	}
}

// readyQueue is a red-black tree of READY processes ordered by
// (rank, arrival_time, pid). The rank of a queued process must not change
// while it is in the tree; policies that adjust remaining time only do so on
// the dispatched process, which is out of the queue at that point.
type readyQueue struct {
	tree *redblacktree.Tree
	rank func(*core.Process) int
}

func newReadyQueue(rank func(*core.Process) int) *readyQueue {
	return &readyQueue{
		tree: redblacktree.NewWith(compareQueueKeys),
		rank: rank,
	}
}

func (q *readyQueue) Push(p *core.Process) {
	q.tree.Put(queueKey{rank: q.rank(p), arrivalTime: p.ArrivalTime, pid: p.Pid}, p)
}

// Min returns the minimum-key process without removing it, or nil when the
// queue is empty.
func (q *readyQueue) Min() *core.Process {
	node := q.tree.Left()
	if node == nil {
		return nil
	}
	return node.Value.(*core.Process)
}

// Pop removes and returns the minimum-key process, or nil when empty.
func (q *readyQueue) Pop() *core.Process {
	node := q.tree.Left()
	if node == nil {
		return nil
	}
	q.tree.Remove(node.Key)
	return node.Value.(*core.Process)
}

func (q *readyQueue) Empty() bool {
	return q.tree.Empty()
}
