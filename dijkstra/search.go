package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
)

// Search runs Dijkstra over an implicit graph. Every state in sources
// starts at distance 0; expand lists the outgoing arcs of a state; isGoal,
// if non-nil, stops the search at the first goal state settled.
//
// Stage 1 (Init): seed distances and the heap with sources.
// Stage 2 (Process): pop the nearest unsettled state, stop on goal,
// otherwise relax its arcs.
//
// Returns ErrNegativeWeight for a negative arc and ctx.Err() on cancellation.
func Search[S comparable](
	ctx context.Context,
	sources []S,
	expand func(S) []Arc[S],
	isGoal func(S) bool,
) (*Result[S], error) {
	r := newRunner[S](ctx, expand, isGoal)
	r.init(sources)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single execution.
type runner[S comparable] struct {
	ctx    context.Context
	expand func(S) []Arc[S]
	isGoal func(S) bool

	dist    map[S]int64
	visited map[S]bool
	pq      statePQ[S]

	goal  S
	found bool
}

func newRunner[S comparable](ctx context.Context, expand func(S) []Arc[S], isGoal func(S) bool) *runner[S] {
	if ctx == nil {
		ctx = context.Background()
	}

	return &runner[S]{
		ctx:     ctx,
		expand:  expand,
		isGoal:  isGoal,
		dist:    make(map[S]int64),
		visited: make(map[S]bool),
	}
}

// init sets distance 0 for every source and pushes them onto the heap.
func (r *runner[S]) init(sources []S) {
	heap.Init(&r.pq)
	for _, s := range sources {
		if _, seen := r.dist[s]; seen {
			continue
		}
		r.dist[s] = 0
		heap.Push(&r.pq, &stateItem[S]{state: s, dist: 0})
	}
}

// process is the main loop: extract the minimum, then relax.
func (r *runner[S]) process() error {
	for r.pq.Len() > 0 {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		item := heap.Pop(&r.pq).(*stateItem[S])
		u := item.state

		// 1) Skip stale entries.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// 2) First settled goal is optimal.
		if r.isGoal != nil && r.isGoal(u) {
			r.goal, r.found = u, true
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every arc target of the settled state u.
func (r *runner[S]) relax(u S) error {
	du := r.dist[u]
	for _, a := range r.expand(u) {
		if a.Cost < 0 {
			return fmt.Errorf("%w: arc cost %d", ErrNegativeWeight, a.Cost)
		}
		nd := du + a.Cost
		if old, ok := r.dist[a.To]; ok && nd >= old {
			continue
		}
		r.dist[a.To] = nd
		heap.Push(&r.pq, &stateItem[S]{state: a.To, dist: nd})
	}

	return nil
}

func (r *runner[S]) result() *Result[S] {
	res := &Result[S]{Dist: r.dist, Found: r.found}
	if r.found {
		res.Goal = r.goal
		res.Cost = r.dist[r.goal]
	}

	return res
}

// stateItem is a heap entry: a state and its distance when pushed.
type stateItem[S comparable] struct {
	state S
	dist  int64
}

// statePQ is a min-heap of *stateItem ordered by dist.
type statePQ[S comparable] []*stateItem[S]

func (pq statePQ[S]) Len() int           { return len(pq) }
func (pq statePQ[S]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq statePQ[S]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*stateItem[S])) }

func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
