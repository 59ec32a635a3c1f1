package huffman

import "container/heap"

// Node is either a *Leaf or an *Internal.
type Node interface {
	isNode()
}

// Leaf holds a symbol and has no children.
type Leaf struct {
	Symbol Symbol
}

// Internal has exactly two children and no payload.
type Internal struct {
	Left, Right Node
}

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

// weighted is a subtree waiting in the merge queue. seq records insertion
// order and breaks weight ties so that equal inputs always build equal trees.
type weighted struct {
	node   Node
	weight uint64
	seq    int
}

type mergeQueue []weighted

func (q mergeQueue) Len() int { return len(q) }
func (q mergeQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].seq < q[j].seq
}
func (q mergeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *mergeQueue) Push(x interface{}) { *q = append(*q, x.(weighted)) }
func (q *mergeQueue) Pop() interface{} {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}

// BuildTree merges the two lightest subtrees until one remains. The first
// subtree removed becomes the left child. Leaves enter the queue in ascending
// symbol order. A table whose only nonzero entry is Marker yields a lone
// *Leaf.
func BuildTree(freq *Frequencies) Node {
	q := make(mergeQueue, 0, SymbolCount)
	seq := 0
	for sym, count := range freq {
		if count == 0 {
			continue
		}
		q = append(q, weighted{node: &Leaf{Symbol: Symbol(sym)}, weight: count, seq: seq})
		seq++
	}
	if len(q) == 0 {
		return &Leaf{Symbol: Marker}
	}
	heap.Init(&q)

	for q.Len() > 1 {
		left := heap.Pop(&q).(weighted)
		right := heap.Pop(&q).(weighted)
		heap.Push(&q, weighted{
			node:   &Internal{Left: left.node, Right: right.node},
			weight: left.weight + right.weight,
			seq:    seq,
		})
		seq++
	}
	return q[0].node
}

// Leaves returns the number of leaves under n.
func Leaves(n Node) int {
	switch n := n.(type) {
	case *Internal:
		return Leaves(n.Left) + Leaves(n.Right)
	default:
		return 1
	}
}

// Depth returns the length of the longest root-to-leaf path under n.
func Depth(n Node) int {
	in, ok := n.(*Internal)
	if !ok {
		return 0
	}
	l, r := Depth(in.Left), Depth(in.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}
