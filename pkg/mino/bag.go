package mino

import (
	"math/rand"
)

// Bag is a 7-bag randomizer: every kind is dealt once per shuffle and the bag
// is refilled only once it is empty.
type Bag struct {
	Kinds []Kind

	randomizer *rand.Rand
}

// NewBag returns an empty bag drawing from src. The first Take fills it.
func NewBag(src rand.Source) *Bag {
	return &Bag{randomizer: rand.New(src)}
}

func NewSeededBag(seed int64) *Bag {
	return NewBag(rand.NewSource(seed))
}

// Refill replaces the bag contents with a shuffled set of all seven kinds.
func (b *Bag) Refill() {
	b.Kinds = make([]Kind, len(AllKinds))
	copy(b.Kinds, AllKinds)

	b.randomizer.Shuffle(len(b.Kinds), func(i, j int) { b.Kinds[i], b.Kinds[j] = b.Kinds[j], b.Kinds[i] })
}

// Take pops the next kind, refilling first when the bag is empty.
func (b *Bag) Take() Kind {
	if len(b.Kinds) == 0 {
		b.Refill()
	}

	k := b.Kinds[0]
	b.Kinds = b.Kinds[1:]

	return k
}

func (b *Bag) Len() int {
	return len(b.Kinds)
}

const (
	MinPreview = 1
	MaxPreview = 6
)

// Queue is the lookahead of upcoming kinds, kept at a fixed length by drawing
// from a Bag.
type Queue struct {
	bag    *Bag
	kinds  []Kind
	target int
}

// NewQueue returns a queue holding target kinds. The target is clamped to
// MinPreview..MaxPreview.
func NewQueue(bag *Bag, target int) *Queue {
	q := &Queue{bag: bag, target: ClampPreview(target)}
	q.Populate(q.target)

	return q
}

func ClampPreview(n int) int {
	if n < MinPreview {
		return MinPreview
	} else if n > MaxPreview {
		return MaxPreview
	}

	return n
}

// Populate draws from the bag until the queue holds at least n kinds.
func (q *Queue) Populate(n int) {
	for len(q.kinds) < n {
		q.kinds = append(q.kinds, q.bag.Take())
	}
}

// Pop removes the head of the queue and tops it back up to its target.
func (q *Queue) Pop() Kind {
	q.Populate(1)

	k := q.kinds[0]
	q.kinds = q.kinds[1:]

	q.Populate(q.target)

	return k
}

func (q *Queue) Peek() Kind {
	q.Populate(1)

	return q.kinds[0]
}

// Kinds returns a copy of the queued kinds, head first.
func (q *Queue) Kinds() []Kind {
	kinds := make([]Kind, len(q.kinds))
	copy(kinds, q.kinds)

	return kinds
}

func (q *Queue) Len() int {
	return len(q.kinds)
}

func (q *Queue) Target() int {
	return q.target
}
