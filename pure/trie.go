package pure

// Trie is an unbounded memo table keyed by argument tuples. Each key of a
// tuple selects one level of nested maps. Keys must be comparable values and
// every tuple stored in one Trie must have the same length.
//
// A Trie is not safe for concurrent use.
type Trie[O any] struct {
	root node
	size int
}

type node map[any]any

const mixedLengths = "traverse: key tuple length differs from stored tuples"

func NewTrie[O any]() *Trie[O] {
	return &Trie[O]{root: node{}}
}

func (t *Trie[O]) Load(keys []any) (O, bool) {
	var zero O
	m, k, ok := t.traverse(keys, false)
	if !ok {
		return zero, false
	}
	v, ok := m[k]
	if !ok {
		return zero, false
	}
	if _, isNode := v.(node); isNode {
		panic(mixedLengths)
	}
	return v.(O), true
}

func (t *Trie[O]) Store(keys []any, value O) {
	m, k, _ := t.traverse(keys, true)
	old, ok := m[k]
	if _, isNode := old.(node); isNode {
		panic(mixedLengths)
	}
	if !ok {
		t.size++
	}
	m[k] = value
}

// Len reports the number of stored tuples.
func (t *Trie[O]) Len() int {
	return t.size
}

func (t *Trie[O]) traverse(keys []any, create bool) (node, any, bool) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	m := t.root
	for _, k := range keys[:length-1] {
		v, ok := m[k]
		if !ok {
			if !create {
				return nil, nil, false
			}
			v = node{}
			m[k] = v
		}
		next, isNode := v.(node)
		if !isNode {
			panic(mixedLengths)
		}
		m = next
	}
	return m, keys[length-1], true
}
