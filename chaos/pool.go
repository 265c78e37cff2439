package chaos

import "image/color"

// Label is one transient overlay text.
type Label struct {
	ID        LabelID
	Text      string
	X, Y      float64
	Color     color.Color
	PoolIndex int // Index in pool for swap-and-pop
}

// MemoryOverlay keeps labels in a fixed pool. Hosts without a DOM draw the
// active labels themselves.
type MemoryOverlay struct {
	Pool        []*Label
	ActiveCount int
	MaxSize     int
	nextID      LabelID
}

// NewMemoryOverlay creates an overlay with room for maxSize labels.
func NewMemoryOverlay(maxSize int) *MemoryOverlay {
	o := &MemoryOverlay{
		Pool:    make([]*Label, maxSize),
		MaxSize: maxSize,
	}
	for i := 0; i < maxSize; i++ {
		o.Pool[i] = &Label{PoolIndex: i}
	}
	return o
}

// ShowLabel adds a label. It returns zero when the pool is full.
func (o *MemoryOverlay) ShowLabel(text string, x, y float64, c color.Color) LabelID {
	if o.ActiveCount >= o.MaxSize {
		return 0
	}
	o.nextID++
	l := o.Pool[o.ActiveCount]
	l.PoolIndex = o.ActiveCount
	l.ID = o.nextID
	l.Text = text
	l.X, l.Y = x, y
	l.Color = c
	o.ActiveCount++
	return l.ID
}

// RemoveLabel drops a label by id. Unknown ids are ignored.
func (o *MemoryOverlay) RemoveLabel(id LabelID) {
	for i := 0; i < o.ActiveCount; i++ {
		if o.Pool[i].ID == id {
			o.release(i)
			return
		}
	}
}

// release returns a label to the pool using swap-and-pop.
func (o *MemoryOverlay) release(index int) {
	if index >= o.ActiveCount || index < 0 {
		return
	}
	lastIndex := o.ActiveCount - 1
	if index != lastIndex {
		o.Pool[index], o.Pool[lastIndex] = o.Pool[lastIndex], o.Pool[index]
		o.Pool[index].PoolIndex = index
	}
	o.Pool[lastIndex].ID = 0
	o.ActiveCount--
}

// RemoveAll clears the pool.
func (o *MemoryOverlay) RemoveAll() int {
	n := o.ActiveCount
	for i := 0; i < n; i++ {
		o.Pool[i].ID = 0
	}
	o.ActiveCount = 0
	return n
}

// Count returns the number of active labels.
func (o *MemoryOverlay) Count() int {
	return o.ActiveCount
}

// ForEach visits the active labels.
func (o *MemoryOverlay) ForEach(fn func(*Label)) {
	for i := 0; i < o.ActiveCount; i++ {
		fn(o.Pool[i])
	}
}
