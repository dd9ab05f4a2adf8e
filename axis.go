package grid

import (
	"math"
	"sort"

	"github.com/gogpu/grid/internal/fenwick"
)

// Axis maps integer positions along one grid dimension (rows or columns) to
// pixel sizes. Every index has the axis default size unless an override has
// been recorded for it, so memory and query cost scale with the number of
// overrides k, never with the logical axis length: GetSize and PositionOf
// are O(log k) regardless of whether the grid has ten rows or two billion.
//
// Internally the overridden indices are kept in a sorted slice with a
// Fenwick tree over their size deviations (override minus default), which
// is what makes PositionOf a prefix-sum query instead of a linear walk.
//
// Axis is not safe for concurrent use; the expected owner is a single UI
// thread driving it from pointer, wheel and resize callbacks.
type Axis struct {
	defaultSize float64

	indices []int     // sorted overridden indices
	sizes   []float64 // override sizes, parallel to indices
	tree    fenwick.Tree

	// version increases on every effective mutation. Downstream caches
	// (Viewport) compare it to decide whether their snapshots are stale.
	version uint64

	scratch []float64 // reusable deviation buffer for rebuilds
}

// AxisOption configures an Axis during creation.
type AxisOption func(*axisOptions)

type axisOptions struct {
	overrides map[int]float64
}

// WithOverrides seeds the axis with an initial override set, as if
// SetOverrides had been called immediately after construction.
func WithOverrides(overrides map[int]float64) AxisOption {
	return func(o *axisOptions) {
		o.overrides = overrides
	}
}

// NewAxis creates an axis whose every index measures defaultSize pixels
// until overridden. defaultSize must be a positive finite number.
func NewAxis(defaultSize float64, opts ...AxisOption) (*Axis, error) {
	if !isPositiveFinite(defaultSize) {
		return nil, errPositiveFinite("NewAxis", "defaultSize", defaultSize)
	}
	var o axisOptions
	for _, opt := range opts {
		opt(&o)
	}
	a := &Axis{defaultSize: defaultSize}
	if o.overrides != nil {
		if err := a.SetOverrides(o.overrides); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// DefaultSize returns the size applied to indices with no override.
func (a *Axis) DefaultSize() float64 {
	return a.defaultSize
}

// Version returns a counter that increases on every effective mutation.
// It exists purely for downstream cache invalidation.
func (a *Axis) Version() uint64 {
	return a.version
}

// GetSize returns the size of the given index. The index is not validated;
// out-of-range indices simply report the default size.
func (a *Axis) GetSize(index int) float64 {
	if i, ok := a.lookup(index); ok {
		return a.sizes[i]
	}
	return a.defaultSize
}

// SetSize records an override for index. Setting an index to the default
// size is equivalent to DeleteSize. Updating an existing override is an
// O(log k) Fenwick point update; introducing a new one inserts into the
// sorted index list and rebuilds the tree in O(k), which is acceptable
// because interactive resizing updates the same index repeatedly and only
// inserts once.
func (a *Axis) SetSize(index int, size float64) error {
	if index < 0 {
		return errNonNegative("Axis.SetSize", "index", index)
	}
	if !isPositiveFinite(size) {
		return errPositiveFinite("Axis.SetSize", "size", size)
	}
	if size == a.defaultSize {
		return a.DeleteSize(index)
	}
	i := sort.SearchInts(a.indices, index)
	if i < len(a.indices) && a.indices[i] == index {
		old := a.sizes[i]
		if old == size {
			return nil
		}
		a.sizes[i] = size
		a.tree.Add(i, size-old)
		a.version++
		return nil
	}
	a.indices = append(a.indices, 0)
	copy(a.indices[i+1:], a.indices[i:])
	a.indices[i] = index
	a.sizes = append(a.sizes, 0)
	copy(a.sizes[i+1:], a.sizes[i:])
	a.sizes[i] = size
	a.rebuild()
	a.version++
	return nil
}

// DeleteSize removes the override for index, restoring the default size.
// Removing an index that has no override is a no-op.
func (a *Axis) DeleteSize(index int) error {
	if index < 0 {
		return errNonNegative("Axis.DeleteSize", "index", index)
	}
	i, ok := a.lookup(index)
	if !ok {
		return nil
	}
	a.indices = append(a.indices[:i], a.indices[i+1:]...)
	a.sizes = append(a.sizes[:i], a.sizes[i+1:]...)
	a.rebuild()
	a.version++
	return nil
}

// SetOverrides replaces the entire override set in one O(k log k)
// operation. Entries equal to the default size are treated as absent. When
// the new set is identical to the current one the call is a no-op: nothing
// is rebuilt and the version does not change, so idempotent reloads of
// persisted sizes stay cheap and do not invalidate viewport snapshots.
func (a *Axis) SetOverrides(overrides map[int]float64) error {
	for index, size := range overrides {
		if index < 0 {
			return errNonNegative("Axis.SetOverrides", "index", index)
		}
		if !isPositiveFinite(size) {
			return errPositiveFinite("Axis.SetOverrides", "size", size)
		}
	}

	effective := 0
	for _, size := range overrides {
		if size != a.defaultSize {
			effective++
		}
	}
	if effective == len(a.indices) {
		same := true
		for index, size := range overrides {
			if size == a.defaultSize {
				continue
			}
			if i, ok := a.lookup(index); !ok || a.sizes[i] != size {
				same = false
				break
			}
		}
		if same {
			return nil
		}
	}

	a.indices = a.indices[:0]
	a.sizes = a.sizes[:0]
	for index, size := range overrides {
		if size != a.defaultSize {
			a.indices = append(a.indices, index)
		}
	}
	sort.Ints(a.indices)
	a.sizes = append(a.sizes, make([]float64, len(a.indices))...)
	for i, index := range a.indices {
		a.sizes[i] = overrides[index]
	}
	a.rebuild()
	a.version++

	logger().Debug("axis overrides replaced",
		"overrides", len(a.indices), "version", a.version)
	return nil
}

// OverrideCount returns the number of recorded overrides.
func (a *Axis) OverrideCount() int {
	return len(a.indices)
}

// Overrides calls fn for each override in ascending index order until fn
// returns false. It is the enumeration surface a persistence layer uses to
// save customized sizes.
func (a *Axis) Overrides(fn func(index int, size float64) bool) {
	for i, index := range a.indices {
		if !fn(index, a.sizes[i]) {
			return
		}
	}
}

// PositionOf returns the pixel position of the leading edge of index:
// index*defaultSize plus the summed deviation of every overridden index
// strictly below it. O(log k).
func (a *Axis) PositionOf(index int) float64 {
	k := sort.SearchInts(a.indices, index)
	return float64(index)*a.defaultSize + a.tree.PrefixSum(k)
}

// TotalSize returns the summed pixel size of indices [0, count).
func (a *Axis) TotalSize(count int) float64 {
	return a.PositionOf(count)
}

// IndexAt returns the index whose pixel span contains position, searching
// from min upward. The axis has no inherent length, so an upper bound is
// first found by doubling a candidate until its position exceeds the
// target, then resolved by binary search. Positions at or before
// PositionOf(min) resolve to min.
func (a *Axis) IndexAt(position float64, min int) int {
	if position <= a.PositionOf(min) {
		return min
	}
	span := 1
	high := min + span
	for a.PositionOf(high) <= position {
		if span > math.MaxInt/4 {
			break
		}
		span *= 2
		high = min + span
	}
	return a.searchIndex(position, min, high)
}

// IndexAtMax is IndexAt bounded above: the result never exceeds
// maxInclusive, and a position at or beyond the extent of maxInclusive
// short-circuits to maxInclusive. It panics with a *ValidationError if
// maxInclusive < min, which is a caller bug that should fail loudly.
func (a *Axis) IndexAtMax(position float64, min, maxInclusive int) int {
	if maxInclusive < min {
		panic(&ValidationError{Op: "Axis.IndexAtMax", Arg: "maxInclusive",
			Msg: "must be >= min"})
	}
	if position >= a.PositionOf(maxInclusive) {
		return maxInclusive
	}
	if position <= a.PositionOf(min) {
		return min
	}
	return a.searchIndex(position, min, maxInclusive)
}

// searchIndex returns the largest index i in [min, high] with
// PositionOf(i) <= position. Callers guarantee the answer lies in range.
func (a *Axis) searchIndex(position float64, min, high int) int {
	lo, hi := min, high
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if a.PositionOf(mid) <= position {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// VisibleRange computes the half-open index interval [Start, End) exposed
// by a viewport of viewportSize pixels whose top/left pixel sits at scroll,
// restricted to indices [min, maxExclusive). Offset is the pixel distance
// from the leading edge of Start to the scroll position. End extends one
// index past the covering row so a partially exposed trailing row is always
// included.
func (a *Axis) VisibleRange(scroll, viewportSize float64, min, maxExclusive int) Range {
	if maxExclusive <= min {
		return Range{Start: min, End: min}
	}
	start := a.IndexAtMax(scroll, min, maxExclusive-1)
	offset := scroll - a.PositionOf(start)
	if offset < 0 {
		offset = 0
	}
	end := start
	covered := -offset
	for end < maxExclusive && covered < viewportSize {
		covered += a.GetSize(end)
		end++
	}
	if end < maxExclusive {
		end++
	}
	return Range{Start: start, End: end, Offset: offset}
}

// lookup returns the slice position of index in the override table.
func (a *Axis) lookup(index int) (int, bool) {
	i := sort.SearchInts(a.indices, index)
	return i, i < len(a.indices) && a.indices[i] == index
}

// rebuild recomputes the Fenwick tree from the current override table.
func (a *Axis) rebuild() {
	if cap(a.scratch) < len(a.sizes) {
		a.scratch = make([]float64, len(a.sizes))
	}
	a.scratch = a.scratch[:len(a.sizes)]
	for i, size := range a.sizes {
		a.scratch[i] = size - a.defaultSize
	}
	a.tree.Rebuild(a.scratch)
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
