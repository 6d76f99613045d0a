package tools

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DetectPeaks finds local minima and maxima in a vector using the Billauer
// peakdet state machine. A point counts as a maximum when it was preceded by
// a value lower by at least delta; the scan starts in the look-for-max state.
// Indices are returned in input order.
func DetectPeaks(data []float64, delta float64) ([]int, []int) {
	var minIndexes, maxIndexes []int

	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	minPos := 0
	maxPos := 0

	lookForMax := true

	for i, val := range data {
		if val > maxVal {
			maxVal = val
			maxPos = i
		}
		if val < minVal {
			minVal = val
			minPos = i
		}

		if lookForMax {
			if val < maxVal-delta {
				maxIndexes = append(maxIndexes, maxPos)
				minVal = val
				minPos = i
				lookForMax = false
			}
		} else {
			if val > minVal+delta {
				minIndexes = append(minIndexes, minPos)
				maxVal = val
				maxPos = i
				lookForMax = true
			}
		}
	}

	return minIndexes, maxIndexes
}

// SpectralNeighbors enumerates up to 8 neighbors of a cell on an nk x nth
// spectral lattice with flat index ik + ith*nk. The frequency axis does not
// wrap; the direction axis is cyclic. The enumeration order is left, right,
// down, up, then diagonals, matching the WW3 PTMEAN neighborhood so that
// partition labels agree with that reference.
func SpectralNeighbors(nk, nth, index int) []int {
	neighbors := make([]int, 0, 8)

	ik := index % nk
	ith := index / nk

	down := func(i int) int {
		if ith > 0 {
			return i - nk
		}
		return i + nk*(nth-1)
	}
	up := func(i int) int {
		if ith < nth-1 {
			return i + nk
		}
		return i - nk*(nth-1)
	}

	if ik > 0 {
		neighbors = append(neighbors, index-1)
	}
	if ik < nk-1 {
		neighbors = append(neighbors, index+1)
	}
	neighbors = append(neighbors, down(index), up(index))

	if ik > 0 {
		neighbors = append(neighbors, down(index-1), up(index-1))
	}
	if ik < nk-1 {
		neighbors = append(neighbors, down(index+1), up(index+1))
	}

	return neighbors
}

type gridShape struct {
	nk  int
	nth int
}

// neighborCache memoizes per-shape neighbor tables. Spectral grids come in a
// handful of shapes per process, so a small cache covers all of them.
var neighborCache, _ = lru.New[gridShape, [][]int](8)

func neighborsForShape(nk, nth int) [][]int {
	shape := gridShape{nk: nk, nth: nth}
	if cached, ok := neighborCache.Get(shape); ok {
		return cached
	}

	table := make([][]int, nk*nth)
	for i := range table {
		table[i] = SpectralNeighbors(nk, nth, i)
	}
	neighborCache.Add(shape, table)
	return table
}

// Watershed sentinels.
const (
	watershedMask  = -2
	watershedInit  = -1
	watershedRidge = 0
	watershedFict  = -100
)

// Watershed segments a directional spectrum into connected basins using the
// Vincent-Soille flooding algorithm. Energy is inverted during quantization
// so that flooding begins at the spectral peak. The optional blur smooths the
// quantized field with a Gaussian of that sigma before flooding, which tames
// the speckle in observed spectra.
//
// Returns a label per cell, 0 for ridge cells or a basin id in [1, count-1],
// together with the partition count including the 0 slot.
func Watershed(energy []float64, nk, nth, steps int, blur *float64) ([]int, int, error) {
	if len(energy) != nk*nth {
		return nil, 0, NewInvalidDataError(
			fmt.Sprintf("energy length %d does not match grid %dx%d", len(energy), nk, nth))
	}

	levels := quantizeEnergy(energy, steps)
	if blur != nil {
		blurred := gaussianBlurGrid(levels, nk, nth, *blur)
		for i, v := range blurred {
			levels[i] = clampLevel(math.Round(v), steps)
		}
	}

	intLevels := make([]int, len(levels))
	for i, v := range levels {
		intLevels[i] = int(v)
	}

	sorted := ArgsortInt(intLevels)
	neighbors := neighborsForShape(nk, nth)

	labels := make([]int, len(energy))
	dist := make([]int, len(energy))
	for i := range labels {
		labels[i] = watershedInit
	}

	queue := newIntQueue(len(energy))
	currentLabel := 0

	pos := 0
	for level := 1; level <= steps; level++ {
		levelStart := pos
		for pos < len(sorted) && intLevels[sorted[pos]] == level {
			cell := sorted[pos]
			labels[cell] = watershedMask
			for _, n := range neighbors[cell] {
				if labels[n] > 0 || labels[n] == watershedRidge {
					dist[cell] = 1
					queue.push(cell)
					break
				}
			}
			pos++
		}

		currentDist := 1
		queue.push(watershedFict)
		for {
			cell := queue.pop()
			if cell == watershedFict {
				if queue.empty() {
					break
				}
				queue.push(watershedFict)
				currentDist++
				cell = queue.pop()
			}

			for _, n := range neighbors[cell] {
				if dist[n] < currentDist && (labels[n] > 0 || labels[n] == watershedRidge) {
					if labels[n] > 0 {
						if labels[cell] == watershedMask || labels[cell] == watershedRidge {
							labels[cell] = labels[n]
						} else if labels[cell] != labels[n] {
							labels[cell] = watershedRidge
						}
					} else if labels[cell] == watershedMask {
						labels[cell] = watershedRidge
					}
				} else if labels[n] == watershedMask && dist[n] == 0 {
					dist[n] = currentDist + 1
					queue.push(n)
				}
			}
		}

		// Any MASK cell left at this level is a new minimum. Flood its
		// connected component with a fresh label.
		for j := levelStart; j < pos; j++ {
			cell := sorted[j]
			dist[cell] = 0
			if labels[cell] != watershedMask {
				continue
			}
			currentLabel++
			labels[cell] = currentLabel
			queue.push(cell)
			for !queue.empty() {
				c := queue.pop()
				for _, n := range neighbors[c] {
					if labels[n] == watershedMask {
						labels[n] = currentLabel
						queue.push(n)
					}
				}
			}
		}
	}

	relaxRidges(labels, energy, neighbors)

	return labels, currentLabel + 1, nil
}

// relaxRidges reassigns ridge cells to the adjacent basin whose energy is
// closest, so that boundary cells still contribute to bulk moments. Capped at
// 5 passes; stops early once no ridge cells remain.
func relaxRidges(labels []int, energy []float64, neighbors [][]int) {
	for pass := 0; pass < 5; pass++ {
		remaining := 0
		for i, label := range labels {
			if label != watershedRidge {
				continue
			}

			best := watershedRidge
			bestDiff := math.Inf(1)
			for _, n := range neighbors[i] {
				if labels[n] <= 0 {
					continue
				}
				diff := math.Abs(energy[i] - energy[n])
				if diff < bestDiff {
					bestDiff = diff
					best = labels[n]
				}
			}

			if best != watershedRidge {
				labels[i] = best
			} else {
				remaining++
			}
		}
		if remaining == 0 {
			break
		}
	}
}

// quantizeEnergy maps energies onto inverted levels in [1, steps] so the
// highest energy becomes the lowest terrain.
func quantizeEnergy(energy []float64, steps int) []float64 {
	min, max := MinMax(energy)

	fact := 0.0
	if max > min {
		fact = float64(steps-1) / (max - min)
	}

	levels := make([]float64, len(energy))
	for i, e := range energy {
		if math.IsNaN(e) {
			e = min
		}
		levels[i] = clampLevel(math.Round(1.0+(max-e)*fact), steps)
	}
	return levels
}

func clampLevel(v float64, steps int) float64 {
	if v < 1 {
		return 1
	}
	if v > float64(steps) {
		return float64(steps)
	}
	return v
}

// gaussianBlurGrid applies a separable Gaussian of the given sigma on the
// nk x nth lattice, wrapping the direction axis and clamping the frequency
// axis at its ends.
func gaussianBlurGrid(data []float64, nk, nth int, sigma float64) []float64 {
	if sigma <= 0 {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}

	radius := int(math.Ceil(3.0 * sigma))
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-x * x / (2.0 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	tmp := make([]float64, len(data))
	for ith := 0; ith < nth; ith++ {
		for ik := 0; ik < nk; ik++ {
			acc := 0.0
			for j, w := range kernel {
				kk := ik + j - radius
				if kk < 0 {
					kk = 0
				} else if kk >= nk {
					kk = nk - 1
				}
				acc += w * data[kk+ith*nk]
			}
			tmp[ik+ith*nk] = acc
		}
	}

	out := make([]float64, len(data))
	for ith := 0; ith < nth; ith++ {
		for ik := 0; ik < nk; ik++ {
			acc := 0.0
			for j, w := range kernel {
				tt := ith + j - radius
				tt = ((tt % nth) + nth) % nth
				acc += w * tmp[ik+tt*nk]
			}
			out[ik+ith*nk] = acc
		}
	}
	return out
}

// intQueue is a FIFO backed by a ring-free slice with a moving head. Sized
// for watershed flooding where the total enqueue count is bounded by a small
// multiple of the cell count.
type intQueue struct {
	items []int
	head  int
}

func newIntQueue(capacity int) *intQueue {
	return &intQueue{items: make([]int, 0, capacity)}
}

func (q *intQueue) push(v int) {
	q.items = append(q.items, v)
}

func (q *intQueue) pop() int {
	v := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return v
}

func (q *intQueue) empty() bool {
	return q.head == len(q.items)
}
