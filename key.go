package octree

import (
	"math"

	"github.com/golang/geo/r3"
)

// Key is one axis of a quantized coordinate. A key is valid iff it lies
// strictly inside (0, 2*treeMaxVal).
type Key uint32

// Keys addresses a single cell at the finest depth, one key per axis.
type Keys [3]Key

// GenKey quantizes a single coordinate of the given axis into a key, using
// floor toward negative infinity so every cell covers a half-open interval.
func (t *Tree) GenKey(value float64, axis Axis) (Key, error) {
	// scale to resolution and shift so the key origin is the cube center
	scaled := int(math.Floor(t.resolutionFactor*value)) + treeMaxVal
	if scaled <= 0 || scaled >= 2*treeMaxVal {
		return 0, OutOfBoundsError{Axis: axis, Value: value}
	}
	return Key(scaled), nil
}

// GenKeys quantizes all three coordinates of p. It fails without a partial
// result if any axis is unrepresentable.
func (t *Tree) GenKeys(p r3.Vector) (Keys, error) {
	var keys Keys
	for axis := AxisX; axis <= AxisZ; axis++ {
		k, err := t.GenKey(axisComponent(p, axis), axis)
		if err != nil {
			return Keys{}, err
		}
		keys[axis] = k
	}
	return keys, nil
}

// GenValue is the lossy inverse of GenKey: it returns the center of the
// quantization cell the key addresses, never the originally quantized input.
// Re-quantizing the returned center yields the same key back.
func (t *Tree) GenValue(k Key) (float64, error) {
	if k >= 2*treeMaxVal {
		return 0, OutOfBoundsError{Axis: AxisNone, Value: float64(k)}
	}
	return (float64(k) - treeMaxVal + 0.5) * t.resolution, nil
}

// childIndex builds the 3-bit child selector for one depth level: bit `level`
// of the x key contributes 1, of the y key 2, of the z key 4. Levels run from
// TreeDepth-1 (coarsest) down to 0 (finest).
func childIndex(keys Keys, level int) int {
	idx := 0
	if keys[AxisX]&(1<<level) != 0 {
		idx += 1
	}
	if keys[AxisY]&(1<<level) != 0 {
		idx += 2
	}
	if keys[AxisZ]&(1<<level) != 0 {
		idx += 4
	}
	return idx
}

func axisComponent(p r3.Vector, axis Axis) float64 {
	switch axis {
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	default:
		return p.X
	}
}

func setAxisComponent(p *r3.Vector, axis Axis, value float64) {
	switch axis {
	case AxisY:
		p.Y = value
	case AxisZ:
		p.Z = value
	default:
		p.X = value
	}
}
