package curveviz

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"
)

// Key is a single keyframe. Tangents are slopes (value units per second);
// an infinite tangent on either side of a segment holds the left key's value
// until the next key, producing a step.
type Key struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// Curve is the evaluation contract the renderer consumes. Implementations
// decide their own interpolation and discontinuity semantics.
type Curve interface {
	// Keys returns the keys sorted ascending by time.
	Keys() []Key
	// Evaluate returns the curve value at time t.
	Evaluate(t float64) float64
}

// Fingerprinter is implemented by curves that can report a content hash
// cheaper than hashing their key list.
type Fingerprinter interface {
	Fingerprint() uint64
}

// Fingerprint returns a content hash of c that changes whenever any key's
// time, value or tangent changes. A nil curve hashes to 0.
func Fingerprint(c Curve) uint64 {
	if c == nil {
		return 0
	}
	if f, ok := c.(Fingerprinter); ok {
		return f.Fingerprint()
	}
	return hashKeys(c.Keys())
}

// CombineFingerprints folds several fingerprints into one. The result
// depends on the order of its arguments.
func CombineFingerprints(hs ...uint64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range hs {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:]) // fnv.Write never returns an error
	}
	return h.Sum64()
}

// hashKeys computes an FNV-1a hash over the key list.
func hashKeys(keys []Key) uint64 {
	h := fnv.New64a()
	var buf [32]byte
	for _, k := range keys {
		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(k.Time))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(k.Value))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(k.InTangent))
		binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(k.OutTangent))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// KeyframeCurve is a Hermite-interpolated keyframe curve.
// It is not safe for concurrent mutation.
type KeyframeCurve struct {
	keys []Key
	hash uint64
}

// NewCurve creates a curve from keys. Keys are copied and sorted by time.
func NewCurve(keys ...Key) *KeyframeCurve {
	c := &KeyframeCurve{}
	c.SetKeys(keys...)
	return c
}

// Linear creates a curve through alternating time/value pairs with linear
// segments between them. A trailing odd argument is ignored.
func Linear(timeValues ...float64) *KeyframeCurve {
	keys := pairsToKeys(timeValues)
	for i := 0; i+1 < len(keys); i++ {
		dt := keys[i+1].Time - keys[i].Time
		if dt <= 0 {
			continue
		}
		slope := (keys[i+1].Value - keys[i].Value) / dt
		keys[i].OutTangent = slope
		keys[i+1].InTangent = slope
	}
	return NewCurve(keys...)
}

// Step creates a curve through alternating time/value pairs that holds each
// value until the next key.
func Step(timeValues ...float64) *KeyframeCurve {
	keys := pairsToKeys(timeValues)
	for i := range keys {
		keys[i].InTangent = math.Inf(1)
		keys[i].OutTangent = math.Inf(1)
	}
	return NewCurve(keys...)
}

func pairsToKeys(timeValues []float64) []Key {
	keys := make([]Key, 0, len(timeValues)/2)
	for i := 0; i+1 < len(timeValues); i += 2 {
		keys = append(keys, Key{Time: timeValues[i], Value: timeValues[i+1]})
	}
	return keys
}

// SetKeys replaces every key. The fingerprint changes accordingly.
func (c *KeyframeCurve) SetKeys(keys ...Key) {
	sorted := make([]Key, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	c.keys = sorted
	c.hash = hashKeys(sorted)
}

// SetKey replaces the key at index i, keeping the keys sorted.
func (c *KeyframeCurve) SetKey(i int, k Key) {
	if i < 0 || i >= len(c.keys) {
		return
	}
	keys := c.Keys()
	keys[i] = k
	c.SetKeys(keys...)
}

// Keys returns a copy of the keys.
func (c *KeyframeCurve) Keys() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of keys.
func (c *KeyframeCurve) Len() int {
	return len(c.keys)
}

// Fingerprint implements Fingerprinter.
func (c *KeyframeCurve) Fingerprint() uint64 {
	return c.hash
}

// Evaluate implements Curve. Times before the first key or after the last
// key evaluate to the nearest key's value.
func (c *KeyframeCurve) Evaluate(t float64) float64 {
	n := len(c.keys)
	if n == 0 {
		return 0
	}
	if t <= c.keys[0].Time {
		return c.keys[0].Value
	}
	if t >= c.keys[n-1].Time {
		return c.keys[n-1].Value
	}

	// First key strictly after t; t lies in [keys[i-1], keys[i]).
	i := sort.Search(n, func(i int) bool {
		return c.keys[i].Time > t
	})
	k0 := c.keys[i-1]
	k1 := c.keys[i]
	return hermite(k0, k1, t)
}

// hermite evaluates the cubic Hermite segment between k0 and k1.
func hermite(k0, k1 Key, t float64) float64 {
	dt := k1.Time - k0.Time
	if dt <= 0 {
		return k1.Value
	}
	if math.IsInf(k0.OutTangent, 0) || math.IsInf(k1.InTangent, 0) {
		return k0.Value
	}

	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}
