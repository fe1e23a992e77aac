package curveviz

import (
	"math"
)

const (
	// SampleEpsilon is the time offset used to read the one-sided limits on
	// either side of a sample instant.
	SampleEpsilon = 1e-5

	// DefaultFrameRate replaces a non-positive or non-finite frame rate.
	DefaultFrameRate = 60.0

	// MaxSamples bounds the sample buffers of a single curve.
	MaxSamples = 1 << 20
)

// SampledCurve is the cached, evenly spaced evaluation of one curve.
//
// Left[i] and Right[i] hold the value just before and just after sample
// instant i, so a step in the curve shows up as Left[i] != Right[i].
// MinValue and MaxValue are taken over Right.
type SampledCurve struct {
	MinTime, MaxTime   float64
	MinValue, MaxValue float64
	Left, Right        []float64
	Constant           bool
	Hash               uint64
}

// Len returns the number of samples.
func (s *SampledCurve) Len() int {
	return len(s.Right)
}

// TimeAt returns the sample instant for index i.
func (s *SampledCurve) TimeAt(i int) float64 {
	return sampleTime(s.MinTime, s.MaxTime, i, len(s.Right))
}

// ArraySize returns the number of samples covering [minTime, maxTime] at the
// given frame rate and resolution multiplier.
func ArraySize(minTime, maxTime, frameRate float64, resolution int) int {
	span := maxTime - minTime
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	n := math.Round(span * frameRate * float64(resolution))
	if !(n > 0) {
		return 1
	}
	if n >= MaxSamples {
		return MaxSamples
	}
	return int(n) + 1
}

// sampleTime returns the time of sample i out of size samples.
func sampleTime(minTime, maxTime float64, i, size int) float64 {
	if size <= 1 {
		return minTime
	}
	return lerp(minTime, maxTime, float64(i)/float64(size-1))
}

// SampleCurve evaluates c into dst, reusing dst's buffers. It reports false,
// leaving dst untouched, when c is nil or has no keys.
func SampleCurve(dst *SampledCurve, c Curve, frameRate float64, resolution int) bool {
	if c == nil {
		return false
	}
	keys := c.Keys()
	if len(keys) == 0 {
		return false
	}

	frameRate = normalizeFrameRate(frameRate)
	resolution = normalizeResolution(resolution)

	dst.MinTime = keys[0].Time
	dst.MaxTime = keys[len(keys)-1].Time
	size := ArraySize(dst.MinTime, dst.MaxTime, frameRate, resolution)
	dst.Left = EnsureSize(dst.Left, size)
	dst.Right = EnsureSize(dst.Right, size)

	dst.MinValue = math.Inf(1)
	dst.MaxValue = math.Inf(-1)
	dst.Constant = true

	for i := 0; i < size; i++ {
		t := sampleTime(dst.MinTime, dst.MaxTime, i, size)

		left := c.Evaluate(t - SampleEpsilon)
		right := c.Evaluate(t + SampleEpsilon)
		dst.Left[i] = left
		dst.Right[i] = right

		dst.MinValue = math.Min(dst.MinValue, right)
		dst.MaxValue = math.Max(dst.MaxValue, right)

		if dst.Constant && !approximately(left, right) {
			dst.Constant = false
		}
	}

	// Steps between sample instants show up only in the value range.
	if dst.Constant && !approximately(dst.MinValue, dst.MaxValue) {
		dst.Constant = false
	}
	// A single instant has no extent to draw a shape over.
	if size == 1 {
		dst.Constant = true
	}
	dst.Hash = Fingerprint(c)
	return true
}

// CurveSampler owns the sample cache of one curve binding and rebuilds it
// only when the curve's fingerprint changes.
//
// A CurveSampler is not safe for concurrent use.
type CurveSampler struct {
	frameRate  float64
	resolution int

	sampled  SampledCurve
	valid    bool
	rebuilds int
}

// NewCurveSampler creates a sampler for the given frame rate and resolution
// multiplier. Invalid values are replaced when sampling.
func NewCurveSampler(frameRate float64, resolution int) *CurveSampler {
	return &CurveSampler{
		frameRate:  frameRate,
		resolution: resolution,
	}
}

// Sample returns the cached samples for c, recomputing them when c's
// fingerprint differs from the cached one. The returned value is owned by
// the sampler and is overwritten by later rebuilds.
//
// It reports false when c is nil or has no keys.
func (s *CurveSampler) Sample(c Curve) (*SampledCurve, bool) {
	if c == nil {
		return nil, false
	}
	hash := Fingerprint(c)
	if s.valid && s.sampled.Hash == hash {
		return &s.sampled, true
	}
	if !SampleCurve(&s.sampled, c, s.frameRate, s.resolution) {
		s.valid = false
		return nil, false
	}
	s.valid = true
	s.rebuilds++
	Logger().Debug("curveviz: sample cache rebuilt",
		"samples", s.sampled.Len(),
		"constant", s.sampled.Constant,
		"hash", hash)
	return &s.sampled, true
}

// SetResolution changes the resolution multiplier and invalidates the cache
// when it differs.
func (s *CurveSampler) SetResolution(resolution int) {
	if s.resolution != resolution {
		s.resolution = resolution
		s.valid = false
	}
}

// Invalidate forces the next Sample call to rebuild.
func (s *CurveSampler) Invalidate() {
	s.valid = false
}

// Rebuilds returns how many times the cache has been rebuilt.
func (s *CurveSampler) Rebuilds() int {
	return s.rebuilds
}

// Release drops the sample buffers.
func (s *CurveSampler) Release() {
	s.sampled = SampledCurve{}
	s.valid = false
}

func normalizeFrameRate(frameRate float64) float64 {
	if frameRate > 0 && !math.IsInf(frameRate, 0) {
		return frameRate
	}
	Logger().Warn("curveviz: invalid frame rate, using default",
		"frameRate", frameRate,
		"default", DefaultFrameRate)
	return DefaultFrameRate
}

func normalizeResolution(resolution int) int {
	if resolution >= 1 {
		return resolution
	}
	Logger().Warn("curveviz: curve resolution clamped", "resolution", resolution)
	return 1
}
