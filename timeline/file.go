package timeline

import (
	"fmt"
	"math"
	"os"

	"github.com/hjson/hjson-go/v4"

	"github.com/gogpu/curveviz"
)

// ClipFile is the on-disk form of a Clip.
type ClipFile struct {
	Name      string      `json:"name"`
	FrameRate float64     `json:"frameRate,omitempty"`
	Tracks    []TrackFile `json:"tracks"`
}

// TrackFile is one track of a ClipFile.
type TrackFile struct {
	Path     string    `json:"path,omitempty"`
	Property string    `json:"property"`
	Keys     []KeyFile `json:"keys"`
}

// KeyFile is one key of a TrackFile. Missing tangents follow the straight
// line to the neighboring key. Step holds the value until the next key.
type KeyFile struct {
	Time       float64  `json:"time"`
	Value      float64  `json:"value"`
	InTangent  *float64 `json:"inTangent,omitempty"`
	OutTangent *float64 `json:"outTangent,omitempty"`
	Step       bool     `json:"step,omitempty"`
}

// LoadClip reads an HJSON clip file.
func LoadClip(path string) (*Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("timeline: load clip: %w", err)
	}
	c, err := ParseClip(data)
	if err != nil {
		return nil, fmt.Errorf("timeline: load clip %s: %w", path, err)
	}
	return c, nil
}

// ParseClip decodes an HJSON clip.
func ParseClip(data []byte) (*Clip, error) {
	var f ClipFile
	if err := hjson.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return f.Clip()
}

// Clip validates f and builds the clip.
func (f *ClipFile) Clip() (*Clip, error) {
	if len(f.Tracks) == 0 {
		return nil, ErrNoTracks
	}
	seen := make(map[curveviz.Binding]bool, len(f.Tracks))
	tracks := make([]Track, 0, len(f.Tracks))
	for i, tf := range f.Tracks {
		if tf.Property == "" {
			return nil, &TrackError{Index: i, Reason: "missing property"}
		}
		b := curveviz.Binding{Path: tf.Path, Property: tf.Property}
		if seen[b] {
			return nil, &TrackError{Index: i, Reason: b.String(), Err: ErrDuplicateTrack}
		}
		seen[b] = true

		keys, err := tf.keys()
		if err != nil {
			return nil, &TrackError{Index: i, Reason: "invalid keys", Err: err}
		}
		tracks = append(tracks, Track{Binding: b, Curve: curveviz.NewCurve(keys...)})
	}
	return NewClip(f.Name, f.FrameRate, tracks...), nil
}

func (tf *TrackFile) keys() ([]curveviz.Key, error) {
	if len(tf.Keys) == 0 {
		return nil, ErrNoKeys
	}
	keys := make([]curveviz.Key, len(tf.Keys))
	for i, k := range tf.Keys {
		if math.IsNaN(k.Time) || math.IsInf(k.Time, 0) {
			return nil, fmt.Errorf("key %d: invalid time %v", i, k.Time)
		}
		if i > 0 && k.Time <= tf.Keys[i-1].Time {
			return nil, fmt.Errorf("key %d: time %v not after %v", i, k.Time, tf.Keys[i-1].Time)
		}
		keys[i] = curveviz.Key{Time: k.Time, Value: k.Value}
	}

	for i, k := range tf.Keys {
		in, out := linearTangents(keys, i)
		if k.InTangent != nil {
			in = *k.InTangent
		}
		if k.OutTangent != nil {
			out = *k.OutTangent
		}
		if k.Step {
			out = math.Inf(1)
		}
		keys[i].InTangent = in
		keys[i].OutTangent = out
	}
	return keys, nil
}

// linearTangents returns the slopes toward the previous and next keys. An
// end key reuses its only slope on both sides.
func linearTangents(keys []curveviz.Key, i int) (in, out float64) {
	slope := func(a, b curveviz.Key) float64 {
		return (b.Value - a.Value) / (b.Time - a.Time)
	}
	switch {
	case len(keys) == 1:
		return 0, 0
	case i == 0:
		s := slope(keys[0], keys[1])
		return s, s
	case i == len(keys)-1:
		s := slope(keys[i-1], keys[i])
		return s, s
	default:
		return slope(keys[i-1], keys[i]), slope(keys[i], keys[i+1])
	}
}

// File returns the on-disk form of c with explicit tangents.
func (c *Clip) File() ClipFile {
	f := ClipFile{Name: c.name, FrameRate: c.frameRate}
	for _, t := range c.tracks {
		tf := TrackFile{Path: t.Binding.Path, Property: t.Binding.Property}
		for _, k := range t.Curve.Keys() {
			kf := KeyFile{Time: k.Time, Value: k.Value}
			if !math.IsInf(k.InTangent, 0) {
				in := k.InTangent
				kf.InTangent = &in
			}
			if math.IsInf(k.OutTangent, 0) {
				kf.Step = true
			} else {
				out := k.OutTangent
				kf.OutTangent = &out
			}
			tf.Keys = append(tf.Keys, kf)
		}
		f.Tracks = append(f.Tracks, tf)
	}
	return f
}

// MarshalHJSON encodes c as HJSON.
func (c *Clip) MarshalHJSON() ([]byte, error) {
	f := c.File()
	data, err := hjson.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("timeline: encode clip: %w", err)
	}
	return data, nil
}

// Save writes c as HJSON to path.
func (c *Clip) Save(path string) error {
	data, err := c.MarshalHJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("timeline: save clip: %w", err)
	}
	return nil
}
