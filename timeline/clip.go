package timeline

import (
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/gogpu/curveviz"
)

// Track is one animated property of a clip.
type Track struct {
	Binding curveviz.Binding
	Curve   *curveviz.KeyframeCurve
}

// clipSerial makes every Clip value distinct to the overlay, so reloading a
// file with the same name still counts as a clip change.
var clipSerial atomic.Uint64

// Clip is an in-memory animation clip. It implements curveviz.Clip.
type Clip struct {
	id        string
	name      string
	frameRate float64
	tracks    []Track
	index     map[curveviz.Binding]int
}

// NewClip creates a clip. A frame rate that is not a positive finite number
// is replaced by curveviz.DefaultFrameRate. Later tracks with an already
// used binding are dropped.
func NewClip(name string, frameRate float64, tracks ...Track) *Clip {
	if !(frameRate > 0) || math.IsInf(frameRate, 0) {
		frameRate = curveviz.DefaultFrameRate
	}
	c := &Clip{
		id:        name + "#" + strconv.FormatUint(clipSerial.Add(1), 10),
		name:      name,
		frameRate: frameRate,
		index:     make(map[curveviz.Binding]int, len(tracks)),
	}
	for _, t := range tracks {
		if _, dup := c.index[t.Binding]; dup || t.Curve == nil {
			continue
		}
		c.index[t.Binding] = len(c.tracks)
		c.tracks = append(c.tracks, t)
	}
	return c
}

// ID implements curveviz.Clip.
func (c *Clip) ID() string {
	return c.id
}

// Name returns the clip name.
func (c *Clip) Name() string {
	return c.name
}

// FrameRate implements curveviz.Clip.
func (c *Clip) FrameRate() float64 {
	return c.frameRate
}

// Curve implements curveviz.Clip. It returns nil when b is not animated.
func (c *Clip) Curve(b curveviz.Binding) curveviz.Curve {
	i, ok := c.index[b]
	if !ok {
		return nil
	}
	return c.tracks[i].Curve
}

// Tracks returns the clip's tracks in file order.
func (c *Clip) Tracks() []Track {
	return c.tracks
}

// Bindings returns the bindings of every track in file order.
func (c *Clip) Bindings() []curveviz.Binding {
	out := make([]curveviz.Binding, len(c.tracks))
	for i, t := range c.tracks {
		out[i] = t.Binding
	}
	return out
}

// Duration returns the first and last key times across all tracks.
// An empty clip spans [0, 0].
func (c *Clip) Duration() (start, end float64) {
	return timeRange(c, c.Bindings())
}

// timeRange returns the key time span of the given bindings.
func timeRange(c *Clip, bindings []curveviz.Binding) (start, end float64) {
	start, end = math.Inf(1), math.Inf(-1)
	for _, b := range bindings {
		curve := c.Curve(b)
		if curve == nil {
			continue
		}
		keys := curve.Keys()
		if len(keys) == 0 {
			continue
		}
		start = math.Min(start, keys[0].Time)
		end = math.Max(end, keys[len(keys)-1].Time)
	}
	if start > end {
		return 0, 0
	}
	return start, end
}

// group is a run of tracks sharing an object path and a property base, such
// as m_LocalPosition.x/.y/.z.
type group struct {
	path     string
	base     string
	bindings []curveviz.Binding
}

// groups partitions the clip's bindings in first-appearance order.
func (c *Clip) groups() []group {
	var out []group
	at := make(map[[2]string]int)
	for _, t := range c.tracks {
		base := t.Binding.Property
		if i := strings.LastIndexByte(base, '.'); i >= 0 {
			base = base[:i]
		}
		k := [2]string{t.Binding.Path, base}
		i, ok := at[k]
		if !ok {
			i = len(out)
			at[k] = i
			out = append(out, group{path: t.Binding.Path, base: base})
		}
		out[i].bindings = append(out[i].bindings, t.Binding)
	}
	return out
}
