// Package timeline loads animation clips and lays them out as an editor
// would, so the curveviz overlay can be driven without an editor.
//
// A Clip is read from an HJSON file:
//
//	{
//	  name: Walk
//	  frameRate: 30
//	  tracks: [
//	    {
//	      path: Hips
//	      property: m_LocalPosition.y
//	      keys: [
//	        { time: 0, value: 0 }
//	        { time: 0.5, value: 0.1 }
//	        { time: 1, value: 0 }
//	      ]
//	    }
//	  ]
//	}
//
// A View implements curveviz.Host for a clip: it stacks dope lines, scrolls
// and zooms them, and exposes the clip's curves to the curve editor.
package timeline
