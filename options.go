package curveviz

// DefaultCacheLimit is the default number of dope line and curve label
// drawers an Overlay keeps alive.
const DefaultCacheLimit = 1024

// OverlayOption configures an Overlay during creation.
//
// Example:
//
//	ov := curveviz.NewOverlay(host,
//		curveviz.WithPreferences(prefs),
//		curveviz.WithDevice(mesh))
type OverlayOption func(*overlayOptions)

// overlayOptions holds optional configuration for Overlay creation.
type overlayOptions struct {
	device     Device
	prefs      Preferences
	cacheLimit int
}

// defaultOverlayOptions returns the default overlay options.
func defaultOverlayOptions() overlayOptions {
	return overlayOptions{
		prefs:      DefaultPreferences(),
		cacheLimit: DefaultCacheLimit,
	}
}

// WithDevice sets the device drawers acquire materials from. Without a
// device, geometry is emitted with nil materials.
func WithDevice(dev Device) OverlayOption {
	return func(o *overlayOptions) {
		o.device = dev
	}
}

// WithPreferences replaces DefaultPreferences.
func WithPreferences(p Preferences) OverlayOption {
	return func(o *overlayOptions) {
		o.prefs = p
	}
}

// WithCacheLimit bounds the number of cached drawers per view. A limit of
// 0 means unlimited; negative values are ignored.
func WithCacheLimit(n int) OverlayOption {
	return func(o *overlayOptions) {
		if n >= 0 {
			o.cacheLimit = n
		}
	}
}
