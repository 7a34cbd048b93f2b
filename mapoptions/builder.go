package mapoptions

import "time"

// WithStyle sets the style: a URL string pointing to a style document, or an
// inline document (json.RawMessage, []byte with JSON, a map or any JSON-encodable
// value). Inline documents are copied and passed to the engine verbatim; values of
// other Go types are held as their JSON encoding.
func (o Options) WithStyle(style any) Options { return o.with(FieldStyle, style) }

// WithCenter sets the initial center. Any input accepted by lnglat.Parse works.
func (o Options) WithCenter(center any) Options { return o.with(FieldCenter, center) }

// WithZoom sets the initial zoom level.
func (o Options) WithZoom(zoom float64) Options { return o.with(FieldZoom, zoom) }

// WithBearing sets the initial bearing in degrees counter-clockwise from north.
func (o Options) WithBearing(bearing float64) Options { return o.with(FieldBearing, bearing) }

// WithPitch sets the initial pitch in degrees away from the plane of the screen.
func (o Options) WithPitch(pitch float64) Options { return o.with(FieldPitch, pitch) }

// WithRoll sets the initial roll in degrees.
func (o Options) WithRoll(roll float64) Options { return o.with(FieldRoll, roll) }

// WithElevation sets the elevation of the initial center in meters above sea level.
func (o Options) WithElevation(meters float64) Options { return o.with(FieldElevation, meters) }

// WithMinZoom sets the lowest reachable zoom level.
func (o Options) WithMinZoom(zoom float64) Options { return o.with(FieldMinZoom, zoom) }

// WithMaxZoom sets the highest reachable zoom level.
func (o Options) WithMaxZoom(zoom float64) Options { return o.with(FieldMaxZoom, zoom) }

// WithMinPitch sets the lowest reachable pitch.
func (o Options) WithMinPitch(pitch float64) Options { return o.with(FieldMinPitch, pitch) }

// WithMaxPitch sets the highest reachable pitch.
func (o Options) WithMaxPitch(pitch float64) Options { return o.with(FieldMaxPitch, pitch) }

// WithBounds fits the initial view to the given corners, overriding center and zoom.
func (o Options) WithBounds(southWest, northEast any) Options {
	return o.with(FieldBounds, Bounds{SouthWest: southWest, NorthEast: northEast})
}

// WithMaxBounds constrains the map to the given corners.
func (o Options) WithMaxBounds(southWest, northEast any) Options {
	return o.with(FieldMaxBounds, Bounds{SouthWest: southWest, NorthEast: northEast})
}

// WithBearingSnap sets the threshold in degrees below which the bearing snaps to north.
func (o Options) WithBearingSnap(degrees float64) Options {
	return o.with(FieldBearingSnap, degrees)
}

// WithClickTolerance sets how far in pixels the pointer may move during a click.
func (o Options) WithClickTolerance(pixels float64) Options {
	return o.with(FieldClickTolerance, pixels)
}

// WithFadeDuration sets the label fade-in/out duration.
func (o Options) WithFadeDuration(d time.Duration) Options { return o.with(FieldFadeDuration, d) }

// WithPixelRatio overrides the device pixel ratio.
func (o Options) WithPixelRatio(ratio float64) Options { return o.with(FieldPixelRatio, ratio) }

// WithTileCacheSize sets the maximum number of tiles kept in each source cache.
func (o Options) WithTileCacheSize(tiles int) Options { return o.with(FieldTileCacheSize, tiles) }

// WithTileCacheZoomLevels sets how many zoom levels of tiles are cached.
func (o Options) WithTileCacheZoomLevels(levels int) Options {
	return o.with(FieldTileCacheZoomLevels, levels)
}

// WithCanvasSize sets the maximum canvas size in pixels.
func (o Options) WithCanvasSize(width, height int) Options {
	return o.with(FieldCanvasSize, [2]int{width, height})
}

// WithLogoPosition places the MapLibre logo.
func (o Options) WithLogoPosition(p Position) Options { return o.with(FieldLogoPosition, p) }

// WithLocale overrides UI strings by translation key.
func (o Options) WithLocale(locale map[string]string) Options {
	return o.with(FieldLocale, locale)
}

// WithIdeographFontFamily sets the local font family used for CJK ideographs.
func (o Options) WithIdeographFontFamily(family string) Options {
	return o.with(FieldIdeographFontFamily, family)
}

// WithLogo shows the MapLibre logo.
func (o Options) WithLogo() Options { return o.with(FieldLogo, true) }

// WithHash syncs the map position with the URL hash.
func (o Options) WithHash() Options { return o.with(FieldHash, true) }

// WithCooperativeGestures requires modifier keys or two fingers to move the map.
func (o Options) WithCooperativeGestures() Options { return o.with(FieldCooperativeGestures, true) }

// WithResourceTiming collects resource timing of tile requests.
func (o Options) WithResourceTiming() Options { return o.with(FieldResourceTiming, true) }

// WithRollEnabled lets the user roll the map.
func (o Options) WithRollEnabled() Options { return o.with(FieldRollEnabled, true) }

// WithoutInteractivity makes the map ignore mouse, touch and keyboard input.
func (o Options) WithoutInteractivity() Options { return o.with(FieldInteractivity, false) }

// WithoutAttribution removes the attribution control.
func (o Options) WithoutAttribution() Options { return o.with(FieldAttribution, false) }

// WithoutRefreshExpiredTiles keeps tiles after their HTTP cache expiry.
func (o Options) WithoutRefreshExpiredTiles() Options {
	return o.with(FieldRefreshExpiredTiles, false)
}

// WithoutScrollZoom disables scroll to zoom.
func (o Options) WithoutScrollZoom() Options { return o.with(FieldScrollZoom, false) }

// WithoutBoxZoom disables shift-drag box zoom.
func (o Options) WithoutBoxZoom() Options { return o.with(FieldBoxZoom, false) }

// WithoutDragRotate disables right-drag rotation.
func (o Options) WithoutDragRotate() Options { return o.with(FieldDragRotate, false) }

// WithoutDragPan disables drag to pan.
func (o Options) WithoutDragPan() Options { return o.with(FieldDragPan, false) }

// WithoutKeyboard disables keyboard shortcuts.
func (o Options) WithoutKeyboard() Options { return o.with(FieldKeyboard, false) }

// WithoutDoubleClickZoom disables double click to zoom.
func (o Options) WithoutDoubleClickZoom() Options { return o.with(FieldDoubleClickZoom, false) }

// WithoutTouchZoomRotate disables pinch to zoom and rotate.
func (o Options) WithoutTouchZoomRotate() Options { return o.with(FieldTouchZoomRotate, false) }

// WithoutTouchPitch disables two finger pitch.
func (o Options) WithoutTouchPitch() Options { return o.with(FieldTouchPitch, false) }

// WithoutPitchWithRotate stops drag rotation from also changing the pitch.
func (o Options) WithoutPitchWithRotate() Options { return o.with(FieldPitchWithRotate, false) }

// WithoutTrackResize stops the map from following window resizes.
func (o Options) WithoutTrackResize() Options { return o.with(FieldTrackResize, false) }

// WithoutWorldCopies renders a single copy of the world when zoomed out.
func (o Options) WithoutWorldCopies() Options { return o.with(FieldWorldCopies, false) }

// WithoutCrossSourceCollisions lets symbols of different sources overlap.
func (o Options) WithoutCrossSourceCollisions() Options {
	return o.with(FieldCrossSourceCollisions, false)
}

// WithoutStyleValidation skips style validation in the engine.
func (o Options) WithoutStyleValidation() Options { return o.with(FieldStyleValidation, false) }

// WithoutCancelPendingTileRequests keeps tile requests alive while zooming.
func (o Options) WithoutCancelPendingTileRequests() Options {
	return o.with(FieldCancelPendingTileRequests, false)
}

// WithoutCenterClampedToGround lets the center float above terrain.
func (o Options) WithoutCenterClampedToGround() Options {
	return o.with(FieldCenterClampedToGround, false)
}
