package freehand

// Host is the scene a session commits strokes to.
type Host interface {
	// Add inserts a committed stroke into the host's object collection.
	Add(obj *PathObject)
	// RequestRender asks the host to redraw its scene.
	RequestRender()
	// PathCreated is called once per committed stroke, after the object has been
	// added and its coordinates computed.
	PathCreated(obj *PathObject)
}

// Finalizer turns finished path descriptions into objects and hands them to a
// host.
type Finalizer struct {
	Surface Surface
	Host    Host
	// Origin convention of created objects.
	OriginX OriginX
	OriginY OriginY
}

// Finalize commits path, styled with brush. It reports false if the path carries
// no geometry, in which case nothing is added to the host. Either way the preview
// surface is cleared.
func (f *Finalizer) Finalize(path Path, brush Brush) (*PathObject, bool) {
	f.Surface.ClosePath()

	if path.IsEmptyMarker() {
		Logger().Debug("freehand: discarding empty stroke", "commands", len(path))
		f.Surface.Clear()
		f.Host.RequestRender()
		return nil, false
	}

	obj := f.newObject(path, brush)
	f.Surface.Clear()
	f.Host.Add(obj)
	obj.SetCoords()
	f.Host.RequestRender()
	f.Host.PathCreated(obj)
	Logger().Debug("freehand: committed stroke",
		"commands", len(obj.Path),
		"width", obj.Width,
		"height", obj.Height)
	return obj, true
}

func (f *Finalizer) newObject(path Path, brush Brush) *PathObject {
	brush = brush.Clone()
	obj := &PathObject{
		Path:    path.Clone(),
		Brush:   brush,
		OriginX: f.OriginX,
		OriginY: f.OriginY,
	}
	if brush.Shadow != nil {
		sh := *brush.Shadow
		sh.AffectStroke = true
		obj.Shadow = &sh
	}

	bbox := path.BoundingBox()
	obj.Width = bbox.Width()
	obj.Height = bbox.Height()
	obj.PathOffset = bbox.Center()
	obj.SetPositionByOrigin(bbox.Center())
	return obj
}
