package band

// Renderer is a drawable surface for curve paths. The engine calls Publish
// once per curve per frame from its own goroutine; implementations that are
// read elsewhere must do their own locking.
type Renderer interface {
	Publish(id CurveID, path string)
}

type teeRenderer []Renderer

func (t teeRenderer) Publish(id CurveID, path string) {
	for _, r := range t {
		if r != nil {
			r.Publish(id, path)
		}
	}
}

// Tee fans each publish out to every given renderer.
func Tee(rs ...Renderer) Renderer {
	return teeRenderer(rs)
}
