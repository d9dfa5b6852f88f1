package noisefn

// Point is a coordinate tuple. Its length is the dimension of the pipeline.
type Point interface {
	~[1]float64 | ~[2]float64 | ~[3]float64 | ~[4]float64
}

// NoiseFn is anything that can be evaluated at a point.
// Implementations must be pure: the same point always yields the same value.
type NoiseFn[P Point] interface {
	Get(point P) float64
}

// Func adapts an ordinary function to NoiseFn.
type Func[P Point] func(P) float64

func (f Func[P]) Get(point P) float64 {
	return f(point)
}
