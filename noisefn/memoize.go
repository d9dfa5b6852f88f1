package noisefn

// Memoize returns fn behind a single-slot cache.
//
// It is the closure form of NewCache for code that passes plain functions
// around. fn must be pure. The returned function is not safe for concurrent
// use.
func Memoize[P Point](fn func(P) float64) func(P) float64 {
	if fn == nil {
		panic("noisefn: Memoize with nil function")
	}
	return NewCache[P](Func[P](fn)).Get
}
