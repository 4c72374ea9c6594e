package ctcheck

import "math"

// welch accumulates timing measurements for two classes of input and
// computes Welch's t statistic between them. The per-class mean and
// variance are maintained online (Welford's method), so the
// accumulator is constant-size no matter how many measurements are
// pushed.
type welch struct {
	mean [2]float64
	m2   [2]float64
	n    [2]float64
}

func (w *welch) push(x float64, class int) {
	w.n[class]++
	delta := x - w.mean[class]
	w.mean[class] += delta / w.n[class]
	w.m2[class] += delta * (x - w.mean[class])
}

// compute returns the t statistic. NaN until both classes hold at
// least two measurements.
func (w *welch) compute() float64 {
	variance := [2]float64{
		w.m2[0] / (w.n[0] - 1),
		w.m2[1] / (w.n[1] - 1),
	}

	num := w.mean[0] - w.mean[1]
	den := math.Sqrt(variance[0]/w.n[0] + variance[1]/w.n[1])
	return num / den
}

func (w *welch) observations() float64 { return w.n[0] + w.n[1] }
