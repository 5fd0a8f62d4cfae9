package predict

// fitLine fits an ordinary-least-squares simple linear regression
// y = slope*x + intercept. When x has no variance (all observations on
// one day) the slope is reported as 0, which callers treat as stalled.
func fitLine(xs, ys []float64) (slope, intercept float64) {
	n := float64(len(xs))
	if n == 0 {
		return 0, 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		return 0, meanY
	}

	slope = sxy / sxx
	intercept = meanY - slope*meanX
	return slope, intercept
}
