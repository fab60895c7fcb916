package pipeline

import "strings"

// AdjustForScheme applies the protocol heuristic to a model
// probability: HTTPS lowers phishing risk, plain HTTP raises it,
// anything else passes through. It runs after the classifier and is
// never fed back as a feature. The https branch needs no clamp since
// prob <= 1 keeps the product below 1.
func AdjustForScheme(url string, prob float64) float64 {
	lower := strings.ToLower(url)
	switch {
	case strings.HasPrefix(lower, "https://"):
		return prob * 0.4
	case strings.HasPrefix(lower, "http://"):
		adjusted := prob * 1.3
		if adjusted > 1 {
			return 1
		}
		return adjusted
	default:
		return prob
	}
}
