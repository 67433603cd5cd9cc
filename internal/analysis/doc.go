// Package analysis derives orbital characteristics from sampled tracks.
//
//   - [DominantPeriod]: strongest period of a series via FFT
//   - [FindApsides]: closest and farthest approaches in a distance series
//   - [Analyze]: both of the above folded into a [Report]
//
// Samples are expected to be evenly spaced, as produced by the track
// package:
//
//	res, _ := track.New(resolver).Run(ctx, "mars", track.Config{Duration: 1400, Step: 1})
//	r := analysis.Analyze("mars", res.Samples)
//	fmt.Println(r.Period, r.Eccentricity())
package analysis
