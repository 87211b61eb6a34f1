// Package analysis turns recorded frames into numbers and plots.
//
//   - [Series]: one coordinate of one particle across frames
//   - [PowerSpectrum], [DominantFrequency]: spectral content via FFT
//   - [GeneratePhasePortrait]: coordinate against velocity
//   - [LyapunovExponent]: sensitivity of a scene to a small displacement
//   - [Sweep]: turning points of a coordinate across a parameter range
//
// A pendulum scene oscillates at a single frequency:
//
//	ys, _ := analysis.Series(result.Frames, 1, analysis.AxisY)
//	hz, _ := analysis.DominantFrequency(ys, dt)
package analysis
