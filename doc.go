// Package mnvplot holds the pieces shared by the analysis plotting programs:
// multi-universe histograms, pattern selection out of histogram files,
// exposure normalization, stacking, data/MC ratios and the two-panel
// comparison renderer.
package mnvplot
