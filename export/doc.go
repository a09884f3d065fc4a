// Package export writes the artefacts of a finished run.
//
// What:
//
//   - WriteImage / ImageExporter: the final temperature field as a heat map.
//     ".png" paths are PNG encoded; every other path gets a BMP.
//   - WriteConvergenceChart: a PNG line chart of delta per step.
//   - WriteReport: a YAML summary of a simulation.Result.
//
// Heat-map colours come from an HSV hue ramp, 240° (cold, blue) down to
// 0° (hot, red), normalised over the grid's own min..max. Image row 0 is
// grid row y=0, the warm top edge.
//
// Nothing in this package runs inside the step loop; the driver hands the
// grid over once the run is DONE.
package export
