// Package sim provides the simulation record grouped by package group, and
// loads collections of them from manifest files.
//
// A manifest lists simulations under a top-level "simulations" key:
//
//	simulations:
//	  - name: run-a
//	    path: runs/a
//	    started: true
//	    lxyz: [6.2832, 6.2832, 6.2832]
//	    params:
//	      nu: 0.001
//	      nxgrid: 64
//
// YAML (.yaml, .yml), JSON (.json) and CUE (.cue) manifests share this shape.
// When "started" is omitted it is detected from the run directory: a
// simulation has started once data/time_series.dat exists under its path.
package sim
