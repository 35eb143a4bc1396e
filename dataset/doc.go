// Package dataset turns templates into labeled datasets on disk.
//
// A dataset directory holds one WAV file per datapoint plus a single
// labels.json document mapping datapoint names to their ground truth:
//
//	<dir>/
//	  <prefix>0.wav
//	  <prefix>1.wav
//	  ...
//	  labels.json
//
// Generation is embarrassingly parallel: a datapoint depends only on
// (template, index), so GenerateRange fans indices out across workers
// with no shared state beyond the result channel. Validate re-opens a
// written dataset and cross-checks every label against its audio file,
// failing loudly on any drift between the two.
package dataset
