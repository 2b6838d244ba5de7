// Package fileio provides backup-on-overwrite and gzip-transparent file
// access for the analysis output files.
//
// What:
//
//   - Backup renames an existing file to the first free .bak suffix
//     instead of letting a writer clobber it.
//   - Open and Create wrap *.gz paths in a gzip layer and hand back
//     plain streams for everything else.
//
// Why:
//
// Simulation post-processing reruns constantly; silently overwritten
// reports are unrecoverable. Every writer in this module goes through
// Backup + Create, so a rerun can never destroy the previous result.
//
// Errors: all errors come from the os and gzip layers, wrapped with the
// affected path.
package fileio
