// Package organizer relocates scanned files into per-category folders under
// the scan root.
//
// Plan turns a scanned entry and its category into a MoveAction; Execute
// creates the folder, picks a collision-free name ("photo_1.jpg",
// "photo_2.jpg", ...) and renames the file, falling back to a verified copy
// when the folder sits on another filesystem. Organizer.Run drives a whole
// directory one file at a time, reports each Outcome as it happens, and keeps
// going after per-file failures so the Summary describes the entire batch.
//
// Dry runs never touch the filesystem. Real runs hold a per-root lock so two
// organizer processes cannot interleave on the same directory.
package organizer
