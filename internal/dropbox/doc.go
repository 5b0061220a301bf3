// Package dropbox enumerates and classifies entries in the watched drop
// directory.
//
// Classification is purely name and type based: directories are part
// collections, files with a recognized audio extension are single items,
// everything else is unsupported. Nothing here reads file contents or
// mutates the filesystem.
package dropbox
