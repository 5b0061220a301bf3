package naming

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout is the second-resolution stamp used for aggregate outputs
// and archive collision suffixes.
const TimestampLayout = "20060102_150405"

// TranscriptExt is the extension of every text artifact the pipeline writes.
const TranscriptExt = ".txt"

// PartialSuffix marks an aggregate transcript that has not been completed.
// Renaming to the final name happens only after every part succeeded.
const PartialSuffix = ".partial"

// TranscriptPath returns the output artifact path for a single audio file:
// the source base name with a text extension inside outputDir. Existence of
// this exact path is the idempotency key for single items.
func TranscriptPath(outputDir, sourcePath string) string {
	name := filepath.Base(sourcePath)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(outputDir, base+TranscriptExt)
}

// AggregatePath returns the aggregate transcript path for a collection:
// <directory-name>_<runStamp>.txt inside outputDir. The stamp makes the path
// unique per run so re-dropped collections are never skipped as done.
func AggregatePath(outputDir, collectionDir string, runStamp time.Time) string {
	name := filepath.Base(filepath.Clean(collectionDir))
	return filepath.Join(outputDir, name+"_"+runStamp.Format(TimestampLayout)+TranscriptExt)
}

// ArchivePath returns the destination for a processed source inside
// processedDir. The natural name is the source base name; when that is
// occupied a timestamp suffix is inserted before the extension (files) or
// appended (directories) so nothing is ever overwritten.
//
// The only storage access is the existence check on the natural name.
func ArchivePath(processedDir, sourcePath string, now time.Time) string {
	name := filepath.Base(filepath.Clean(sourcePath))
	dest := filepath.Join(processedDir, name)
	if _, err := os.Stat(dest); err != nil {
		return dest
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return filepath.Join(processedDir, base+"_"+now.Format(TimestampLayout)+ext)
}
