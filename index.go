package rollerr

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golift.io/rollerr/filer"
)

// ActiveSuffix is appended to the configured path to name the file currently
// receiving writes. The suffix keeps the active file trivially distinguishable
// from indexed backups while a glob on the bare path still finds everything.
const ActiveSuffix = ".ACTIVE"

// joiner sits between the file name and the rotation index.
const joiner = "."

// rotatedName returns the permanent name for backup number index.
func rotatedName(name string, index uint64) string {
	return name + joiner + strconv.FormatUint(index, 10)
}

// rotatedFile pairs a backup log file with the index parsed from its name.
type rotatedFile struct {
	Path  string
	Index uint64
	Entry os.DirEntry
}

// rotatedFiles finds all the backup log files in dir that belong to name,
// sorted with the oldest (lowest index) first. The active file and a bare,
// suffix-free file left over from an older layout are skipped. A file that
// carries our name plus a dot but no parseable index is an error: silently
// misnumbering against such a file risks overwriting someone's data.
func rotatedFiles(fs filer.Filer, dir, name string) ([]rotatedFile, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing log directory: %w", err)
	}

	var (
		prefix = name + joiner
		active = name + ActiveSuffix
		files  []rotatedFile
	)

	for _, entry := range entries {
		fileName := entry.Name()
		if fileName == active || fileName == name || !strings.HasPrefix(fileName, prefix) {
			continue // not our file.
		}

		index, err := strconv.ParseUint(strings.TrimPrefix(fileName, prefix), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCorruptIndex, fileName)
		}

		files = append(files, rotatedFile{
			Path:  filepath.Join(dir, fileName),
			Index: index,
			Entry: entry,
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Index < files[j].Index })

	return files, nil
}

// latestIndex scans dir once and returns the highest rotation index found for
// name, or 0 when no backups exist. This is how a restarted process picks up
// numbering where the previous incarnation left off.
func latestIndex(fs filer.Filer, dir, name string) (uint64, error) {
	files, err := rotatedFiles(fs, dir, name)
	if err != nil {
		return 0, err
	}

	if len(files) == 0 {
		return 0, nil
	}

	return files[len(files)-1].Index, nil
}
