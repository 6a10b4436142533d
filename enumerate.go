package signalplot

import (
	"io/fs"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/exp/slices"
)

// NormalizeExtensions trims whitespace and the leading dot from every
// extension and drops empty and repeated entries.
func NormalizeExtensions(extensions []string) []string {
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" || slices.Contains(exts, ext) {
			continue
		}
		exts = append(exts, ext)
	}
	return exts
}

// AllowListPattern turns a list of file extensions (".csv" or "csv") into a
// doublestar pattern that only matches files directly inside the root.
func AllowListPattern(extensions []string) (string, error) {
	exts := NormalizeExtensions(extensions)

	switch len(exts) {
	case 0:
		return "", errors.Errorf("no usable data file extension in %q", extensions)
	case 1:
		return "*." + exts[0], nil
	}

	return "*.{" + strings.Join(exts, ",") + "}", nil
}

// EnumerateDataFiles lists the data files at the root of fsys whose extension
// is on the allow-list, in lexical order. Directories are skipped even if their
// name matches. Nothing that fails the allow-list is opened.
func EnumerateDataFiles(fsys fs.FS, extensions []string) ([]string, error) {
	pattern, err := AllowListPattern(extensions)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, ioError("glob", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := fs.Stat(fsys, match)
		if err != nil {
			return nil, ioError("stat", match, err)
		}

		if !info.Mode().IsRegular() {
			logrus.WithFields(logrus.Fields{"tag": "Enumerate", "name": match}).Debug("skipping non-regular entry")
			continue
		}

		files = append(files, match)
	}

	slices.Sort(files)

	return files, nil
}
