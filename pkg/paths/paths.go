// Package paths composes catalog paths from a root and named segments.
//
// All functions are pure string composition. Segments must not contain the
// separator; that is the caller's obligation and is not checked.
package paths

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/skycatalog/pkg/constants"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// Join copies root verbatim and appends every non-empty segment preceded by
// a single separator. Empty segments are skipped.
func Join(root string, segments ...string) string {
	n := len(root)
	for _, s := range segments {
		if s != "" {
			n += len(constants.PathSeparator) + len(s)
		}
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(root)
	for _, s := range segments {
		if s == "" {
			continue
		}
		b.WriteString(constants.PathSeparator)
		b.WriteString(s)
	}
	return b.String()
}

// CategoryDir returns root/<category>, or root/const/<abbrev>/<category>
// when abbrev is not empty.
func CategoryDir(root, abbrev string, cat sky.Category) string {
	if abbrev == "" {
		return Join(root, cat.Dir())
	}
	return Join(root, constants.ConstellationsDir, abbrev, cat.Dir())
}

// CountFile returns root/<category>.cnt.
func CountFile(root string, cat sky.Category) string {
	return Join(root, cat.Dir()+constants.CountSuffix)
}

// RecordName returns the file name of a record: six zero-padded digits
// followed by the record suffix.
func RecordName(id int64) string {
	return fmt.Sprintf("%0*d%s", constants.RecordIDDigits, id, constants.RecordSuffix)
}

// RecordFile returns the path of one record under its category directory.
func RecordFile(root, abbrev string, cat sky.Category, id int64) string {
	return Join(CategoryDir(root, abbrev, cat), RecordName(id))
}

// ConstellationsDir returns root/const.
func ConstellationsDir(root string) string {
	return Join(root, constants.ConstellationsDir)
}

// ConstellationDir returns root/const/<abbrev>.
func ConstellationDir(root, abbrev string) string {
	return Join(root, constants.ConstellationsDir, abbrev)
}

// TranslationFile returns root/const/<abbrev>/<token>.tsl.
func TranslationFile(root, abbrev string, lang sky.Language) string {
	return Join(root, constants.ConstellationsDir, abbrev, lang.Token()+constants.TranslationSuffix)
}

// IsRecordName reports whether name ends with the record suffix. The match
// is case-insensitive since FAT media report upper-case short names.
func IsRecordName(name string) bool {
	suffix := len(constants.RecordSuffix)
	return len(name) > suffix && strings.EqualFold(name[len(name)-suffix:], constants.RecordSuffix)
}

// IDFromRecordName strips the record suffix and parses the leading digits.
// It reports false when name is not a record name or has no leading digits.
func IDFromRecordName(name string) (int64, bool) {
	if !IsRecordName(name) {
		return 0, false
	}
	stem := name[:len(name)-len(constants.RecordSuffix)]

	end := 0
	for end < len(stem) && stem[end] >= '0' && stem[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(stem[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
