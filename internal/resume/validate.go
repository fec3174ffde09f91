package resume

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	apierrors "github.com/growvy/onboard/pkg/errors"
)

// allowedExtensions is the upload allow-list.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".html": true,
	".rtf":  true,
	".txt":  true,
}

// AllowedExtensions returns the allow-list, sorted, for display.
func AllowedExtensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(exts)
	return exts
}

// Validate runs the pre-submission checks. It never touches the network:
// a failure here means no request is made at all. maxSize is the ceiling
// in bytes.
func Validate(name string, size, maxSize int64) error {
	if size == 0 {
		return apierrors.Local("resume file is empty")
	}
	if size > maxSize {
		return apierrors.Local(fmt.Sprintf(
			"resume is %s, above the %s limit", humanSize(size), humanSize(maxSize)))
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return apierrors.Local(fmt.Sprintf(
			"unsupported file type %q, allowed: %s", ext, strings.Join(AllowedExtensions(), ", ")))
	}
	return nil
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
