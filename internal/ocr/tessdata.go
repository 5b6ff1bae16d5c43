package ocr

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingTessdata is returned when a language has no training data file.
var ErrMissingTessdata = errors.New("ocr: tesseract training data not found")

// CheckTessdata verifies that dir contains a <lang>.traineddata file for every
// requested language.
//
// Parameters:
//   - dir: The tessdata directory, as passed to Tesseract's TESSDATA_PREFIX.
//   - languages: Language codes. Combined codes such as "eng+chi_sim" are
//     split on "+". Empty codes are ignored.
//
// Returns:
//   - error: nil when every file exists; otherwise ErrMissingTessdata wrapped
//     with the first missing file's path.
func CheckTessdata(dir string, languages ...string) error {
	for _, spec := range languages {
		for _, lang := range strings.Split(spec, "+") {
			lang = strings.TrimSpace(lang)
			if lang == "" {
				continue
			}
			path := filepath.Join(dir, lang+".traineddata")
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				return fmt.Errorf("%w: %s", ErrMissingTessdata, path)
			}
		}
	}
	return nil
}
