// Package ocr reads product captions from catalog pages with Tesseract.
//
// Caption reading is an optional check on the page table. On grid pages the
// text under each photo names the product, so reading it back and comparing it
// with the catalog name catches slots that were assigned to the wrong cell.
// The check is advisory: a low score is reported, never turned into a failure.
//
// # Components
//
//   - CaptionReader: the interface the batch driver depends on
//   - Tesseract: the gosseract/v2 implementation of CaptionReader
//   - MatchScore: the share of the catalog name's words found in a caption
//   - CheckTessdata: verifies training data before a reader is created
//
// # Prerequisites
//
// The Tesseract reader wraps gosseract/v2 and needs cgo plus the Tesseract
// libraries:
//   - Ubuntu/Debian: apt-get install libtesseract-dev tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Training data is not bundled with the binary. NewTesseract uses the system
// installation (or TESSDATA_PREFIX) unless a tessdata directory is passed, in
// which case every requested <lang>.traineddata file must exist there.
//
// Builds without cgo still compile; NewTesseract then returns ErrUnavailable
// and the cropper runs without caption checks.
//
// # Scoring
//
// Both the caption and the name are reduced to slug words (lower-case runs of
// [a-z0-9]) before comparison, so case, punctuation and line breaks in the OCR
// output do not matter. Non-Latin text is ignored on both sides.
package ocr
