// Package transform implements the three exam-text pipelines.
//
// Each pipeline is a pure function from raw text to reformatted text:
//   - MarkerReunifier reunites lone single-letter option markers with their
//     description, groups lines into paragraphs and numbers question paragraphs
//   - CompactNormalizer joins short marker tokens (up to four characters, no
//     space) with the following description line and collapses blank runs
//   - ParagraphNumberer renumbers blank-line separated paragraphs that contain
//     an ellipsis and leaves every other paragraph untouched
//
// A paragraph is a question when it contains the ellipsis token "...".
// Pipelines never fail: input that does not match a heuristic passes through
// in a weaker, plain form. No state is kept between calls, so every pipeline
// is safe for concurrent use and numbering always starts at 1.
package transform
