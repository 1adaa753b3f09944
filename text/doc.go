// Package text holds the line records the layout engine operates on
// and the text post-processing that surrounds recognition.
//
// A [Line] couples recognized text with its geometry descriptor and
// the canonical box resolved from it. Construction goes through [New],
// which resolves the geometry once; lines whose geometry cannot be
// resolved carry a nil box and flow through the engine's fallback
// paths.
//
// The package also provides per-language character-set filtering of
// recognized text ([NormalizeLanguage], [DetectLanguages]) and
// dominant writing-direction detection ([DetectDirection]) for
// choosing the horizontal reading order.
package text
