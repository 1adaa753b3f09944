package quire

import (
	"github.com/quirelab/quire/layout"
	"github.com/quirelab/quire/text"
)

// Options holds configuration for page reconstruction.
type Options struct {
	mode          layout.ReadingMode
	autoDirection bool
	table         bool
	language      string
}

// defaultOptions returns the default reconstruction options:
// top-to-bottom, left-to-right, no table reconstruction, no language
// filtering.
func defaultOptions() Options {
	return Options{
		language: text.LangAuto,
	}
}

// clone creates a copy of Options.
func (o Options) clone() Options {
	return o
}

// Option configures a Reconstruct call.
type Option func(*Options)

// WithReadingMode sets both reading axes at once.
func WithReadingMode(mode layout.ReadingMode) Option {
	return func(o *Options) { o.mode = mode }
}

// RightToLeft sets right-to-left column order.
func RightToLeft() Option {
	return func(o *Options) { o.mode.Horizontal = layout.RightToLeft }
}

// BottomToTop sets bottom-to-top line order.
func BottomToTop() Option {
	return func(o *Options) { o.mode.Vertical = layout.BottomToTop }
}

// AutoDirection chooses the horizontal reading order from the
// dominant script of the input text: right-to-left when most strong
// characters are Arabic, Hebrew or related, left-to-right otherwise.
func AutoDirection() Option {
	return func(o *Options) { o.autoDirection = true }
}

// WithTable enables table reconstruction: Result.Grid reconstructs
// rows and columns instead of wrapping each line in its own row.
func WithTable() Option {
	return func(o *Options) { o.table = true }
}

// WithLanguage filters recognized text through the character set of
// the given language ("de", "en", "fr" or "la"). The default,
// text.LangAuto, leaves text untouched.
func WithLanguage(lang string) Option {
	return func(o *Options) { o.language = lang }
}
