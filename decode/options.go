package decode

import "github.com/pacerline/fitwire/internal/options"

// Option configures a Decoder.
type Option = options.Option[*Decoder]

// WithoutSubFieldExpansion disables sub-field resolution; fields with
// conditional reinterpretations are emitted under their primary name only.
func WithoutSubFieldExpansion() Option {
	return options.NoError(func(d *Decoder) {
		d.expandSubFields = false
	})
}

// WithoutComponentExpansion disables bit-packed component expansion.
func WithoutComponentExpansion() Option {
	return options.NoError(func(d *Decoder) {
		d.expandComponents = false
	})
}

// WithoutScaleAndOffset disables scale/offset application; numeric fields
// keep their raw wire values.
func WithoutScaleAndOffset() Option {
	return options.NoError(func(d *Decoder) {
		d.applyScaleOffset = false
	})
}

// WithoutTypeConversion disables enum-to-string and date_time conversion.
func WithoutTypeConversion() Option {
	return options.NoError(func(d *Decoder) {
		d.convertTypes = false
	})
}

// WithAutoDecompress controls transparent decompression of gzip/zstd/s2/
// lz4 wrapped inputs. Enabled by default.
func WithAutoDecompress(enabled bool) Option {
	return options.NoError(func(d *Decoder) {
		d.autoDecompress = enabled
	})
}
