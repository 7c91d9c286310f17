package blend2d

// Options configures a single Convert call. The zero value is the
// default: no gap bytes, zero fill.
//
// Options is an extensible record; future fields (dithering seed,
// placement origin) will keep the zero-value-is-default property.
type Options struct {
	// Gap is the number of bytes written after each destination row.
	// The destination stride must cover the packed row plus Gap.
	Gap int

	// FillByte is the value written into the gap region.
	FillByte byte
}

// defaultOptions is used when Convert receives nil options.
var defaultOptions Options
