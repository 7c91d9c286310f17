package blend2d

import (
	"encoding/binary"

	"github.com/vvhh2002/blend2d/internal/cpuinfo"
)

// initIndexed builds a converter from an indexed source. The lookup
// table maps every reachable index to the destination representation
// and is built once, here, by running the palette through a nested
// native-to-destination converter; per-pixel work then reduces to a
// table load.
//
// Tables of at most 64 bytes are embedded in the converter value
// (64/32/16 entries for 1/2/4-byte destinations); embedded capacities
// are powers of two and indices are masked by capacity, so stray
// indices beyond the palette wrap instead of reading out of bounds.
// Larger palettes get a heap table with all 256 byte values resolved,
// shared between clones through an atomic reference count. Palette
// entries are clamped to the last entry for indices past the palette.
func initIndexed(c *PixelConverter, di, si FormatInfo, createFlags CreateFlags, caps cpuinfo.Features) error {
	pal := si.Palette
	if createFlags&CreateFlagAlterablePalette != 0 || createFlags&CreateFlagDontCopyPalette == 0 {
		pal = append([]uint32(nil), pal...)
	}

	esz := di.BytesPerPixel()
	if esz != 3 {
		var nested PixelConverter
		if initSingleStep(&nested, di, FormatARGB32, caps) {
			return buildIndexedTable(c, &nested, di, pal, esz, caps)
		}
	}

	// No single-step path from the native palette entries to the
	// destination (or a 3-byte destination): go through two steps.
	return initMultiStep(c, di, si, createFlags, caps)
}

// buildIndexedTable resolves the lookup table and finishes the
// converter. nested converts straight ARGB32 palette entries into the
// destination representation and is released afterwards.
func buildIndexedTable(c *PixelConverter, nested *PixelConverter, di FormatInfo, pal []uint32, esz int, caps cpuinfo.Features) error {
	n := len(pal)
	capEntries := 64 / esz
	count := capEntries
	mask := uint8(capEntries - 1)
	if n > capEntries {
		count = 256
		mask = 0xFF
	}

	scratch := make([]byte, count*4)
	for i := 0; i < count; i++ {
		binary.LittleEndian.PutUint32(scratch[i*4:], pal[min(i, n-1)])
	}

	table := make([]byte, count*esz)
	err := nested.Convert(table, count*esz, scratch, count*4, count, 1, nil)
	nested.Reset()
	if err != nil {
		return err
	}

	c.strategy = StrategyIndexedLookup
	c.d.dstBpp = uint8(esz)
	c.d.srcBpp = 1
	c.d.tableEntrySize = uint8(esz)
	c.d.tableIndexMask = mask
	if count == capEntries {
		copy(c.d.embedded[:], table)
	} else {
		c.dyn = &dynamicTable{data: table}
		c.dyn.refs.Store(1)
		c.flags |= flagDynamicData
	}

	switch esz {
	case 1:
		c.setKernel(indexed8Table, caps)
	case 2:
		c.setKernel(indexed16Table, caps)
	default:
		c.setKernel(indexed32Table, caps)
	}
	c.flags |= flagInitialized
	return nil
}

// tableBytes returns the active lookup table, embedded or dynamic.
func (c *PixelConverter) tableBytes() []byte {
	if c.dyn != nil {
		return c.dyn.data
	}
	return c.d.embedded[:]
}

func convertIndexed8(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	table := c.tableBytes()
	mask := c.d.tableIndexMask

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+w]
		s := src[srcPos : srcPos+w]
		for x := 0; x < w; x++ {
			d[x] = table[s[x]&mask]
		}
		fillGap(dst[dstPos+w:dstPos+w+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

func convertIndexed16(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	table := c.tableBytes()
	mask := c.d.tableIndexMask
	rowBytes := w * 2

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+w]
		for x := 0; x < w; x++ {
			e := int(s[x]&mask) * 2
			binary.LittleEndian.PutUint16(d[x*2:], binary.LittleEndian.Uint16(table[e:]))
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

func convertIndexed32(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	table := c.tableBytes()
	mask := c.d.tableIndexMask
	rowBytes := w * 4

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+w]
		for x := 0; x < w; x++ {
			e := int(s[x]&mask) * 4
			binary.LittleEndian.PutUint32(d[x*4:], binary.LittleEndian.Uint32(table[e:]))
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}
