// Package crn unpacks crunched texture containers into GPU-ready
// block-compressed data.
//
// A container factors a texture into four small shared palettes (color
// endpoints, color selectors, alpha endpoints, alpha selectors) plus a
// compact per-block stream per mip level that references them. Begin
// decodes the palettes once; UnpackLevel then rehydrates any level, in
// any order, into caller-owned buffers laid out as DXT1, DXT3-era DXT5
// variants, DXT5A, DXN, ETC1, ETC2, or ETC2A blocks. ETC1S containers
// can additionally be transcoded to DXT1 or DXT5A at unpack time.
//
// The package performs no I/O and never decodes blocks to pixels.
package crn
