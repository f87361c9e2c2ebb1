package transcode

import (
	"github.com/gputex/crn/internal/dxt"
	"github.com/gputex/crn/internal/etc"
)

// The walkers below all follow the same row-pair state machine. The
// DXT-family walkers decode one reference-group byte per 2x2 super-block
// at even rows and even columns, carrying four 2-bit endpoint references
// from the low bits up: top-left, bottom-left, top-right, bottom-right.
// The ETC walkers with subblocks decode one byte per block on even rows,
// holding the primary and secondary fields of that block and of the one
// below it. Top-row references are consumed immediately; bottom-row
// references wait in the block buffer for the next row. Padded columns
// and rows are decoded to keep the stream position coherent but never
// written.

// unpackDXT1OrETC1S emits two words per block: color endpoints then
// color selectors. For ETC1S sources the block may instead be converted
// to DXT1 or DXT5A.
func (u *Unpacker) unpackDXT1OrETC1S(dst [][]byte, g geometry, output OutputFormat) error {
	numColorEndpoints := uint32(len(u.colorEndpoints))
	width, height := g.paddedX(), g.paddedY()
	buf := u.growBlockBuffer(width)

	for f := uint32(0); f < u.hdr.Faces; f++ {
		face := dst[f]
		colorEndpointIndex := uint32(0)
		referenceGroup := uint32(0)
		for y := uint32(0); y < height; y++ {
			rowVisible := y < g.blocksY
			for x := uint32(0); x < width; x++ {
				visible := rowVisible && x < g.blocksX
				if y&1 == 0 && x&1 == 0 {
					sym, err := u.codec.Decode(&u.referenceEncodingDM)
					if err != nil {
						return err
					}
					referenceGroup = sym
				}
				b := &buf[x]
				var endpointReference uint32
				if y&1 != 0 {
					endpointReference = uint32(b.endpointReference)
				} else {
					endpointReference = referenceGroup & 3
					referenceGroup >>= 2
					b.endpointReference = uint16(referenceGroup & 3)
					referenceGroup >>= 2
				}
				switch endpointReference {
				case 0:
					delta, err := u.codec.Decode(&u.endpointDeltaDM[0])
					if err != nil {
						return err
					}
					colorEndpointIndex += delta
					if colorEndpointIndex >= numColorEndpoints {
						colorEndpointIndex -= numColorEndpoints
					}
					b.colorEndpointIndex = uint16(colorEndpointIndex)
				case 1:
					b.colorEndpointIndex = uint16(colorEndpointIndex)
				default:
					colorEndpointIndex = uint32(b.colorEndpointIndex)
				}
				colorSelectorIndex, err := u.codec.Decode(&u.selectorDeltaDM[0])
				if err != nil {
					return err
				}

				if !visible {
					continue
				}
				ofs := y*g.rowPitch + x*g.blockSize
				switch output {
				case OutputUnchanged:
					putWord(face, ofs, u.colorEndpoints[colorEndpointIndex])
					putWord(face, ofs+4, u.colorSelectors[colorSelectorIndex])
				case OutputDXT1:
					blk := etc.FromWords(u.colorEndpoints[colorEndpointIndex], u.colorSelectors[colorSelectorIndex])
					var out dxt.Block1
					etc.ConvertToDXT1(&out, &blk)
					w0, w1 := out.Words()
					putWord(face, ofs, w0)
					putWord(face, ofs+4, w1)
				case OutputDXT5A:
					blk := etc.FromWords(u.colorEndpoints[colorEndpointIndex], u.colorSelectors[colorSelectorIndex])
					var out dxt.Block5A
					etc.ConvertToDXT5A(&out, &blk)
					w0, w1 := out.Words()
					putWord(face, ofs, w0)
					putWord(face, ofs+4, w1)
				}
			}
		}
	}
	return nil
}

// unpackDXT5 emits four words per block: the DXT5 alpha block, then the
// DXT1 color block. ETC2AS shares this layout.
func (u *Unpacker) unpackDXT5(dst [][]byte, g geometry) error {
	numColorEndpoints := uint32(len(u.colorEndpoints))
	numAlphaEndpoints := uint32(len(u.alphaEndpoints))
	width, height := g.paddedX(), g.paddedY()
	buf := u.growBlockBuffer(width)

	for f := uint32(0); f < u.hdr.Faces; f++ {
		face := dst[f]
		colorEndpointIndex := uint32(0)
		alpha0EndpointIndex := uint32(0)
		referenceGroup := uint32(0)
		for y := uint32(0); y < height; y++ {
			rowVisible := y < g.blocksY
			for x := uint32(0); x < width; x++ {
				visible := rowVisible && x < g.blocksX
				if y&1 == 0 && x&1 == 0 {
					sym, err := u.codec.Decode(&u.referenceEncodingDM)
					if err != nil {
						return err
					}
					referenceGroup = sym
				}
				b := &buf[x]
				var endpointReference uint32
				if y&1 != 0 {
					endpointReference = uint32(b.endpointReference)
				} else {
					endpointReference = referenceGroup & 3
					referenceGroup >>= 2
					b.endpointReference = uint16(referenceGroup & 3)
					referenceGroup >>= 2
				}
				switch endpointReference {
				case 0:
					delta, err := u.codec.Decode(&u.endpointDeltaDM[0])
					if err != nil {
						return err
					}
					colorEndpointIndex += delta
					if colorEndpointIndex >= numColorEndpoints {
						colorEndpointIndex -= numColorEndpoints
					}
					b.colorEndpointIndex = uint16(colorEndpointIndex)

					delta, err = u.codec.Decode(&u.endpointDeltaDM[1])
					if err != nil {
						return err
					}
					alpha0EndpointIndex += delta
					if alpha0EndpointIndex >= numAlphaEndpoints {
						alpha0EndpointIndex -= numAlphaEndpoints
					}
					b.alpha0EndpointIndex = uint16(alpha0EndpointIndex)
				case 1:
					b.colorEndpointIndex = uint16(colorEndpointIndex)
					b.alpha0EndpointIndex = uint16(alpha0EndpointIndex)
				default:
					colorEndpointIndex = uint32(b.colorEndpointIndex)
					alpha0EndpointIndex = uint32(b.alpha0EndpointIndex)
				}
				colorSelectorIndex, err := u.codec.Decode(&u.selectorDeltaDM[0])
				if err != nil {
					return err
				}
				alpha0SelectorIndex, err := u.codec.Decode(&u.selectorDeltaDM[1])
				if err != nil {
					return err
				}

				if !visible {
					continue
				}
				sel := u.alphaSelectors[alpha0SelectorIndex*3 : alpha0SelectorIndex*3+3]
				ofs := y*g.rowPitch + x*g.blockSize
				putWord(face, ofs, uint32(u.alphaEndpoints[alpha0EndpointIndex])|uint32(sel[0])<<16)
				putWord(face, ofs+4, uint32(sel[1])|uint32(sel[2])<<16)
				putWord(face, ofs+8, u.colorEndpoints[colorEndpointIndex])
				putWord(face, ofs+12, u.colorSelectors[colorSelectorIndex])
			}
		}
	}
	return nil
}

// unpackDXT5A emits one DXT5-style alpha block per block.
func (u *Unpacker) unpackDXT5A(dst [][]byte, g geometry) error {
	numAlphaEndpoints := uint32(len(u.alphaEndpoints))
	width, height := g.paddedX(), g.paddedY()
	buf := u.growBlockBuffer(width)

	for f := uint32(0); f < u.hdr.Faces; f++ {
		face := dst[f]
		alpha0EndpointIndex := uint32(0)
		referenceGroup := uint32(0)
		for y := uint32(0); y < height; y++ {
			rowVisible := y < g.blocksY
			for x := uint32(0); x < width; x++ {
				visible := rowVisible && x < g.blocksX
				if y&1 == 0 && x&1 == 0 {
					sym, err := u.codec.Decode(&u.referenceEncodingDM)
					if err != nil {
						return err
					}
					referenceGroup = sym
				}
				b := &buf[x]
				var endpointReference uint32
				if y&1 != 0 {
					endpointReference = uint32(b.endpointReference)
				} else {
					endpointReference = referenceGroup & 3
					referenceGroup >>= 2
					b.endpointReference = uint16(referenceGroup & 3)
					referenceGroup >>= 2
				}
				switch endpointReference {
				case 0:
					delta, err := u.codec.Decode(&u.endpointDeltaDM[1])
					if err != nil {
						return err
					}
					alpha0EndpointIndex += delta
					if alpha0EndpointIndex >= numAlphaEndpoints {
						alpha0EndpointIndex -= numAlphaEndpoints
					}
					b.alpha0EndpointIndex = uint16(alpha0EndpointIndex)
				case 1:
					b.alpha0EndpointIndex = uint16(alpha0EndpointIndex)
				default:
					alpha0EndpointIndex = uint32(b.alpha0EndpointIndex)
				}
				alpha0SelectorIndex, err := u.codec.Decode(&u.selectorDeltaDM[1])
				if err != nil {
					return err
				}

				if !visible {
					continue
				}
				sel := u.alphaSelectors[alpha0SelectorIndex*3 : alpha0SelectorIndex*3+3]
				ofs := y*g.rowPitch + x*g.blockSize
				putWord(face, ofs, uint32(u.alphaEndpoints[alpha0EndpointIndex])|uint32(sel[0])<<16)
				putWord(face, ofs+4, uint32(sel[1])|uint32(sel[2])<<16)
			}
		}
	}
	return nil
}

// unpackDXN emits two independent alpha blocks per block, one per
// channel, with separate endpoint accumulators and selector indices.
func (u *Unpacker) unpackDXN(dst [][]byte, g geometry) error {
	numAlphaEndpoints := uint32(len(u.alphaEndpoints))
	width, height := g.paddedX(), g.paddedY()
	buf := u.growBlockBuffer(width)

	for f := uint32(0); f < u.hdr.Faces; f++ {
		face := dst[f]
		alpha0EndpointIndex := uint32(0)
		alpha1EndpointIndex := uint32(0)
		referenceGroup := uint32(0)
		for y := uint32(0); y < height; y++ {
			rowVisible := y < g.blocksY
			for x := uint32(0); x < width; x++ {
				visible := rowVisible && x < g.blocksX
				if y&1 == 0 && x&1 == 0 {
					sym, err := u.codec.Decode(&u.referenceEncodingDM)
					if err != nil {
						return err
					}
					referenceGroup = sym
				}
				b := &buf[x]
				var endpointReference uint32
				if y&1 != 0 {
					endpointReference = uint32(b.endpointReference)
				} else {
					endpointReference = referenceGroup & 3
					referenceGroup >>= 2
					b.endpointReference = uint16(referenceGroup & 3)
					referenceGroup >>= 2
				}
				switch endpointReference {
				case 0:
					delta, err := u.codec.Decode(&u.endpointDeltaDM[1])
					if err != nil {
						return err
					}
					alpha0EndpointIndex += delta
					if alpha0EndpointIndex >= numAlphaEndpoints {
						alpha0EndpointIndex -= numAlphaEndpoints
					}
					b.alpha0EndpointIndex = uint16(alpha0EndpointIndex)

					delta, err = u.codec.Decode(&u.endpointDeltaDM[1])
					if err != nil {
						return err
					}
					alpha1EndpointIndex += delta
					if alpha1EndpointIndex >= numAlphaEndpoints {
						alpha1EndpointIndex -= numAlphaEndpoints
					}
					b.alpha1EndpointIndex = uint16(alpha1EndpointIndex)
				case 1:
					b.alpha0EndpointIndex = uint16(alpha0EndpointIndex)
					b.alpha1EndpointIndex = uint16(alpha1EndpointIndex)
				default:
					alpha0EndpointIndex = uint32(b.alpha0EndpointIndex)
					alpha1EndpointIndex = uint32(b.alpha1EndpointIndex)
				}
				alpha0SelectorIndex, err := u.codec.Decode(&u.selectorDeltaDM[1])
				if err != nil {
					return err
				}
				alpha1SelectorIndex, err := u.codec.Decode(&u.selectorDeltaDM[1])
				if err != nil {
					return err
				}

				if !visible {
					continue
				}
				sel0 := u.alphaSelectors[alpha0SelectorIndex*3 : alpha0SelectorIndex*3+3]
				sel1 := u.alphaSelectors[alpha1SelectorIndex*3 : alpha1SelectorIndex*3+3]
				ofs := y*g.rowPitch + x*g.blockSize
				putWord(face, ofs, uint32(u.alphaEndpoints[alpha0EndpointIndex])|uint32(sel0[0])<<16)
				putWord(face, ofs+4, uint32(sel0[1])|uint32(sel0[2])<<16)
				putWord(face, ofs+8, uint32(u.alphaEndpoints[alpha1EndpointIndex])|uint32(sel1[0])<<16)
				putWord(face, ofs+12, uint32(sel1[1])|uint32(sel1[2])<<16)
			}
		}
	}
	return nil
}

// etcColorBlock packs two palette endpoints into an ETC header word:
// differential mode when every channel delta fits [-4, 3], absolute
// 4-bit mode otherwise.
func etcColorBlock(e0, e1 [4]uint8, flip uint32) uint32 {
	diff := uint32(1)
	for c := 0; diff != 0 && c < 3; c++ {
		if !(uint32(e0[c])+3 >= uint32(e1[c]) && uint32(e1[c])+4 >= uint32(e0[c])) {
			diff = 0
		}
	}
	var blockEndpoint [4]uint8
	for c := 0; c < 3; c++ {
		if diff != 0 {
			blockEndpoint[c] = e0[c]<<3 | (e1[c]-e0[c])&7
		} else {
			blockEndpoint[c] = e0[c]<<3&0xF0 | e1[c]>>1
		}
	}
	blockEndpoint[3] = uint8(uint32(e0[3])<<5 | uint32(e1[3])<<2 | diff<<1 | flip)
	return uint32(blockEndpoint[0]) | uint32(blockEndpoint[1])<<8 |
		uint32(blockEndpoint[2])<<16 | uint32(blockEndpoint[3])<<24
}

func endpointBytes(w uint32) [4]uint8 {
	return [4]uint8{uint8(w), uint8(w >> 8), uint8(w >> 16), uint8(w >> 24)}
}

// unpackETC1 handles ETC1 and ETC2 blocks, which carry two endpoint
// subblocks. The reference byte packs two 2-bit fields per block (one
// per subblock). A primary reference of 3 copies the diagonal slot: for
// x > 0, the secondary endpoint of the block up and to the left. A
// nonzero secondary field decodes a second endpoint delta, a zero one
// reuses the primary endpoint, and its high bit clears the flip bit.
func (u *Unpacker) unpackETC1(dst [][]byte, g geometry) error {
	numColorEndpoints := uint32(len(u.colorEndpoints))
	width, height := g.paddedX(), g.paddedY()
	buf := u.growBlockBuffer(width << 1)

	for f := uint32(0); f < u.hdr.Faces; f++ {
		face := dst[f]
		colorEndpointIndex := uint32(0)
		diagonalColorEndpointIndex := uint32(0)
		referenceGroup := uint32(0)
		for y := uint32(0); y < height; y++ {
			rowVisible := y < g.blocksY
			for x := uint32(0); x < width; x++ {
				visible := rowVisible && x < g.blocksX
				b := &buf[x<<1]
				var endpointReference uint32
				if y&1 != 0 {
					endpointReference = uint32(b.endpointReference)
				} else {
					sym, err := u.codec.Decode(&u.referenceEncodingDM)
					if err != nil {
						return err
					}
					referenceGroup = sym
					endpointReference = referenceGroup&3 | referenceGroup>>2&12
					b.endpointReference = uint16(referenceGroup>>2&3 | referenceGroup>>4&12)
				}
				switch endpointReference & 3 {
				case 0:
					delta, err := u.codec.Decode(&u.endpointDeltaDM[0])
					if err != nil {
						return err
					}
					colorEndpointIndex += delta
					if colorEndpointIndex >= numColorEndpoints {
						colorEndpointIndex -= numColorEndpoints
					}
					b.colorEndpointIndex = uint16(colorEndpointIndex)
				case 1:
					b.colorEndpointIndex = uint16(colorEndpointIndex)
				case 3:
					colorEndpointIndex = diagonalColorEndpointIndex
					b.colorEndpointIndex = uint16(colorEndpointIndex)
				default:
					colorEndpointIndex = uint32(b.colorEndpointIndex)
				}
				endpointReference >>= 2

				e0 := endpointBytes(u.colorEndpoints[colorEndpointIndex])
				selectorIndex, err := u.codec.Decode(&u.selectorDeltaDM[0])
				if err != nil {
					return err
				}
				if endpointReference != 0 {
					delta, err := u.codec.Decode(&u.endpointDeltaDM[0])
					if err != nil {
						return err
					}
					colorEndpointIndex += delta
					if colorEndpointIndex >= numColorEndpoints {
						colorEndpointIndex -= numColorEndpoints
					}
				}
				diagonalColorEndpointIndex = uint32(buf[x<<1|1].colorEndpointIndex)
				buf[x<<1|1].colorEndpointIndex = uint16(colorEndpointIndex)
				e1 := endpointBytes(u.colorEndpoints[colorEndpointIndex])

				if !visible {
					continue
				}
				flip := endpointReference>>1 ^ 1
				ofs := y*g.rowPitch + x*g.blockSize
				putWord(face, ofs, etcColorBlock(e0, e1, flip))
				putWord(face, ofs+4, u.colorSelectors[selectorIndex<<1|flip])
			}
		}
	}
	return nil
}

// unpackETC2A emits the ETC2 alpha block (in the orientation matching
// the color block's flip bit) followed by the ETC2 color block.
func (u *Unpacker) unpackETC2A(dst [][]byte, g geometry) error {
	numColorEndpoints := uint32(len(u.colorEndpoints))
	numAlphaEndpoints := uint32(len(u.alphaEndpoints))
	width, height := g.paddedX(), g.paddedY()
	buf := u.growBlockBuffer(width << 1)

	for f := uint32(0); f < u.hdr.Faces; f++ {
		face := dst[f]
		colorEndpointIndex := uint32(0)
		diagonalColorEndpointIndex := uint32(0)
		alpha0EndpointIndex := uint32(0)
		diagonalAlpha0EndpointIndex := uint32(0)
		referenceGroup := uint32(0)
		for y := uint32(0); y < height; y++ {
			rowVisible := y < g.blocksY
			for x := uint32(0); x < width; x++ {
				visible := rowVisible && x < g.blocksX
				b := &buf[x<<1]
				var endpointReference uint32
				if y&1 != 0 {
					endpointReference = uint32(b.endpointReference)
				} else {
					sym, err := u.codec.Decode(&u.referenceEncodingDM)
					if err != nil {
						return err
					}
					referenceGroup = sym
					endpointReference = referenceGroup&3 | referenceGroup>>2&12
					b.endpointReference = uint16(referenceGroup>>2&3 | referenceGroup>>4&12)
				}
				switch endpointReference & 3 {
				case 0:
					delta, err := u.codec.Decode(&u.endpointDeltaDM[0])
					if err != nil {
						return err
					}
					colorEndpointIndex += delta
					if colorEndpointIndex >= numColorEndpoints {
						colorEndpointIndex -= numColorEndpoints
					}
					delta, err = u.codec.Decode(&u.endpointDeltaDM[1])
					if err != nil {
						return err
					}
					alpha0EndpointIndex += delta
					if alpha0EndpointIndex >= numAlphaEndpoints {
						alpha0EndpointIndex -= numAlphaEndpoints
					}
					b.colorEndpointIndex = uint16(colorEndpointIndex)
					b.alpha0EndpointIndex = uint16(alpha0EndpointIndex)
				case 1:
					b.colorEndpointIndex = uint16(colorEndpointIndex)
					b.alpha0EndpointIndex = uint16(alpha0EndpointIndex)
				case 3:
					colorEndpointIndex = diagonalColorEndpointIndex
					alpha0EndpointIndex = diagonalAlpha0EndpointIndex
					b.colorEndpointIndex = uint16(colorEndpointIndex)
					b.alpha0EndpointIndex = uint16(alpha0EndpointIndex)
				default:
					colorEndpointIndex = uint32(b.colorEndpointIndex)
					alpha0EndpointIndex = uint32(b.alpha0EndpointIndex)
				}
				endpointReference >>= 2

				e0 := endpointBytes(u.colorEndpoints[colorEndpointIndex])
				colorSelectorIndex, err := u.codec.Decode(&u.selectorDeltaDM[0])
				if err != nil {
					return err
				}
				alpha0SelectorIndex, err := u.codec.Decode(&u.selectorDeltaDM[1])
				if err != nil {
					return err
				}
				if endpointReference != 0 {
					delta, err := u.codec.Decode(&u.endpointDeltaDM[0])
					if err != nil {
						return err
					}
					colorEndpointIndex += delta
					if colorEndpointIndex >= numColorEndpoints {
						colorEndpointIndex -= numColorEndpoints
					}
				}
				e1 := endpointBytes(u.colorEndpoints[colorEndpointIndex])
				diagonalColorEndpointIndex = uint32(buf[x<<1|1].colorEndpointIndex)
				diagonalAlpha0EndpointIndex = uint32(buf[x<<1|1].alpha0EndpointIndex)
				buf[x<<1|1].colorEndpointIndex = uint16(colorEndpointIndex)
				buf[x<<1|1].alpha0EndpointIndex = uint16(alpha0EndpointIndex)

				if !visible {
					continue
				}
				flip := endpointReference>>1 ^ 1
				sel := u.alphaSelectors[alpha0SelectorIndex*6+flip*3 : alpha0SelectorIndex*6+flip*3+3]
				ofs := y*g.rowPitch + x*g.blockSize
				putWord(face, ofs, uint32(u.alphaEndpoints[alpha0EndpointIndex])|uint32(sel[0])<<16)
				putWord(face, ofs+4, uint32(sel[1])|uint32(sel[2])<<16)
				putWord(face, ofs+8, etcColorBlock(e0, e1, flip))
				putWord(face, ofs+12, u.colorSelectors[colorSelectorIndex<<1|flip])
			}
		}
	}
	return nil
}
