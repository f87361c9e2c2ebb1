package crn

import (
	"testing"

	"github.com/gputex/crn/internal/container"
	"github.com/gputex/crn/internal/crntest"
)

func benchFile(b *testing.B, format container.Format) []byte {
	b.Helper()
	f := &crntest.File{
		Width: 256, Height: 256, Levels: 1, Faces: 1,
		Format: format,
	}
	switch format {
	case container.FormatETC1S:
		f.ColorEndpointsETC = [][4]uint32{{16, 16, 16, 2}}
		f.ColorSelectors = []uint32{0x9E3779B9}
		f.LevelColorEndpoint = []uint32{0}
		f.LevelColorSelector = []uint32{0}
	default:
		f.ColorEndpointsDXT = [][6]uint32{{31, 32, 15, 7, 8, 9}}
		f.ColorSelectors = []uint32{0x9E3779B9}
		f.LevelColorEndpoint = []uint32{0}
		f.LevelColorSelector = []uint32{0}
	}
	return f.Build()
}

func benchUnpack(b *testing.B, data []byte, output TranscodeFormat, blockPitch uint32) {
	b.Helper()
	p, err := Begin(data)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	li, err := GetLevelInfo(data, 0)
	if err != nil {
		b.Fatal(err)
	}
	blockBytes := li.BytesPerBlock
	if output != TranscodeUnchanged {
		blockBytes = blockPitch * 4
	}
	dst := [][]byte{make([]byte, li.BlocksX*li.BlocksY*blockBytes)}

	b.SetBytes(int64(len(dst[0])))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.UnpackLevel(dst, 0, 0, output, blockPitch); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnpackLevel_DXT1(b *testing.B) {
	benchUnpack(b, benchFile(b, container.FormatDXT1), TranscodeUnchanged, 0)
}

func BenchmarkUnpackLevel_ETC1S(b *testing.B) {
	benchUnpack(b, benchFile(b, container.FormatETC1S), TranscodeUnchanged, 0)
}

func BenchmarkUnpackLevel_ETC1SToDXT1(b *testing.B) {
	benchUnpack(b, benchFile(b, container.FormatETC1S), TranscodeDXT1, 2)
}

func BenchmarkBegin(b *testing.B) {
	data := benchFile(b, container.FormatDXT1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := Begin(data)
		if err != nil {
			b.Fatal(err)
		}
		p.Close()
	}
}
