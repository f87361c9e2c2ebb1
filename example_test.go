package crn_test

import (
	"fmt"

	"github.com/gputex/crn"
	"github.com/gputex/crn/internal/container"
	"github.com/gputex/crn/internal/crntest"
)

// sampleData fabricates a small single-level DXT1 container.
func sampleData() []byte {
	f := &crntest.File{
		Width: 8, Height: 8, Levels: 1, Faces: 1,
		Format:             container.FormatDXT1,
		ColorEndpointsDXT:  [][6]uint32{{31, 0, 0, 31, 0, 0}},
		ColorSelectors:     []uint32{0},
		LevelColorEndpoint: []uint32{0},
		LevelColorSelector: []uint32{0},
	}
	return f.Build()
}

func ExampleValidate() {
	info, err := crn.Validate(sampleData())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("levels: %d, color endpoints: %d\n", info.Levels, info.ColorEndpointPaletteEntries)
	// Output:
	// levels: 1, color endpoints: 1
}

func ExampleUnpacker_UnpackLevel() {
	data := sampleData()

	p, err := crn.Begin(data)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer p.Close()

	info, err := crn.GetLevelInfo(data, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	dst := [][]byte{make([]byte, info.BlocksX*info.BlocksY*info.BytesPerBlock)}
	if err := p.UnpackLevel(dst, 0, 0, crn.TranscodeUnchanged, 0); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("unpacked %d bytes\n", len(dst[0]))
	// Output:
	// unpacked 32 bytes
}
