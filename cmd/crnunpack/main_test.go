package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gputex/crn/internal/container"
	"github.com/gputex/crn/internal/crntest"
)

func writeTestCRN(t *testing.T, dir string) string {
	t.Helper()
	f := &crntest.File{
		Width: 8, Height: 8, Levels: 2, Faces: 1,
		Format:             container.FormatDXT1,
		ColorEndpointsDXT:  [][6]uint32{{31, 0, 0, 31, 0, 0}},
		ColorSelectors:     []uint32{0},
		LevelColorEndpoint: []uint32{0, 0},
		LevelColorSelector: []uint32{0, 0},
	}
	path := filepath.Join(dir, "red.crn")
	if err := os.WriteFile(path, f.Build(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDDSHeader(t *testing.T) {
	hdr := ddsHeader(16, 8, 3, container.FormatDXT5)
	if len(hdr) != 128 {
		t.Fatalf("header length = %d, want 128", len(hdr))
	}
	if got := binary.LittleEndian.Uint32(hdr[0:4]); got != ddsMagic {
		t.Fatalf("magic = %#08x", got)
	}
	if got := binary.LittleEndian.Uint32(hdr[12:16]); got != 8 {
		t.Fatalf("height = %d, want 8", got)
	}
	if got := binary.LittleEndian.Uint32(hdr[16:20]); got != 16 {
		t.Fatalf("width = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint32(hdr[28:32]); got != 3 {
		t.Fatalf("mip count = %d, want 3", got)
	}
	if got := binary.LittleEndian.Uint32(hdr[4+72+8:]); got != container.FormatDXT5.FourCC() {
		t.Fatalf("fourcc = %#08x, want DXT5", got)
	}
	// Swizzle hints are written with the fundamental DXT5 FourCC.
	hdr = ddsHeader(4, 4, 1, container.FormatDXT5xGBR)
	if got := binary.LittleEndian.Uint32(hdr[4+72+8:]); got != container.FormatDXT5.FourCC() {
		t.Fatalf("swizzle fourcc = %#08x, want fundamental DXT5", got)
	}
}

func TestUnpackCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeTestCRN(t, dir)

	if err := runInfo([]string{path}); err != nil {
		t.Fatalf("info: %v", err)
	}
	if err := runUnpack([]string{"-o", dir, path}); err != nil {
		t.Fatalf("unpack: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "red.dds"))
	if err != nil {
		t.Fatal(err)
	}
	// 128-byte header, then 2x2 blocks of level 0 and one block of
	// level 1, all solid red.
	if len(out) != 128+4*8+8 {
		t.Fatalf("dds size = %d, want %d", len(out), 128+4*8+8)
	}
	if got := binary.LittleEndian.Uint32(out[128:132]); got != 0xF800F800 {
		t.Fatalf("first block endpoints = %#08x, want 0xf800f800", got)
	}
}

func TestSegmentCommandRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeTestCRN(t, dir)

	if err := runUnpack([]string{"-o", dir, path}); err != nil {
		t.Fatalf("unpack full: %v", err)
	}
	direct, err := os.ReadFile(filepath.Join(dir, "red.dds"))
	if err != nil {
		t.Fatal(err)
	}

	segDir := filepath.Join(dir, "seg")
	if err := os.Mkdir(segDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := runSegment([]string{"-o", segDir, path}); err != nil {
		t.Fatalf("segment: %v", err)
	}

	basePath := filepath.Join(segDir, "red.base.crn")
	if err := runUnpack([]string{"-o", segDir, basePath}); err != nil {
		t.Fatalf("unpack segmented: %v", err)
	}
	segmented, err := os.ReadFile(filepath.Join(segDir, "red.base.dds"))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(direct, segmented) {
		t.Fatal("segmented unpack differs from direct unpack")
	}
}
