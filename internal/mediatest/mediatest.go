// Package mediatest writes small media fixtures for tests.
package mediatest

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"testing"
)

const tagDateTime = 0x0132

func sample() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}
	return img
}

// WriteJPEG writes a JPEG to path. When dateTime is not empty, the file
// carries an EXIF block whose only tag is DateTime set to that value.
func WriteJPEG(t testing.TB, path string, dateTime string) {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, sample(), nil); err != nil {
		t.Fatalf(err.Error())
	}

	data := buf.Bytes()
	if dateTime != "" {
		// APP1 goes right after the SOI marker
		data = append(append([]byte{0xFF, 0xD8}, app1(dateTime)...), data[2:]...)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf(err.Error())
	}
}

// WritePNG writes a PNG without any EXIF data.
func WritePNG(t testing.TB, path string) {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, sample()); err != nil {
		t.Fatalf(err.Error())
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf(err.Error())
	}
}

// WritePNGWithEXIF writes a PNG carrying an eXIf chunk whose only tag is
// DateTime set to dateTime.
func WritePNGWithEXIF(t testing.TB, path string, dateTime string) {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, sample()); err != nil {
		t.Fatalf(err.Error())
	}

	// signature (8 bytes) followed by the IHDR chunk (25 bytes)
	data := buf.Bytes()
	out := append([]byte{}, data[:33]...)
	out = append(out, pngChunk("eXIf", tiff(dateTime))...)
	out = append(out, data[33:]...)

	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf(err.Error())
	}
}

func pngChunk(typ string, payload []byte) []byte {
	var chunk bytes.Buffer
	_ = binary.Write(&chunk, binary.BigEndian, uint32(len(payload)))
	chunk.WriteString(typ)
	chunk.Write(payload)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(payload)
	_ = binary.Write(&chunk, binary.BigEndian, crc.Sum32())

	return chunk.Bytes()
}

func app1(dateTime string) []byte {
	payload := append([]byte("Exif\x00\x00"), tiff(dateTime)...)

	var seg bytes.Buffer
	seg.Write([]byte{0xFF, 0xE1})
	_ = binary.Write(&seg, binary.BigEndian, uint16(len(payload)+2))
	seg.Write(payload)

	return seg.Bytes()
}

func tiff(dateTime string) []byte {
	value := append([]byte(dateTime), 0)

	var buf bytes.Buffer
	le := binary.LittleEndian
	buf.WriteString("II")
	_ = binary.Write(&buf, le, uint16(42))
	_ = binary.Write(&buf, le, uint32(8))
	// IFD0 with a single ASCII entry, its value stored right after the IFD
	_ = binary.Write(&buf, le, uint16(1))
	_ = binary.Write(&buf, le, uint16(tagDateTime))
	_ = binary.Write(&buf, le, uint16(2))
	_ = binary.Write(&buf, le, uint32(len(value)))
	_ = binary.Write(&buf, le, uint32(8+2+12+4))
	_ = binary.Write(&buf, le, uint32(0))
	buf.Write(value)

	return buf.Bytes()
}
