package terrain

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// maxRawPoints guards LoadRaw against absurd headers.
const maxRawPoints = 1 << 28

// SaveRaw writes the grid as int32 W, int32 H (little-endian) followed by
// W*H float32 heights in Buf order.
func (hf *Heightfield) SaveRaw(path string) error {
	if hf.W < 0 || hf.H < 0 {
		return fmt.Errorf("negative dimensions: W=%d H=%d", hf.W, hf.H)
	}
	exp64 := int64(hf.W) * int64(hf.H)
	if int64(len(hf.Buf)) != exp64 {
		return fmt.Errorf("Buf length mismatch: got %d, expected %d (W*H)", len(hf.Buf), exp64)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, [2]int32{int32(hf.W), int32(hf.H)}); err != nil {
		return err
	}
	if exp64 > 0 {
		if err := binary.Write(w, binary.LittleEndian, hf.Buf); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// LoadRaw reads a grid written by SaveRaw.
func LoadRaw(path string) (*Heightfield, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var hdr [2]int32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	w, h := int(hdr[0]), int(hdr[1])
	if w < 2 || h < 2 || int64(w)*int64(h) > maxRawPoints {
		return nil, fmt.Errorf("bad raw heightfield dimensions %dx%d in %s", w, h, path)
	}
	hf := &Heightfield{W: w, H: h, Buf: make([]Real, w*h)}
	if err := binary.Read(r, binary.LittleEndian, hf.Buf); err != nil {
		return nil, fmt.Errorf("read %d heights from %s: %w", w*h, path, err)
	}
	DebugLog("Loaded raw heightfield %dx%d from %s", w, h, path)
	return hf, nil
}
