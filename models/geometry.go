package models

import (
	"encoding/binary"
	"errors"
	"math"
)

const (
	geometryMagic   = "XMG"
	geometryVersion = 1
	geometryLen     = 13

	// aspectLimit is how close the short side may get to the long side
	aspectLimit = 0.6
)

var (
	ErrGeometryLength   = errors.New("geometry: invalid length")
	ErrGeometryMagic    = errors.New("geometry: bad magic")
	ErrGeometryVersion  = errors.New("geometry: unsupported version")
	ErrGeometryChecksum = errors.New("geometry: checksum mismatch")
)

// Geometry is the saved window size
type Geometry struct {
	Width  float32
	Height float32
}

// MarshalBinary encodes the geometry as "XMG", a version byte, width and height
// as big endian float32 and a trailing xor checksum.
func (g Geometry) MarshalBinary() ([]byte, error) {
	buf := make([]byte, geometryLen)
	copy(buf, geometryMagic)
	buf[3] = geometryVersion
	binary.BigEndian.PutUint32(buf[4:8], math.Float32bits(g.Width))
	binary.BigEndian.PutUint32(buf[8:12], math.Float32bits(g.Height))
	buf[12] = checksum(buf[:12])
	return buf, nil
}

// UnmarshalBinary decodes a record written by MarshalBinary
func (g *Geometry) UnmarshalBinary(data []byte) error {
	if len(data) != geometryLen {
		return ErrGeometryLength
	}
	if string(data[:3]) != geometryMagic {
		return ErrGeometryMagic
	}
	if data[3] != geometryVersion {
		return ErrGeometryVersion
	}
	if checksum(data[:12]) != data[12] {
		return ErrGeometryChecksum
	}
	g.Width = math.Float32frombits(binary.BigEndian.Uint32(data[4:8]))
	g.Height = math.Float32frombits(binary.BigEndian.Uint32(data[8:12]))
	return nil
}

// Fits reports whether the geometry has a plausible shape for the orientation:
// a horizontal bar must be clearly wider than tall and a vertical one clearly taller than wide.
func (g Geometry) Fits(o Orientation) bool {
	w, h := float64(g.Width), float64(g.Height)
	if o == Horizontal {
		return h < w*aspectLimit
	}
	return w < h*aspectLimit
}

// RestoreGeometry returns the size to use after restoring saved onto a window
// currently sized current. It falls back to current when saved can't be decoded
// or doesn't fit the orientation.
func RestoreGeometry(current Geometry, saved []byte, o Orientation) (Geometry, bool) {
	if len(saved) == 0 {
		return current, false
	}
	var restored Geometry
	if err := restored.UnmarshalBinary(saved); err != nil {
		return current, false
	}
	if !restored.Fits(o) {
		return current, false
	}
	return restored, true
}

func checksum(b []byte) byte {
	var sum byte
	for _, c := range b {
		sum ^= c
	}
	return sum
}
