package catalog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Binary constellation table layout (little endian):
//
//	header:  magic uint32, count uint32
//	records: count × { name [24]byte, abbr [4]byte,
//	                   boundaryLen uint32, lineCount uint32 }
//	per constellation, in record order:
//	         lineLens [lineCount]uint32
//	         boundary [boundaryLen]  (ra float32, dec float32)
//	         lines    [sum(lineLens)] (ra float32, dec float32)
//
// Coordinates are degrees stored as float32; sub-arcsecond precision
// is irrelevant for chart polylines.

const tableMagic uint32 = 0x534B5943 // "SKYC"

// ErrBadTable indicates a malformed or truncated constellation table.
var ErrBadTable = errors.New("catalog: malformed constellation table")

const (
	nameFieldLen = 24
	abbrFieldLen = 4
)

type tableRecord struct {
	Name        [nameFieldLen]byte
	Abbr        [abbrFieldLen]byte
	BoundaryLen uint32
	LineCount   uint32
}

// WriteTable serializes the constellation set to w.
func WriteTable(w io.Writer, cons []Constellation) error {
	if err := binary.Write(w, binary.LittleEndian, tableMagic); err != nil {
		return fmt.Errorf("catalog: write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(cons))); err != nil {
		return fmt.Errorf("catalog: write header: %w", err)
	}

	for _, c := range cons {
		if len(c.Name) > nameFieldLen || len(c.Abbr) > abbrFieldLen {
			return fmt.Errorf("catalog: %q: name or abbreviation too long", c.Name)
		}
		var rec tableRecord
		copy(rec.Name[:], c.Name)
		copy(rec.Abbr[:], c.Abbr)
		rec.BoundaryLen = uint32(len(c.Boundary))
		rec.LineCount = uint32(len(c.Lines))
		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("catalog: write record %q: %w", c.Name, err)
		}
	}

	for _, c := range cons {
		for _, line := range c.Lines {
			if err := binary.Write(w, binary.LittleEndian, uint32(len(line))); err != nil {
				return fmt.Errorf("catalog: write %q line lengths: %w", c.Name, err)
			}
		}
		if err := writePoints(w, c.Boundary); err != nil {
			return fmt.Errorf("catalog: write %q boundary: %w", c.Name, err)
		}
		for _, line := range c.Lines {
			if err := writePoints(w, line); err != nil {
				return fmt.Errorf("catalog: write %q lines: %w", c.Name, err)
			}
		}
	}
	return nil
}

func writePoints(w io.Writer, pts []SkyPoint) error {
	for _, p := range pts {
		pair := [2]float32{float32(p.RADeg), float32(p.DecDeg)}
		if err := binary.Write(w, binary.LittleEndian, pair); err != nil {
			return err
		}
	}
	return nil
}

// maxTableEntries bounds counts read from untrusted input so a corrupt
// header cannot trigger a huge allocation.
const maxTableEntries = 1 << 16

// ReadTable deserializes a constellation table written by WriteTable.
func ReadTable(r io.Reader) ([]Constellation, error) {
	var magic, count uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("catalog: read header: %w", err)
	}
	if magic != tableMagic {
		return nil, ErrBadTable
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("catalog: read header: %w", err)
	}
	if count > maxTableEntries {
		return nil, ErrBadTable
	}

	recs := make([]tableRecord, count)
	for i := range recs {
		if err := binary.Read(r, binary.LittleEndian, &recs[i]); err != nil {
			return nil, fmt.Errorf("catalog: read record %d: %w", i, err)
		}
		if recs[i].BoundaryLen > maxTableEntries || recs[i].LineCount > maxTableEntries {
			return nil, ErrBadTable
		}
	}

	cons := make([]Constellation, count)
	for i, rec := range recs {
		c := Constellation{
			Name: trimZero(rec.Name[:]),
			Abbr: trimZero(rec.Abbr[:]),
		}

		lineLens := make([]uint32, rec.LineCount)
		for j := range lineLens {
			if err := binary.Read(r, binary.LittleEndian, &lineLens[j]); err != nil {
				return nil, fmt.Errorf("catalog: read %q line lengths: %w", c.Name, err)
			}
			if lineLens[j] > maxTableEntries {
				return nil, ErrBadTable
			}
		}

		var err error
		if c.Boundary, err = readPoints(r, int(rec.BoundaryLen)); err != nil {
			return nil, fmt.Errorf("catalog: read %q boundary: %w", c.Name, err)
		}
		c.Lines = make([][]SkyPoint, rec.LineCount)
		for j, n := range lineLens {
			if c.Lines[j], err = readPoints(r, int(n)); err != nil {
				return nil, fmt.Errorf("catalog: read %q lines: %w", c.Name, err)
			}
		}
		cons[i] = c
	}
	return cons, nil
}

func readPoints(r io.Reader, n int) ([]SkyPoint, error) {
	pts := make([]SkyPoint, n)
	for i := range pts {
		var pair [2]float32
		if err := binary.Read(r, binary.LittleEndian, &pair); err != nil {
			return nil, err
		}
		pts[i] = SkyPoint{RADeg: float64(pair[0]), DecDeg: float64(pair[1])}
	}
	return pts, nil
}

func trimZero(b []byte) string {
	for i, v := range b {
		if v == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
