package sstable

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"
)

// Serialize writes m to fn. The first line holds the shape as "rows,cols",
// every following line one nonzero cell as "row,col,value".
func Serialize(m *Matrix, fn string) error {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	r, c := m.Shape()
	// write the matrix shape
	fmt.Fprintf(w, "%d,%d\n", r, c)

	var val float64
	for ridx := uint32(0); ridx < r; ridx += 1 {
		for cidx := uint32(0); cidx < c; cidx += 1 {
			val = m.Get(ridx, cidx)
			if val != 0 { // only write out nonzero value
				fmt.Fprintf(w, "%d,%d,%e\n", ridx, cidx, val)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return out.Close()
}

// Deserialize reads a matrix written by Serialize. Cells that cannot be
// split into three fields are logged and skipped.
func Deserialize(fn string) (*Matrix, error) {
	file, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lineIdx := 0
	var tmp *Matrix

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		txt := strings.TrimSpace(scanner.Text())
		if lineIdx == 0 {
			shape := strings.Split(txt, ",")
			if len(shape) != 2 {
				return nil, fmt.Errorf("%s: shape not found %q: %w", fn, txt, ErrCorrupted)
			}
			row, err := strconv.ParseUint(shape[0], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%s: bad row count: %w", fn, err)
			}
			col, err := strconv.ParseUint(shape[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%s: bad column count: %w", fn, err)
			}
			if row == 0 || col == 0 || row*col > math.MaxInt32 {
				return nil, fmt.Errorf("%s: shape %dx%d: %w", fn, row, col, ErrBadShape)
			}
			tmp = NewMatrix(uint32(row), uint32(col))
			lineIdx += 1
			continue
		}
		lineIdx += 1
		if txt == "" {
			continue
		}

		value := strings.Split(txt, ",")
		if len(value) != 3 {
			log.Warningf("data corrupted, line %d, data %s", lineIdx, txt)
			continue
		}
		ridx, err := strconv.ParseUint(value[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", fn, lineIdx, err)
		}
		cidx, err := strconv.ParseUint(value[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", fn, lineIdx, err)
		}
		val, err := strconv.ParseFloat(value[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", fn, lineIdx, err)
		}
		r, c := tmp.Shape()
		if uint32(ridx) >= r || uint32(cidx) >= c {
			return nil, fmt.Errorf("%s: line %d: cell [%d, %d] outside %dx%d: %w",
				fn, lineIdx, ridx, cidx, r, c, ErrIndexOutOfRange)
		}
		tmp.Set(uint32(ridx), uint32(cidx), val)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if tmp == nil {
		return nil, fmt.Errorf("%s: empty file: %w", fn, ErrCorrupted)
	}

	return tmp, nil
}
