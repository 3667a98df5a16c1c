package header

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/itohio/ntclut/pkg/lut"
)

// DefaultPath is the file name the firmware driver includes.
const DefaultPath = "therm.h"

// Generator is named in the banner so readers know where the file comes from.
const Generator = "ntclut"

// Write emits t as a C header: a banner, the table size and B-constant, the
// therm_table array sized 2^Bits with one code per line, and TSTART/TSTOP.
func Write(w io.Writer, t *lut.Table) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "/* This table is automatically generated! DO NOT EDIT, see %s. */\n", Generator)
	fmt.Fprintf(bw, "/* %d-step therm table: bValue = %d */ \n\n", t.Size(), t.Thermistor.B)
	fmt.Fprintf(bw, "const uint16_t therm_table[%d] = {\n", t.Size())
	for _, code := range t.Codes {
		fmt.Fprintf(bw, "\t %d, \n", code)
	}
	fmt.Fprint(bw, "};\n")
	fmt.Fprintf(bw, "#define TSTART %d\n", t.TStart)
	fmt.Fprintf(bw, "#define TSTOP %d\n", t.TStop)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// WriteFile writes t to path, replacing any existing file. The header is
// written to a temporary file in the same directory and renamed into place,
// so path is either the old or the complete new header. A symlinked path is
// followed and its target replaced, leaving the link in place.
func WriteFile(path string, t *lut.Table) (err error) {
	if target, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = target
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create header file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = Write(f, t); err != nil {
		return err
	}
	if err = f.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set header permissions: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close header file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write header file: %w", err)
	}

	return nil
}
