/*
 * report.go, part of gothermo.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Report writers. The column layout of the two tables is fixed; downstream
//tooling parses these by width.

const (
	uhgHeader = "Ucorr, Hcorr and Gcorr are in kcal/mol; U, H and G are in a.u.\n\n" +
		"     T(K)      P(atm)  Ucorr     Hcorr     Gcorr            U                H                G\n"
	scqHeader = "S, CV and CP are in cal/mol/K; q(V=0)/NA and q(bot)/NA are unitless\n\n" +
		"    T(K)       P(atm)    S         CV        CP        q(V=0)/NA      q(bot)/NA\n"
)

//WriteUHG writes the thermal corrections and absolute energies table, one
//row per grid point, in grid order.
func WriteUHG(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(uhgHeader); err != nil {
		return err
	}
	for _, r := range t.Rows {
		_, err := fmt.Fprintf(bw, "%10.3f%10.3f%10.3f%10.3f%10.3f%17.6f%17.6f%17.6f\n",
			r.T, r.P, r.UcorrKcal(), r.HcorrKcal(), r.GcorrKcal(),
			r.AbsU(t.E), r.AbsH(t.E), r.AbsG(t.E))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

//WriteSCq writes the entropy, heat-capacity and partition-function table,
//one row per grid point, in grid order.
func WriteSCq(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(scqHeader); err != nil {
		return err
	}
	for _, r := range t.Rows {
		_, err := fmt.Fprintf(bw, "%10.3f%10.3f%10.3f%10.3f%10.3f%16.6e%16.6e\n",
			r.T, r.P, r.SCal(), r.CVCal(), r.CPCal(), r.Qv(), r.Qbot())
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

//CreateReport opens (truncating) the report file at path. A ".zst" suffix
//gets the stream zstd-compressed on the way out; Close flushes and closes
//both layers.
func CreateReport(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return nil, err
	}
	return &zstFile{zw: zw, f: f}, nil
}

//zstFile closes the encoder before the file. Closing only the *os.File
//would truncate the last zstd frame.
type zstFile struct {
	zw *zstd.Encoder
	f  *os.File
}

func (z *zstFile) Write(p []byte) (int, error) { return z.zw.Write(p) }

func (z *zstFile) Close() error {
	if err := z.zw.Close(); err != nil {
		z.f.Close()
		return err
	}
	return z.f.Close()
}
