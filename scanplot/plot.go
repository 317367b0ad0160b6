/*
 * plot.go, part of gothermo.
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

//Package scanplot draws temperature profiles from scan tables. It is kept
//apart from the scan package itself so programs that only want the numbers
//don't drag the plotting stack in.
package scanplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/gothermo"
	"github.com/rmera/gothermo/scan"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Quantity selects which column of a scan table gets plotted against T.
type Quantity int

const (
	Entropy Quantity = iota //cal/(mol K)
	CP                      //cal/(mol K)
	CV                      //cal/(mol K)
	Gcorr                   //kcal/mol
	Hcorr                   //kcal/mol
	Ucorr                   //kcal/mol
)

func (q Quantity) label() string {
	switch q {
	case Entropy:
		return "S (cal/mol/K)"
	case CP:
		return "CP (cal/mol/K)"
	case CV:
		return "CV (cal/mol/K)"
	case Gcorr:
		return "Gcorr (kcal/mol)"
	case Hcorr:
		return "Hcorr (kcal/mol)"
	case Ucorr:
		return "Ucorr (kcal/mol)"
	}
	return "?"
}

func (q Quantity) value(r *thermo.Result) float64 {
	switch q {
	case Entropy:
		return r.SCal()
	case CP:
		return r.CPCal()
	case CV:
		return r.CVCal()
	case Gcorr:
		return r.GcorrKcal()
	case Hcorr:
		return r.HcorrKcal()
	}
	return r.UcorrKcal()
}

func basicPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "T (K)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//TProfile plots quantity against temperature, one line per pressure in the
//table, and saves the result as plotname.png. Tables with a single point
//still work, they just make a rather boring plot.
func TProfile(t *scan.Table, q Quantity, title, plotname string) error {
	if t == nil || len(t.Rows) == 0 {
		return fmt.Errorf("scanplot: nothing to plot")
	}
	p := basicPlot(title, q.label())
	//rows are T-major, so grouping by P just means striding
	byP := make(map[float64]plotter.XYs)
	var porder []float64
	for _, r := range t.Rows {
		if r == nil {
			continue
		}
		if _, ok := byP[r.P]; !ok {
			porder = append(porder, r.P)
		}
		byP[r.P] = append(byP[r.P], plotter.XY{X: r.T, Y: q.value(r)})
	}
	for key, pres := range porder {
		l, err := plotter.NewLine(byP[pres])
		if err != nil {
			return err
		}
		red, green, blue := colors(key, len(porder))
		l.Color = color.RGBA{R: red, G: green, B: blue, A: 255}
		p.Add(l)
		if len(porder) > 1 {
			p.Legend.Add(fmt.Sprintf("%.3g atm", pres), l)
		}
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
