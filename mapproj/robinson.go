// Ink-Projector - map projections for vector paths
// Copyright (C) 2026  Tau Laboratory
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mapproj

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/Tau-Laboratory/Ink-Projector/spline"
)

const (
	robinsonX = 0.8487
	robinsonY = 1.3523
)

// robinsonTable holds the length of the parallel and its distance from
// the equator, for latitudes 0°, 5°, …, 90°.
var robinsonTable = [19][2]float64{
	{1.0000, 0.0000},
	{0.9986, 0.0620},
	{0.9954, 0.1240},
	{0.9900, 0.1860},
	{0.9822, 0.2480},
	{0.9730, 0.3100},
	{0.9600, 0.3720},
	{0.9427, 0.4340},
	{0.9216, 0.4958},
	{0.8962, 0.5571},
	{0.8679, 0.6176},
	{0.8350, 0.6769},
	{0.7986, 0.7346},
	{0.7597, 0.7903},
	{0.7186, 0.8435},
	{0.6732, 0.8936},
	{0.6213, 0.9394},
	{0.5722, 0.9761},
	{0.5322, 1.0000},
}

var robinsonLength, robinsonDist = robinsonSplines()

func robinsonSplines() (*spline.Natural, *spline.Natural) {
	deg := make([]float64, len(robinsonTable))
	length := make([]float64, len(robinsonTable))
	dist := make([]float64, len(robinsonTable))
	for i, row := range robinsonTable {
		deg[i] = float64(5 * i)
		length[i] = row[0]
		dist[i] = row[1]
	}
	return spline.MustNew(deg, length), spline.MustNew(deg, dist)
}

// robinsonFactors returns the interpolated table values for the given
// latitude.  The distance carries the sign of the latitude.
func robinsonFactors(lat float64) (length, dist float64) {
	deg := math.Abs(lat) * 180 / math.Pi
	length = robinsonLength.Eval(deg)
	dist = robinsonDist.Eval(deg)
	switch {
	case lat < 0:
		dist = -dist
	case lat == 0:
		dist = 0
	}
	return length, dist
}

// Robinson returns the Robinson projection centred on refLong.
func Robinson(width, height, refLong float64) Transformation {
	bound := CircleBound(robinsonX*math.Pi, robinsonY)
	scale := FitTo(bound, width, height)
	return func(long, lat float64) vec.Vec2 {
		length, dist := robinsonFactors(lat)
		return scale(robinsonX*length*(long-refLong), robinsonY*dist)
	}
}
