// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

// Package gui defines the interface between the emulation and a visual
// user interface, without committing anyone to a particular
// implementation. The sdlscreen sub-package is the implementation used by
// the play and debug modes.
package gui

// GUI defines the operations that can be performed on a visual user
// interface.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Same as SetFeature() but without waiting for the result. Useful when
	// the caller is confident no error is possible.
	SetFeatureNoError(request FeatureReq, args ...FeatureReqData)

	// Return the current state of a GUI feature.
	GetFeature(request FeatureReq) (FeatureReqData, error)
}

// Sentinal error returned if the GUI does not support a requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)
