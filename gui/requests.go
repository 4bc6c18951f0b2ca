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

package gui

// FeatureReq is used to request the setting of a gui attribute, eg.
// visibility.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq.
// See commentary for the defined FeatureReq values for the underlying
// type.
type FeatureReqData interface{}

// List of valid feature requests. The argument must be of the stated type
// or the request will fail with an error.
//
// As the name suggests these are requests; they may or may not be
// satisfied depending on other conditions in the GUI.
const (
	// the emulation the GUI should render from. must be set before the
	// first call to Render()
	ReqSetEmulation FeatureReq = "ReqSetEmulation" // *emulation.Emulation

	// the channel user interaction events are forwarded to
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan Event

	// show or hide the window
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the window title, conventionally the short name of the loaded
	// program
	ReqSetTitle FeatureReq = "ReqSetTitle" // string

	// whether the emulation is paused. a paused GUI annotates the window
	// title
	ReqSetPause FeatureReq = "ReqSetPause" // bool

	// the size of a machine pixel on the host display
	ReqSetScale FeatureReq = "ReqSetScale" // float32

	// nudge the scale up or down a step
	ReqIncScale FeatureReq = "ReqIncScale" // no args
	ReqDecScale FeatureReq = "ReqDecScale" // no args
)
