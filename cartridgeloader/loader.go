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

// Package cartridgeloader is used to specify the program to attach to the
// machine. Unlike the machine itself, which will accept any pile of bytes,
// the loader knows about filenames, URLs, zip archives and hashes.
package cartridgeloader

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/logger"
)

// Loader is used to specify the program to load into the machine.
type Loader struct {
	// filename of program to load. can also be an http/https URL
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() do nothing if
	// this is already populated
	Data []byte
}

// FileExtensions is the list of file extensions the loader recognises as
// likely to contain a program. Anything can be loaded regardless; an
// unrecognised extension is merely noted in the log.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	cl := Loader{
		Filename: filename,
	}

	ext := strings.ToUpper(path.Ext(filename))
	recognised := ext == ".ZIP"
	for _, e := range FileExtensions {
		if ext == e {
			recognised = true
			break
		}
	}
	if !recognised {
		logger.Logf("cartridgeloader", "unrecognised file extension (%s)", filename)
	}

	return cl
}

// ShortName returns a shortened version of the loader's filename, suitable
// for window titles and log lines.
func (cl Loader) ShortName() string {
	sn := path.Base(cl.Filename)
	return strings.TrimSuffix(sn, path.Ext(sn))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the program data. Loader filenames with a valid scheme will use
// that method to load the data; currently supported schemes are HTTP(S)
// and local files. Zip archives are searched for the first recognised
// program file.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = ioutil.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if strings.ToUpper(path.Ext(cl.Filename)) == ".ZIP" {
		err = cl.decompress()
		if err != nil {
			return err
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}
	cl.Hash = hash

	return nil
}

// decompress replaces the loaded data with the first recognised program
// file found in the zip archive.
func (cl *Loader) decompress() error {
	zr, err := zip.NewReader(bytes.NewReader(cl.Data), int64(len(cl.Data)))
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	for _, zf := range zr.File {
		ext := strings.ToUpper(path.Ext(zf.Name))
		for _, e := range FileExtensions {
			if ext != e {
				continue
			}

			f, err := zf.Open()
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}
			defer f.Close()

			cl.Data, err = ioutil.ReadAll(f)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}

			logger.Logf("cartridgeloader", "using %s from %s", zf.Name, path.Base(cl.Filename))
			return nil
		}
	}

	return curated.Errorf("cartridgeloader: %v", "no program file in zip archive")
}
