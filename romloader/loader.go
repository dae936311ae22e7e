// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Error patterns.
const (
	LoaderError    = "romloader: %v"
	UnexpectedHash = "romloader: unexpected hash value (%s)"
	NoData         = "romloader: no data in %s"
)

// FileExtensions is the list of file extensions commonly used for programs.
// The extension is not checked when loading.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader specifies the program to attach to the interpreter.
type Loader struct {
	// filename or URL of the program
	Filename string

	// expected hash of the program. the empty string indicates that the hash
	// is not known and need not be checked. after a successful Load() the
	// field holds the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the base name of the Filename without the extension.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Calling Load() on a Loader that has already loaded
// is safe and does nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	var data []byte
	var err error

	u, err := url.Parse(ld.Filename)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	switch u.Scheme {
	case "http", "https":
		data, err = loadHTTP(ld.Filename)
	case "file":
		data, err = os.ReadFile(u.Path)
	case "":
		data, err = os.ReadFile(ld.Filename)
	default:
		// a windows drive letter looks like a scheme
		data, err = os.ReadFile(ld.Filename)
	}
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	if len(data) == 0 {
		return curated.Errorf(NoData, ld.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

func loadHTTP(address string) ([]byte, error) {
	resp, err := http.Get(address)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
