/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"
)

// Photo fixtures under test/images.
const (
	PhotoCat    = "pet_photo.png"
	PhotoSeed   = "pet_photo1.png"
	PhotoUpdate = "pet_photo2.png"
)

const placeholderSize = 64

// ImagesDir returns the absolute path of test/images.  It is resolved
// from this source file so it does not depend on the working directory
// ginkgo runs the suites from.
func ImagesDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("test", "images")
	}

	return filepath.Join(filepath.Dir(file), "..", "images")
}

// PhotoPath returns the absolute path of a photo fixture.  A fixture that
// is missing is rendered as a placeholder, the format following the
// file extension.
func PhotoPath(name string) (string, error) {
	path := filepath.Join(ImagesDir(), name)

	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("photo fixture %s: %w", name, err)
	}

	if err := renderPlaceholder(path); err != nil {
		return "", fmt.Errorf("photo fixture %s: %w", name, err)
	}

	return path, nil
}

func renderPlaceholder(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	background := imaging.New(placeholderSize, placeholderSize, color.NRGBA{R: 0xf4, G: 0xa2, B: 0x61, A: 0xff})
	patch := imaging.New(placeholderSize/2, placeholderSize/2, color.NRGBA{R: 0x26, G: 0x46, B: 0x53, A: 0xff})

	img := imaging.Paste(background, patch, image.Pt(placeholderSize/4, placeholderSize/4))

	return imaging.Save(img, path)
}
