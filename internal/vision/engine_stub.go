//go:build !gocv

package vision

import "errors"

// newGoCV reports that this binary was built without OpenCV support.
// Build with -tags gocv to enable it.
func newGoCV() (Engine, error) {
	return nil, errors.New("vision: built without gocv support (use -tags gocv)")
}
