package storage

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleDown_SmallImageUntouched(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 80))
	out := scaleDown(src, maxAvatarEdge)
	assert.Equal(t, src.Bounds(), out.Bounds())
}

func TestScaleDown_LandscapeCapped(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1024, 512))
	out := scaleDown(src, maxAvatarEdge)

	assert.Equal(t, 256, out.Bounds().Dx())
	assert.Equal(t, 128, out.Bounds().Dy())
}

func TestScaleDown_PortraitCapped(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 600))
	out := scaleDown(src, maxAvatarEdge)

	assert.Equal(t, 128, out.Bounds().Dx())
	assert.Equal(t, 256, out.Bounds().Dy())
}
