package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/pixel-ops-mcp/internal/pixel"
)

func TestMedian_UniformImage(t *testing.T) {
	// On a uniform nonzero image the padded zeros dominate only at the
	// corners, where the 3x3 window holds four real samples and five
	// zeros; everywhere else the real samples hold the median.
	src := uniformPlane(t, 3, 3, 7)

	out, err := Median(src, 3)
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}

	want := []uint8{
		0, 7, 0,
		7, 7, 7,
		0, 7, 0,
	}
	if diff := cmp.Diff(want, out.Pix); diff != "" {
		t.Errorf("Median mismatch (-want +got):\n%s", diff)
	}
}

func TestMedian_IdempotentOnZero(t *testing.T) {
	// A zero image is a true fixed point: padding matches the samples.
	src := uniformPlane(t, 4, 4, 0)

	out, err := Median(src, 3)
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}
	if diff := cmp.Diff(src.Pix, out.Pix); diff != "" {
		t.Errorf("zero image changed (-want +got):\n%s", diff)
	}
}

func TestMedian_KernelSizeOne(t *testing.T) {
	src := plane(t, 2, 2, []uint8{5, 10, 15, 20})

	out, err := Median(src, 1)
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}
	if diff := cmp.Diff(src.Pix, out.Pix); diff != "" {
		t.Errorf("ksize=1 is not the identity (-want +got):\n%s", diff)
	}
}

func TestMedian_RemovesSpike(t *testing.T) {
	src := uniformPlane(t, 5, 5, 10)
	src.Set(2, 2, 0, 255)

	out, err := Median(src, 3)
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}

	// The spike is a single outlier in every window it appears in.
	if got := out.At(2, 2, 0); got != 10 {
		t.Errorf("spike survived: got %d, want 10", got)
	}
}

func TestMedian_EvenKernelTieBreak(t *testing.T) {
	// For an even-count window the filter picks the lower of the two
	// middle order statistics. With ksize=2 the window of output (1,1)
	// is {1,2,3,4}, so the result is 2, not 2.5 rounded.
	src := plane(t, 2, 2, []uint8{
		1, 2,
		3, 4,
	})

	out, err := Median(src, 2)
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}

	// ksize=2 windows cover the pixel and its up/left neighbors in the
	// padded plane, so three of the four outputs are zero-dominated.
	want := []uint8{
		0, 0,
		0, 2,
	}
	if diff := cmp.Diff(want, out.Pix); diff != "" {
		t.Errorf("Median mismatch (-want +got):\n%s", diff)
	}
}

func TestMedian_InvalidParams(t *testing.T) {
	src := uniformPlane(t, 3, 3, 1)
	if _, err := Median(src, 0); !errors.Is(err, ErrInvalidKernel) {
		t.Errorf("ksize 0: got err %v, want ErrInvalidKernel", err)
	}

	rgb := &pixel.Buffer{W: 2, H: 2, C: 3, Pix: make([]uint8, 12)}
	if _, err := Median(rgb, 3); !errors.Is(err, pixel.ErrInvalidShape) {
		t.Errorf("3-channel input: got err %v, want ErrInvalidShape", err)
	}
}
