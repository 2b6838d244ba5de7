package hexlattice_test

import (
	"fmt"

	"github.com/andthum/transfer-Li/hexlattice"
	"github.com/andthum/transfer-Li/simbox"
)

// ExampleFaces resolves the hexagon face centers of a small graphene
// strip: 8 vertices with C-C bond length 1.42 Å in a box that fits two
// hexagon repeats along x and the strip's √3·r0 repeat along y.
//
// The result is half the vertex count, wrapped into the primary cell
// and sorted by (x, y, z).
func ExampleFaces() {
	box, err := simbox.NewOrtho(8.52, 4.919, 20)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	h := 1.2298 // half the y repeat of the strip
	verts := []simbox.Vec{
		{0, 0, 10}, {1.42, 0, 10},
		{2.13, h, 10}, {3.55, h, 10},
		{4.26, 0, 10}, {5.68, 0, 10},
		{6.39, h, 10}, {7.81, h, 10},
	}

	faces, err := hexlattice.Faces(verts, hexlattice.DefaultOptions(1.42, box))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, f := range faces {
		fmt.Println(f)
	}
	// Output:
	// [0.71 1.23 10]
	// [2.84 0 10]
	// [4.97 1.23 10]
	// [7.1 0 10]
}
