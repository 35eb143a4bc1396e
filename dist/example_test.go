package dist_test

import (
	"fmt"

	"github.com/katalvlaran/synthset/dist"
)

// ExampleLogUniform_MapToValue maps the corners and the center of the
// coordinate space over the audible band: the center of a log range is the
// geometric mean of its bounds, not the arithmetic one.
func ExampleLogUniform_MapToValue() {
	band, err := dist.NewLogUniform(20, 20000)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("%.0f %.0f %.0f\n", band.MapToValue(-1), band.MapToValue(0), band.MapToValue(1))
	// Output:
	// 20 632 20000
}

func ExampleUniform_MapToValue() {
	r, err := dist.NewUniform(-0.5, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(r.MapToValue(-1), r.MapToValue(0), r.MapToValue(1))
	// Output:
	// -0.5 0 0.5
}
