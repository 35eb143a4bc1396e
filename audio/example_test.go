package audio_test

import (
	"fmt"

	"github.com/katalvlaran/synthset/audio"
)

func ExampleAudio_Duration() {
	a := audio.FromSamples(make([]float64, 22050), 44100)

	fmt.Println(a.NumSamples(), "samples =", a.Duration())
	// Output:
	// 22050 samples = 500ms
}
