package audio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV dumps the buffer to path as two columns, "Index,Sample", one
// row per frame. Meant for eyeballing a render in a plotting tool, not
// as an interchange format.
func (a Audio) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if _, err = w.WriteString("Index,Sample\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("audio: write %s: %w", path, err)
	}
	for i, s := range a.Samples {
		line := strconv.Itoa(i) + "," + strconv.FormatFloat(s, 'g', -1, 64) + "\n"
		if _, err = w.WriteString(line); err != nil {
			_ = f.Close()
			return fmt.Errorf("audio: write %s: %w", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("audio: flush %s: %w", path, err)
	}
	return f.Close()
}
