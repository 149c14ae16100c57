package quote

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLine = 1 << 20

// Parse reads one quote per line. Lines are trimmed of spaces and line
// terminators; blank lines are skipped.
func Parse(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	var out []string
	for sc.Scan() {
		line := strings.Trim(sc.Text(), "\r\n ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan quotes: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open quotes: %w", err)
	}
	defer f.Close()
	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
