package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordList returns the embedded default dictionary with comment lines
// stripped, ready to be fed to a whitespace tokenizer.
func WordList() (string, error) {
	lines, err := readLines("words.txt")
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
