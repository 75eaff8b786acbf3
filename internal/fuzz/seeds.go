package fuzztests

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

const maxSeedBytes = 4 << 10 // выражения короткие, 4 KiB с запасом

// builtinSeeds cover the token classes the corpus file may not.
var builtinSeeds = []string{
	"",
	" ",
	"a",
	"a >> b >> c",
	"<% %> <: :> %:",
	"1.5e+10f == .5L",
	"'\\u00e9' == L'x'",
	"x /* comment */ == // tail",
	"((((",
	"))) == ;",
	"[&]<typename T>(T t) { return t; }",
	"a < b < c < d < e < f < g < h < i < j < k < l",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add(s)
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds testdata/expressions.txt, one expression per line.
func addTestdataSeeds(f *testing.F) {
	path := filepath.Join("..", "..", "testdata", "expressions.txt")
	// #nosec G304 -- fixed path inside the repository
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f.Add(clampSeed(line))
	}
}

func clampSeed(src string) string {
	if len(src) <= maxSeedBytes {
		return src
	}
	return src[:maxSeedBytes]
}

// lossless reports whether the lexer is expected to reproduce s byte for
// byte: comments are dropped, and invalid UTF-8 is out of scope.
func lossless(s string) bool {
	return utf8.ValidString(s) && !strings.Contains(s, "//") && !strings.Contains(s, "/*")
}
