package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

var inlineSeeds = []string{
	``,
	`void`,
	`[1, 2, 3,]`,
	`%["a"=>1,"a"=>2]`,
	`(const) (const) const [const %[]]`,
	`"😀 \x7f \u0000"`,
	`<% 0a FF %>`,
	`[-Infinity, +NaN, 1e-400, 1e400]`,
	`0x8000000000000000`,
	`-0x8000000000000000`,
	`/* unterminated`,
	`"unterminated`,
	`% [`,
	`<% 0 %>`,
	`[[[[[[[[[[[[[[[[]]]]]]]]]]]]]]]]`,
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.tjs файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".tjs" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
