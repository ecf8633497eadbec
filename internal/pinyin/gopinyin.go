package pinyin

import (
	gopinyin "github.com/mozillazg/go-pinyin"
)

// GoPinyin looks up the standard reading of each character with
// github.com/mozillazg/go-pinyin. Characters without a reading are passed
// through unchanged.
type GoPinyin struct {
	args gopinyin.Args
}

// NewGoPinyin returns a GoPinyin lookup using tone-number style.
func NewGoPinyin() *GoPinyin {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone3
	args.Heteronym = false
	args.Fallback = func(r rune, _ gopinyin.Args) []string {
		return []string{string(r)}
	}

	return &GoPinyin{args: args}
}

// Syllables implements Syllabifier.
func (p *GoPinyin) Syllables(run string) ([]string, error) {
	if err := checkRun(run); err != nil {
		return nil, err
	}

	readings := gopinyin.Pinyin(run, p.args)
	raw := make([]string, 0, len(readings))
	for _, r := range readings {
		if len(r) == 0 {
			raw = append(raw, "")
			continue
		}
		raw = append(raw, r[0])
	}

	return finish(run, raw)
}
