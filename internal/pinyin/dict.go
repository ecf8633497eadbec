package pinyin

import (
	"strings"

	pinyinsentence "github.com/Lofanmi/pinyin-golang/pinyin"
)

// Dict looks up readings with the phrase dictionary of
// github.com/Lofanmi/pinyin-golang, which picks readings of polyphonic
// characters from the surrounding word.
type Dict struct {
	dict *pinyinsentence.Dict
}

// NewDict loads the phrase dictionary.
func NewDict() *Dict {
	return &Dict{dict: pinyinsentence.NewDict()}
}

// Syllables implements Syllabifier.
func (d *Dict) Syllables(run string) ([]string, error) {
	if err := checkRun(run); err != nil {
		return nil, err
	}

	pys := d.dict.Convert(run, " ").ASCII()

	return finish(run, strings.Fields(pys))
}
