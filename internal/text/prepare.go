package text

import (
	"fmt"
)

// Encoder is the minimal interface required by Prepare.
// It is satisfied by phoneme.Converter.
type Encoder interface {
	Encode(text string) ([]int64, error)
}

// Chunk holds one sentence of the input and its phoneme ids.
type Chunk struct {
	Text      string  // sentence text as returned by Split
	TokenIDs  []int64 // phoneme and punctuation ids
	NumTokens int     // len(TokenIDs)
	Length    int     // effective length of Text
}

// Prepare splits input into sentences with seg and encodes each one with enc.
// Sentences that encode to no ids (punctuation only after normalization, for
// example) are kept so that chunk i always corresponds to sentence i.
func Prepare(input string, seg Segmenter, enc Encoder) ([]Chunk, error) {
	sentences := seg.Split(input)
	if len(sentences) == 0 {
		return nil, nil
	}

	chunks := make([]Chunk, 0, len(sentences))
	for i, s := range sentences {
		ids, err := enc.Encode(s)
		if err != nil {
			return nil, fmt.Errorf("encode sentence %d %q: %w", i, s, err)
		}
		chunks = append(chunks, Chunk{
			Text:      s,
			TokenIDs:  ids,
			NumTokens: len(ids),
			Length:    EffectiveLength(s),
		})
	}

	return chunks, nil
}
