package text

import (
	"strings"
	"testing"
)

func TestSplitScript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "chinese only",
			in:   "你好",
			want: []Segment{{"你好", true}},
		},
		{
			name: "punctuation only",
			in:   "，。",
			want: []Segment{{"，。", false}},
		},
		{
			name: "chinese then punctuation",
			in:   "你好，世界。",
			want: []Segment{{"你好", true}, {"，", false}, {"世界", true}, {"。", false}},
		},
		{
			name: "leading quote",
			in:   "“你好”",
			want: []Segment{{"“", false}, {"你好", true}, {"”", false}},
		},
		{
			name: "latin digits and spaces form one run",
			in:   "我用 GPT-4 写",
			want: []Segment{{"我用", true}, {" GPT-4 ", false}, {"写", true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitScript(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitScript(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitScript_LosslessAndAlternating(t *testing.T) {
	inputs := []string{
		"你好！虽然目前的语音合成技术准确率已经超过了99百分之，但在处理‘银行’和‘行走’这种多音字时。",
		"  abc你好 def ",
		"㐀你好㐀",
		"\n你\t好\n",
	}

	for _, in := range inputs {
		segs := SplitScript(in)

		var b strings.Builder
		for i, s := range segs {
			b.WriteString(s.Text)
			if s.Text == "" {
				t.Errorf("SplitScript(%q): segment %d is empty", in, i)
			}
			if i > 0 && segs[i-1].Chinese == s.Chinese {
				t.Errorf("SplitScript(%q): segments %d and %d do not alternate", in, i-1, i)
			}
			if s.Chinese && !IsChineseText(s.Text) {
				t.Errorf("SplitScript(%q): chinese segment %q has other characters", in, s.Text)
			}
		}

		if b.String() != in {
			t.Errorf("SplitScript(%q) joined = %q", in, b.String())
		}
	}
}

func TestIsChinese(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'一', true},
		{'龥', true},  // U+9FA5
		{'龦', false},
		{'㐀', false}, // extension A
		{'a', false},
		{'，', false},
	}

	for _, tt := range tests {
		if got := IsChinese(tt.r); got != tt.want {
			t.Errorf("IsChinese(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}
