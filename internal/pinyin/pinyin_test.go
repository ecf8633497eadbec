package pinyin

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/go-zhg2p/internal/testutil"
)

// --- finish ---

func TestFinish(t *testing.T) {
	tests := []struct {
		name string
		run  string
		raw  []string
		want []string
	}{
		{"tone numbers kept", "你好", []string{"ni3", "hao3"}, []string{"ni3", "hao3"}},
		{"neutral tone", "的", []string{"de"}, []string{"de5"}},
		{"u umlaut spelled v", "女", []string{"nü3"}, []string{"nv3"}},
		{"toneless u umlaut", "吕", []string{"lü"}, []string{"lv5"}},
		{"whitespace trimmed", "中国", []string{" zhong1", "guo2 "}, []string{"zhong1", "guo2"}},
		{"fallback character gets neutral tone", "龘", []string{"龘"}, []string{"龘5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := finish(tt.run, tt.raw)
			if err != nil {
				t.Fatalf("finish(%q, %q) error: %v", tt.run, tt.raw, err)
			}
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("finish(%q, %q) = %q, want %q", tt.run, tt.raw, got, tt.want)
			}
		})
	}
}

func TestFinish_Malformed(t *testing.T) {
	tests := []struct {
		name string
		run  string
		raw  []string
	}{
		{"too few", "你好", []string{"ni3"}},
		{"too many", "你", []string{"ni3", "hao3"}},
		{"empty syllable", "你好", []string{"ni3", ""}},
		{"blank syllable", "你好", []string{"ni3", "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := finish(tt.run, tt.raw); !errors.Is(err, ErrMalformedSyllables) {
				t.Errorf("finish(%q, %q) error = %v, want ErrMalformedSyllables", tt.run, tt.raw, err)
			}
		})
	}
}

func TestCheckRun(t *testing.T) {
	for _, run := range []string{"", "abc", "你a", "你好。", " 你"} {
		if err := checkRun(run); !errors.Is(err, ErrNotChinese) {
			t.Errorf("checkRun(%q) = %v, want ErrNotChinese", run, err)
		}
	}

	if err := checkRun("你好"); err != nil {
		t.Errorf("checkRun(%q) = %v, want nil", "你好", err)
	}
}

// --- GoPinyin ---

func TestGoPinyin_Syllables(t *testing.T) {
	p := NewGoPinyin()

	tests := []struct {
		run  string
		want []string
	}{
		{"你好", []string{"ni3", "hao3"}},
		{"中国", []string{"zhong1", "guo2"}},
		{"世界", []string{"shi4", "jie4"}},
	}

	for _, tt := range tests {
		got, err := p.Syllables(tt.run)
		if err != nil {
			t.Fatalf("Syllables(%q) error: %v", tt.run, err)
		}
		if strings.Join(got, " ") != strings.Join(tt.want, " ") {
			t.Errorf("Syllables(%q) = %q, want %q", tt.run, got, tt.want)
		}
	}
}

func TestGoPinyin_OneSyllablePerCharacter(t *testing.T) {
	p := NewGoPinyin()
	run := "虽然目前的语音合成技术准确率已经超过了百分之九十九"

	got, err := p.Syllables(run)
	if err != nil {
		t.Fatalf("Syllables error: %v", err)
	}

	if len(got) != len([]rune(run)) {
		t.Fatalf("got %d syllables for %d characters", len(got), len([]rune(run)))
	}
	for i, s := range got {
		if last := s[len(s)-1]; last < '1' || last > '5' {
			t.Errorf("syllable %d = %q, want a trailing tone digit", i, s)
		}
	}
}

func TestGoPinyin_RejectsNonChinese(t *testing.T) {
	p := NewGoPinyin()

	for _, run := range []string{"", "abc", "你好。"} {
		if _, err := p.Syllables(run); !errors.Is(err, ErrNotChinese) {
			t.Errorf("Syllables(%q) error = %v, want ErrNotChinese", run, err)
		}
	}
}

// --- Dict ---

func TestDict_Syllables(t *testing.T) {
	d := NewDict()
	run := "银行在行走"

	got, err := d.Syllables(run)
	if err != nil {
		t.Fatalf("Syllables(%q) error: %v", run, err)
	}

	if len(got) != len([]rune(run)) {
		t.Fatalf("Syllables(%q) = %q, want one syllable per character", run, got)
	}
	for i, s := range got {
		if last := s[len(s)-1]; last < '1' || last > '5' {
			t.Errorf("syllable %d = %q, want a trailing tone digit", i, s)
		}
	}
}

func TestDict_RejectsNonChinese(t *testing.T) {
	if _, err := NewDict().Syllables("abc"); !errors.Is(err, ErrNotChinese) {
		t.Errorf("Syllables(abc) error = %v, want ErrNotChinese", err)
	}
}

// --- Simplifier ---

func TestNewSimplifier_Nil(t *testing.T) {
	if _, err := NewSimplifier(nil); !errors.Is(err, ErrNilSyllabifier) {
		t.Errorf("NewSimplifier(nil) error = %v, want ErrNilSyllabifier", err)
	}
}

func TestSimplifier_ConvertsBeforeLookup(t *testing.T) {
	testutil.RequireOpenCC(t)

	next := testutil.MapSyllabifier{'汉': "han4", '语': "yu3"}

	s, err := NewSimplifier(next)
	if err != nil {
		t.Fatalf("NewSimplifier: %v", err)
	}

	got, err := s.Syllables("漢語")
	if err != nil {
		t.Fatalf("Syllables error: %v", err)
	}
	if strings.Join(got, " ") != "han4 yu3" {
		t.Errorf("Syllables(漢語) = %q, want [han4 yu3]", got)
	}
}

func TestSimplifier_RejectsNonChinese(t *testing.T) {
	testutil.RequireOpenCC(t)

	s, err := NewSimplifier(NewGoPinyin())
	if err != nil {
		t.Fatalf("NewSimplifier: %v", err)
	}

	if _, err := s.Syllables("abc"); !errors.Is(err, ErrNotChinese) {
		t.Errorf("Syllables(abc) error = %v, want ErrNotChinese", err)
	}
}
