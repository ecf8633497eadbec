package config

import (
	"fmt"
	"strings"
)

const (
	BackendGoPinyin = "go-pinyin"
	BackendDict     = "dict"
)

func NormalizePinyinBackend(raw string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(raw))
	if backend == "" {
		backend = BackendGoPinyin
	}
	switch backend {
	case BackendGoPinyin, BackendDict:
		return backend, nil
	case "gopinyin", "mozillazg":
		return BackendGoPinyin, nil
	case "lofanmi", "phrase":
		return BackendDict, nil
	default:
		return "", fmt.Errorf(
			"invalid pinyin backend %q (expected %s|%s)",
			raw,
			BackendGoPinyin,
			BackendDict,
		)
	}
}
