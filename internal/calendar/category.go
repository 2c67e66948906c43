package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory возвращается при неизвестной категории фильтра
var ErrUnknownCategory = errors.New("calendar: unknown service category")

// CategoryKey категория услуги для фильтра записей
type CategoryKey string

const (
	CategoryAll    CategoryKey = "all"
	CategoryHair   CategoryKey = "hair"
	CategoryNail   CategoryKey = "nail"
	CategorySkin   CategoryKey = "skin"
	CategoryMakeup CategoryKey = "makeup"
	CategoryWaxing CategoryKey = "waxing"
)

// categoryKeywords подстроки названий услуг, по которым угадывается категория
var categoryKeywords = map[CategoryKey][]string{
	CategoryHair:   {"컷", "커트", "염색", "펌", "헤어", "클리닉", "드라이", "매직"},
	CategoryNail:   {"네일", "젤", "페디", "매니큐어"},
	CategorySkin:   {"피부", "페이셜", "필링", "스킨", "마사지"},
	CategoryMakeup: {"메이크업", "화장"},
	CategoryWaxing: {"왁싱", "제모"},
}

// ParseCategory разбирает категорию, пустая строка - all
func ParseCategory(s string) (CategoryKey, error) {
	key := CategoryKey(strings.ToLower(strings.TrimSpace(s)))
	if key == "" || key == CategoryAll {
		return CategoryAll, nil
	}
	if _, ok := categoryKeywords[key]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return key, nil
}

// MatchesCategory проверяет, что хотя бы одно название услуги содержит ключевое слово категории
func MatchesCategory(serviceNames []string, key CategoryKey) bool {
	if key == "" || key == CategoryAll {
		return true
	}
	for _, name := range serviceNames {
		for _, kw := range categoryKeywords[key] {
			if strings.Contains(name, kw) {
				return true
			}
		}
	}
	return false
}
