package build_snapshot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

type prefixRule struct {
	prefix   string
	location domain.Location
}

// LocationResolver определяет группу аудитории по префиксу идентификатора.
// Побеждает самый длинный подходящий префикс.
type LocationResolver struct {
	rules []prefixRule
}

// NewLocationResolver строит резолвер из таблицы префикс -> группа
func NewLocationResolver(prefixes map[string]string) (*LocationResolver, error) {
	rules := make([]prefixRule, 0, len(prefixes))
	for prefix, loc := range prefixes {
		location, err := domain.ParseLocation(strings.ToUpper(loc))
		if err != nil {
			return nil, fmt.Errorf("prefix %q: %w", prefix, err)
		}
		rules = append(rules, prefixRule{prefix: strings.ToUpper(prefix), location: location})
	}

	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].prefix) != len(rules[j].prefix) {
			return len(rules[i].prefix) > len(rules[j].prefix)
		}
		return rules[i].prefix < rules[j].prefix
	})

	return &LocationResolver{rules: rules}, nil
}

// Resolve возвращает группу или пустую строку, если ни один префикс не подошел
func (r *LocationResolver) Resolve(venueID string) domain.Location {
	for _, rule := range r.rules {
		if strings.HasPrefix(venueID, rule.prefix) {
			return rule.location
		}
	}
	return ""
}
