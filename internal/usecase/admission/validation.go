package admission

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// NormalizeDetails проверяет цель и участников бронирования.
// Участники дедуплицируются и сортируются; заявитель может быть в списке
func NormalizeDetails(purpose string, participants []int64) (string, []int64, error) {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" || utf8.RuneCountInString(purpose) > domain.MaxPurposeLength {
		return "", nil, ErrInvalidPurpose
	}

	seen := make(map[int64]struct{}, len(participants))
	unique := make([]int64, 0, len(participants))
	for _, id := range participants {
		if id <= 0 {
			return "", nil, ErrInvalidParticipants
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) > domain.MaxParticipants {
		return "", nil, ErrInvalidParticipants
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	return purpose, unique, nil
}
