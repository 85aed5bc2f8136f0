package usage

import (
	"sort"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// rankUsage суммирует пересечение каждого бронирования с окном по сущности
// и ранжирует по убыванию секунд, при равенстве по возрастанию id
func rankUsage(reservations []*domain.Reservation, window domain.Interval, scope domain.LeaderboardScope, limit int) []domain.LeaderboardEntry {
	totals := make(map[int64]int64)
	for _, r := range reservations {
		seconds := domain.OverlapSeconds(r.Interval(), window)
		if seconds == 0 {
			continue
		}
		key := r.RoomID
		if scope == domain.ScopeUser {
			key = r.ApplicantUserID
		}
		totals[key] += seconds
	}

	entries := make([]domain.LeaderboardEntry, 0, len(totals))
	for id, total := range totals {
		entries = append(entries, domain.LeaderboardEntry{EntityID: id, TotalSeconds: total})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalSeconds != entries[j].TotalSeconds {
			return entries[i].TotalSeconds > entries[j].TotalSeconds
		}
		return entries[i].EntityID < entries[j].EntityID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
