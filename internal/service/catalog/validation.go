package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// normalizeName обрезает пробелы и проверяет длину имени
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}

func validateRemark(remark *string) error {
	if remark != nil && utf8.RuneCountInString(*remark) > domain.MaxRemarkLength {
		return ErrInvalidRemark
	}
	return nil
}

func validateCapacity(capacity *int) error {
	if capacity != nil && *capacity <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}
