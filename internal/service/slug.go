package service

import (
	"errors"
	"fmt"

	"pesona/internal/domain"
	"pesona/internal/models"
	"pesona/pkg/slug"

	"gorm.io/gorm"
)

const maxSlugAttempts = 50

// AllocateSlug derives a slug from the title's preferred locale and calls
// create with candidates until one sticks: base, base-1, base-2, ...
// The unique index on slug makes the insert the atomicity point; a
// concurrent writer taking the same candidate just surfaces as another
// duplicate-key retry here.
func AllocateSlug(title models.LocalizedText, create func(slug string) error) (string, error) {
	base := slug.Make(title.Preferred())
	if base == "" {
		return "", fmt.Errorf("%w: title produces an empty slug", domain.ErrValidation)
	}
	for i := 0; i <= maxSlugAttempts; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		err := create(candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", err
		}
	}
	return "", domain.ErrSlugExhausted
}
