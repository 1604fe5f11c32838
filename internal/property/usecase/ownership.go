package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
)

// looksLikeEmail distinguishes the two caller identity forms the service
// accepts. Gateways send either the account id or the account email, and
// ids never contain an "@".
func looksLikeEmail(identity string) bool {
	return strings.Contains(identity, "@")
}

// resolveOwnership reports whether the caller identified by callerIdentity
// owns the property. An email identity is matched against the owner's
// registered email; anything else is compared to the owner id directly.
// Comparisons ignore case. An empty identity never owns anything.
func (u *PropertyUsecase) resolveOwnership(ctx context.Context, property *domain.Property, callerIdentity string) (bool, error) {
	if callerIdentity == "" {
		return false, nil
	}

	if !looksLikeEmail(callerIdentity) {
		return strings.EqualFold(property.OwnerID, callerIdentity), nil
	}

	ownerEmail, err := u.users.GetEmailByID(ctx, property.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(ownerEmail, callerIdentity), nil
}
