// Package googleuuid adapts github.com/google/uuid's UUID type to the raw
// 16-byte representation pgtype.Value uses natively. It is a thin
// convenience layer, grounded on the shape of pgx's own third-party UUID
// adapter packages (ext/gofrs-uuid, ext/satori-uuid): the codec's hot path
// never imports this package, only callers who'd rather build a Value from
// a uuid.UUID than a bare [16]byte.
package googleuuid

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/stndrs/pgl-types/pgtype"
)

// ToValue builds a pgtype.Value from a google/uuid UUID.
func ToValue(u uuid.UUID) pgtype.Value {
	return pgtype.UUIDValue([16]byte(u))
}

// FromValue extracts a google/uuid UUID from a pgtype.Value of kind
// KindUUID. It returns an error if value is not a UUID value.
func FromValue(value pgtype.Value) (uuid.UUID, error) {
	if value.Kind != pgtype.KindUUID {
		return uuid.UUID{}, fmt.Errorf("cannot convert value of kind %d to uuid.UUID", value.Kind)
	}
	return uuid.UUID(value.UUID), nil
}
