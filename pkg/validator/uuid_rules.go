package validator

import (
	"github.com/google/uuid"
)

// UUID fails when a non-empty value is neither a uuid.UUID nor a
// canonical 36-character UUID string.
func UUID() Rule {
	return Rule{
		Check: present(func(value any) bool {
			switch v := value.(type) {
			case uuid.UUID:
				return true
			case string:
				// uuid.Parse also accepts urn and braced forms
				if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
					return false
				}
				_, err := uuid.Parse(v)
				return err == nil
			}
			return false
		}),
		Error: *NewError(KindFormat, KeyUUID, nil),
	}
}
