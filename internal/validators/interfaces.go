// Package validators contains structural request validation: field presence
// checks performed before a request body reaches business logic. Business
// rules (e.g. "email already exists") are the service layer's concern, not
// this package's.
package validators

import "context"

// Validator checks an object's structure. When fields are given, only those
// fields are checked; otherwise the full default field set of the object's
// type applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
