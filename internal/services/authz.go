package services

// AssertOwner accepts a mutation only when the caller is the resource's
// owner. Ownership compares account ids, never names or emails, and must be
// checked before any field of the target is touched.
func AssertOwner(resourceOwnerID, callerID uint) error {
	if resourceOwnerID != callerID {
		return ErrUnauthorized
	}
	return nil
}
