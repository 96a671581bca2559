package client

// applyOptimistic snapshots the target, applies the local mutation, then
// runs the persisting call. If the call fails the snapshot is restored so
// the UI never shows unconfirmed state after an error.
//
// The snapshot is a shallow copy: mutations must replace slice or map
// fields rather than write through them for the rollback to be exact.
func applyOptimistic[T any](target *T, mutate func(*T), call func() error) error {
	snapshot := *target
	mutate(target)
	if err := call(); err != nil {
		*target = snapshot
		return err
	}
	return nil
}
