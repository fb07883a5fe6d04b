package idman

// SmartID is a scope-bound handle for one allocated id. Closing it returns
// the id to the manager unless Release transferred ownership first:
//
//	sid, err := manager.AllocateID()
//	if err != nil {
//		return err
//	}
//	defer sid.Close()
//
// A SmartID must not outlive the SafeManager it came from, and a single
// SmartID is meant to be used by one goroutine.
type SmartID[T IDType] struct {
	manager *SafeManager[T]
	id      T
	owns    bool
}

// Value returns the held id without transferring ownership.
func (sid *SmartID[T]) Value() T {
	return sid.id
}

// Release hands the raw id to the caller, who becomes responsible for
// eventually freeing it. The automatic free on Close no longer applies.
func (sid *SmartID[T]) Release() T {
	sid.owns = false
	return sid.id
}

// Close frees the id if the SmartID still owns it. Closing twice, or after
// Release, is a no-op.
func (sid *SmartID[T]) Close() error {
	if !sid.owns {
		return nil
	}
	sid.owns = false
	return sid.manager.Free(sid.id)
}
