package ecs

import "fmt"

// ErrCapacity is returned by Spawn when the world already holds
// MaxEntities live entities.
var ErrCapacity = fmt.Errorf("ecs: entity capacity exceeded (max %d)", MaxEntities)

// DuplicateComponentError is a fatal error raised by Registry.Register when
// a component name is already registered.
type DuplicateComponentError struct {
	Name string
}

func (e *DuplicateComponentError) Error() string {
	return fmt.Sprintf("ecs: component %q already registered", e.Name)
}

// MissingStoreError is a fatal error raised when code accesses a component
// store that was never registered.
type MissingStoreError struct {
	Name string
}

func (e *MissingStoreError) Error() string {
	return fmt.Sprintf("ecs: no component store registered for %q", e.Name)
}

// HierarchyErrorCode tags the reason a hierarchy operation was refused.
type HierarchyErrorCode string

const (
	CodeDeadEntity     HierarchyErrorCode = "DEAD_ENTITY"
	CodeSelfParent     HierarchyErrorCode = "SELF_PARENT"
	CodeCycleDetected  HierarchyErrorCode = "CYCLE_DETECTED"
	CodeDepthExceeded  HierarchyErrorCode = "DEPTH_EXCEEDED"
)

// HierarchyError is a tagged result value returned by hierarchy operations
// rather than thrown("Hierarchy operation errors ...
// returned as tagged result values, never thrown").
type HierarchyError struct {
	Code   HierarchyErrorCode
	Entity Entity
}

func (e *HierarchyError) Error() string {
	return fmt.Sprintf("ecs: hierarchy operation on %v refused: %s", e.Entity, e.Code)
}

// SchedulerCycleError is fatal at scheduler compile time.
type SchedulerCycleError struct {
	Phase Phase
}

func (e *SchedulerCycleError) Error() string {
	return fmt.Sprintf("ecs: dependency cycle among systems in phase %s", e.Phase)
}
