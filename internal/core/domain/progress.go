package domain

// CopyStatus is the state carried by a CopyProgress event.
type CopyStatus string

const (
	CopyStatusPending CopyStatus = "pending"
	CopyStatusCopying CopyStatus = "copying"
	CopyStatusDone    CopyStatus = "done"
	CopyStatusError   CopyStatus = "error"
)

// CopyProgress is emitted repeatedly during one replication call.
// It is handed to the caller by value and never persisted.
type CopyProgress struct {
	Current int
	Total   int
	Label   string
	Status  CopyStatus
	Message string
}

// CopyResult is the aggregate outcome of one replication call.
type CopyResult struct {
	// Success is true iff no error was recorded.
	Success bool

	// CopiedCount is the number of stories actually created.
	CopiedCount int

	// Errors lists per-item failures; the copy continues past them.
	Errors []string
}

// SyncEventType is the kind of a streamed sync event.
type SyncEventType string

const (
	SyncEventStart    SyncEventType = "start"
	SyncEventProgress SyncEventType = "progress"
	SyncEventComplete SyncEventType = "complete"
)

// SyncAction is the resolved per-item action of a sync classification.
type SyncAction string

const (
	SyncActionCreating SyncAction = "creating"
	SyncActionUpdating SyncAction = "updating"
	SyncActionCreated  SyncAction = "created"
	SyncActionUpdated  SyncAction = "updated"
	SyncActionSkipped  SyncAction = "skipped"
	SyncActionError    SyncAction = "error"
)

// SyncProgressEvent is streamed during one sync invocation.
type SyncProgressEvent struct {
	Type    SyncEventType
	Current int
	Total   int
	Name    string
	Action  SyncAction
	Message string
}

// SyncError records one item's failure during a sync.
type SyncError struct {
	Name    string
	Message string
}

// SyncOutcome is returned once per sync invocation.
type SyncOutcome struct {
	Created []string
	Updated []string
	Skipped []string
	Errors  []SyncError
}
