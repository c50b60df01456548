package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for pool lifecycle
const (
	LogMsgPoolStarted  = "Worker pool started"
	LogMsgPoolStopped  = "Worker pool stopped"
	LogMsgJobPanicked  = "Worker job panicked"
	LogMsgQueueFull    = "Worker queue full, job rejected"
	LogMsgPoolDraining = "Worker pool draining queued jobs"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
