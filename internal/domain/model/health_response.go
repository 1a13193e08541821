package model

// HealthStatus is the reported state of the service or one of its components.
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus describes one backing component. Details carry
// component-specific diagnostics such as queue names or error text.
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse aggregates the backing components. Disabled components
// report UNKNOWN and do not affect the overall status.
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Cache    ComponentHealthStatus `json:"cache"`
	Queue    ComponentHealthStatus `json:"queue"`
}
