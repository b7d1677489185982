package enum

// ServiceRequestStatus tracks operational follow-up on a service request.
// It never gates billing: all non-deleted requests are billable.
type ServiceRequestStatus string

const (
	ServiceRequestStatusRequested  ServiceRequestStatus = "requested"
	ServiceRequestStatusInProgress ServiceRequestStatus = "in_progress"
	ServiceRequestStatusDone       ServiceRequestStatus = "done"
)

// IsValid reports whether the value is a known service request status
func (s ServiceRequestStatus) IsValid() bool {
	switch s {
	case ServiceRequestStatusRequested, ServiceRequestStatusInProgress, ServiceRequestStatusDone:
		return true
	}
	return false
}
