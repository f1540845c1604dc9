package status

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	uuid "github.com/satori/go.uuid"
)

type StatusName int

const (
	STATUS_PENDING   StatusName = 0
	STATUS_SUCCEEDED StatusName = 1
	STATUS_FAILED    StatusName = 2
)

func (name StatusName) String() string {
	names := [...]string{
		"PENDING",
		"SUCCEEDED",
		"FAILED",
	}

	return names[name]
}

func (name StatusName) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, name.String())), nil
}

// Lifecycle states reported by the tuning service mapped
// to the states this API exposes.
var knownJobStates = map[string]StatusName{
	"InProgress": STATUS_PENDING,
	"Stopping":   STATUS_PENDING,
	"Completed":  STATUS_SUCCEEDED,
	"Failed":     STATUS_FAILED,
	"Stopped":    STATUS_FAILED,
}

// FromJobState converts a tuning service lifecycle string to a StatusName.
func FromJobState(state string) (StatusName, error) {
	name, ok := knownJobStates[state]
	if !ok {
		return STATUS_PENDING, fmt.Errorf("unknown tuning job state %q", state)
	}
	return name, nil
}

type Status interface {
	Id() string
	StatusName() StatusName
	IsHttpRedirectSupported() bool
	HttpRedirectUrl() string
	IsSucceeded() bool
	IsFailed() bool
	IsFinished() bool
}

// GenericStatus is shared between the request handler that stored it and
// concurrent status queries, so statusName is guarded by its own mutex.
type GenericStatus struct {
	id              string
	httpRedirectUrl string

	mu         sync.RWMutex
	statusName StatusName
}

func NewGenericStatus() *GenericStatus {
	return NewGenericStatusWithHttpRedirectUrl("")
}

func NewGenericStatusWithHttpRedirectUrl(url string) *GenericStatus {
	return &GenericStatus{
		id:              uuid.NewV4().String(),
		statusName:      STATUS_PENDING,
		httpRedirectUrl: url,
	}
}

func (status *GenericStatus) Id() string {
	return status.id
}

func (status *GenericStatus) StatusName() StatusName {
	status.mu.RLock()
	defer status.mu.RUnlock()
	return status.statusName
}

func (status *GenericStatus) SetStatusName(name StatusName) {
	status.mu.Lock()
	status.statusName = name
	status.mu.Unlock()
}

func (status *GenericStatus) IsHttpRedirectSupported() bool {
	return false
}

func (status *GenericStatus) HttpRedirectUrl() string {
	return status.httpRedirectUrl
}

func (status *GenericStatus) IsSucceeded() bool {
	return status.StatusName() == STATUS_SUCCEEDED
}

func (status *GenericStatus) IsFailed() bool {
	return status.StatusName() == STATUS_FAILED
}

func (status *GenericStatus) IsFinished() bool {
	return status.IsSucceeded() || status.IsFailed()
}

type publicStatusSchema struct {
	Id         string     `json:"status_id"`
	StatusName StatusName `json:"status"`
	JobName    string     `json:"job_name,omitempty"`
}

func (status *GenericStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(publicStatusSchema{
		Id:         status.Id(),
		StatusName: status.StatusName(),
	})
}

type StatusService interface {
	Set(Status) error
	Get(ctx context.Context, id string) (Status, error)
	Delete(id string)
}

type InMemoryStatusService struct {
	mu       sync.RWMutex
	statuses map[string]Status
}

func NewInMemoryStatusService() *InMemoryStatusService {
	service := new(InMemoryStatusService)
	service.statuses = make(map[string]Status)
	return service
}

func (service *InMemoryStatusService) Set(status Status) error {
	service.mu.Lock()
	service.statuses[status.Id()] = status
	service.mu.Unlock()
	return nil
}

func (service *InMemoryStatusService) Get(ctx context.Context, id string) (Status, error) {
	service.mu.RLock()
	status, ok := service.statuses[id]
	service.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Status %s was not found", id)
	}

	if status.IsFinished() {
		return status, nil
	}

	if js, ok := status.(*JobStatus); ok {
		if err := js.update(ctx); err != nil {
			return nil, err
		}
		service.Set(js)
	}
	return status, nil
}

func (service *InMemoryStatusService) Delete(id string) {
	service.mu.Lock()
	delete(service.statuses, id)
	service.mu.Unlock()
}

func NewStatusService() StatusService {
	service := NewInMemoryStatusService()
	return service
}
