package module

type ModuleStatus string

const (
	ModuleStatusActive   ModuleStatus = "ACTIVE"
	ModuleStatusArchived ModuleStatus = "ARCHIVED"
)

var AllStatuses = []ModuleStatus{
	ModuleStatusActive,
	ModuleStatusArchived,
}

func (s ModuleStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
