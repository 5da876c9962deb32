package topic

type TopicStatus string

const (
	TopicStatusActive   TopicStatus = "ACTIVE"
	TopicStatusArchived TopicStatus = "ARCHIVED"
)

var AllStatuses = []TopicStatus{
	TopicStatusActive,
	TopicStatusArchived,
}

func (s TopicStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
