package exam

type ExamStatus string

const (
	ExamStatusDraft     ExamStatus = "DRAFT"
	ExamStatusPublished ExamStatus = "PUBLISHED"
	ExamStatusArchived  ExamStatus = "ARCHIVED"
)

var AllStatuses = []ExamStatus{
	ExamStatusDraft,
	ExamStatusPublished,
	ExamStatusArchived,
}

func (s ExamStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
