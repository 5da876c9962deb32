package library

type BookStatus string

const (
	BookStatusActive   BookStatus = "ACTIVE"
	BookStatusArchived BookStatus = "ARCHIVED"
)

func (s BookStatus) IsValid() bool {
	return s == BookStatusActive || s == BookStatusArchived
}
