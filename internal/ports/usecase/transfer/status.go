package port_transfer

type Status string

const (
	StatusDone  Status = "DONE"
	StatusError Status = "ERROR"
)

func (s Status) IsDone() bool {
	return s == StatusDone
}
