package amqp

import (
	"encoding/json"
	"time"
)

// ReportGeneratedMessage announces a report that was built and
// archived. Consumers fetch the payload from the archive by kind+ref;
// the message itself stays small.
type ReportGeneratedMessage struct {
	Kind      string    `json:"kind"`
	Ref       string    `json:"ref"`
	Timestamp time.Time `json:"timestamp"`
}

func NewReportGeneratedMessage(kind, ref string) *ReportGeneratedMessage {
	return &ReportGeneratedMessage{
		Kind:      kind,
		Ref:       ref,
		Timestamp: time.Now(),
	}
}

func (m *ReportGeneratedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReportGeneratedMessageFromJSON(data []byte) (*ReportGeneratedMessage, error) {
	var msg ReportGeneratedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
