package slack

import (
	"bytes"
	"dommorph/config"
	"dommorph/pkg/model"
	"dommorph/pkg/worker"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// maximum number of registered variations listed in a message
const maxListed = 50

// AttachmentField
type AttachmentField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// Attachment
type Attachment struct {
	Color  string            `json:"color"`
	Text   string            `json:"text,omitempty"`
	Fields []AttachmentField `json:"fields"`
}

// Payload represents a message to send to Slack
type Payload struct {
	Text        string       `json:"text,omitempty"`
	Username    string       `json:"username,omitempty"`
	IconURL     string       `json:"icon_url,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// NewPayload generates a new Slack Payload summarizing the scan of domain
func NewPayload(config *config.Configuration, domain string, results []model.CheckResult) Payload {
	var fields []AttachmentField
	var field AttachmentField
	summary := worker.GetSummary(results)

	field.Title = "Domain"
	field.Value = domain
	field.Short = true
	fields = append(fields, field)

	field.Title = "Variations"
	field.Value = fmt.Sprintf("%d", len(results))
	field.Short = true
	fields = append(fields, field)

	field.Title = "Registered"
	field.Value = fmt.Sprintf("%d", summary.Registered)
	fields = append(fields, field)

	field.Title = "Not Registered"
	field.Value = fmt.Sprintf("%d", summary.NotRegistered)
	fields = append(fields, field)

	field.Title = "Errors"
	field.Value = fmt.Sprintf("%d", summary.Errors)
	fields = append(fields, field)

	registered := []string{}
	for _, r := range results {
		if r.Status == model.StatusRegistered {
			registered = append(registered, r.Candidate)
		}
	}
	if len(registered) != 0 {
		if len(registered) > maxListed {
			registered = append(registered[:maxListed], fmt.Sprintf("and %d more", len(registered)-maxListed))
		}
		field.Title = "Registered variations"
		field.Value = strings.Join(registered, ", ")
		field.Short = false
		fields = append(fields, field)
	}

	color := "#2eb886"
	if summary.Registered != 0 {
		color = "#ff5400"
	}

	return Payload{
		Text:        fmt.Sprintf("%d registered variations found for %v", summary.Registered, domain),
		Username:    config.SlackUsername,
		IconURL:     config.SlackIconURL,
		Attachments: []Attachment{{Color: color, Fields: fields}},
	}
}

// Post posts to Slack a Payload
func (s Payload) Post(config *config.Configuration) error {
	body, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "can't marshal Slack payload")
	}
	req, err := http.NewRequest(http.MethodPost, config.SlackWebHookURL, bytes.NewBuffer(body))
	if err != nil {
		return errors.Wrap(err, "can't create Slack request")
	}
	req.Header.Add("Content-Type", "application/json")
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "Slack Post error")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("Slack Post error: %v", resp.Status)
	}
	return nil
}
