package notify

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/mmynk/costtracker/internal/models"
)

// Subject is the subject line of every limit alert.
const Subject = "Cost Limit Exceeded"

var alertTemplate = template.Must(template.New("alert").Parse(`Hello {{.OwnerName}},

Your {{.Period}} limit for "{{.CostType}}" has been exceeded by {{.Exceeded}}.

Limit:       {{.Limit}}
Total spent: {{.Total}} ({{.WindowStart}} to {{.WindowEnd}})

The cost that crossed the limit:
  Date:        {{.Date}}
  Description: {{.Description}}
  Amount:      {{.Amount}}
`))

type alertView struct {
	OwnerName   string
	Period      models.PeriodKind
	CostType    string
	Exceeded    string
	Limit       string
	Total       string
	WindowStart string
	WindowEnd   string
	Date        string
	Description string
	Amount      string
}

// Compose renders alert into the message sent to its owner.
func Compose(alert models.LimitAlert) (Message, error) {
	if alert.Owner == nil || alert.CostType == nil || alert.Exceeded.Cost == nil {
		return Message{}, fmt.Errorf("%w: alert needs an owner, a cost type and a cost", models.ErrInvalidArgument)
	}
	if alert.Owner.Email == "" {
		return Message{}, fmt.Errorf("%w: owner %s has no email address", models.ErrInvalidArgument, alert.Owner.ID)
	}

	ex := alert.Exceeded
	view := alertView{
		OwnerName:   alert.Owner.Name,
		Period:      ex.Period,
		CostType:    alert.CostType.Name,
		Exceeded:    ex.ExceededAmount.StringFixed(2),
		Limit:       ex.Limit.StringFixed(2),
		Total:       ex.Total.StringFixed(2),
		WindowStart: ex.WindowStart.Format(models.DateLayout),
		WindowEnd:   ex.WindowEnd.Format(models.DateLayout),
		Date:        ex.Cost.OccurredOn.Format(models.DateLayout),
		Description: ex.Cost.Description,
		Amount:      ex.Cost.Amount.StringFixed(2),
	}

	var body bytes.Buffer
	if err := alertTemplate.Execute(&body, view); err != nil {
		return Message{}, fmt.Errorf("failed to render alert: %w", err)
	}

	return Message{To: alert.Owner.Email, Subject: Subject, Body: body.String()}, nil
}
