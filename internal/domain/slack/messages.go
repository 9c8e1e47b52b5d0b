package slack

import (
	"fmt"
	"strings"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

// FormatDayTask renders the task of one day. A nil task means nothing is
// planned.
func FormatDayTask(template string, date string, task *entity.DayTask) string {
	if task == nil {
		return fmt.Sprintf("📋 *Planning %s* - %s\n\nAucune tâche prévue.", template, date)
	}

	return fmt.Sprintf("📋 *Planning %s* - %s %s\n\n%s : *%s*",
		template,
		task.DayLabel,
		task.Date.Format(domain.DateLayout),
		task.WeekLabel,
		task.Task,
	)
}

// FormatWeek renders the Monday to Friday tasks of a week.
func FormatWeek(template string, days []*entity.DayTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 *Planning %s - semaine*\n", template)

	for i, d := range days {
		if d == nil {
			fmt.Fprintf(&b, "\n• %s : -", domain.WeekdayNames[domain.Monday+i])
			continue
		}
		fmt.Fprintf(&b, "\n• %s %s : *%s* (%s)", d.DayLabel, d.Date.Format("02/01"), d.Task, d.WeekLabel)
	}
	return b.String()
}

// FormatSubscription renders the status of a channel subscription.
func FormatSubscription(sub *entity.Subscription) string {
	if sub == nil {
		return "Aucun rappel configuré pour ce canal. Utilisez `/planning subscribe MODÈLE [HH:MM]`."
	}

	status := "✅ actif"
	if !sub.IsEnabled {
		status = "⏸️ en pause"
	}

	days := make([]string, 0, len(sub.ActiveDays))
	for _, d := range sub.ActiveDays {
		days = append(days, domain.WeekdayNames[d])
	}

	return fmt.Sprintf("*Rappel du canal :*\n• Modèle : %s\n• Heure : %s\n• Jours : %s\n• Statut : %s",
		sub.Template,
		sub.NotificationTime,
		strings.Join(days, ", "),
		status,
	)
}
