package agronomy

import (
	"math"
	"time"

	"agrimitra/models"
)

// DaysAfterPlanting returns whole days between planting and asOf. The value is
// taken as an absolute count, so a planting date recorded slightly in the
// future still yields a usable DAP of 0..n.
func DaysAfterPlanting(plantingDate, asOf time.Time) int {
	days := int(math.Abs(asOf.Sub(plantingDate).Hours()) / 24)
	return days
}

// CalculateStage maps (crop type, planting date, as-of date) onto the crop's
// phenological timeline. DAP past the final stage returns the last stage as a
// terminal "overdue / harvested" state rather than an error.
func CalculateStage(cropType string, plantingDate, asOf time.Time) models.StageResult {
	stages := StagesFor(cropType)
	dap := DaysAfterPlanting(plantingDate, asOf)
	total := stages[len(stages)-1].End

	idx := len(stages) - 1
	for i, s := range stages {
		if dap >= s.Start && dap < s.End {
			idx = i
			break
		}
	}

	progress := int(math.Round(float64(dap) / float64(total) * 100))
	if progress > 100 {
		progress = 100
	}

	result := models.StageResult{
		DAP:             dap,
		StageName:       stages[idx].Name,
		Description:     stages[idx].Description,
		ProgressPercent: progress,
	}
	if idx+1 < len(stages) {
		result.NextStageName = stages[idx+1].Name
	}
	return result
}

// GenerateMilestones expands a crop's stage table into dated milestones.
// Status derives purely from asOf against each stage window, so the same call
// made later reports more stages completed.
func GenerateMilestones(cropType string, plantingDate, asOf time.Time) []models.Milestone {
	stages := StagesFor(cropType)
	milestones := make([]models.Milestone, 0, len(stages))

	for _, s := range stages {
		expected := plantingDate.AddDate(0, 0, s.Start)
		windowEnd := plantingDate.AddDate(0, 0, s.End)

		status := "pending"
		switch {
		case !asOf.Before(windowEnd):
			status = "completed"
		case !asOf.Before(expected):
			status = "active"
		}

		milestones = append(milestones, models.Milestone{
			StageName:    s.Name,
			Description:  s.Description,
			ExpectedDate: expected,
			Status:       status,
		})
	}
	return milestones
}
