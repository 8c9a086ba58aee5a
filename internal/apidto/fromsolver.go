package apidto

import (
	"school-timetabler/internal/domain"
	"school-timetabler/internal/solver"
)

// BuildSolveResult renders a solver.Result as the API's JSON payload.
// Unlike internal/report's human-facing Document, this keeps raw
// entity IDs so API consumers can re-join against the request they
// submitted.
func BuildSolveResult(schedule domain.Schedule, stats solver.Statistics) SolveResult {
	result := SolveResult{
		Statistics: StatisticsDTO{
			ConstructAttempts: stats.ConstructAttempts,
			RequestsHandled:   stats.RequestsHandled,
		},
	}

	for _, lesson := range schedule {
		result.Lessons = append(result.Lessons, LessonDTO{
			ClassID:   lesson.ClassID,
			SubjectID: lesson.SubjectID,
			TeacherID: lesson.TeacherID,
			RoomID:    lesson.RoomID,
			Day:       lesson.Slot.Day,
			Period:    lesson.Slot.Period,
		})
	}

	if sa := stats.SAStats; sa != nil {
		result.Statistics.InitialCost = sa.InitialCost
		result.Statistics.FinalCost = sa.FinalCost
		result.Statistics.BestCost = sa.BestCost
		result.Statistics.Accepted = sa.Accepted
		result.Statistics.Rejected = sa.Rejected
		result.Statistics.Reheats = sa.Reheats
		result.Statistics.Decomposition = sa.BestDecomposition
	}

	return result
}
