package board

import "github.com/WillyV3/pilotprogress/internal/progress"

// Default returns the built-in training board: main course milestones,
// theory exams and the 250 hour flying target.
func Default() *Board {
	b := &Board{
		Title:   "Pilot Training Progress",
		Version: "1.0.0",
		Categories: []Category{
			{
				Key:    "mainCourse",
				Name:   "Main Course",
				Weight: 0.4,
				Tasks: []Task{
					{ID: "mc-ground-school", Title: "Ground school induction"},
					{ID: "mc-first-solo", Title: "First solo flight"},
					{ID: "mc-nav-solo", Title: "Solo cross-country navigation"},
					{ID: "mc-ppl-skill-test", Title: "PPL skill test"},
					{ID: "mc-night-rating", Title: "Night rating"},
					{ID: "mc-ir-course", Title: "Instrument rating course"},
					{ID: "mc-ir-skill-test", Title: "Instrument rating skill test"},
					{ID: "mc-cpl-skill-test", Title: "CPL skill test"},
					{ID: "mc-mcc", Title: "Multi-crew cooperation course"},
				},
			},
			{
				Key:    "theoryExams",
				Name:   "Theory Exams",
				Weight: 0.3,
				Tasks: []Task{
					{ID: "te-air-law", Title: "Air Law"},
					{ID: "te-agk", Title: "Aircraft General Knowledge"},
					{ID: "te-flight-planning", Title: "Flight Performance and Planning"},
					{ID: "te-human-performance", Title: "Human Performance and Limitations"},
					{ID: "te-meteorology", Title: "Meteorology"},
					{ID: "te-navigation", Title: "Navigation"},
					{ID: "te-operational-procedures", Title: "Operational Procedures"},
					{ID: "te-principles-of-flight", Title: "Principles of Flight"},
					{ID: "te-communications", Title: "Communications"},
				},
			},
		},
		Hours: HoursGoal{
			Name:   "Flying Hours",
			Target: float64(progress.DefaultHoursTarget),
			Weight: 0.3,
		},
	}
	b.assignIDs()
	return b
}
