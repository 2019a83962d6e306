package session

import (
	"fmt"
	"strings"
	"time"
)

// SubmitName stores the user's name. Blank names are rejected.
func SubmitName(s *State, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return blank("name", "Please tell us your name.")
	}
	changed := s.Profile.Name != name
	s.Profile.Name = name
	if changed {
		s.record(EventNameSubmitted, name)
	}
	return nil
}

// RevealQuote opens the quote gate. Calling it again has no effect.
func RevealQuote(s *State) {
	if s.flags.ShowQuote {
		return
	}
	s.flags.ShowQuote = true
	s.record(EventQuoteRevealed, "")
}

// SubmitDetails stores education and future plans. Both are required.
func SubmitDetails(s *State, education, futurePlans string) error {
	education = strings.TrimSpace(education)
	futurePlans = strings.TrimSpace(futurePlans)

	const msg = "Please fill in both your education level and future plans before proceeding."
	switch {
	case education == "":
		return blank("education", msg)
	case futurePlans == "":
		return blank("future_plans", msg)
	}

	s.Profile.Education = education
	s.Profile.FuturePlans = futurePlans
	s.record(EventDetailsSubmitted, education)
	return nil
}

// Proceed opens the gate to the rest of the dashboard. Calling it again has no effect.
func Proceed(s *State) {
	if s.flags.Proceed {
		return
	}
	s.flags.Proceed = true
	s.record(EventProceeded, "")
}

// AddSkill appends a skill. The level is clamped to [MinLevel, MaxLevel].
func AddSkill(s *State, name string, level int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return blank("skill", "Please enter a skill name.")
	}
	level = ClampLevel(level)
	s.appendSkill(Skill{Name: name, Level: level})
	s.record(EventSkillAdded, fmt.Sprintf("%s (%d)", name, level))
	return nil
}

// ClampLevel bounds a skill level to [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	return max(MinLevel, min(MaxLevel, level))
}

// CheckAchievement returns the error AddAchievement gives for text, so a
// form can report it before parsing the date.
func CheckAchievement(text string) error {
	if strings.TrimSpace(text) == "" {
		return blank("achievement", "Please describe your achievement.")
	}
	return nil
}

// AddAchievement appends an achievement dated on the given day.
func AddAchievement(s *State, text string, date time.Time) error {
	if err := CheckAchievement(text); err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	date = truncateDay(date)
	s.appendAchievement(Achievement{Text: text, Date: date})
	s.record(EventAchievementAdded, fmt.Sprintf("%s (%s)", text, date.Format(time.DateOnly)))
	return nil
}

// CheckGoal returns the error AddGoal gives for text.
func CheckGoal(text string) error {
	if strings.TrimSpace(text) == "" {
		return blank("goal", "Please describe your learning goal.")
	}
	return nil
}

// AddGoal appends a learning goal in the InProgress status.
func AddGoal(s *State, text string, deadline time.Time) error {
	if err := CheckGoal(text); err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	deadline = truncateDay(deadline)
	s.appendGoal(LearningGoal{Text: text, Deadline: deadline, Status: StatusInProgress})
	s.record(EventGoalAdded, fmt.Sprintf("%s (due %s)", text, deadline.Format(time.DateOnly)))
	return nil
}

// SetGoalStatus changes the status of the goal at index i and nothing else.
// It reports whether a goal was updated; out-of-range indexes and unknown
// statuses are ignored.
func SetGoalStatus(s *State, i int, status GoalStatus) bool {
	if i < 0 || i >= len(s.Goals) || !status.Valid() {
		return false
	}
	if s.Goals[i].Status == status {
		return true
	}
	s.Goals[i].Status = status
	s.record(EventGoalStatus, fmt.Sprintf("#%d %s -> %s", i+1, s.Goals[i].Text, status.DisplayName()))
	return true
}

// RecordResponse overwrites the answer for questionID. An empty answer
// marks the question as unanswered again.
func RecordResponse(s *State, questionID, answer string) {
	if s.Responses[questionID] == answer {
		return
	}
	if answer == "" {
		delete(s.Responses, questionID)
	} else {
		s.Responses[questionID] = answer
	}
	s.record(EventResponse, fmt.Sprintf("%s = %q", questionID, answer))
}

// RecordScore journals a computed quiz score.
func RecordScore(s *State, quiz string, score, maxScore int, tier string) {
	s.record(EventScored, fmt.Sprintf("%s %d/%d %s", quiz, score, maxScore, tier))
}

// MarkStarted journals the start of the session.
func MarkStarted(s *State, variant string) {
	s.record(EventStarted, variant)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
