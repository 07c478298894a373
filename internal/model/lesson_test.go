package model

import "testing"

func TestDifficultyIsValid(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		valid      bool
	}{
		{DifficultyEasy, true},
		{DifficultyMedium, true},
		{DifficultyHard, true},
		{Difficulty("easy"), false},
		{Difficulty(""), false},
	}

	for _, tt := range tests {
		if got := tt.difficulty.IsValid(); got != tt.valid {
			t.Errorf("Difficulty(%q).IsValid() = %v, want %v", tt.difficulty, got, tt.valid)
		}
	}
}

func TestLessonValidate(t *testing.T) {
	valid := Lesson{
		Title:        "O'zgaruvchilar",
		Difficulty:   DifficultyEasy,
		LessonNumber: 2,
		LessonDate:   "2025-06-16",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid lesson, got error: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Lesson)
	}{
		{"без заголовка", func(l *Lesson) { l.Title = "" }},
		{"невалидная сложность", func(l *Lesson) { l.Difficulty = "hard" }},
		{"номер вне батча", func(l *Lesson) { l.LessonNumber = BatchSize + 1 }},
		{"нулевой номер", func(l *Lesson) { l.LessonNumber = 0 }},
		{"невалидная дата", func(l *Lesson) { l.LessonDate = "16.06.2025" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson := valid
			tt.modify(&lesson)
			if err := lesson.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2025-06-16"); err != nil {
		t.Errorf("Expected valid date, got error: %v", err)
	}

	for _, date := range []string{"", "2025-13-01", "16.06.2025", "2025-06-16T00:00:00Z"} {
		if err := ValidateDate(date); err == nil {
			t.Errorf("Expected error for date %q", date)
		}
	}
}
