package service

import (
	"testing"
	"time"

	"kidscode/internal/model"

	"github.com/robfig/cron/v3"
)

func TestDefaultScheduleSpecs(t *testing.T) {
	for _, entry := range DefaultSchedule {
		if _, err := cron.ParseStandard(entry.Spec); err != nil {
			t.Errorf("Invalid cron spec %q: %v", entry.Spec, err)
		}
	}
}

func TestDefaultScheduleCoverage(t *testing.T) {
	lessonSlots := make(map[int]bool)
	tipSlots := make(map[int]bool)
	generateCount := 0

	for _, entry := range DefaultSchedule {
		switch entry.Kind {
		case jobGenerate:
			generateCount++
		case jobPublishLesson:
			if lessonSlots[entry.Sequence] {
				t.Errorf("Duplicate lesson slot %d", entry.Sequence)
			}
			lessonSlots[entry.Sequence] = true
		case jobPublishTip:
			if tipSlots[entry.Sequence] {
				t.Errorf("Duplicate tip slot %d", entry.Sequence)
			}
			tipSlots[entry.Sequence] = true
		}
	}

	if generateCount != 1 {
		t.Errorf("Expected 1 generation entry, got %d", generateCount)
	}

	for i := 1; i <= model.BatchSize; i++ {
		if !lessonSlots[i] {
			t.Errorf("Missing lesson slot %d", i)
		}
		if !tipSlots[i] {
			t.Errorf("Missing tip slot %d", i)
		}
	}
}

func TestToday(t *testing.T) {
	today := Today()

	parsed, err := time.Parse(model.DateFormat, today)
	if err != nil {
		t.Fatalf("Today returned invalid date %q: %v", today, err)
	}

	if parsed.Location() != time.UTC {
		t.Errorf("Expected UTC date, got %v", parsed.Location())
	}
}
