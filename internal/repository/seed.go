package repository

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"activities-service/internal/model"
)

// DefaultActivities возвращает начальный список кружков школы Mergington.
// Каждый вызов отдаёт новую копию.
func DefaultActivities() []model.Activity {
	return []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Club",
			Description:     "Outdoor soccer practice and inter-school matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"alex@mergington.edu", "nina@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball team training and games",
			Schedule:        "Mondays, Wednesdays, 5:00 PM - 7:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"kevin@mergington.edu", "rachel@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Drawing, painting, and mixed-media workshops",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu", "liam@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Acting, stagecraft, and theater productions",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"harper@mergington.edu", "mason@mergington.edu"},
		},
		{
			Name:            "Math Club",
			Description:     "Problem-solving sessions, math contests, and enrichment",
			Schedule:        "Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"oliver@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Science Olympiad",
			Description:     "Hands-on experiments and team competitions in science",
			Schedule:        "Saturdays, 9:00 AM - 12:00 PM",
			MaxParticipants: 24,
			Participants:    []string{"noah@mergington.edu", "mia@mergington.edu"},
		},
	}
}

type seedDocument struct {
	Activities []model.Activity `yaml:"activities"`
}

// ParseSeed разбирает YAML-документ с начальными данными.
// Неизвестные поля считаются ошибкой.
func ParseSeed(data []byte) ([]model.Activity, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc seedDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidSeed, err)
	}
	if len(doc.Activities) == 0 {
		return nil, fmt.Errorf("%w: no activities defined", ErrInvalidSeed)
	}
	return doc.Activities, nil
}

// LoadSeedFile читает начальные данные из YAML-файла.
func LoadSeedFile(path string) ([]model.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}
