// Package catalog holds the built-in doctor seed data. The catalog is
// reseeded on every start; administrator edits never survive a restart.
package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"medconnect/internal/model"
)

//go:embed doctors.yaml
var doctorsYAML []byte

type seedDoctor struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Specialization string   `yaml:"specialization"`
	Graduation     string   `yaml:"graduation"`
	Picture        string   `yaml:"picture"`
	Bio            string   `yaml:"bio"`
	Experience     string   `yaml:"experience"`
	Fees           float64  `yaml:"fees"`
	AvailableSlots []string `yaml:"available_slots"`
}

// Doctors returns a fresh copy of the seed catalog, creation timestamps
// stamped at call time.
func Doctors() []model.Doctor {
	var seeds []seedDoctor
	if err := yaml.Unmarshal(doctorsYAML, &seeds); err != nil {
		// the seed file is compiled in; failing to parse it is a build defect
		panic(fmt.Sprintf("catalog: bad embedded seed data: %v", err))
	}
	now := time.Now()
	out := make([]model.Doctor, len(seeds))
	for i, s := range seeds {
		out[i] = model.Doctor{
			ID:             s.ID,
			Name:           s.Name,
			Specialization: s.Specialization,
			Graduation:     s.Graduation,
			Picture:        s.Picture,
			Bio:            s.Bio,
			Experience:     s.Experience,
			Fees:           s.Fees,
			AvailableSlots: append([]string(nil), s.AvailableSlots...),
			CreatedAt:      now,
		}
	}
	return out
}
