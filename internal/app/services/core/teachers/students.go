package teachers

import (
	"sync"

	"schedboard-service/internal/app/models"
)

// StudentDirectory indexes the learner roster by JetLearner ID.
type StudentDirectory struct {
	mu   sync.RWMutex
	byID map[string]models.Student
}

func NewStudentDirectory() *StudentDirectory {
	return &StudentDirectory{byID: make(map[string]models.Student)}
}

func (d *StudentDirectory) Put(student models.Student) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if student.JetLearnerID != "" {
		d.byID[student.JetLearnerID] = student
	}
}

func (d *StudentDirectory) ByJetLearnerID(jetLearnerID string) (models.Student, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	student, ok := d.byID[jetLearnerID]
	return student, ok
}

func (d *StudentDirectory) Replace(roster []models.Student) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.byID = make(map[string]models.Student, len(roster))
	for _, student := range roster {
		if student.JetLearnerID != "" {
			d.byID[student.JetLearnerID] = student
		}
	}
}
