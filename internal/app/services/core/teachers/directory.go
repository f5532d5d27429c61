package teachers

import (
	"sync"

	"schedboard-service/internal/app/models"
)

// Directory indexes the known teacher roster by UID (primary) and ID
// (secondary). Both indexes point at the same immutable record, so a
// lookup through either key observes identical data.
type Directory struct {
	mu    sync.RWMutex
	byUID map[string]models.Teacher
	byID  map[string]models.Teacher
}

func NewDirectory() *Directory {
	return &Directory{
		byUID: make(map[string]models.Teacher),
		byID:  make(map[string]models.Teacher),
	}
}

// Put registers or replaces a teacher record under both keys.
func (d *Directory) Put(teacher models.Teacher) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if teacher.UID != "" {
		d.byUID[teacher.UID] = teacher
	}
	if teacher.ID != "" {
		d.byID[teacher.ID] = teacher
	}
}

func (d *Directory) ByUID(uid string) (models.Teacher, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	teacher, ok := d.byUID[uid]
	return teacher, ok
}

func (d *Directory) ByID(id string) (models.Teacher, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	teacher, ok := d.byID[id]
	return teacher, ok
}

// Replace swaps the whole roster in one step, mirroring how the upstream
// teacher list is consumed: replaced wholesale, never patched.
func (d *Directory) Replace(roster []models.Teacher) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.byUID = make(map[string]models.Teacher, len(roster))
	d.byID = make(map[string]models.Teacher, len(roster))
	for _, teacher := range roster {
		if teacher.UID != "" {
			d.byUID[teacher.UID] = teacher
		}
		if teacher.ID != "" {
			d.byID[teacher.ID] = teacher
		}
	}
}
