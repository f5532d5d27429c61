package teachers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schedboard-service/internal/app/models"
)

func TestDirectory(t *testing.T) {
	t.Run("both indexes return the same record", func(t *testing.T) {
		directory := NewDirectory()
		directory.Put(models.Teacher{ID: "T-17", UID: "TJL900", FullName: "Ada Veen"})

		byUID, ok := directory.ByUID("TJL900")
		assert.True(t, ok)
		byID, ok := directory.ByID("T-17")
		assert.True(t, ok)
		assert.Equal(t, byUID, byID)
	})

	t.Run("missing keys report absence", func(t *testing.T) {
		directory := NewDirectory()
		_, ok := directory.ByUID("TJL404")
		assert.False(t, ok)
	})

	t.Run("replace drops records absent from the new roster", func(t *testing.T) {
		directory := NewDirectory()
		directory.Put(models.Teacher{ID: "T-1", UID: "TJL1"})
		directory.Replace([]models.Teacher{{ID: "T-2", UID: "TJL2"}})

		_, ok := directory.ByUID("TJL1")
		assert.False(t, ok)
		_, ok = directory.ByUID("TJL2")
		assert.True(t, ok)
	})
}
