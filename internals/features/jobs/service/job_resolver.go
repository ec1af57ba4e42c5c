package service

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/features/jobs/model"
)

// ErrInvalidJobReference means the reference is neither a UUID nor a
// non-negative integer. Surfaced as a 400, never a store lookup.
var ErrInvalidJobReference = errors.New("invalid job reference: expected a numeric id or uuid")

const canonicalUUIDLen = 36

// ResolveJobID maps an external job reference to the internal surrogate key.
// A string in canonical UUID form looks up the uuid column; otherwise the
// string must parse as a non-negative base-10 integer and looks up the
// primary key. Callers needing the full record issue their own fetch.
func ResolveJobID(db *gorm.DB, ref string) (int, error) {
	if len(ref) == canonicalUUIDLen {
		if _, err := uuid.Parse(ref); err == nil {
			var job model.JobModel
			if err := db.Select("id").First(&job, "uuid = ?", ref).Error; err != nil {
				return 0, err
			}
			return job.ID, nil
		}
	}

	id, err := strconv.Atoi(ref)
	if err != nil || id < 0 {
		return 0, ErrInvalidJobReference
	}

	var job model.JobModel
	if err := db.Select("id").First(&job, "id = ?", id).Error; err != nil {
		return 0, err
	}
	return job.ID, nil
}
