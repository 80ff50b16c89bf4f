// Package repository defines the data-access contracts for the student store.
package repository

import (
	"context"

	"github.com/omnipdr/omnipdr/internal/models"
)

// StudentFilter narrows a student listing. Zero values mean "no constraint".
type StudentFilter struct {
	Track models.ExamTrack
	Name  string // substring match, case-insensitive
	Limit int
}

// StudentRepository persists whole student aggregates. Save is an upsert by
// id and must be atomic: a reader never observes a partially written record
// set.
type StudentRepository interface {
	Save(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetByName(ctx context.Context, name string) (*models.Student, error)
	List(ctx context.Context, filter StudentFilter) ([]models.Student, error)
	Delete(ctx context.Context, id string) (bool, error)
}
