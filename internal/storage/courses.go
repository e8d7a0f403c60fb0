package storage

import (
	"context"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
	"github.com/picksplaydoit-ai/superappprofe/internal/edit"
)

// CoursesKey holds the whole course list as one JSON array.
const CoursesKey = "edupro_courses"

// CourseRepo loads and saves complete course snapshots.
type CourseRepo struct {
	store *Store
}

func NewCourseRepo(s *Store) *CourseRepo { return &CourseRepo{store: s} }

func (r *CourseRepo) List(ctx context.Context) []course.Course {
	return Get(ctx, r.store, CoursesKey, []course.Course{})
}

func (r *CourseRepo) Get(ctx context.Context, id string) (course.Course, error) {
	for _, c := range r.List(ctx) {
		if c.ID == id {
			return c, nil
		}
	}
	return course.Course{}, course.ErrCourseNotFound
}

// Find resolves a course by id, or by name when the name is unique.
func (r *CourseRepo) Find(ctx context.Context, idOrName string) (course.Course, error) {
	var match []course.Course
	for _, c := range r.List(ctx) {
		if c.ID == idOrName {
			return c, nil
		}
		if c.Name == idOrName {
			match = append(match, c)
		}
	}
	if len(match) != 1 {
		return course.Course{}, course.ErrCourseNotFound
	}
	return match[0], nil
}

// Save replaces the stored course with the same id, or appends it.
func (r *CourseRepo) Save(ctx context.Context, c course.Course) {
	r.store.Set(ctx, CoursesKey, edit.UpsertCourse(r.List(ctx), c))
}

func (r *CourseRepo) Delete(ctx context.Context, id string) error {
	list := r.List(ctx)
	next := edit.DeleteCourse(list, id)
	if len(next) == len(list) {
		return course.ErrCourseNotFound
	}
	r.store.Set(ctx, CoursesKey, next)
	return nil
}
