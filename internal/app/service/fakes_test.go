package service

import (
	"context"
	"fmt"

	"badgecv_api/internal/common"
	"badgecv_api/internal/domain/model"
)

// In-memory repository fakes. They mirror the Mongo implementations'
// error translation and return copies so callers cannot mutate stored
// state, matching the decode-into-fresh-struct behavior of the driver.

type fakeUserRepo struct {
	users map[string]model.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if _, exists := r.users[user.Email]; exists {
		return fmt.Errorf("user with given email already exists: %w", common.ErrDuplicateEmail)
	}
	r.users[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeBadgeRepo struct {
	badges []model.Badge
}

func newFakeBadgeRepo() *fakeBadgeRepo {
	return &fakeBadgeRepo{}
}

func (r *fakeBadgeRepo) Create(_ context.Context, badge *model.Badge) error {
	r.badges = append(r.badges, *badge)
	return nil
}

func (r *fakeBadgeRepo) FindByID(_ context.Context, id string) (*model.Badge, error) {
	for _, badge := range r.badges {
		if badge.ID == id {
			found := badge
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeBadgeRepo) FindByUserID(_ context.Context, userID string, limit int64) ([]model.Badge, error) {
	found := []model.Badge{}
	for _, badge := range r.badges {
		if badge.UserID == userID {
			found = append(found, badge)
			if int64(len(found)) == limit {
				break
			}
		}
	}
	return found, nil
}

func (r *fakeBadgeRepo) IncrementViews(_ context.Context, id string) (*model.Badge, error) {
	for i := range r.badges {
		if r.badges[i].ID == id {
			r.badges[i].Views++
			found := r.badges[i]
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeResumeRepo struct {
	resumes []model.Resume
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{}
}

func (r *fakeResumeRepo) Create(_ context.Context, resume *model.Resume) error {
	r.resumes = append(r.resumes, *resume)
	return nil
}

func (r *fakeResumeRepo) FindByUserID(_ context.Context, userID string, limit int64) ([]model.Resume, error) {
	found := []model.Resume{}
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			found = append(found, resume)
			if int64(len(found)) == limit {
				break
			}
		}
	}
	return found, nil
}
