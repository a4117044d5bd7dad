package job

import (
	"context"

	"go.uber.org/zap"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
	jobrepo "github.com/expenzo/expenzo-backend/repository/job"
	"github.com/expenzo/expenzo-backend/utils/errors"
	"github.com/expenzo/expenzo-backend/utils/logger"
)

type JobApp interface {
	ListJobs(ctx context.Context, viewerID uint64) ([]model.Job, error)
	GetJob(ctx context.Context, id, viewerID uint64) (*model.Job, error)
	CreateJob(ctx context.Context, owner model.Identity, req *model.JobRequest) (*model.Job, error)
	UpdateJob(ctx context.Context, id, callerID uint64, req *model.JobRequest) (*model.Job, error)
	DeleteJob(ctx context.Context, id, callerID uint64) error
	ListMyJobs(ctx context.Context, userID uint64) ([]model.Job, error)
}

type jobAppImpl struct {
	jobRepo jobrepo.JobRepository
}

func NewJobApp(jobRepo jobrepo.JobRepository) JobApp {
	return &jobAppImpl{jobRepo: jobRepo}
}

func (s *jobAppImpl) ListJobs(ctx context.Context, viewerID uint64) ([]model.Job, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		logger.Error("[ListJobs] err jobRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	for i := range jobs {
		jobs[i].IsOwner = viewerID != 0 && jobs[i].UserID == viewerID
	}
	return jobs, nil
}

func (s *jobAppImpl) GetJob(ctx context.Context, id, viewerID uint64) (*model.Job, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetJob] err jobRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if j == nil {
		return nil, errors.SetCustomError(constant.ErrJobNotFound)
	}

	j.IsOwner = viewerID != 0 && j.UserID == viewerID
	return j, nil
}

func (s *jobAppImpl) CreateJob(ctx context.Context, owner model.Identity, req *model.JobRequest) (*model.Job, error) {
	requirements := model.StringList(req.Requirements)
	if requirements == nil {
		requirements = model.StringList{}
	}

	var contactPhone *string
	if req.ContactPhone != "" {
		contactPhone = &req.ContactPhone
	}

	j := &model.Job{
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		JobType:      req.JobType,
		Location:     req.Location,
		HourlyRate:   req.HourlyRate,
		Requirements: requirements,
		ContactEmail: req.ContactEmail,
		ContactPhone: contactPhone,
		UserID:       owner.UserID,
		PosterName:   owner.Name,
		PosterEmail:  owner.Email,
	}

	j, err := s.jobRepo.Create(ctx, j)
	if err != nil {
		logger.Error("[CreateJob] err jobRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	j.IsOwner = true
	return j, nil
}

func (s *jobAppImpl) UpdateJob(ctx context.Context, id, callerID uint64, req *model.JobRequest) (*model.Job, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateJob] err jobRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if j == nil {
		return nil, errors.SetCustomError(constant.ErrJobNotFound)
	}
	if j.UserID != callerID {
		return nil, errors.SetCustomError(constant.ErrNotJobOwner)
	}

	// Full replace, except requirements keep their stored value when
	// omitted.
	j.Title = req.Title
	j.Company = req.Company
	j.Description = req.Description
	j.JobType = req.JobType
	j.Location = req.Location
	j.HourlyRate = req.HourlyRate
	if req.Requirements != nil {
		j.Requirements = model.StringList(req.Requirements)
	}
	j.ContactEmail = req.ContactEmail
	if req.ContactPhone != "" {
		phone := req.ContactPhone
		j.ContactPhone = &phone
	} else {
		j.ContactPhone = nil
	}

	if err := s.jobRepo.Update(ctx, j); err != nil {
		logger.Error("[UpdateJob] err jobRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	j.IsOwner = true
	return j, nil
}

func (s *jobAppImpl) DeleteJob(ctx context.Context, id, callerID uint64) error {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteJob] err jobRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if j == nil {
		return errors.SetCustomError(constant.ErrJobNotFound)
	}
	if j.UserID != callerID {
		return errors.SetCustomError(constant.ErrNotJobOwner)
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteJob] err jobRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return nil
}

func (s *jobAppImpl) ListMyJobs(ctx context.Context, userID uint64) ([]model.Job, error) {
	jobs, err := s.jobRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListMyJobs] err jobRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	for i := range jobs {
		jobs[i].IsOwner = true
	}
	return jobs, nil
}
