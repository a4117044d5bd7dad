package transport

import (
	"encoding/json"
	"net/http"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
	utilsContext "github.com/expenzo/expenzo-backend/utils/context"
	"github.com/expenzo/expenzo-backend/utils/errors"
	validatorx "github.com/expenzo/expenzo-backend/utils/validator"
)

// ListJobs handler
// @Summary List job postings
// @Description List every posting, newest first, with ownership annotation
// @Tags Jobs
// @Produce json
// @Success 200 {array} model.Job
// @Router /api/jobs [get]
func (s *RestHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobs, err := s.JobApp.ListJobs(ctx, viewerID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, jobs)
}

// GetJob handler
// @Summary Get a job posting
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} transport.errorBody
// @Router /api/jobs/{id} [get]
func (s *RestHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrJobNotFound))
		return
	}

	job, err := s.JobApp.GetJob(ctx, id, viewerID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, job)
}

// CreateJob handler
// @Summary Post a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body model.JobRequest true "Job Request"
// @Success 201 {object} model.JobResponse
// @Failure 400 {object} model.ValidationErrorResponse
// @Failure 401 {object} transport.errorBody
// @Router /api/jobs [post]
// @Security BearerAuth
func (s *RestHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utilsContext.GetIdentity(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	var req model.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	job, err := s.JobApp.CreateJob(ctx, identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, model.JobResponse{
		Message: "Job posted successfully",
		Job:     *job,
	})
}

// UpdateJob handler
// @Summary Update a job posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body model.JobRequest true "Job Request"
// @Success 200 {object} model.JobResponse
// @Failure 403 {object} transport.errorBody
// @Failure 404 {object} transport.errorBody
// @Router /api/jobs/{id} [put]
// @Security BearerAuth
func (s *RestHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrJobNotFound))
		return
	}

	var req model.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	job, err := s.JobApp.UpdateJob(ctx, id, viewerID(ctx), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.JobResponse{
		Message: "Job updated successfully",
		Job:     *job,
	})
}

// DeleteJob handler
// @Summary Delete a job posting
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} transport.errorBody
// @Failure 404 {object} transport.errorBody
// @Router /api/jobs/{id} [delete]
// @Security BearerAuth
func (s *RestHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrJobNotFound))
		return
	}

	if err := s.JobApp.DeleteJob(ctx, id, viewerID(ctx)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "Job deleted successfully"})
}

// ListMyJobs handler
// @Summary List the caller's job postings
// @Tags Jobs
// @Produce json
// @Success 200 {array} model.Job
// @Router /api/jobs/my-jobs [get]
// @Security BearerAuth
func (s *RestHandler) ListMyJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobs, err := s.JobApp.ListMyJobs(ctx, viewerID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, jobs)
}
