package job_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	appjob "github.com/expenzo/expenzo-backend/application/job"
	"github.com/expenzo/expenzo-backend/constant"
	jobmocks "github.com/expenzo/expenzo-backend/mocks/repository/job"
	"github.com/expenzo/expenzo-backend/model"
	cerr "github.com/expenzo/expenzo-backend/utils/errors"
)

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()

	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s (%s), want %s", ce.ErrorCode(), ce.Error(), constant.ErrorTypeCode[want])
	}
}

func TestJobApp_CreateJob(t *testing.T) {
	owner := model.Identity{UserID: 7, Email: "a@x.com", Name: "Ann"}

	tests := []struct {
		name    string
		req     *model.JobRequest
		wantReq model.StringList
	}{
		{
			name: "success: nil requirements become an empty list",
			req: &model.JobRequest{
				Title:        "Barista",
				Company:      "Campus Cafe",
				Description:  "Weekend morning shifts at the cafe",
				JobType:      "part-time",
				Location:     "On campus",
				ContactEmail: "jobs@cafe.com",
			},
			wantReq: model.StringList{},
		},
		{
			name: "success: provided requirements are kept",
			req: &model.JobRequest{
				Title:        "Tutor",
				Company:      "Self",
				Description:  "Tutoring first year calculus students",
				JobType:      "freelance",
				Location:     "Remote",
				ContactEmail: "ann@x.com",
				Requirements: []string{"Calc I", "Patience"},
			},
			wantReq: model.StringList{"Calc I", "Patience"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			jobRepo := jobmocks.NewJobRepository(t)
			jobRepo.
				On("Create", mock.Anything, mock.MatchedBy(func(j *model.Job) bool {
					if len(j.Requirements) != len(tt.wantReq) {
						return false
					}
					return j.UserID == 7 && j.PosterName == "Ann" && j.PosterEmail == "a@x.com"
				})).
				Return(&model.Job{ID: 1, UserID: 7, Requirements: tt.wantReq}, nil).
				Once()
			app := appjob.NewJobApp(jobRepo)

			got, err := app.CreateJob(context.Background(), owner, tt.req)
			if err != nil {
				t.Fatalf("CreateJob() error = %v", err)
			}
			if !got.IsOwner {
				t.Fatal("isOwner = false on a fresh posting")
			}
		})
	}
}

func TestJobApp_UpdateJob(t *testing.T) {
	stored := func() *model.Job {
		return &model.Job{
			ID:           1,
			Title:        "Old title",
			Company:      "Old Co",
			Description:  "Old description of the position",
			JobType:      "part-time",
			Location:     "Campus",
			Requirements: model.StringList{"Old requirement"},
			ContactEmail: "old@x.com",
			UserID:       7,
		}
	}

	type fields struct {
		jobRepo *jobmocks.JobRepository
	}
	tests := []struct {
		name        string
		fields      fields
		callerID    uint64
		req         *model.JobRequest
		mockCall    func(f fields)
		check       func(t *testing.T, got *model.Job)
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name:     "error: non-owner is rejected",
			fields:   fields{jobRepo: jobmocks.NewJobRepository(t)},
			callerID: 8,
			req:      &model.JobRequest{Title: "T", Company: "C", Description: "Long enough description here", JobType: "part-time", Location: "L", ContactEmail: "c@x.com"},
			mockCall: func(f fields) {
				f.jobRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(stored(), nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrNotJobOwner,
		},
		{
			name:     "error: unknown job",
			fields:   fields{jobRepo: jobmocks.NewJobRepository(t)},
			callerID: 7,
			req:      &model.JobRequest{Title: "T", Company: "C", Description: "Long enough description here", JobType: "part-time", Location: "L", ContactEmail: "c@x.com"},
			mockCall: func(f fields) {
				f.jobRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(nil, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrJobNotFound,
		},
		{
			name:     "success: omitted requirements keep stored value",
			fields:   fields{jobRepo: jobmocks.NewJobRepository(t)},
			callerID: 7,
			req: &model.JobRequest{
				Title:        "New title",
				Company:      "New Co",
				Description:  "New description of the position",
				JobType:      "contract",
				Location:     "Remote",
				ContactEmail: "new@x.com",
			},
			mockCall: func(f fields) {
				f.jobRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(stored(), nil).
					Once()
				f.jobRepo.
					On("Update", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			check: func(t *testing.T, got *model.Job) {
				if got.Title != "New title" || got.JobType != "contract" {
					t.Fatalf("replaced fields not applied: %+v", got)
				}
				if len(got.Requirements) != 1 || got.Requirements[0] != "Old requirement" {
					t.Fatalf("requirements fallback lost: %v", got.Requirements)
				}
				if got.ContactPhone != nil {
					t.Fatalf("contactPhone = %v, want nil when omitted", *got.ContactPhone)
				}
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appjob.NewJobApp(tt.fields.jobRepo)

			got, err := app.UpdateJob(context.Background(), 1, tt.callerID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateJob() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				return
			}
			tt.check(t, got)
		})
	}
}

func TestJobApp_DeleteJob(t *testing.T) {
	type fields struct {
		jobRepo *jobmocks.JobRepository
	}
	tests := []struct {
		name        string
		fields      fields
		callerID    uint64
		mockCall    func(f fields)
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name:     "error: non-owner cannot delete",
			fields:   fields{jobRepo: jobmocks.NewJobRepository(t)},
			callerID: 8,
			mockCall: func(f fields) {
				f.jobRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.Job{ID: 1, UserID: 7}, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrNotJobOwner,
		},
		{
			name:     "success: owner deletes",
			fields:   fields{jobRepo: jobmocks.NewJobRepository(t)},
			callerID: 7,
			mockCall: func(f fields) {
				f.jobRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.Job{ID: 1, UserID: 7}, nil).
					Once()
				f.jobRepo.
					On("Delete", mock.Anything, uint64(1)).
					Return(nil).
					Once()
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appjob.NewJobApp(tt.fields.jobRepo)

			err := app.DeleteJob(context.Background(), 1, tt.callerID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteJob() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
			}
		})
	}
}

func TestJobApp_ListJobs(t *testing.T) {
	jobRepo := jobmocks.NewJobRepository(t)
	jobRepo.
		On("List", mock.Anything).
		Return([]model.Job{{ID: 1, UserID: 7}, {ID: 2, UserID: 8}}, nil).
		Once()
	app := appjob.NewJobApp(jobRepo)

	got, err := app.ListJobs(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if !got[0].IsOwner || got[1].IsOwner {
		t.Fatalf("isOwner flags = %v, %v", got[0].IsOwner, got[1].IsOwner)
	}
}
