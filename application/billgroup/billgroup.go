package billgroup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
	billgrouprepo "github.com/expenzo/expenzo-backend/repository/billgroup"
	"github.com/expenzo/expenzo-backend/utils/errors"
	"github.com/expenzo/expenzo-backend/utils/logger"
)

type BillGroupApp interface {
	GetGroup(ctx context.Context, userID uint64) (*model.BillGroup, error)
	AddPerson(ctx context.Context, userID uint64, req *model.AddPersonRequest) (*model.BillGroup, error)
	RemovePerson(ctx context.Context, userID uint64, personID string) (*model.BillGroup, error)
	AddExpense(ctx context.Context, userID uint64, req *model.AddBillExpenseRequest) (*model.BillGroup, error)
	RemoveExpense(ctx context.Context, userID uint64, expenseID string) (*model.BillGroup, error)
	Reset(ctx context.Context, userID uint64) error
}

type billGroupAppImpl struct {
	groupRepo billgrouprepo.BillGroupRepository
}

func NewBillGroupApp(groupRepo billgrouprepo.BillGroupRepository) BillGroupApp {
	return &billGroupAppImpl{groupRepo: groupRepo}
}

// GetGroup lazily materializes the caller's group on first touch.
func (s *billGroupAppImpl) GetGroup(ctx context.Context, userID uint64) (*model.BillGroup, error) {
	group, err := s.groupRepo.GetOrCreate(ctx, userID)
	if err != nil {
		logger.Error("[GetGroup] err groupRepo.GetOrCreate", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return group, nil
}

func (s *billGroupAppImpl) AddPerson(ctx context.Context, userID uint64, req *model.AddPersonRequest) (*model.BillGroup, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.SetCustomError(constant.ErrPersonNameRequired)
	}

	group, err := s.groupRepo.GetOrCreate(ctx, userID)
	if err != nil {
		logger.Error("[AddPerson] err groupRepo.GetOrCreate", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	note := strings.TrimSpace(req.Note)
	if note == "" {
		note = fmt.Sprintf("Hello, My name is %s", name)
	}

	group.People = append(group.People, model.Person{
		ID:             uuid.NewString(),
		Name:           name,
		Note:           note,
		InitialBalance: req.InitialBalance.Float64(),
	})

	if err := s.groupRepo.Save(ctx, group); err != nil {
		logger.Error("[AddPerson] err groupRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return group, nil
}

// RemovePerson filters the person out by id. Removing an id that is not in
// the group is a no-op, not an error.
func (s *billGroupAppImpl) RemovePerson(ctx context.Context, userID uint64, personID string) (*model.BillGroup, error) {
	group, err := s.groupRepo.GetByUser(ctx, userID)
	if err != nil {
		logger.Error("[RemovePerson] err groupRepo.GetByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if group == nil {
		return nil, errors.SetCustomError(constant.ErrBillGroupNotFound)
	}

	people := make(model.PersonList, 0, len(group.People))
	for _, p := range group.People {
		if p.ID != personID {
			people = append(people, p)
		}
	}
	group.People = people

	if err := s.groupRepo.Save(ctx, group); err != nil {
		logger.Error("[RemovePerson] err groupRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return group, nil
}

func (s *billGroupAppImpl) AddExpense(ctx context.Context, userID uint64, req *model.AddBillExpenseRequest) (*model.BillGroup, error) {
	description := strings.TrimSpace(req.Description)
	payer := strings.TrimSpace(req.Payer)
	amount := req.Amount.Float64()

	if description == "" || payer == "" || amount == 0 {
		return nil, errors.SetCustomError(constant.ErrExpenseFieldsRequired)
	}
	if amount < 0 {
		return nil, errors.SetCustomError(constant.ErrAmountNotPositive)
	}

	splitType := req.SplitType
	if splitType == "" {
		splitType = constant.SplitTypeEqual
	}
	if splitType != constant.SplitTypeEqual && splitType != constant.SplitTypeShares {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	group, err := s.groupRepo.GetOrCreate(ctx, userID)
	if err != nil {
		logger.Error("[AddExpense] err groupRepo.GetOrCreate", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	shares := req.Shares
	if shares == nil {
		shares = model.ShareMap{}
	}

	group.Expenses = append(group.Expenses, model.BillExpense{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Payer:       payer,
		Date:        date,
		SplitType:   splitType,
		Shares:      shares,
	})

	if err := s.groupRepo.Save(ctx, group); err != nil {
		logger.Error("[AddExpense] err groupRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return group, nil
}

func (s *billGroupAppImpl) RemoveExpense(ctx context.Context, userID uint64, expenseID string) (*model.BillGroup, error) {
	group, err := s.groupRepo.GetByUser(ctx, userID)
	if err != nil {
		logger.Error("[RemoveExpense] err groupRepo.GetByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if group == nil {
		return nil, errors.SetCustomError(constant.ErrBillGroupNotFound)
	}

	expenses := make(model.BillExpenseList, 0, len(group.Expenses))
	for _, e := range group.Expenses {
		if e.ID != expenseID {
			expenses = append(expenses, e)
		}
	}
	group.Expenses = expenses

	if err := s.groupRepo.Save(ctx, group); err != nil {
		logger.Error("[RemoveExpense] err groupRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return group, nil
}

func (s *billGroupAppImpl) Reset(ctx context.Context, userID uint64) error {
	if err := s.groupRepo.DeleteByUser(ctx, userID); err != nil {
		logger.Error("[Reset] err groupRepo.DeleteByUser", zap.String("error", err.Error()))
		return errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return nil
}
