package billgroup

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/expenzo/expenzo-backend/constant"
)

func newRepoWithMock(t *testing.T) (BillGroupRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewBillGroupRepository(sqlx.NewDb(db, "mysql")), mock
}

func groupColumns() []string {
	return []string{"id", "user_id", "group_name", "people", "expenses", "created_at", "updated_at"}
}

// First touch must go through the upsert on the unique user_id key followed
// by a re-select, never a plain INSERT or a find-then-create pair.
func TestBillGroupRepository_GetOrCreate_FirstTouch(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(createGroupQuery)).
		WithArgs(int64(7), constant.DefaultGroupName, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(getGroupQuery)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(groupColumns()).
			AddRow(1, 7, constant.DefaultGroupName, []byte(`[]`), []byte(`[]`), time.Now(), nil))

	got, err := repo.GetOrCreate(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if got.ID != 1 || got.GroupName != constant.DefaultGroupName {
		t.Fatalf("group = %+v", got)
	}
	if len(got.People) != 0 || len(got.Expenses) != 0 {
		t.Fatalf("fresh group not empty: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// When the row already exists the upsert is a no-op and the persisted group
// comes back untouched. Two concurrent first-touch calls converge on one row.
func TestBillGroupRepository_GetOrCreate_ExistingRowWins(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(createGroupQuery)).
		WithArgs(int64(7), constant.DefaultGroupName, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(getGroupQuery)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(groupColumns()).
			AddRow(5, 7, "Flatmates",
				[]byte(`[{"id":"p1","name":"Bob","note":"Hello, My name is Bob","initialBalance":12.5}]`),
				[]byte(`[]`), time.Now(), nil))

	got, err := repo.GetOrCreate(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if got.ID != 5 || got.GroupName != "Flatmates" {
		t.Fatalf("defaults overwrote the persisted group: %+v", got)
	}
	if len(got.People) != 1 || got.People[0].Name != "Bob" {
		t.Fatalf("people = %+v", got.People)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBillGroupRepository_GetByUser_NoRows(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(getGroupQuery)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(groupColumns()))

	got, err := repo.GetByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByUser() error = %v", err)
	}
	if got != nil {
		t.Fatalf("group = %+v, want nil", got)
	}
}

func TestBillGroupRepository_DeleteByUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteGroupQuery)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByUser(context.Background(), 7); err != nil {
		t.Fatalf("DeleteByUser() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
