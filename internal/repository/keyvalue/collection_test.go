package keyvalue

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

// failingStore fails every write, and every read once readErr is set.
type failingStore struct {
	*kvstore.MemoryStore
	readErr bool
}

func (s *failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.readErr {
		return "", false, errStoreDown
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *failingStore) Set(context.Context, string, string) error {
	return errStoreDown
}

func TestEmployeeRepository_ListEmpty(t *testing.T) {
	repo := NewEmployeeRepository(kvstore.NewMemoryStore(), DefaultPrefix)

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestEmployeeRepository_UpsertReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(kvstore.NewMemoryStore(), DefaultPrefix)

	e1 := employee.Employee{ID: "e1", Name: "Somchai", Department: "IT"}
	e2 := employee.Employee{ID: "e2", Name: "Somsri", Department: "HR"}
	require.NoError(t, repo.Upsert(ctx, e1))
	require.NoError(t, repo.Upsert(ctx, e2))

	modified := e1
	modified.Department = "Finance"
	require.NoError(t, repo.Upsert(ctx, modified))

	employees, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, modified, employees[0], "replaced entry keeps its original position")
	assert.Equal(t, e2, employees[1])

	got, err := repo.GetByID(ctx, "e2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, e2, *got)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAttendanceRepository_FindByEmployeeAndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(kvstore.NewMemoryStore(), DefaultPrefix)

	require.NoError(t, repo.Upsert(ctx, attendance.AttendanceRecord{ID: "r1", EmployeeID: "e1", Date: "2024-03-01", Status: attendance.StatusPresent}))
	require.NoError(t, repo.Upsert(ctx, attendance.AttendanceRecord{ID: "r2", EmployeeID: "e1", Date: "2024-03-02", Status: attendance.StatusLate}))

	got, err := repo.FindByEmployeeAndDate(ctx, "e1", "2024-03-02")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r2", got.ID)

	none, err := repo.FindByEmployeeAndDate(ctx, "e2", "2024-03-02")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestRepositories_StorageLayout(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	require.NoError(t, NewEmployeeRepository(store, DefaultPrefix).Upsert(ctx, employee.Employee{ID: "e1"}))
	require.NoError(t, NewAttendanceRepository(store, DefaultPrefix).Upsert(ctx, attendance.AttendanceRecord{ID: "r1", EmployeeID: "e1", Status: attendance.StatusPresent}))
	require.NoError(t, NewLeaveRequestRepository(store, DefaultPrefix).Upsert(ctx, leave.LeaveRequest{ID: "l1", EmployeeID: "e1", Status: leave.LeaveRequestStatusPending}))

	for _, key := range []string{"attendance_employees", "attendance_records", "attendance_leaves"} {
		raw, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, found, key)
		assert.Equal(t, byte('['), raw[0], "%s holds a JSON array", key)
	}

	raw, _, _ := store.Get(ctx, "attendance_records")
	assert.Contains(t, raw, `"employeeId":"e1"`)
	assert.NotContains(t, raw, `"checkIn"`, "unset optional fields are omitted")
}

func TestLeaveRequestRepository_ReadsExistingBlob(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "attendance_leaves", `[
		{"id":"l1","employeeId":"e1","employeeName":"Somchai","type":"vacation",
		 "startDate":"2024-03-01","endDate":"2024-03-03","days":3,"reason":"trip",
		 "status":"approved","submittedAt":"2024-02-20T08:00:00.000Z",
		 "approvedBy":"Manager","approvedAt":"2024-02-21T09:30:00.000Z"}
	]`))

	leaves, err := NewLeaveRequestRepository(store, DefaultPrefix).List(ctx)
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, leave.LeaveTypeVacation, leaves[0].Type)
	assert.Equal(t, 3, leaves[0].Days)
	require.NotNil(t, leaves[0].ApprovedBy)
	assert.Equal(t, "Manager", *leaves[0].ApprovedBy)
}

func TestCollection_NullAndCorruptBlobs(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewEmployeeRepository(store, DefaultPrefix)

	require.NoError(t, store.Set(ctx, "attendance_employees", "null"))
	employees, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)

	require.NoError(t, store.Set(ctx, "attendance_employees", "{not json"))
	_, err = repo.List(ctx)
	assert.Error(t, err)
	assert.Error(t, repo.Upsert(ctx, employee.Employee{ID: "e1"}), "a corrupt collection is not overwritten")

	raw, _, _ := store.Get(ctx, "attendance_employees")
	assert.Equal(t, "{not json", raw)
}

func TestCollection_StoreFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: kvstore.NewMemoryStore()}
	repo := NewLeaveRequestRepository(store, DefaultPrefix)

	err := repo.Upsert(ctx, leave.LeaveRequest{ID: "l1"})
	assert.ErrorIs(t, err, errStoreDown)

	store.readErr = true
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestCollection_CustomPrefix(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	require.NoError(t, NewEmployeeRepository(store, "tenant_").Upsert(ctx, employee.Employee{ID: "e1"}))

	_, found, err := store.Get(ctx, "tenant_employees")
	require.NoError(t, err)
	assert.True(t, found)

	other, err := NewEmployeeRepository(store, DefaultPrefix).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAttendanceRepository_UpsertByEmployeeAndDate(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewAttendanceRepository(store, DefaultPrefix)

	require.NoError(t, repo.Upsert(ctx, attendance.AttendanceRecord{ID: "r0", EmployeeID: "e2", Date: "2024-03-01"}))

	skipped, err := repo.UpsertByEmployeeAndDate(ctx, "e1", "2024-03-01", func(existing *attendance.AttendanceRecord) (*attendance.AttendanceRecord, error) {
		assert.Nil(t, existing)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, skipped)

	created, err := repo.UpsertByEmployeeAndDate(ctx, "e1", "2024-03-01", func(existing *attendance.AttendanceRecord) (*attendance.AttendanceRecord, error) {
		return &attendance.AttendanceRecord{ID: "r1", EmployeeID: "e1", Date: "2024-03-01", Status: attendance.StatusPresent}, nil
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	updated, err := repo.UpsertByEmployeeAndDate(ctx, "e1", "2024-03-01", func(existing *attendance.AttendanceRecord) (*attendance.AttendanceRecord, error) {
		require.NotNil(t, existing)
		existing.Status = attendance.StatusLate
		return existing, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", updated.ID)

	_, err = repo.UpsertByEmployeeAndDate(ctx, "e1", "2024-03-01", func(*attendance.AttendanceRecord) (*attendance.AttendanceRecord, error) {
		return nil, errStoreDown
	})
	assert.ErrorIs(t, err, errStoreDown)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r0", records[0].ID)
	assert.Equal(t, attendance.StatusLate, records[1].Status)
}

func TestLeaveRequestRepository_Update(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewLeaveRequestRepository(store, DefaultPrefix)

	require.NoError(t, repo.Upsert(ctx, leave.LeaveRequest{ID: "l1", Status: leave.LeaveRequestStatusPending}))
	require.NoError(t, repo.Upsert(ctx, leave.LeaveRequest{ID: "l2", Status: leave.LeaveRequestStatusPending}))
	before, _, err := store.Get(ctx, DefaultPrefix+LeavesKey)
	require.NoError(t, err)

	missing, err := repo.Update(ctx, "nope", func(*leave.LeaveRequest) error {
		t.Fatal("fn must not run for an unknown id")
		return nil
	})
	require.NoError(t, err)
	assert.Nil(t, missing)
	after, _, err := store.Get(ctx, DefaultPrefix+LeavesKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	updated, err := repo.Update(ctx, "l1", func(l *leave.LeaveRequest) error {
		l.ID = "renamed"
		l.Status = leave.LeaveRequestStatusApproved
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "l1", updated.ID, "id is kept")

	leaves, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, leaves, 2)
	assert.Equal(t, "l1", leaves[0].ID)
	assert.Equal(t, leave.LeaveRequestStatusApproved, leaves[0].Status)
}
