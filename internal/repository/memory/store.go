// Package memory holds map-backed implementations of the repository
// interfaces. Service tests use it in place of PostgreSQL.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/leave"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/department"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/designation"
	"github.com/workaxis/hrms-backend-go/internal/domain/offer"
	"github.com/workaxis/hrms-backend-go/internal/domain/payroll"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/domain/template"
)

type txKey struct{}

type tables struct {
	departments   map[string]department.Department
	designations  map[string]designation.Designation
	employees     map[string]employee.Employee
	codeSequence  int64
	salaries      map[string]salary.Salary
	payrolls      map[string]payroll.Payroll
	leaveTypes    map[string]leave.LeaveType
	leaveBalances map[string]leave.LeaveBalance
	leaveRequests map[string]leave.LeaveRequest
	templates     map[string]template.Template
	offers        map[string]offer.OfferLetter
}

func (t tables) clone() tables {
	return tables{
		departments:   maps.Clone(t.departments),
		designations:  maps.Clone(t.designations),
		employees:     maps.Clone(t.employees),
		codeSequence:  t.codeSequence,
		salaries:      maps.Clone(t.salaries),
		payrolls:      maps.Clone(t.payrolls),
		leaveTypes:    maps.Clone(t.leaveTypes),
		leaveBalances: maps.Clone(t.leaveBalances),
		leaveRequests: maps.Clone(t.leaveRequests),
		templates:     maps.Clone(t.templates),
		offers:        maps.Clone(t.offers),
	}
}

// Store is a process-local database. Transactions are serialized and a
// failed transaction restores the state it started from.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	data tables

	// FailOn lets tests inject an error from a named repository method.
	FailOn map[string]error
}

func NewStore() *Store {
	return &Store{
		data: tables{
			departments:   map[string]department.Department{},
			designations:  map[string]designation.Designation{},
			employees:     map[string]employee.Employee{},
			salaries:      map[string]salary.Salary{},
			payrolls:      map[string]payroll.Payroll{},
			leaveTypes:    map[string]leave.LeaveType{},
			leaveBalances: map[string]leave.LeaveBalance{},
			leaveRequests: map[string]leave.LeaveRequest{},
			templates:     map[string]template.Template{},
			offers:        map[string]offer.OfferLetter{},
		},
		FailOn: map[string]error{},
	}
}

// WithinTransaction implements database.TxManager.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) fail(method string) error {
	return s.FailOn[method]
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}
