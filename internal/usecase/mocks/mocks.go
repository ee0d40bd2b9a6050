package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/acctledger/internal/domain"
	"github.com/iho/acctledger/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc     func(ctx context.Context, account *domain.Account) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDsFunc   func(ctx context.Context, ids []string) ([]*domain.Account, error)
	DeactivateFunc func(ctx context.Context, id string, now time.Time) error
	ListFunc       func(ctx context.Context, entityID string, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) Deactivate(ctx context.Context, id string, now time.Time) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id, now)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Active = false
	acc.UpdatedAt = now
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, entityID string, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, entityID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.EntityID == entityID {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
	sequences    map[string]int64

	CreateFunc            func(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Transaction, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Tx, ids []string) ([]*domain.Transaction, error)
	MarkPostedFunc        func(ctx context.Context, tx usecase.Tx, id, transactionNo string, postedAt time.Time) error
	MarkVoidedFunc        func(ctx context.Context, tx usecase.Tx, id, reason string, voidedAt time.Time) error
	NextSequenceFunc      func(ctx context.Context, tx usecase.Tx, entityID string, txType domain.TransactionType, periodStart time.Time) (int64, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
		sequences:    make(map[string]int64),
	}
}

// Seed stores a transaction directly, bypassing the Create hook.
func (m *MockTransactionRepository) Seed(txn *domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[txn.ID] = txn
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[txn.ID] = txn
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if txn, ok := m.transactions[id]; ok {
		return txn, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Tx, ids []string) ([]*domain.Transaction, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var txns []*domain.Transaction
	for _, id := range ids {
		if txn, ok := m.transactions[id]; ok {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

func (m *MockTransactionRepository) MarkPosted(ctx context.Context, tx usecase.Tx, id, transactionNo string, postedAt time.Time) error {
	if m.MarkPostedFunc != nil {
		return m.MarkPostedFunc(ctx, tx, id, transactionNo, postedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	txn, ok := m.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	txn.TransactionNo = transactionNo
	txn.Status = domain.StatusPosted
	txn.UpdatedAt = postedAt
	return nil
}

func (m *MockTransactionRepository) MarkVoided(ctx context.Context, tx usecase.Tx, id, reason string, voidedAt time.Time) error {
	if m.MarkVoidedFunc != nil {
		return m.MarkVoidedFunc(ctx, tx, id, reason, voidedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	txn, ok := m.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	txn.Status = domain.StatusVoided
	txn.VoidReason = reason
	txn.VoidedAt = &voidedAt
	txn.UpdatedAt = voidedAt
	return nil
}

func (m *MockTransactionRepository) NextSequence(ctx context.Context, tx usecase.Tx, entityID string, txType domain.TransactionType, periodStart time.Time) (int64, error) {
	if m.NextSequenceFunc != nil {
		return m.NextSequenceFunc(ctx, tx, entityID, txType, periodStart)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := fmt.Sprintf("%s|%s|%s", entityID, txType, periodStart.Format("2006-01-02"))
	m.sequences[key]++
	return m.sequences[key], nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries []*domain.LedgerEntry

	CreateBatchFunc       func(ctx context.Context, tx usecase.Tx, entries []*domain.LedgerEntry) error
	GetByTransactionFunc  func(ctx context.Context, transactionID string) ([]*domain.LedgerEntry, error)
	GetByAccountRangeFunc func(ctx context.Context, accountID string, from, to time.Time) ([]*domain.LedgerEntry, error)
	AccountTotalsFunc     func(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error)
	EntityTotalsFunc      func(ctx context.Context, entityID string) (decimal.Decimal, decimal.Decimal, error)
	TrialBalanceFunc      func(ctx context.Context, entityID string, asOf time.Time) ([]*usecase.AccountTotals, error)

	// AccountTypes maps account ids to types for TrialBalance rows.
	AccountTypes map[string]domain.AccountType
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		AccountTypes: make(map[string]domain.AccountType),
	}
}

// Entries returns a copy of everything appended so far.
func (m *MockEntryRepository) Entries() []*domain.LedgerEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.LedgerEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *MockEntryRepository) CreateBatch(ctx context.Context, tx usecase.Tx, entries []*domain.LedgerEntry) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, entries)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *MockEntryRepository) GetByTransaction(ctx context.Context, transactionID string) ([]*domain.LedgerEntry, error) {
	if m.GetByTransactionFunc != nil {
		return m.GetByTransactionFunc(ctx, transactionID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.TransactionID == transactionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockEntryRepository) GetByAccountRange(ctx context.Context, accountID string, from, to time.Time) ([]*domain.LedgerEntry, error) {
	if m.GetByAccountRangeFunc != nil {
		return m.GetByAccountRangeFunc(ctx, accountID, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.AccountID != accountID {
			continue
		}
		if e.FolioDate.Before(from) || !e.FolioDate.Before(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *MockEntryRepository) AccountTotals(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error) {
	if m.AccountTotalsFunc != nil {
		return m.AccountTotalsFunc(ctx, accountID, asOf)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	debits, credits := decimal.Zero, decimal.Zero
	for _, e := range m.entries {
		if e.AccountID != accountID || e.FolioDate.After(asOf) {
			continue
		}
		if e.Side == domain.Debit {
			debits = debits.Add(e.Amount)
		} else {
			credits = credits.Add(e.Amount)
		}
	}
	return debits, credits, nil
}

func (m *MockEntryRepository) EntityTotals(ctx context.Context, entityID string) (decimal.Decimal, decimal.Decimal, error) {
	if m.EntityTotalsFunc != nil {
		return m.EntityTotalsFunc(ctx, entityID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	debits, credits := decimal.Zero, decimal.Zero
	for _, e := range m.entries {
		if e.EntityID != entityID {
			continue
		}
		if e.Side == domain.Debit {
			debits = debits.Add(e.Amount)
		} else {
			credits = credits.Add(e.Amount)
		}
	}
	return debits, credits, nil
}

func (m *MockEntryRepository) TrialBalance(ctx context.Context, entityID string, asOf time.Time) ([]*usecase.AccountTotals, error) {
	if m.TrialBalanceFunc != nil {
		return m.TrialBalanceFunc(ctx, entityID, asOf)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows := make(map[string]*usecase.AccountTotals)
	var order []string
	for _, e := range m.entries {
		if e.EntityID != entityID || e.FolioDate.After(asOf) {
			continue
		}
		row, ok := rows[e.AccountID]
		if !ok {
			row = &usecase.AccountTotals{
				AccountID:   e.AccountID,
				AccountType: m.AccountTypes[e.AccountID],
				Debits:      decimal.Zero,
				Credits:     decimal.Zero,
			}
			rows[e.AccountID] = row
			order = append(order, e.AccountID)
		}
		if e.Side == domain.Debit {
			row.Debits = row.Debits.Add(e.Amount)
		} else {
			row.Credits = row.Credits.Add(e.Amount)
		}
	}
	out := make([]*usecase.AccountTotals, 0, len(order))
	for _, id := range order {
		out = append(out, rows[id])
	}
	return out, nil
}

// MockAssignmentRepository is a mock implementation of AssignmentRepository.
type MockAssignmentRepository struct {
	mu          sync.RWMutex
	assignments map[string]*domain.Assignment

	CreateFunc             func(ctx context.Context, tx usecase.Tx, assignment *domain.Assignment) error
	GetByIDFunc            func(ctx context.Context, id string) (*domain.Assignment, error)
	DeleteFunc             func(ctx context.Context, tx usecase.Tx, id string) error
	ListByTransactionFunc  func(ctx context.Context, transactionID string) ([]*domain.Assignment, error)
	SumByTransactionFunc   func(ctx context.Context, transactionID string) (decimal.Decimal, error)
	SumByTransactionTxFunc func(ctx context.Context, tx usecase.Tx, transactionID string) (decimal.Decimal, error)
}

func NewMockAssignmentRepository() *MockAssignmentRepository {
	return &MockAssignmentRepository{
		assignments: make(map[string]*domain.Assignment),
	}
}

func (m *MockAssignmentRepository) Create(ctx context.Context, tx usecase.Tx, assignment *domain.Assignment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, assignment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignments[assignment.ID] = assignment
	return nil
}

func (m *MockAssignmentRepository) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAssignmentNotFound
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, tx usecase.Tx, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assignments[id]; !ok {
		return domain.ErrAssignmentNotFound
	}
	delete(m.assignments, id)
	return nil
}

func (m *MockAssignmentRepository) ListByTransaction(ctx context.Context, transactionID string) ([]*domain.Assignment, error) {
	if m.ListByTransactionFunc != nil {
		return m.ListByTransactionFunc(ctx, transactionID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Assignment
	for _, a := range m.assignments {
		if a.ClearingID == transactionID || a.ClearableID == transactionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockAssignmentRepository) SumByTransaction(ctx context.Context, transactionID string) (decimal.Decimal, error) {
	if m.SumByTransactionFunc != nil {
		return m.SumByTransactionFunc(ctx, transactionID)
	}
	return m.sum(transactionID), nil
}

func (m *MockAssignmentRepository) SumByTransactionTx(ctx context.Context, tx usecase.Tx, transactionID string) (decimal.Decimal, error) {
	if m.SumByTransactionTxFunc != nil {
		return m.SumByTransactionTxFunc(ctx, tx, transactionID)
	}
	return m.sum(transactionID), nil
}

func (m *MockAssignmentRepository) sum(transactionID string) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, a := range m.assignments {
		switch transactionID {
		case a.ClearingID:
			total = total.Add(a.Amount)
		case a.ClearableID:
			total = total.Add(a.ClearableAmount)
		}
	}
	return total
}

// MockPeriodRepository is a mock implementation of PeriodRepository.
type MockPeriodRepository struct {
	mu      sync.RWMutex
	periods map[string]*domain.ReportingPeriod

	CreateFunc       func(ctx context.Context, period *domain.ReportingPeriod) error
	GetByDateFunc    func(ctx context.Context, entityID string, date time.Time) (*domain.ReportingPeriod, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.PeriodStatus, now time.Time) error
}

func NewMockPeriodRepository() *MockPeriodRepository {
	return &MockPeriodRepository{
		periods: make(map[string]*domain.ReportingPeriod),
	}
}

func (m *MockPeriodRepository) Create(ctx context.Context, period *domain.ReportingPeriod) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, period)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.periods[period.ID] = period
	return nil
}

func (m *MockPeriodRepository) GetByDate(ctx context.Context, entityID string, date time.Time) (*domain.ReportingPeriod, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, entityID, date)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.periods {
		if p.EntityID == entityID && p.Contains(date) {
			return p, nil
		}
	}
	return nil, domain.ErrPeriodNotFound
}

func (m *MockPeriodRepository) UpdateStatus(ctx context.Context, id string, status domain.PeriodStatus, now time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, now)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.periods[id]
	if !ok {
		return domain.ErrPeriodNotFound
	}
	p.Status = status
	p.UpdatedAt = now
	return nil
}

// MockTaxRepository is a mock implementation of TaxRepository.
type MockTaxRepository struct {
	mu    sync.RWMutex
	taxes map[string]*domain.Tax

	CreateFunc   func(ctx context.Context, tax *domain.Tax) error
	GetByIDsFunc func(ctx context.Context, ids []string) (map[string]*domain.Tax, error)
}

func NewMockTaxRepository() *MockTaxRepository {
	return &MockTaxRepository{
		taxes: make(map[string]*domain.Tax),
	}
}

func (m *MockTaxRepository) Create(ctx context.Context, tax *domain.Tax) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tax)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.taxes[tax.ID] = tax
	return nil
}

func (m *MockTaxRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Tax, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*domain.Tax, len(ids))
	for _, id := range ids {
		if tax, ok := m.taxes[id]; ok {
			out[id] = tax
		}
	}
	return out, nil
}

// MockTxManager is a mock implementation of TxManager.
type MockTxManager struct {
	BeginFunc func(ctx context.Context) (usecase.Tx, error)
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Tx, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTx{}, nil
}

// MockTx is a mock implementation of Tx.
type MockTx struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTx) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%04d", m.counter)
}

// MockBalanceCache is a mock implementation of BalanceCache.
type MockBalanceCache struct {
	mu     sync.RWMutex
	values map[string]decimal.Decimal

	GetFunc        func(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, bool, error)
	SetFunc        func(ctx context.Context, accountID string, asOf time.Time, balance decimal.Decimal, ttl time.Duration) error
	InvalidateFunc func(ctx context.Context, accountID string) error

	Invalidations []string
}

func NewMockBalanceCache() *MockBalanceCache {
	return &MockBalanceCache{
		values: make(map[string]decimal.Decimal),
	}
}

func (m *MockBalanceCache) key(accountID string, asOf time.Time) string {
	return accountID + "|" + asOf.Format(time.RFC3339)
}

func (m *MockBalanceCache) Get(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, accountID, asOf)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[m.key(accountID, asOf)]; ok {
		return v, true, nil
	}
	return decimal.Zero, false, nil
}

func (m *MockBalanceCache) Set(ctx context.Context, accountID string, asOf time.Time, balance decimal.Decimal, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, accountID, asOf, balance, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[m.key(accountID, asOf)] = balance
	return nil
}

func (m *MockBalanceCache) Invalidate(ctx context.Context, accountID string) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, accountID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := accountID + "|"
	for k := range m.values {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.values, k)
		}
	}
	m.Invalidations = append(m.Invalidations, accountID)
	return nil
}
