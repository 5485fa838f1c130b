package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersister struct {
	saved   []model.Transaction
	saves   int
	loadErr error
	saveErr error
}

func (p *memPersister) Load() ([]model.Transaction, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return append([]model.Transaction{}, p.saved...), nil
}

func (p *memPersister) Save(txs []model.Transaction) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves++
	p.saved = append([]model.Transaction{}, txs...)
	return nil
}

func fixedClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func newTestLedger(t *testing.T, seed ...model.Transaction) (*Ledger, *memPersister) {
	t.Helper()
	p := &memPersister{saved: seed}
	l, err := Open(p, WithClock(fixedClock()))
	require.NoError(t, err)
	return l, p
}

func coffee() model.Candidate {
	return model.Candidate{
		Description: "  Coffee  ",
		Amount:      "3.50",
		Date:        "2024-02-01",
		Category:    "Food",
		Type:        "expense",
	}
}

func paycheck() model.Transaction {
	return model.Transaction{ID: 1, Description: "Paycheck", Amount: 2000, Date: "2024-01-01", Category: "Salary", Type: model.TypeIncome}
}

func rent() model.Transaction {
	return model.Transaction{ID: 2, Description: "Rent", Amount: 1200, Date: "2024-01-02", Category: "Rent", Type: model.TypeExpense}
}

func TestOpen_Hydrates(t *testing.T) {
	l, _ := newTestLedger(t, paycheck(), rent())
	require.Equal(t, 2, l.Len())
	require.Equal(t, []model.Transaction{paycheck(), rent()}, l.All())
}

func TestOpen_LoadFailure(t *testing.T) {
	_, err := Open(&memPersister{loadErr: errors.New("disk gone")})
	require.Error(t, err)
}

func TestOpen_WithLedgerStore(t *testing.T) {
	ls := store.NewLedgerStore(store.NewMemoryStore(), "k", nil)

	l, err := Open(ls)
	require.NoError(t, err)
	tx, err := l.Add(coffee())
	require.NoError(t, err)

	reopened, err := Open(ls)
	require.NoError(t, err)
	require.Equal(t, []model.Transaction{tx}, reopened.All())
}

func TestAdd(t *testing.T) {
	l, p := newTestLedger(t, paycheck())

	tx, err := l.Add(coffee())
	require.NoError(t, err)

	assert.Equal(t, "Coffee", tx.Description)
	assert.Equal(t, 3.5, tx.Amount)
	assert.Equal(t, "2024-02-01", tx.Date)
	assert.Equal(t, "Food", tx.Category)
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.NotEqual(t, paycheck().ID, tx.ID)

	require.Equal(t, 2, l.Len())
	got, ok := l.Get(tx.ID)
	require.True(t, ok)
	require.Equal(t, tx, got)

	require.Equal(t, 1, p.saves)
	require.Equal(t, l.All(), p.saved)
}

func TestAdd_UniqueIDsUnderFrozenClock(t *testing.T) {
	l, _ := newTestLedger(t)

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		tx, err := l.Add(coffee())
		require.NoError(t, err)
		require.False(t, seen[tx.ID], "id %d issued twice", tx.ID)
		seen[tx.ID] = true
	}
	require.Equal(t, 50, l.Len())
}

func TestAdd_IDsNotReusedAfterDelete(t *testing.T) {
	l, _ := newTestLedger(t)

	first, err := l.Add(coffee())
	require.NoError(t, err)
	found, err := l.Delete(first.ID)
	require.NoError(t, err)
	require.True(t, found)

	second, err := l.Add(coffee())
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)
}

func TestAdd_AvoidsHydratedIDs(t *testing.T) {
	clockID := fixedClock()().UnixMilli()
	existing := paycheck()
	existing.ID = clockID + 10

	l, _ := newTestLedger(t, existing)

	tx, err := l.Add(coffee())
	require.NoError(t, err)
	require.Greater(t, tx.ID, existing.ID)
}

func TestAdd_ValidationError(t *testing.T) {
	l, p := newTestLedger(t, paycheck())

	c := coffee()
	c.Description = ""
	c.Amount = "-5"

	_, err := l.Add(c)
	require.Error(t, err)

	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{validation.MsgDescriptionRequired, validation.MsgAmountInvalid}, verr.Messages())

	require.Equal(t, 1, l.Len())
	require.Zero(t, p.saves)
}

func TestAdd_PersistFailureLeavesLedgerUnchanged(t *testing.T) {
	l, p := newTestLedger(t, paycheck())
	p.saveErr = errors.New("read-only")

	_, err := l.Add(coffee())
	require.Error(t, err)
	require.Equal(t, []model.Transaction{paycheck()}, l.All())
}

func TestUpdate(t *testing.T) {
	l, p := newTestLedger(t, paycheck(), rent())

	found, err := l.Update(2, model.Candidate{
		Description: "Rent March",
		Amount:      "1250",
		Date:        "2024-03-01",
		Category:    "Rent",
		Type:        "expense",
	})
	require.NoError(t, err)
	require.True(t, found)

	got, ok := l.Get(2)
	require.True(t, ok)
	require.Equal(t, model.Transaction{
		ID: 2, Description: "Rent March", Amount: 1250, Date: "2024-03-01", Category: "Rent", Type: model.TypeExpense,
	}, got)
	require.Equal(t, 2, l.Len())
	require.Equal(t, 1, p.saves)
}

func TestUpdate_CanChangeType(t *testing.T) {
	l, _ := newTestLedger(t, rent())

	found, err := l.Update(2, model.Candidate{
		Description: "Refund",
		Amount:      "50",
		Date:        "2024-01-03",
		Category:    "Gift",
		Type:        "income",
	})
	require.NoError(t, err)
	require.True(t, found)

	got, _ := l.Get(2)
	require.Equal(t, model.TypeIncome, got.Type)
}

func TestUpdate_UnknownID(t *testing.T) {
	l, p := newTestLedger(t, paycheck(), rent())
	before := l.All()

	found, err := l.Update(99, coffee())
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, before, l.All())
	require.Zero(t, p.saves)
}

func TestUpdate_ValidationError(t *testing.T) {
	l, _ := newTestLedger(t, rent())

	c := coffee()
	c.Category = ""
	c.Date = ""

	found, err := l.Update(2, c)
	require.False(t, found)

	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Category is required. Date is required.", verr.Error())
	require.Equal(t, []model.Transaction{rent()}, l.All())
}

func TestDelete(t *testing.T) {
	l, p := newTestLedger(t, paycheck(), rent())

	found, err := l.Delete(1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []model.Transaction{rent()}, l.All())
	require.Equal(t, l.All(), p.saved)

	found, err = l.Delete(1)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, 1, l.Len())
	require.Equal(t, 1, p.saves)
}

func TestDelete_PersistFailure(t *testing.T) {
	l, p := newTestLedger(t, paycheck(), rent())
	p.saveErr = errors.New("read-only")

	found, err := l.Delete(1)
	require.Error(t, err)
	require.False(t, found)
	require.Equal(t, 2, l.Len())
}

func TestAll_ReturnsCopy(t *testing.T) {
	l, _ := newTestLedger(t, paycheck())

	txs := l.All()
	txs[0].Description = "changed"

	got, _ := l.Get(1)
	require.Equal(t, "Paycheck", got.Description)
}

func TestObservers(t *testing.T) {
	l, _ := newTestLedger(t, paycheck())

	var events []Event
	unsubscribe := l.Subscribe(func(e Event) { events = append(events, e) })

	tx, err := l.Add(coffee())
	require.NoError(t, err)
	_, err = l.Update(tx.ID, coffee())
	require.NoError(t, err)
	_, err = l.Update(12345, coffee())
	require.NoError(t, err)
	_, err = l.Delete(tx.ID)
	require.NoError(t, err)
	_, err = l.Delete(tx.ID)
	require.NoError(t, err)

	require.Equal(t, []Event{
		{Kind: EventAdded, ID: tx.ID, Count: 2},
		{Kind: EventUpdated, ID: tx.ID, Count: 2},
		{Kind: EventDeleted, ID: tx.ID, Count: 1},
	}, events)

	unsubscribe()
	_, err = l.Add(coffee())
	require.NoError(t, err)
	require.Len(t, events, 3)
}

func TestObservers_NotNotifiedOnFailure(t *testing.T) {
	l, p := newTestLedger(t)
	p.saveErr = errors.New("read-only")

	called := false
	l.Subscribe(func(Event) { called = true })

	_, err := l.Add(coffee())
	require.Error(t, err)
	require.False(t, called)
}

func TestExport(t *testing.T) {
	l, _ := newTestLedger(t, paycheck())

	data, err := l.Export()
	require.NoError(t, err)
	require.Equal(t, `[
  {
    "id": 1,
    "description": "Paycheck",
    "amount": 2000,
    "date": "2024-01-01",
    "category": "Salary",
    "type": "income"
  }
]`, string(data))
}

func TestExport_Empty(t *testing.T) {
	l, _ := newTestLedger(t)

	data, err := l.Export()
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}
