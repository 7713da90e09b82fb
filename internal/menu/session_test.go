package menu

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/billmgr/internal/bills"
	"github.com/cleared-dev/billmgr/internal/model"
	"github.com/cleared-dev/billmgr/internal/prompt"
)

// runSession feeds lines to a session over store and returns what it printed.
func runSession(t *testing.T, store *bills.Store, opts Options, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, NewSession(store, p, opts).Run())
	return out.String()
}

func defaultOptions() Options {
	return Options{ExitOnUnknown: true}
}

func TestRun_BlankSelectionExits(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, defaultOptions(), "")

	assert.Equal(t, 1, strings.Count(out, "-----Bill Manager-----"))
	assert.Equal(t, 0, store.Len())
}

func TestRun_EndOfInputExits(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(""), &out)
	require.NoError(t, NewSession(bills.NewStore(), p, defaultOptions()).Run())
	assert.Contains(t, out.String(), "Enter the selection: ")
}

func TestRun_AddBill(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, defaultOptions(), "1", "rent", "1200", "")

	got := store.List()
	require.Len(t, got, 1)
	assert.Equal(t, model.Bill{Name: "rent", Amount: 1200}, got[0])
	assert.Contains(t, out, "Bill Name: ")
	assert.Contains(t, out, "Amount:")
	assert.Contains(t, out, "Bills Added")
	assert.Equal(t, 2, strings.Count(out, "-----Bill Manager-----"), "menu shown again after add")
}

func TestRun_AddBill_RetriesUnparseableAmount(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, defaultOptions(), "1", "internet", "abc", "150.5", "")

	b, ok := store.Get("internet")
	require.True(t, ok)
	assert.InDelta(t, 150.5, b.Amount, 0)
	assert.Equal(t, 1, strings.Count(out, "Please enter a number"))
}

func TestRun_AddBill_BlankNameCancels(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, defaultOptions(), "1", "", "2", "")

	assert.Equal(t, 0, store.Len())
	assert.NotContains(t, out, "Bills Added")
	assert.NotContains(t, out, "Amount:")
	assert.Contains(t, out, "No bills", "session continues after a cancelled add")
}

func TestRun_AddBill_BlankAmountCancels(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, defaultOptions(), "1", "rent", "abc", "", "")

	assert.Equal(t, 0, store.Len())
	assert.NotContains(t, out, "Bills Added")
}

func TestRun_AddBill_OverwritesExisting(t *testing.T) {
	store := bills.NewStore()
	runSession(t, store, defaultOptions(),
		"1", "rent", "1200",
		"1", "rent", "1250",
		"")

	got := store.List()
	require.Len(t, got, 1)
	assert.InDelta(t, 1250.0, got[0].Amount, 0)
}

func TestRun_ViewBills(t *testing.T) {
	store := bills.NewStore()
	store.Add(model.Bill{Name: "water", Amount: 40})
	store.Add(model.Bill{Name: "rent", Amount: 1200})

	out := runSession(t, store, defaultOptions(), "2", "")

	assert.Contains(t, out, "rent: 1200.00\nwater: 40.00\nTotal: 1240.00\n")
	assert.Equal(t, 2, store.Len())
}

func TestRun_ViewBills_Empty(t *testing.T) {
	out := runSession(t, bills.NewStore(), defaultOptions(), "2", "")
	assert.Contains(t, out, "No bills")
	assert.NotContains(t, out, "Total:")
}

func TestRun_RemoveBill(t *testing.T) {
	store := bills.NewStore()
	store.Add(model.Bill{Name: "electric", Amount: 90})

	out := runSession(t, store, defaultOptions(), "3", "electric", "")

	assert.Equal(t, 0, store.Len())
	assert.Contains(t, out, "electric: 90.00\nEnter bill name to remove: \n")
	assert.Contains(t, out, "Bill removed!")
}

func TestRun_RemoveUnknown(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, defaultOptions(), "3", "electric", "")

	assert.Contains(t, out, "Bill Not Found!")
	assert.NotContains(t, out, "Bill removed!")
}

func TestRun_RemoveBill_BlankNameCancels(t *testing.T) {
	store := bills.NewStore()
	store.Add(model.Bill{Name: "electric", Amount: 90})

	out := runSession(t, store, defaultOptions(), "3", "", "")

	assert.Equal(t, 1, store.Len())
	assert.NotContains(t, out, "Bill Not Found!")
}

func TestRun_AddThenEdit(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, defaultOptions(),
		"1", "water", "40",
		"4", "water", "75",
		"")

	got := store.List()
	require.Len(t, got, 1)
	assert.Equal(t, "water", got[0].Name)
	assert.InDelta(t, 75.0, got[0].Amount, 0)
	assert.Contains(t, out, `"water" is Edited with new amount: 75.00`)
}

func TestRun_EditUnknown(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, defaultOptions(), "4", "ghost", "10", "")

	assert.Equal(t, 0, store.Len())
	assert.Contains(t, out, "Bill not found!")
}

func TestRun_EditBill_BlankAmountCancels(t *testing.T) {
	store := bills.NewStore()
	store.Add(model.Bill{Name: "water", Amount: 40})

	out := runSession(t, store, defaultOptions(), "4", "water", "", "")

	b, _ := store.Get("water")
	assert.InDelta(t, 40.0, b.Amount, 0)
	assert.NotContains(t, out, "is Edited")
}

func TestRun_UnknownSelectionExits(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, defaultOptions(), "9", "1", "rent", "10", "")

	assert.Equal(t, 0, store.Len(), "nothing after the unknown selection is read")
	assert.Equal(t, 1, strings.Count(out, "-----Bill Manager-----"))
}

func TestRun_UnknownSelectionReprompts(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, Options{ExitOnUnknown: false}, "9", "1", "rent", "10", "")

	assert.Contains(t, out, `Unknown selection "9"`)
	assert.Equal(t, 1, store.Len())
}

func TestDispatch_InvalidSelection(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(""), &out)
	err := NewSession(bills.NewStore(), p, defaultOptions()).Dispatch(Selection(0))
	require.Error(t, err)
}

func TestRun_AddBill_OutOfRangeAmount(t *testing.T) {
	store := bills.NewStore()
	out := runSession(t, store, defaultOptions(), "1", "huge", "1e400", "2", "")

	b, ok := store.Get("huge")
	require.True(t, ok)
	assert.True(t, math.IsInf(b.Amount, 1))
	assert.NotContains(t, out, "Please enter a number")
	assert.Contains(t, out, "huge: +Inf\nTotal: 0.00\n")
}
